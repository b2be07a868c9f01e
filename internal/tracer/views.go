package tracer

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
)

func volumeView(pv *corev1.PersistentVolume) *Volume {
	v := &Volume{
		Name:         pv.Name,
		Phase:        string(pv.Status.Phase),
		StorageClass: pv.Spec.StorageClassName,
		CreatedAt:    pv.CreationTimestamp.Time,
	}
	if capacity, ok := pv.Spec.Capacity[corev1.ResourceStorage]; ok {
		v.Capacity = capacity.String()
	}
	if ref := pv.Spec.ClaimRef; ref != nil && ref.Name != "" {
		v.Claim = &types.NamespacedName{Namespace: ref.Namespace, Name: ref.Name}
	}
	return v
}

func claimView(pvc *corev1.PersistentVolumeClaim) *Claim {
	c := &Claim{
		Namespace:  pvc.Namespace,
		Name:       pvc.Name,
		Phase:      string(pvc.Status.Phase),
		VolumeName: pvc.Spec.VolumeName,
	}
	if capacity, ok := pvc.Status.Capacity[corev1.ResourceStorage]; ok {
		c.Capacity = capacity.String()
	}
	for _, mode := range pvc.Status.AccessModes {
		c.AccessModes = append(c.AccessModes, string(mode))
	}
	if pvc.Spec.StorageClassName != nil {
		c.StorageClass = *pvc.Spec.StorageClassName
	}
	return c
}

// claimVolumes returns the names of the pod volumes backed by the claim.
func claimVolumes(pod *corev1.Pod, claimName string) map[string]struct{} {
	names := make(map[string]struct{})
	for _, vol := range pod.Spec.Volumes {
		if vol.PersistentVolumeClaim != nil && vol.PersistentVolumeClaim.ClaimName == claimName {
			names[vol.Name] = struct{}{}
		}
	}
	return names
}

func podView(pod *corev1.Pod, claimName string) Pod {
	p := Pod{
		Namespace: pod.Namespace,
		Name:      pod.Name,
		Phase:     string(pod.Status.Phase),
		Node:      pod.Spec.NodeName,
		CreatedAt: pod.CreationTimestamp.Time,
	}

	// Only the first owner is followed.
	if len(pod.OwnerReferences) > 0 {
		ref := NewOwnerRef(pod.OwnerReferences[0].Kind, pod.OwnerReferences[0].Name)
		p.Owner = &ref
	}

	volumes := claimVolumes(pod, claimName)
	containers := append(append([]corev1.Container{}, pod.Spec.Containers...), pod.Spec.InitContainers...)
	for _, container := range containers {
		for _, vm := range container.VolumeMounts {
			if _, ok := volumes[vm.Name]; !ok {
				continue
			}
			p.Mounts = append(p.Mounts, Mount{
				Container: container.Name,
				MountPath: vm.MountPath,
				Volume:    vm.Name,
				ReadOnly:  vm.ReadOnly,
			})
		}
	}

	return p
}
