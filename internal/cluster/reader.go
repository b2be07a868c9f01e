package cluster

import (
	"context"
	"errors"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

//go:generate mockgen -source=reader.go -destination=mock_reader.go -package=cluster

// Kinds understood by Workload.
const (
	KindReplicaSet  = "ReplicaSet"
	KindDeployment  = "Deployment"
	KindStatefulSet = "StatefulSet"
	KindDaemonSet   = "DaemonSet"
	KindJob         = "Job"
	KindCronJob     = "CronJob"
)

var ErrUnsupportedKind = errors.New("unsupported workload kind")

// Workload is the subset of a controller object needed to walk an owner
// chain. Replica counts are nil when the kind has none or the server did not
// report them.
type Workload struct {
	Kind            string
	Namespace       string
	Name            string
	Owner           *metav1.OwnerReference
	DesiredReplicas *int32
	ReadyReplicas   *int32
}

// Reader is the read-only view of the cluster the tracer needs.
type Reader interface {
	PersistentVolume(ctx context.Context, name string) (*corev1.PersistentVolume, error)
	PersistentVolumes(ctx context.Context) ([]corev1.PersistentVolume, error)
	PersistentVolumeClaim(ctx context.Context, namespace, name string) (*corev1.PersistentVolumeClaim, error)
	Pods(ctx context.Context, namespace string) ([]corev1.Pod, error)
	Workload(ctx context.Context, kind, namespace, name string) (*Workload, error)
}

// KubeReader implements Reader on top of a typed clientset.
type KubeReader struct {
	kubeClient kubernetes.Interface
}

func NewKubeReader(kubeClient kubernetes.Interface) *KubeReader {
	return &KubeReader{kubeClient: kubeClient}
}

// IsNotFound reports whether err means the object does not exist.
func IsNotFound(err error) bool {
	return apierrors.IsNotFound(err)
}

func (r *KubeReader) PersistentVolume(ctx context.Context, name string) (*corev1.PersistentVolume, error) {
	return r.kubeClient.CoreV1().PersistentVolumes().Get(ctx, name, metav1.GetOptions{})
}

func (r *KubeReader) PersistentVolumes(ctx context.Context) ([]corev1.PersistentVolume, error) {
	pvl, err := r.kubeClient.CoreV1().PersistentVolumes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}

	return pvl.Items, nil
}

func (r *KubeReader) PersistentVolumeClaim(ctx context.Context, namespace, name string) (*corev1.PersistentVolumeClaim, error) {
	return r.kubeClient.CoreV1().PersistentVolumeClaims(namespace).Get(ctx, name, metav1.GetOptions{})
}

func (r *KubeReader) Pods(ctx context.Context, namespace string) ([]corev1.Pod, error) {
	pl, err := r.kubeClient.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}

	return pl.Items, nil
}

// Workload fetches a controller object by kind. Only the first owner
// reference is kept.
func (r *KubeReader) Workload(ctx context.Context, kind, namespace, name string) (*Workload, error) {
	w := &Workload{Kind: kind, Namespace: namespace, Name: name}

	switch kind {
	case KindReplicaSet:
		rs, err := r.kubeClient.AppsV1().ReplicaSets(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return nil, err
		}
		w.Owner = firstOwner(rs.OwnerReferences)
		w.DesiredReplicas = rs.Spec.Replicas
		w.ReadyReplicas = int32Ptr(rs.Status.ReadyReplicas)
	case KindDeployment:
		deploy, err := r.kubeClient.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return nil, err
		}
		w.Owner = firstOwner(deploy.OwnerReferences)
		w.DesiredReplicas = deploy.Spec.Replicas
		w.ReadyReplicas = int32Ptr(deploy.Status.ReadyReplicas)
	case KindStatefulSet:
		sts, err := r.kubeClient.AppsV1().StatefulSets(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return nil, err
		}
		w.Owner = firstOwner(sts.OwnerReferences)
		w.DesiredReplicas = sts.Spec.Replicas
		w.ReadyReplicas = int32Ptr(sts.Status.ReadyReplicas)
	case KindDaemonSet:
		ds, err := r.kubeClient.AppsV1().DaemonSets(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return nil, err
		}
		w.Owner = firstOwner(ds.OwnerReferences)
		w.DesiredReplicas = int32Ptr(ds.Status.DesiredNumberScheduled)
		w.ReadyReplicas = int32Ptr(ds.Status.NumberReady)
	case KindJob:
		job, err := r.kubeClient.BatchV1().Jobs(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return nil, err
		}
		w.Owner = firstOwner(job.OwnerReferences)
	case KindCronJob:
		cj, err := r.kubeClient.BatchV1().CronJobs(namespace).Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			return nil, err
		}
		w.Owner = firstOwner(cj.OwnerReferences)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}

	return w, nil
}

func firstOwner(refs []metav1.OwnerReference) *metav1.OwnerReference {
	if len(refs) == 0 {
		return nil
	}
	ref := refs[0]
	return &ref
}

func int32Ptr(i int32) *int32 {
	return &i
}
