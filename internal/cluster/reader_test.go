package cluster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	ktesting "k8s.io/client-go/testing"
)

func int32Val(i int32) *int32 {
	return &i
}

func ownedBy(kind, name string) []metav1.OwnerReference {
	return []metav1.OwnerReference{{Kind: kind, Name: name}}
}

func TestWorkload(t *testing.T) {
	ctx := context.TODO()

	objects := []runtime.Object{
		&appsv1.ReplicaSet{
			ObjectMeta: metav1.ObjectMeta{Name: "web-5d8f", Namespace: "apps", OwnerReferences: ownedBy(KindDeployment, "web")},
			Spec:       appsv1.ReplicaSetSpec{Replicas: int32Val(3)},
			Status:     appsv1.ReplicaSetStatus{ReadyReplicas: 2},
		},
		&appsv1.Deployment{
			ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "apps"},
			Spec:       appsv1.DeploymentSpec{Replicas: int32Val(3)},
			Status:     appsv1.DeploymentStatus{ReadyReplicas: 3},
		},
		&appsv1.StatefulSet{
			ObjectMeta: metav1.ObjectMeta{Name: "db", Namespace: "apps"},
			Spec:       appsv1.StatefulSetSpec{Replicas: int32Val(2)},
			Status:     appsv1.StatefulSetStatus{ReadyReplicas: 1},
		},
		&appsv1.DaemonSet{
			ObjectMeta: metav1.ObjectMeta{Name: "agent", Namespace: "apps"},
			Status:     appsv1.DaemonSetStatus{DesiredNumberScheduled: 4, NumberReady: 4},
		},
		&batchv1.Job{
			ObjectMeta: metav1.ObjectMeta{Name: "backup-28000", Namespace: "apps", OwnerReferences: ownedBy(KindCronJob, "backup")},
		},
		&batchv1.CronJob{
			ObjectMeta: metav1.ObjectMeta{Name: "backup", Namespace: "apps"},
		},
	}

	tests := []struct {
		name          string
		kind          string
		workloadName  string
		expectedOwner string
		desired       *int32
		ready         *int32
	}{
		{
			name:          "ReplicaSet owned by a Deployment",
			kind:          KindReplicaSet,
			workloadName:  "web-5d8f",
			expectedOwner: "Deployment/web",
			desired:       int32Val(3),
			ready:         int32Val(2),
		},
		{
			name:         "Deployment",
			kind:         KindDeployment,
			workloadName: "web",
			desired:      int32Val(3),
			ready:        int32Val(3),
		},
		{
			name:         "StatefulSet",
			kind:         KindStatefulSet,
			workloadName: "db",
			desired:      int32Val(2),
			ready:        int32Val(1),
		},
		{
			name:         "DaemonSet",
			kind:         KindDaemonSet,
			workloadName: "agent",
			desired:      int32Val(4),
			ready:        int32Val(4),
		},
		{
			name:          "Job owned by a CronJob",
			kind:          KindJob,
			workloadName:  "backup-28000",
			expectedOwner: "CronJob/backup",
		},
		{
			name:         "CronJob",
			kind:         KindCronJob,
			workloadName: "backup",
		},
	}

	reader := NewKubeReader(fake.NewSimpleClientset(objects...))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := reader.Workload(ctx, tt.kind, "apps", tt.workloadName)
			require.NoError(t, err)

			assert.Equal(t, tt.kind, w.Kind)
			assert.Equal(t, tt.workloadName, w.Name)
			if tt.expectedOwner == "" {
				assert.Nil(t, w.Owner)
			} else {
				require.NotNil(t, w.Owner)
				assert.Equal(t, tt.expectedOwner, w.Owner.Kind+"/"+w.Owner.Name)
			}
			assert.Equal(t, tt.desired, w.DesiredReplicas)
			assert.Equal(t, tt.ready, w.ReadyReplicas)
		})
	}
}

func TestWorkloadErrors(t *testing.T) {
	ctx := context.TODO()
	reader := NewKubeReader(fake.NewSimpleClientset())

	t.Run("unsupported kind", func(t *testing.T) {
		_, err := reader.Workload(ctx, "Rollout", "apps", "web")
		assert.ErrorIs(t, err, ErrUnsupportedKind)
	})

	t.Run("missing object", func(t *testing.T) {
		_, err := reader.Workload(ctx, KindStatefulSet, "apps", "missing")
		assert.True(t, IsNotFound(err))
	})
}

func TestPods(t *testing.T) {
	ctx := context.TODO()

	client := fake.NewSimpleClientset(
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "a", Namespace: "apps"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "b", Namespace: "apps"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "c", Namespace: "other"}},
	)
	reader := NewKubeReader(client)

	pods, err := reader.Pods(ctx, "apps")
	require.NoError(t, err)
	assert.Len(t, pods, 2)

	client.PrependReactor("list", "pods", func(action ktesting.Action) (handled bool, ret runtime.Object, err error) {
		return true, nil, errors.New("mock error")
	})

	_, err = reader.Pods(ctx, "apps")
	assert.Equal(t, errors.New("mock error"), err)
}

func TestPersistentVolumes(t *testing.T) {
	ctx := context.TODO()

	reader := NewKubeReader(fake.NewSimpleClientset(
		&corev1.PersistentVolume{ObjectMeta: metav1.ObjectMeta{Name: "pv-1"}},
		&corev1.PersistentVolumeClaim{ObjectMeta: metav1.ObjectMeta{Name: "data", Namespace: "apps"}},
	))

	pvs, err := reader.PersistentVolumes(ctx)
	require.NoError(t, err)
	assert.Len(t, pvs, 1)

	pv, err := reader.PersistentVolume(ctx, "pv-1")
	require.NoError(t, err)
	assert.Equal(t, "pv-1", pv.Name)

	_, err = reader.PersistentVolume(ctx, "pv-2")
	assert.True(t, IsNotFound(err))

	pvc, err := reader.PersistentVolumeClaim(ctx, "apps", "data")
	require.NoError(t, err)
	assert.Equal(t, "data", pvc.Name)
}

func TestPreflight(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		_, err := Preflight(fake.NewSimpleClientset())
		assert.NoError(t, err)
	})

	t.Run("unreachable", func(t *testing.T) {
		client := fake.NewSimpleClientset()
		client.PrependReactor("get", "version", func(action ktesting.Action) (handled bool, ret runtime.Object, err error) {
			return true, nil, errors.New("connection refused")
		})

		_, err := Preflight(client)
		assert.Equal(t, "cluster is not reachable: connection refused", err.Error())
	})

	t.Run("no client", func(t *testing.T) {
		_, err := Preflight(nil)
		assert.Error(t, err)
	})
}
