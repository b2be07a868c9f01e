package tracer

import (
	"fmt"
	"time"

	"github.com/lorenzophys/pv-tracer/internal/cluster"
	"github.com/lorenzophys/pv-tracer/internal/usage"
	"k8s.io/apimachinery/pkg/types"
)

// Kind is the closed set of owner kinds the tracer distinguishes.
type Kind int

const (
	KindOther Kind = iota
	KindReplicaSet
	KindStatefulSet
	KindDaemonSet
	KindJob
	KindDeployment
	KindCronJob
)

func ParseKind(s string) Kind {
	switch s {
	case cluster.KindReplicaSet:
		return KindReplicaSet
	case cluster.KindStatefulSet:
		return KindStatefulSet
	case cluster.KindDaemonSet:
		return KindDaemonSet
	case cluster.KindJob:
		return KindJob
	case cluster.KindDeployment:
		return KindDeployment
	case cluster.KindCronJob:
		return KindCronJob
	default:
		return KindOther
	}
}

// OwnerRef is one link of an owner chain. Raw keeps the kind string as the
// API server returned it, which is what gets printed for KindOther.
type OwnerRef struct {
	Kind Kind
	Raw  string
	Name string
}

func NewOwnerRef(kind, name string) OwnerRef {
	return OwnerRef{Kind: ParseKind(kind), Raw: kind, Name: name}
}

func (r OwnerRef) String() string {
	return fmt.Sprintf("%s/%s", r.Raw, r.Name)
}

type Volume struct {
	Name         string
	Phase        string
	Claim        *types.NamespacedName
	Capacity     string
	StorageClass string
	CreatedAt    time.Time
}

type Claim struct {
	Namespace    string
	Name         string
	Phase        string
	VolumeName   string
	Capacity     string
	AccessModes  []string
	StorageClass string
}

func (c *Claim) NamespacedName() types.NamespacedName {
	return types.NamespacedName{Namespace: c.Namespace, Name: c.Name}
}

// Mount is a container mount backed by the traced claim.
type Mount struct {
	Container string
	MountPath string
	Volume    string
	ReadOnly  bool
}

type Pod struct {
	Namespace string
	Name      string
	Phase     string
	Node      string
	CreatedAt time.Time
	Owner     *OwnerRef
	Mounts    []Mount
}

// Controller is the top of a pod's owner chain. Via is the intermediate
// owner (a ReplicaSet or a Job) when the chain was followed one hop further.
type Controller struct {
	Ref             OwnerRef
	Via             *OwnerRef
	DesiredReplicas *int32
	ReadyReplicas   *int32
}

// Replicas returns "ready/desired" when both counts are known.
func (c *Controller) Replicas() (string, bool) {
	if c.DesiredReplicas == nil || c.ReadyReplicas == nil {
		return "", false
	}
	return fmt.Sprintf("%d/%d", *c.ReadyReplicas, *c.DesiredReplicas), true
}

type PodReport struct {
	Pod Pod
	// Controller is nil for standalone pods.
	Controller *Controller
}

// Outcome tells how far the trace got.
type Outcome int

const (
	Traced Outcome = iota
	VolumeNotFound
	Unbound
	DanglingClaim
	Unmounted
)

func (o Outcome) String() string {
	switch o {
	case Traced:
		return "traced"
	case VolumeNotFound:
		return "volume not found"
	case Unbound:
		return "unbound"
	case DanglingClaim:
		return "dangling reference"
	case Unmounted:
		return "unmounted"
	default:
		return "unknown"
	}
}

type Report struct {
	VolumeName string
	Outcome    Outcome
	Volume     *Volume
	Claim      *Claim
	Usage      *usage.ClaimUsage
	Pods       []PodReport
}
