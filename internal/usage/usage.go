package usage

import (
	"context"
	"errors"

	"k8s.io/apimachinery/pkg/types"
)

var ErrNoMetrics = errors.New("no volume metrics reported")

// ClaimUsage is the kubelet's view of a mounted claim's filesystem.
type ClaimUsage struct {
	UsedBytes     int64
	CapacityBytes int64
}

func (u *ClaimUsage) PercentageUsed() float64 {
	if u.CapacityBytes == 0 {
		return 0
	}
	return float64(u.UsedBytes) / float64(u.CapacityBytes) * 100
}

type Client interface {
	ClaimUsage(context.Context, types.NamespacedName) (*ClaimUsage, error)
}
