package prometheus

import (
	"context"
	"fmt"
	"time"

	"github.com/lorenzophys/pv-tracer/internal/usage"
	prometheusApi "github.com/prometheus/client_golang/api"
	prometheusv1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
	"k8s.io/apimachinery/pkg/types"
)

//go:generate mockgen -source=prometheus.go -destination=mock_query_api_test.go -package=prometheus

const (
	usedBytesMetric     = "kubelet_volume_stats_used_bytes"
	capacityBytesMetric = "kubelet_volume_stats_capacity_bytes"

	DefaultQueryTimeout = 10 * time.Second
)

// queryAPI is the part of prometheusv1.API the client uses.
type queryAPI interface {
	Query(ctx context.Context, query string, ts time.Time, opts ...prometheusv1.Option) (model.Value, prometheusv1.Warnings, error)
}

type PrometheusClient struct {
	prometheusAPI queryAPI
	timeout       time.Duration
	now           func() time.Time
}

func NewPrometheusClient(url string) (*PrometheusClient, error) {
	client, err := prometheusApi.NewClient(prometheusApi.Config{
		Address: url,
	})
	if err != nil {
		return nil, err
	}

	return &PrometheusClient{
		prometheusAPI: prometheusv1.NewAPI(client),
		timeout:       DefaultQueryTimeout,
		now:           time.Now,
	}, nil
}

func (c *PrometheusClient) ClaimUsage(ctx context.Context, claim types.NamespacedName) (*usage.ClaimUsage, error) {
	used, err := c.getClaimValue(ctx, usedBytesMetric, claim)
	if err != nil {
		return nil, err
	}

	capacity, err := c.getClaimValue(ctx, capacityBytesMetric, claim)
	if err != nil {
		return nil, err
	}

	return &usage.ClaimUsage{UsedBytes: used, CapacityBytes: capacity}, nil
}

func (c *PrometheusClient) getClaimValue(ctx context.Context, metric string, claim types.NamespacedName) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, _, err := c.prometheusAPI.Query(ctx, claimQuery(metric, claim), c.now())
	if err != nil {
		return 0, fmt.Errorf("failed to query %s for %s: %w", metric, claim, err)
	}

	if res == nil || res.Type() != model.ValVector {
		return 0, fmt.Errorf("unknown response type for %s", metric)
	}

	vec := res.(model.Vector)
	if len(vec) == 0 {
		return 0, fmt.Errorf("%w: %s for %s", usage.ErrNoMetrics, metric, claim)
	}

	return int64(vec[0].Value), nil
}

func claimQuery(metric string, claim types.NamespacedName) string {
	return fmt.Sprintf(`%s{namespace=%q,persistentvolumeclaim=%q}`, metric, claim.Namespace, claim.Name)
}
