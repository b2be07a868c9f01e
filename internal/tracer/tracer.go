package tracer

import (
	"context"
	"fmt"
	"sort"

	"github.com/lorenzophys/pv-tracer/internal/cluster"
	"github.com/lorenzophys/pv-tracer/internal/usage"
	log "github.com/sirupsen/logrus"
)

// Tracer walks PersistentVolume -> PersistentVolumeClaim -> Pods -> owners.
// Every lookup is a single blocking call, done in order, with no retries.
type Tracer struct {
	reader      cluster.Reader
	usageClient usage.Client
	logger      *log.Logger
}

// New returns a Tracer. usageClient may be nil, in which case claim usage is
// never reported.
func New(reader cluster.Reader, usageClient usage.Client, logger *log.Logger) *Tracer {
	return &Tracer{
		reader:      reader,
		usageClient: usageClient,
		logger:      logger,
	}
}

// Trace resolves the chain for the named volume. Missing objects end the
// trace with an informational Outcome; only a cancelled context is an error.
func (t *Tracer) Trace(ctx context.Context, volumeName string) (*Report, error) {
	report := &Report{VolumeName: volumeName}

	pv, err := t.reader.PersistentVolume(ctx, volumeName)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		t.logLookupFailure(err, "PersistentVolume %s", volumeName)
		report.Outcome = VolumeNotFound
		return report, nil
	}
	report.Volume = volumeView(pv)
	t.logger.Debugf("fetched PersistentVolume %s (phase %s)", pv.Name, report.Volume.Phase)

	claimRef := report.Volume.Claim
	if claimRef == nil {
		report.Outcome = Unbound
		return report, nil
	}

	pvc, err := t.reader.PersistentVolumeClaim(ctx, claimRef.Namespace, claimRef.Name)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		t.logLookupFailure(err, "PersistentVolumeClaim %s", claimRef)
		report.Outcome = DanglingClaim
		return report, nil
	}
	report.Claim = claimView(pvc)
	t.logger.Debugf("fetched PersistentVolumeClaim %s", claimRef)

	pods, err := t.reader.Pods(ctx, claimRef.Namespace)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		t.logger.Warnf("could not list pods in namespace %s: %v", claimRef.Namespace, err)
	}
	t.logger.Debugf("fetched %d pods in namespace %s", len(pods), claimRef.Namespace)

	for i := range pods {
		if len(claimVolumes(&pods[i], claimRef.Name)) == 0 {
			continue
		}

		pod := podView(&pods[i], claimRef.Name)
		podReport := PodReport{Pod: pod}
		if pod.Owner == nil {
			t.logger.Debugf("pod %s/%s has no owner", pod.Namespace, pod.Name)
		} else {
			podReport.Controller = t.resolveController(ctx, pod.Namespace, *pod.Owner)
		}
		report.Pods = append(report.Pods, podReport)
	}

	if len(report.Pods) == 0 {
		report.Outcome = Unmounted
		return report, nil
	}

	report.Usage = t.claimUsage(ctx, report.Claim)
	report.Outcome = Traced

	return report, ctx.Err()
}

// resolveController follows the owner chain of a pod up to its top-level
// controller.
func (t *Tracer) resolveController(ctx context.Context, namespace string, owner OwnerRef) *Controller {
	c := &Controller{Ref: owner}

	switch owner.Kind {
	case KindReplicaSet:
		if parent := t.parentOf(ctx, namespace, owner); parent != nil && parent.Kind == KindDeployment {
			c.Ref, c.Via = *parent, &owner
		} else {
			t.logger.Debugf("ReplicaSet %s/%s is not managed by a Deployment", namespace, owner.Name)
		}
	case KindJob:
		if parent := t.parentOf(ctx, namespace, owner); parent != nil && parent.Kind == KindCronJob {
			c.Ref, c.Via = *parent, &owner
		}
	case KindStatefulSet, KindDaemonSet:
	case KindDeployment, KindCronJob, KindOther:
		// A pod owned directly by anything else is reported as is.
		return c
	}

	t.fillControllerDetails(ctx, namespace, c)
	return c
}

// parentOf returns the first owner of the given workload, or nil when it has
// none or cannot be fetched.
func (t *Tracer) parentOf(ctx context.Context, namespace string, ref OwnerRef) *OwnerRef {
	w, err := t.reader.Workload(ctx, ref.Raw, namespace, ref.Name)
	if err != nil {
		t.logLookupFailure(err, "%s %s/%s", ref.Raw, namespace, ref.Name)
		return nil
	}
	if w.Owner == nil {
		return nil
	}

	parent := NewOwnerRef(w.Owner.Kind, w.Owner.Name)
	return &parent
}

// fillControllerDetails adds replica counts to Deployments and StatefulSets.
// DaemonSets get none and CronJob details are not implemented.
func (t *Tracer) fillControllerDetails(ctx context.Context, namespace string, c *Controller) {
	switch c.Ref.Kind {
	case KindDeployment, KindStatefulSet:
		w, err := t.reader.Workload(ctx, c.Ref.Raw, namespace, c.Ref.Name)
		if err != nil {
			t.logLookupFailure(err, "%s %s/%s", c.Ref.Raw, namespace, c.Ref.Name)
			return
		}
		c.DesiredReplicas = w.DesiredReplicas
		c.ReadyReplicas = w.ReadyReplicas
	case KindCronJob:
		// TODO: report the CronJob schedule and last run once a format for it is agreed on.
		t.logger.Debugf("details for CronJob %s/%s are not reported", namespace, c.Ref.Name)
	case KindDaemonSet, KindReplicaSet, KindJob, KindOther:
	}
}

func (t *Tracer) claimUsage(ctx context.Context, claim *Claim) *usage.ClaimUsage {
	if t.usageClient == nil {
		return nil
	}

	u, err := t.usageClient.ClaimUsage(ctx, claim.NamespacedName())
	if err != nil {
		t.logger.Warnf("could not fetch usage of %s: %v", claim.NamespacedName(), err)
		return nil
	}
	return u
}

// ListVolumes returns every PersistentVolume, sorted by name.
func (t *Tracer) ListVolumes(ctx context.Context) ([]Volume, error) {
	pvs, err := t.reader.PersistentVolumes(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list PersistentVolumes: %w", err)
	}

	volumes := make([]Volume, 0, len(pvs))
	for i := range pvs {
		volumes = append(volumes, *volumeView(&pvs[i]))
	}
	sort.Slice(volumes, func(i, j int) bool {
		return volumes[i].Name < volumes[j].Name
	})

	return volumes, nil
}

func (t *Tracer) logLookupFailure(err error, format string, args ...any) {
	what := fmt.Sprintf(format, args...)
	if cluster.IsNotFound(err) {
		t.logger.Debugf("%s not found", what)
		return
	}
	t.logger.Warnf("could not fetch %s: %v", what, err)
}
