package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lorenzophys/pv-tracer/internal/tracer"
	"k8s.io/apimachinery/pkg/util/duration"
)

const labelWidth = 15

// Printer renders tracer results as plain text.
type Printer struct {
	out io.Writer
	f   Formatter
	now func() time.Time
}

func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{
		out: out,
		f:   NewFormatter(out, color),
		now: time.Now,
	}
}

func (p *Printer) Message(sev Severity, format string, args ...any) {
	fmt.Fprintln(p.out, p.f.Format(sev, fmt.Sprintf(format, args...)))
}

func (p *Printer) heading(kind, name string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.f.Bold(kind+": "+name))
}

func (p *Printer) field(label, value string) {
	fmt.Fprintf(p.out, "  %-*s %s\n", labelWidth, label+":", value)
}

// age renders a timestamp the way kubectl does; a zero time is unknown.
func (p *Printer) age(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s (%s ago)", t.UTC().Format(time.RFC3339), duration.HumanDuration(p.now().Sub(t)))
}

// Report writes the full trace result, stopping at the same point the trace
// stopped.
func (p *Printer) Report(r *tracer.Report) {
	p.Message(Info, "Tracing usage of PersistentVolume %q", r.VolumeName)

	if r.Outcome == tracer.VolumeNotFound {
		p.Message(Warning, "PersistentVolume %q not found", r.VolumeName)
		return
	}

	p.volume(r.Volume)

	switch r.Outcome {
	case tracer.Unbound:
		fmt.Fprintln(p.out)
		p.Message(Warning, "PersistentVolume %q is unbound: it has no claim reference", r.VolumeName)
		return
	case tracer.DanglingClaim:
		fmt.Fprintln(p.out)
		p.Message(Warning, "dangling reference: PersistentVolumeClaim %s referenced by %q does not exist", r.Volume.Claim, r.VolumeName)
		return
	}

	p.claim(r)

	if r.Outcome == tracer.Unmounted {
		fmt.Fprintln(p.out)
		p.Message(Warning, "PersistentVolumeClaim %s/%s is unmounted: no pod in namespace %s uses it", r.Claim.Namespace, r.Claim.Name, r.Claim.Namespace)
		return
	}

	fmt.Fprintln(p.out)
	p.Message(Success, "%d pod(s) use PersistentVolumeClaim %s/%s", len(r.Pods), r.Claim.Namespace, r.Claim.Name)

	for _, pr := range r.Pods {
		p.pod(pr)
	}
}

func (p *Printer) volume(v *tracer.Volume) {
	p.heading("PersistentVolume", v.Name)
	p.field("Status", v.Phase)
	p.field("Capacity", v.Capacity)
	p.field("Storage class", v.StorageClass)
	p.field("Created", p.age(v.CreatedAt))
	if v.Claim != nil {
		p.field("Claim", v.Claim.String())
	}
}

func (p *Printer) claim(r *tracer.Report) {
	c := r.Claim
	p.heading("PersistentVolumeClaim", c.Namespace+"/"+c.Name)
	p.field("Status", c.Phase)
	p.field("Volume", c.VolumeName)
	p.field("Capacity", c.Capacity)
	p.field("Access modes", strings.Join(c.AccessModes, ","))
	p.field("Storage class", c.StorageClass)
	if r.Usage != nil {
		p.field("Usage", fmt.Sprintf("%s of %s (%.0f%%)",
			HumanizeBytes(r.Usage.UsedBytes), HumanizeBytes(r.Usage.CapacityBytes), r.Usage.PercentageUsed()))
	}
}

func (p *Printer) pod(pr tracer.PodReport) {
	pod := pr.Pod
	p.heading("Pod", pod.Namespace+"/"+pod.Name)
	p.field("Status", pod.Phase)
	p.field("Node", pod.Node)
	p.field("Created", p.age(pod.CreatedAt))

	if pod.Owner == nil {
		p.field("Owner", "no owner (standalone pod)")
	} else {
		p.field("Owner", pod.Owner.String())
		p.controller(pr.Controller)
	}

	fmt.Fprintf(p.out, "  %s\n", "Mounts:")
	for _, m := range pod.Mounts {
		line := fmt.Sprintf("container=%s path=%s volume=%s", m.Container, m.MountPath, m.Volume)
		if m.ReadOnly {
			line += " (read-only)"
		}
		fmt.Fprintf(p.out, "    - %s\n", line)
	}
}

func (p *Printer) controller(c *tracer.Controller) {
	if c == nil {
		return
	}
	value := c.Ref.String()
	if c.Via != nil {
		value += " via " + c.Via.String()
	}
	if replicas, ok := c.Replicas(); ok {
		value += fmt.Sprintf(" (replicas ready/desired: %s)", replicas)
	}
	p.field("Controller", value)
}
