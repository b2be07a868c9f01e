package display

import (
	"fmt"
	"text/tabwriter"

	"github.com/lorenzophys/pv-tracer/internal/tracer"
	"k8s.io/apimachinery/pkg/util/duration"
)

// MaxListedVolumes caps the rows printed by list and interactive mode.
const MaxListedVolumes = 19

// Volumes prints at most MaxListedVolumes rows and returns the volumes that
// were shown. With numbered set, rows are prefixed with a 1-based index.
func (p *Printer) Volumes(volumes []tracer.Volume, numbered bool) []tracer.Volume {
	shown := volumes
	if len(shown) > MaxListedVolumes {
		shown = shown[:MaxListedVolumes]
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	if numbered {
		fmt.Fprint(w, "#\t")
	}
	fmt.Fprintln(w, "NAME\tCAPACITY\tSTATUS\tCLAIM\tSTORAGECLASS\tAGE")
	for i, v := range shown {
		if numbered {
			fmt.Fprintf(w, "%d\t", i+1)
		}
		claim := ""
		if v.Claim != nil {
			claim = v.Claim.String()
		}
		age := ""
		if !v.CreatedAt.IsZero() {
			age = duration.HumanDuration(p.now().Sub(v.CreatedAt))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", v.Name, v.Capacity, v.Phase, claim, v.StorageClass, age)
	}
	w.Flush()

	if len(volumes) == 0 {
		p.Message(Warning, "no PersistentVolumes found")
	} else if len(volumes) > len(shown) {
		p.Message(Info, "showing %d of %d PersistentVolumes", len(shown), len(volumes))
	}

	return shown
}
