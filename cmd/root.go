package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/lorenzophys/pv-tracer/internal/cluster"
	"github.com/lorenzophys/pv-tracer/internal/display"
	"github.com/lorenzophys/pv-tracer/internal/tracer"
	"github.com/lorenzophys/pv-tracer/internal/usage"
	"github.com/spf13/cobra"
)

const (
	shortDesc = "Show which workloads use a PersistentVolume."
	longDesc  = `Show which workloads use a PersistentVolume.

pvtrace follows the binding chain of a PersistentVolume: the claim bound to
it, the pods mounting that claim, and the controller owning each pod
(Deployment, StatefulSet, DaemonSet, CronJob, ...). Every lookup is a
read-only query against the cluster.

An unbound volume, a claim that no longer exists, or a claim no pod mounts
is reported as a warning and is not an error.
`
	example = `  # Trace a volume
  pvtrace pvc-0b7a3c6e-1f2d-4e5f-8a9b-0c1d2e3f4a5b

  # List volumes
  pvtrace --list

  # Pick a volume from a numbered list
  pvtrace -i

  # Include usage reported by kubelet volume stats
  pvtrace --prometheus-url http://prometheus.monitoring:9090 pv-data
`
)

var (
	errNoArgs         = errors.New("no arguments given: pass a PersistentVolume name, --list or --interactive")
	errEmptySelection = errors.New("no PersistentVolume selected")
)

func (a *PVTracer) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           cmdName + " [volume-name]",
		Short:         shortDesc,
		Long:          longDesc,
		Example:       example,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addFlags(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive("list", "interactive")

	cmd.PreRunE = func(cc *cobra.Command, _ []string) error {
		cfg, err := configFromFlags(cc.Flags())
		if err != nil {
			return err
		}
		a.config = cfg
		a.logger.SetLevel(cfg.LogLevel)

		return nil
	}

	cmd.RunE = func(cc *cobra.Command, args []string) error {
		if !a.config.List && !a.config.Interactive && len(args) == 0 {
			fmt.Fprint(cc.ErrOrStderr(), cc.UsageString())
			return errNoArgs
		}

		t, err := a.newTracer()
		if err != nil {
			return err
		}

		ctx := cc.Context()
		printer := display.NewPrinter(cc.OutOrStdout(), colorEnabled(cc.OutOrStdout(), a.config.NoColor))

		switch {
		case a.config.List:
			return a.list(ctx, t, printer)
		case a.config.Interactive:
			return a.interactive(ctx, t, printer, cc.InOrStdin(), cc.OutOrStdout())
		default:
			return a.trace(ctx, t, printer, args[0])
		}
	}

	return cmd
}

// newTracer builds the clients and runs the prerequisite check. Any failure
// here is fatal.
func (a *PVTracer) newTracer() (*tracer.Tracer, error) {
	kubeClient, err := a.newKubeClient(a.config.Kubeconfig, a.config.Context)
	if err != nil {
		return nil, fmt.Errorf("an error occurred while creating the Kubernetes client: %w", err)
	}
	a.logger.Debug("new kubernetes client created")

	info, err := cluster.Preflight(kubeClient)
	if err != nil {
		return nil, err
	}
	a.logger.Debugf("connected to Kubernetes %s", info.GitVersion)

	var usageClient usage.Client
	if a.config.PrometheusURL != "" {
		usageClient, err = a.newUsageClient(UsageMetricsProvider, a.config.PrometheusURL)
		if err != nil {
			return nil, fmt.Errorf("metrics client error: %w", err)
		}
		a.logger.Debug("new metrics client created")
	}

	return tracer.New(cluster.NewKubeReader(kubeClient), usageClient, a.logger), nil
}

func (a *PVTracer) trace(ctx context.Context, t *tracer.Tracer, printer *display.Printer, volumeName string) error {
	report, err := t.Trace(ctx, volumeName)
	if err != nil {
		return fmt.Errorf("trace of %s interrupted: %w", volumeName, err)
	}
	a.logger.Debugf("trace of %s finished: %s", volumeName, report.Outcome)

	printer.Report(report)
	return nil
}

func (a *PVTracer) list(ctx context.Context, t *tracer.Tracer, printer *display.Printer) error {
	volumes, err := t.ListVolumes(ctx)
	if err != nil {
		return err
	}

	printer.Volumes(volumes, false)
	return nil
}
