package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lorenzophys/pv-tracer/internal/cluster"
	"github.com/lorenzophys/pv-tracer/internal/display"
	"github.com/lorenzophys/pv-tracer/internal/usage"
	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"
	"k8s.io/client-go/kubernetes"
)

const (
	cmdName = "pvtrace"

	UsageMetricsProvider = "prometheus"

	PrometheusURLEnv = "PVTRACE_PROMETHEUS_URL"
	LogLevelEnv      = "PVTRACE_LOG_LEVEL"

	DefaultLogLevel = "warn"
)

type PVTracer struct {
	newKubeClient  func(kubeconfig, kubeContext string) (kubernetes.Interface, error)
	newUsageClient func(provider, url string) (usage.Client, error)
	logger         *log.Logger
	config         Config
}

func main() {
	var (
		logger = &logrus.Logger{
			Out:       os.Stderr,
			Formatter: new(logrus.TextFormatter),
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.WarnLevel,
		}
	)

	pvTracer := &PVTracer{
		newKubeClient:  cluster.NewKubeClient,
		newUsageClient: UsageClientFactory,
		logger:         logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := pvTracer.newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		f := display.NewFormatter(os.Stderr, colorEnabled(os.Stderr, pvTracer.config.NoColor))
		fmt.Fprintln(os.Stderr, f.Format(display.Error, err.Error()))
		os.Exit(1)
	}
}
