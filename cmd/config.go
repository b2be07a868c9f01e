package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

type Config struct {
	List          bool
	Interactive   bool
	Kubeconfig    string
	Context       string
	PrometheusURL string
	LogLevel      log.Level
	NoColor       bool
}

func addFlags(flags *pflag.FlagSet) {
	flags.BoolP("list", "l", false, "List up to 19 PersistentVolumes")
	flags.BoolP("interactive", "i", false, "Pick a PersistentVolume from a numbered list, then trace it")
	flags.String("kubeconfig", "", "Path to the kubeconfig file (defaults to $KUBECONFIG, then ~/.kube/config)")
	flags.String("context", "", "Kubeconfig context to use")
	flags.String("prometheus-url", os.Getenv(PrometheusURLEnv),
		fmt.Sprintf("Prometheus address used to report claim usage [$%s]", PrometheusURLEnv))
	flags.String("log-level", envOrDefault(LogLevelEnv, DefaultLogLevel),
		fmt.Sprintf("Log level: debug, info, warn, error [$%s]", LogLevelEnv))
	flags.Bool("no-color", false, "Disable colored output [$NO_COLOR]")
}

func configFromFlags(flags *pflag.FlagSet) (Config, error) {
	var (
		cfg  Config
		err  error
		merr error
	)

	if cfg.List, err = flags.GetBool("list"); err != nil {
		merr = multierror.Append(merr, err)
	}
	if cfg.Interactive, err = flags.GetBool("interactive"); err != nil {
		merr = multierror.Append(merr, err)
	}
	if cfg.Kubeconfig, err = flags.GetString("kubeconfig"); err != nil {
		merr = multierror.Append(merr, err)
	}
	if cfg.Context, err = flags.GetString("context"); err != nil {
		merr = multierror.Append(merr, err)
	}
	if cfg.PrometheusURL, err = flags.GetString("prometheus-url"); err != nil {
		merr = multierror.Append(merr, err)
	}
	if cfg.NoColor, err = flags.GetBool("no-color"); err != nil {
		merr = multierror.Append(merr, err)
	}

	logLevel, err := flags.GetString("log-level")
	if err != nil {
		merr = multierror.Append(merr, err)
	} else if cfg.LogLevel, err = log.ParseLevel(logLevel); err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return Config{}, fmt.Errorf("invalid argument: %w", merr)
	}

	return cfg, nil
}

func envOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// colorEnabled reports whether w is a terminal that should get colors.
func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
