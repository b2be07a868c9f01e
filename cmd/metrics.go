package main

import (
	"fmt"

	"github.com/lorenzophys/pv-tracer/internal/usage"
	"github.com/lorenzophys/pv-tracer/internal/usage/prometheus"
)

func UsageClientFactory(clientName, clientUrl string) (usage.Client, error) {
	switch clientName {
	case "prometheus":
		prometheusClient, err := prometheus.NewPrometheusClient(clientUrl)
		if err != nil {
			return nil, err
		}
		return prometheusClient, nil
	default:
		return nil, fmt.Errorf("unknown metrics client: %s", clientName)
	}
}
