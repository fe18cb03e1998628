// Package metrics wires otel metric instruments and the Prometheus registry.
package metrics

import (
	"strings"

	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Config carries the labels stamped on every metric.
type Config struct {
	ServiceName string
	Environment string
}

func (c Config) serviceName() string {
	name := strings.TrimSpace(c.ServiceName)
	if name == "" {
		return "rentora"
	}
	return name
}

func (c Config) environment() string {
	env := strings.TrimSpace(c.Environment)
	if env == "" {
		return "unknown"
	}
	return env
}

// NewMeterProvider builds a meter provider that exports through the default
// Prometheus registry, so otel instruments surface on /metrics.
func NewMeterProvider() (metric.MeterProvider, error) {
	exporter, err := otelprom.New()
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)), nil
}
