package tracing

import (
	"fmt"

	_ "github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
)

// HoneycombSetup configures the OpenTelemetry SDK through the honeycomb
// distro. The API key and endpoint come from the HONEYCOMB_* / OTEL_* env vars.
func HoneycombSetup(enabled bool, serviceName string) (func(), error) {
	if !enabled {
		return func() {}, nil
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, fmt.Errorf("configure open telemetry: %w", err)
	}

	log.Infof("honeycomb tracing enabled for service [%s]", serviceName)
	return otelShutdown, nil
}
