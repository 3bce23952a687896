package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry returns the registry scraped on the metrics port. Infra
// collectors handed in (pgx pool stats, ...) get a constant service label,
// so they can be told apart from other pool exporters on the same host.
func NewRegistry(service string, infra ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: service}),
	)

	labelled := prometheus.WrapRegistererWith(prometheus.Labels{"service": service}, promRegistry)
	labelled.MustRegister(infra...)

	return promRegistry
}
