package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

// SetupPrometheus returns the registry served on /metrics: build info,
// process stats, go GC, memory and scheduler runtime metrics, and the given
// extra collectors. Nil extras are skipped, a duplicate one is logged and
// ignored.
func SetupPrometheus(extra ...prometheus.Collector) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(collectors.WithGoCollectorRuntimeMetrics(
			collectors.MetricsGC,
			collectors.MetricsMemory,
			collectors.MetricsScheduler,
		)),
	)

	for _, collector := range extra {
		if collector == nil {
			continue
		}
		err := registry.Register(collector)
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			log.Warnf("prometheus collector registered twice, ignoring: %s", err)
			continue
		}
		if err != nil {
			// a broken collector is a programming error
			panic(err)
		}
	}
	return registry
}
