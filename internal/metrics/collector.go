package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"gozar/internal/domain"
)

const namespace = "gozar"

type Collector struct {
	logger            *zap.Logger
	linksParsed       *prometheus.CounterVec
	linksRejected     *prometheus.CounterVec
	compilations      *prometheus.CounterVec
	compileDuration   prometheus.Histogram
	compiledOutbounds prometheus.Gauge
	workerStarts      *prometheus.CounterVec
	workerStops       *prometheus.CounterVec
	activeWorkers     prometheus.Gauge
}

// NewRegistry returns the registry every gozar metric is registered on,
// with the Go runtime and process collectors attached.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewCollector(reg *prometheus.Registry, logger *zap.Logger) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		logger: logger.With(zap.String("component", "metrics")),
		linksParsed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "links_parsed_total",
				Help:      "Total number of share links accepted",
			},
			[]string{"protocol"},
		),
		linksRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "links_rejected_total",
				Help:      "Total number of share links rejected",
			},
			[]string{"reason"},
		),
		compilations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "compilations_total",
				Help:      "Total number of proxy config compilations",
			},
			[]string{"status"},
		),
		compileDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "compile_duration_seconds",
				Help:      "Duration of proxy config compilations",
				Buckets:   prometheus.DefBuckets,
			},
		),
		compiledOutbounds: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "compiled_outbounds",
				Help:      "Number of outbounds in the last compiled config",
			},
		),
		workerStarts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "worker_starts_total",
				Help:      "Total number of worker starts",
			},
			[]string{"worker_id"},
		),
		workerStops: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "worker_stops_total",
				Help:      "Total number of worker stops",
			},
			[]string{"worker_id"},
		),
		activeWorkers: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_workers",
				Help:      "Number of currently active workers",
			},
		),
	}
}

func (c *Collector) RecordLinkParsed(protocol domain.Protocol) {
	c.linksParsed.WithLabelValues(string(protocol)).Inc()
}

func (c *Collector) RecordLinkRejected(reason string) {
	c.linksRejected.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordCompile(result domain.CompileResult) {
	c.compileDuration.Observe(result.Duration.Seconds())

	if result.Err != nil {
		c.compilations.WithLabelValues("failure").Inc()
		c.logger.Debug("recorded failed compilation", zap.Error(result.Err))
		return
	}
	c.compilations.WithLabelValues("success").Inc()
	c.compiledOutbounds.Set(float64(result.Outbounds))
}

func (c *Collector) RecordWorkerStart(workerID string) {
	c.workerStarts.WithLabelValues(workerID).Inc()
	c.activeWorkers.Inc()
}

func (c *Collector) RecordWorkerStop(workerID string) {
	c.workerStops.WithLabelValues(workerID).Inc()
	c.activeWorkers.Dec()
}
