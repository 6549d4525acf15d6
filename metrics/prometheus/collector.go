// Package prometheus exports midos metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := midosprom.NewCollector(reg)
//	m, err := midos.New(ds, midos.WithMetricsCollector(mc))
//	http.Handle("/metrics", midosprom.Handler(reg))
package prometheus

import (
	"errors"
	"net/http"
	"time"

	"github.com/hupe1980/midos"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector implements midos.MetricsCollector with Prometheus metrics.
type Collector struct {
	opLatency  *prometheus.HistogramVec
	hypotheses *prometheus.CounterVec
	instances  prometheus.Gauge
	attributes prometheus.Gauge
	maxQueue   prometheus.Gauge
}

var _ midos.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "midos_operation_latency_seconds",
			Help:    "Latency of dataset loads and searches",
			Buckets: prometheus.DefBuckets,
		}, []string{"op", "status"}),
		hypotheses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "midos_hypotheses_total",
			Help: "Hypotheses handled by the search, by outcome",
		}, []string{"outcome"}),
		instances: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "midos_dataset_instances",
			Help: "Instances of the last loaded dataset",
		}),
		attributes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "midos_dataset_attributes",
			Help: "Attributes of the last loaded dataset",
		}),
		maxQueue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "midos_search_max_queue",
			Help: "Largest pending queue of the last search",
		}),
	}

	var err error
	if c.opLatency, err = register(reg, c.opLatency); err != nil {
		return nil, err
	}
	if c.hypotheses, err = register(reg, c.hypotheses); err != nil {
		return nil, err
	}
	if c.instances, err = register(reg, c.instances); err != nil {
		return nil, err
	}
	if c.attributes, err = register(reg, c.attributes); err != nil {
		return nil, err
	}
	if c.maxQueue, err = register(reg, c.maxQueue); err != nil {
		return nil, err
	}
	return c, nil
}

// register adds col to reg, reusing the collector already registered under
// the same descriptor.
func register[T prometheus.Collector](reg prometheus.Registerer, col T) (T, error) {
	if err := reg.Register(col); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, err
	}
	return col, nil
}

// Handler returns an HTTP handler serving the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordLoad implements midos.MetricsCollector.
func (c *Collector) RecordLoad(instances, attributes int, d time.Duration, err error) {
	c.opLatency.WithLabelValues("load", status(err)).Observe(d.Seconds())
	if err == nil {
		c.instances.Set(float64(instances))
		c.attributes.Set(float64(attributes))
	}
}

// RecordSearch implements midos.MetricsCollector.
func (c *Collector) RecordSearch(k int, stats midos.Stats, err error) {
	c.opLatency.WithLabelValues("search", status(err)).Observe(stats.Duration.Seconds())
	if err != nil {
		return
	}
	c.hypotheses.WithLabelValues("expanded").Add(float64(stats.Expanded))
	c.hypotheses.WithLabelValues("generated").Add(float64(stats.Generated))
	c.hypotheses.WithLabelValues("pruned").Add(float64(stats.Pruned))
	c.hypotheses.WithLabelValues("accepted").Add(float64(stats.Accepted))
	c.maxQueue.Set(float64(stats.MaxQueue))
}
