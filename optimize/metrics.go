// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package optimize

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects Prometheus metrics about the runs of one or more
// optimizers. Metrics are registered on their own registry, so several
// Metrics values can coexist in the same process. All methods accept a nil
// receiver, in which case nothing is recorded.
type Metrics struct {
	registry   *prometheus.Registry
	runs       *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	iterations *prometheus.CounterVec
	accepted   *prometheus.CounterVec
	rejected   prometheus.Counter
	stalls     prometheus.Counter
}

// NewMetrics returns a new set of metrics with an empty registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qcl_repartition_runs_total",
			Help: "Number of calls to Repartition by algorithm",
		}, []string{"algorithm"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "qcl_repartition_duration_seconds",
			Help:    "Duration of Repartition by algorithm",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm"}),
		iterations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qcl_optimizer_iterations_total",
			Help: "Number of iterations by phase (ga, hc, sa)",
		}, []string{"phase"}),
		accepted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qcl_optimizer_accepted_moves_total",
			Help: "Number of accepted moves by phase (hc, sa)",
		}, []string{"phase"}),
		rejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "qcl_optimizer_rejected_neighbours_total",
			Help: "Number of annealing neighbours rejected because out of bounds",
		}),
		stalls: factory.NewCounter(prometheus.CounterOpts{
			Name: "qcl_optimizer_stalls_total",
			Help: "Number of gradient ascents stopped by a null direction",
		}),
	}
}

// Registry returns the registry where the metrics are registered.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current value of the metrics in filename, using the
// text exposition format (for instance for the textfile collector of the node
// exporter).
func (m *Metrics) WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, m.registry)
}

func (m *Metrics) run(a Algorithm) {
	if m != nil {
		m.runs.WithLabelValues(a.String()).Inc()
	}
}

func (m *Metrics) observe(a Algorithm, d time.Duration) {
	if m != nil {
		m.duration.WithLabelValues(a.String()).Observe(d.Seconds())
	}
}

func (m *Metrics) iterate(phase string) {
	if m != nil {
		m.iterations.WithLabelValues(phase).Inc()
	}
}

func (m *Metrics) accept(phase string) {
	if m != nil {
		m.accepted.WithLabelValues(phase).Inc()
	}
}

func (m *Metrics) reject() {
	if m != nil {
		m.rejected.Inc()
	}
}

func (m *Metrics) stall() {
	if m != nil {
		m.stalls.Inc()
	}
}
