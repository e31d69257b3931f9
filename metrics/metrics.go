// Package metrics instruments valveflow searches with Prometheus collectors.
//
// A Recorder owns its registry. Its Step and Candidate methods match the
// search hooks, and WriteTextfile dumps the registry in the text exposition
// format for node_exporter's textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/valveflow/search"
)

// Recorder collects search metrics into a private registry.
type Recorder struct {
	reg *prometheus.Registry

	steps        prometheus.Counter
	alternatives prometheus.Counter
	entries      prometheus.Gauge
	projected    prometheus.Gauge
	candidates   prometheus.Counter
	searches     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	flow         *prometheus.GaugeVec
}

// New registers every collector on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		steps: f.NewCounter(prometheus.CounterOpts{
			Name: "valveflow_steps_total",
			Help: "Outer search steps advanced",
		}),
		alternatives: f.NewCounter(prometheus.CounterOpts{
			Name: "valveflow_alternatives_total",
			Help: "Alternative path states queued by outer search steps",
		}),
		entries: f.NewGauge(prometheus.GaugeOpts{
			Name: "valveflow_frontier_entries",
			Help: "Valves holding a state after the latest outer step",
		}),
		projected: f.NewGauge(prometheus.GaugeOpts{
			Name: "valveflow_best_projected_flow",
			Help: "Best projected flow after the latest outer step",
		}),
		candidates: f.NewCounter(prometheus.CounterOpts{
			Name: "valveflow_pair_candidates_total",
			Help: "First-agent states paired with a complete second-agent search",
		}),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "valveflow_searches_total",
			Help: "Completed searches by mode",
		}, []string{"mode"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "valveflow_search_duration_seconds",
			Help:    "Wall time of completed searches by mode",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		}, []string{"mode"}),
		flow: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "valveflow_result_flow",
			Help: "Flow returned by the latest search by mode",
		}, []string{"mode"}),
	}
}

// Step records one outer Advance; it has the signature of search.WithOnStep.
func (r *Recorder) Step(st search.StepStats) {
	r.steps.Inc()
	r.alternatives.Add(float64(st.Alternatives))
	r.entries.Set(float64(st.Entries))
	r.projected.Set(float64(st.Projected))
}

// Candidate records one dual-agent candidate; it has the signature of search.WithOnCandidate.
func (r *Recorder) Candidate(search.Candidate) {
	r.candidates.Inc()
}

// Options returns search options wiring both hooks to r.
func (r *Recorder) Options() []search.Option {
	return []search.Option{search.WithOnStep(r.Step), search.WithOnCandidate(r.Candidate)}
}

// Observe records a completed search.
func (r *Recorder) Observe(mode string, elapsed time.Duration, flow int64) {
	r.searches.WithLabelValues(mode).Inc()
	r.duration.WithLabelValues(mode).Observe(elapsed.Seconds())
	r.flow.WithLabelValues(mode).Set(float64(flow))
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteTextfile writes every metric to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
