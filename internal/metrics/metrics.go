// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"editfa-core/edit"
)

// Recorder holds one run's counters on a private registry, so concurrent
// runs (and tests) never collide on the default registry.
type Recorder struct {
	reg       *prometheus.Registry
	Edits     *prometheus.CounterVec
	Ambiguous *prometheus.CounterVec
	Rows      prometheus.Gauge
	Sequences prometheus.Gauge
}

func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		Edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "editfa",
			Name:      "edits_total",
			Help:      "Manifest rows processed, by variant and outcome.",
		}, []string{"variant", "outcome"}),
		Ambiguous: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "editfa",
			Name:      "ambiguous_targets_total",
			Help:      "Rows whose target prefix matched more than one sequence ID.",
		}, []string{"variant"}),
		Rows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "editfa",
			Name:      "manifest_rows",
			Help:      "Rows loaded from the edit manifest.",
		}),
		Sequences: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "editfa",
			Name:      "sequences",
			Help:      "Sequences loaded into the store.",
		}),
	}
	r.reg.MustRegister(r.Edits, r.Ambiguous, r.Rows, r.Sequences)
	return r
}

// Observe adds a variant's outcomes. Every outcome label is touched so that
// zero counts are still exported.
func (r *Recorder) Observe(v edit.Variant, outs []edit.Outcome) {
	s := edit.Summarize(outs)
	r.Edits.WithLabelValues(v.String(), edit.Applied.String()).Add(float64(s.Applied))
	r.Edits.WithLabelValues(v.String(), edit.NoMatchingSequence.String()).Add(float64(s.NoSequence))
	r.Edits.WithLabelValues(v.String(), edit.NoMatchingOffset.String()).Add(float64(s.NoOffset))
	r.Ambiguous.WithLabelValues(v.String()).Add(float64(s.Ambiguous))
}

func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile writes the registry in the node_exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
