package bench

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors updated by trials. All of them are safe to
// update from parallel trials.
type Metrics struct {
	Ops          *prometheus.CounterVec
	TrialSeconds *prometheus.HistogramVec
	FinalSize    *prometheus.GaugeVec
	TreeHeight   *prometheus.GaugeVec
	Mismatches   prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aaset_bench",
			Name:      "ops_total",
			Help:      "Operations applied, by driver and operation type.",
		}, []string{"driver", "op"}),
		TrialSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "aaset_bench",
			Name:      "trial_seconds",
			Help:      "Wall time spent applying one trial's workload.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"driver"}),
		FinalSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "aaset_bench",
			Name:      "final_size",
			Help:      "Number of keys held after the last finished trial.",
		}, []string{"driver"}),
		TreeHeight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "aaset_bench",
			Name:      "tree_height",
			Help:      "Tree height after the last finished trial, for tree backed drivers.",
		}, []string{"driver"}),
		Mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aaset_bench",
			Name:      "check_mismatches_total",
			Help:      "Operations on which drivers disagreed in check mode.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Ops, m.TrialSeconds, m.FinalSize, m.TreeHeight, m.Mismatches)
	}
	return m
}
