package compare

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics are the run instruments. A nil *metrics records nothing.
type metrics struct {
	cases   *prometheus.CounterVec
	nodes   prometheus.Histogram
	seconds prometheus.Histogram
	errors  prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}

	m := &metrics{
		cases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "poolcheck",
			Name:      "cases_total",
			Help:      "Cases classified, by outcome.",
		}, []string{"outcome"}),
		nodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "poolcheck",
			Name:      "exact_nodes",
			Help:      "Nodes visited by the exact solver per case.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
		}),
		seconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "poolcheck",
			Name:      "case_duration_seconds",
			Help:      "Wall time to evaluate one case.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "poolcheck",
			Name:      "case_errors_total",
			Help:      "Cases that produced no verdict or failed the cross-check.",
		}),
	}

	var err error
	m.cases = register(reg, m.cases, &err)
	m.nodes = register(reg, m.nodes, &err)
	m.seconds = register(reg, m.seconds, &err)
	m.errors = register(reg, m.errors, &err)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, reusing an identical collector registered by an
// earlier run. The first hard error is kept in *errp.
func register[C prometheus.Collector](reg prometheus.Registerer, c C, errp *error) C {
	if *errp != nil {
		return c
	}
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}
	*errp = err

	return c
}

func (m *metrics) observe(r caseResult) {
	if m == nil {
		return
	}
	if r.err != nil {
		m.errors.Inc()
		if !r.decided {
			return
		}
	}
	m.cases.WithLabelValues(r.outcome.String()).Inc()
	m.nodes.Observe(float64(r.stats.Nodes))
	m.seconds.Observe(r.elapsed.Seconds())
}
