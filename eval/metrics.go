package eval

import "github.com/prometheus/client_golang/prometheus"

// Metrics wires the evaluator into Prometheus, in the style of
// kube-state-metrics's collectors: plain counters registered once at
// construction and incremented inline on the hot path, never
// re-registered per call.
type Metrics struct {
	exprsEvaluated prometheus.Counter
	thunkForces    *prometheus.CounterVec
	errorsByKind   *prometheus.CounterVec
}

// NewMetrics builds a Metrics and registers all of its collectors with
// reg. Passing a fresh prometheus.NewRegistry() keeps evaluator metrics
// isolated from the default global registry, useful for tests that
// construct more than one Evaluator.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		exprsEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "brook",
			Subsystem: "eval",
			Name:      "expressions_evaluated_total",
			Help:      "Number of AST nodes passed to Evaluate.",
		}),
		thunkForces: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brook",
			Subsystem: "eval",
			Name:      "thunk_forces_total",
			Help:      "Thunk force attempts, partitioned by outcome.",
		}, []string{"outcome"}),
		errorsByKind: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brook",
			Subsystem: "eval",
			Name:      "errors_total",
			Help:      "value.Error results raised by the evaluator itself (not by primitive operators), partitioned by wrapped sentinel.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.exprsEvaluated, m.thunkForces, m.errorsByKind)
	return m
}

func (m *Metrics) countExpr() {
	if m != nil {
		m.exprsEvaluated.Inc()
	}
}

func (m *Metrics) countThunkForce(outcome string) {
	if m != nil {
		m.thunkForces.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) countError(kind string) {
	if m != nil {
		m.errorsByKind.WithLabelValues(kind).Inc()
	}
}
