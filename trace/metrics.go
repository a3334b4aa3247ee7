package trace

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/eulerwalk/euler"
)

// MetricsTracer counts search events as Prometheus counters.
type MetricsTracer struct {
	Starts     prometheus.Counter
	DeadEnds   prometheus.Counter
	Solutions  prometheus.Counter
	Backtracks *prometheus.CounterVec // label "found": "true" | "false"
}

// Metrics creates the eulerwalk_* counters and registers them with reg.
// A nil reg leaves them unregistered. Registration errors are returned as is,
// including prometheus.AlreadyRegisteredError.
func Metrics(reg prometheus.Registerer) (*MetricsTracer, error) {
	m := &MetricsTracer{
		Starts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "eulerwalk",
			Name:      "starts_total",
			Help:      "Top-level search attempts, one per start vertex.",
		}),
		DeadEnds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "eulerwalk",
			Name:      "dead_ends_total",
			Help:      "Walks that could not be extended and were not solutions.",
		}),
		Solutions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "eulerwalk",
			Name:      "solutions_total",
			Help:      "Recorded Euler walks.",
		}),
		Backtracks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eulerwalk",
			Name:      "backtracks_total",
			Help:      "Edges undone during the search.",
		}, []string{"found"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Starts, m.DeadEnds, m.Solutions, m.Backtracks} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// OnStart counts one top-level attempt.
func (m *MetricsTracer) OnStart(string) { m.Starts.Inc() }

// OnDeadEnd counts one dead end.
func (m *MetricsTracer) OnDeadEnd(string, euler.Trail) { m.DeadEnds.Inc() }

// OnSolution counts one recorded walk.
func (m *MetricsTracer) OnSolution(euler.Solution) { m.Solutions.Inc() }

// OnBacktrack counts one undone edge, labeled by whether its branch found a solution.
func (m *MetricsTracer) OnBacktrack(_ euler.Trail, found bool) {
	if found {
		m.Backtracks.WithLabelValues("true").Inc()
		return
	}
	m.Backtracks.WithLabelValues("false").Inc()
}
