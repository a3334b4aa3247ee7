package trace

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/eulerwalk/euler"
)

type logrTracer struct {
	log logr.Logger
}

// Logr returns a Tracer writing structured records to log.
func Logr(log logr.Logger) euler.Tracer {
	return &logrTracer{log: log.WithName("euler")}
}

func (t *logrTracer) OnStart(v string) {
	t.log.V(1).Info("starting", "vertex", v)
}

func (t *logrTracer) OnDeadEnd(v string, trail euler.Trail) {
	t.log.V(2).Info("dead end", "vertex", v, "trail", trail.String(), "depth", trail.Len())
}

func (t *logrTracer) OnSolution(s euler.Solution) {
	t.log.V(1).Info("solution found", "solution", s.String())
}

func (t *logrTracer) OnBacktrack(trail euler.Trail, found bool) {
	t.log.V(2).Info("backtracking", "trail", trail.String(), "found", found)
}
