package trace

import "github.com/katalvlaran/eulerwalk/euler"

type multiTracer []euler.Tracer

// Multi returns a Tracer forwarding every event to each non-nil tracer in order.
func Multi(tracers ...euler.Tracer) euler.Tracer {
	out := make(multiTracer, 0, len(tracers))
	for _, t := range tracers {
		if t != nil {
			out = append(out, t)
		}
	}

	return out
}

func (m multiTracer) OnStart(v string) {
	for _, t := range m {
		t.OnStart(v)
	}
}

func (m multiTracer) OnDeadEnd(v string, trail euler.Trail) {
	for _, t := range m {
		t.OnDeadEnd(v, trail)
	}
}

func (m multiTracer) OnSolution(s euler.Solution) {
	for _, t := range m {
		t.OnSolution(s)
	}
}

func (m multiTracer) OnBacktrack(trail euler.Trail, found bool) {
	for _, t := range m {
		t.OnBacktrack(trail, found)
	}
}
