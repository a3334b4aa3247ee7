package euler

import (
	"fmt"

	"github.com/katalvlaran/eulerwalk/incidence"
)

// solver carries one Search invocation. Nothing outlives the call.
type solver struct {
	graph     *incidence.Graph
	mode      Mode
	opts      Options
	state     *searchState
	position  map[string]uint // edge ID → bit position
	edgeCount int
	res       *Result
	stopped   bool
}

// FindPaths returns every Euler walk of g accepted by mode, in discovery order.
// It is Search without the diagnostics.
func FindPaths(g *incidence.Graph, mode Mode, opts ...Option) ([]Solution, error) {
	res, err := Search(g, mode, opts...)
	if res == nil {
		return nil, err
	}

	return res.Solutions, err
}

// Search enumerates Euler walks of g starting from every vertex in g.Vertices()
// order. On cancellation or a malformed-graph error the partial Result is
// returned together with the error.
func Search(g *incidence.Graph, mode Mode, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	edges := g.Edges()
	s := &solver{
		graph:     g,
		mode:      mode,
		opts:      o,
		state:     newSearchState(len(edges)),
		position:  make(map[string]uint, len(edges)),
		edgeCount: len(edges),
		res:       &Result{Mode: mode, Solutions: []Solution{}},
	}
	for i, e := range edges {
		s.position[e] = uint(i)
	}

	for _, v0 := range g.Vertices() {
		if s.stopped {
			break
		}
		if err := s.checkContext(); err != nil {
			return s.res, err
		}
		if o.Tracer != nil {
			o.Tracer.OnStart(v0)
		}
		s.state.reset(v0)
		if _, err := s.walk(v0); err != nil {
			return s.res, err
		}
	}

	return s.res, nil
}

// walk explores every continuation of the current path. It reports whether
// the branch ended in a recorded solution or, for an interior frame, whether
// any solution has been recorded so far; the flag never prunes siblings.
func (s *solver) walk(initial string) (bool, error) {
	current := s.state.current()

	// 1. Success check before branching.
	if s.state.markedCount() == s.edgeCount && (s.mode == AnyPath || current == initial) {
		s.record()
		return true, nil
	}

	// 2. Dead-end check.
	candidates, err := s.candidates(current)
	if err != nil {
		return false, err
	}
	if len(candidates) == 0 {
		s.res.DeadEnds++
		if s.opts.Tracer != nil {
			s.opts.Tracer.OnDeadEnd(current, s.state.trail())
		}

		return false, nil
	}

	// 3. Branch in incidence-list order; restore state after every child.
	for _, e := range candidates {
		if s.stopped {
			break
		}
		if err = s.checkContext(); err != nil {
			return false, err
		}

		next, err := s.graph.OtherEndpoint(e, current)
		if err != nil {
			return false, fmt.Errorf("euler: leaving %q via %q: %w", current, e, err)
		}

		s.state.push(s.position[e], e, next)
		s.res.Steps++
		found, err := s.walk(initial)
		if err != nil {
			s.state.pop()
			return false, err
		}
		if s.opts.Tracer != nil {
			s.opts.Tracer.OnBacktrack(s.state.trail(), found)
		}
		s.state.pop()
	}

	// 4. Informational only.
	return len(s.res.Solutions) > 0, nil
}

// candidates returns the unmarked edges incident to v, in incidence-list order,
// each at most once.
func (s *solver) candidates(v string) ([]string, error) {
	list, err := s.graph.IncidentEdges(v)
	if err != nil {
		return nil, fmt.Errorf("euler: %w", err)
	}

	out := make([]string, 0, len(list))
	for _, e := range list {
		if s.state.isMarked(s.position[e]) || contains(out, e) {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}

func (s *solver) record() {
	sol := Solution{Trail: s.state.trail()}
	s.res.Solutions = append(s.res.Solutions, sol)
	if s.opts.Tracer != nil {
		s.opts.Tracer.OnSolution(sol)
	}
	if s.opts.MaxSolutions > 0 && len(s.res.Solutions) >= s.opts.MaxSolutions {
		s.stopped = true
		s.res.Truncated = true
	}
}

func (s *solver) checkContext() error {
	select {
	case <-s.opts.Ctx.Done():
		return fmt.Errorf("euler: search canceled: %w", s.opts.Ctx.Err())
	default:
		return nil
	}
}

func contains(list []string, e string) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}

	return false
}
