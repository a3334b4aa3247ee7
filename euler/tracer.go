package euler

// Tracer receives search events. Implementations must not retain references
// into the solver; every Trail passed in is a private copy.
//
// Events, in the order they can occur for one start vertex:
//
//	OnStart     a new top-level attempt begins at v
//	OnSolution  a walk satisfying the mode predicate was recorded
//	OnDeadEnd   the walk reached v with no unmarked incident edges and is not a solution
//	OnBacktrack the last edge of trail is being undone; found reports whether the
//	            abandoned branch ended in a solution
type Tracer interface {
	OnStart(v string)
	OnDeadEnd(v string, trail Trail)
	OnSolution(s Solution)
	OnBacktrack(trail Trail, found bool)
}

// NopTracer ignores every event.
type NopTracer struct{}

// OnStart implements Tracer.
func (NopTracer) OnStart(string) {}

// OnDeadEnd implements Tracer.
func (NopTracer) OnDeadEnd(string, Trail) {}

// OnSolution implements Tracer.
func (NopTracer) OnSolution(Solution) {}

// OnBacktrack implements Tracer.
func (NopTracer) OnBacktrack(Trail, bool) {}

// TracerFuncs adapts optional callbacks to Tracer. Nil fields are skipped.
type TracerFuncs struct {
	Start     func(v string)
	DeadEnd   func(v string, trail Trail)
	Solution  func(s Solution)
	Backtrack func(trail Trail, found bool)
}

// OnStart calls f.Start if set.
func (f TracerFuncs) OnStart(v string) {
	if f.Start != nil {
		f.Start(v)
	}
}

// OnDeadEnd calls f.DeadEnd if set.
func (f TracerFuncs) OnDeadEnd(v string, trail Trail) {
	if f.DeadEnd != nil {
		f.DeadEnd(v, trail)
	}
}

// OnSolution calls f.Solution if set.
func (f TracerFuncs) OnSolution(s Solution) {
	if f.Solution != nil {
		f.Solution(s)
	}
}

// OnBacktrack calls f.Backtrack if set.
func (f TracerFuncs) OnBacktrack(trail Trail, found bool) {
	if f.Backtrack != nil {
		f.Backtrack(trail, found)
	}
}
