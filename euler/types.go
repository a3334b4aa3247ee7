package euler

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGraphNil is returned when a nil *incidence.Graph is passed to Search.
	ErrGraphNil = errors.New("euler: graph is nil")

	// ErrInvalidMode indicates a Mode other than AnyPath or Circuit.
	ErrInvalidMode = errors.New("euler: invalid mode")
)

// Mode selects the success predicate of the search.
type Mode int

const (
	// AnyPath accepts any walk that uses every edge exactly once.
	AnyPath Mode = iota
	// Circuit additionally requires the walk to end at its start vertex.
	Circuit
)

// String returns "path" or "circuit".
func (m Mode) String() string {
	switch m {
	case AnyPath:
		return "path"
	case Circuit:
		return "circuit"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) valid() bool { return m == AnyPath || m == Circuit }

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText accepts any name understood by ParseMode.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// ParseMode maps a user-facing name to a Mode.
// Accepted: path, trail, any (AnyPath); circuit, cycle (Circuit).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "path", "trail", "any":
		return AnyPath, nil
	case "circuit", "cycle":
		return Circuit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Trail is a walk: Start, then for each i, Edges[i] leading to Vertices[i+1].
// Vertices[0] == Start and len(Vertices) == len(Edges)+1.
type Trail struct {
	Start    string   `json:"start"`
	Edges    []string `json:"edges"`
	Vertices []string `json:"vertices"`
}

// Len returns the number of edges in the walk.
func (t Trail) Len() int { return len(t.Edges) }

// End returns the last vertex of the walk.
func (t Trail) End() string {
	if len(t.Vertices) == 0 {
		return t.Start
	}

	return t.Vertices[len(t.Vertices)-1]
}

// IsCircuit reports whether the walk ends where it started.
func (t Trail) IsCircuit() bool { return t.End() == t.Start }

// Tokens returns the alternating vertex/edge sequence.
func (t Trail) Tokens() []string {
	out := make([]string, 0, len(t.Edges)+len(t.Vertices))
	out = append(out, t.Start)
	for i, e := range t.Edges {
		out = append(out, e, t.Vertices[i+1])
	}

	return out
}

// String renders the walk as space-separated tokens, e.g. "a e1 b e2 c".
func (t Trail) String() string { return strings.Join(t.Tokens(), " ") }

// Solution is a recorded Euler walk. Solutions are never modified after recording.
type Solution struct {
	Trail
}

// Result collects the outcome of one Search invocation.
type Result struct {
	// Mode is the success predicate the search ran with.
	Mode Mode `json:"mode"`

	// Solutions in discovery order, duplicates retained.
	Solutions []Solution `json:"solutions"`

	// DeadEnds counts frames where the walk could not continue and was not a solution.
	DeadEnds int `json:"deadEnds"`

	// Steps counts edge traversals (push/pop pairs) performed.
	Steps int `json:"steps"`

	// Truncated is set when WithMaxSolutions stopped the enumeration.
	Truncated bool `json:"truncated,omitempty"`
}

// Strings formats every solution with Trail.String.
func (r *Result) Strings() []string { return FormatAll(r.Solutions) }

// Option configures Search.
type Option func(*Options)

// Options holds Search parameters. Use DefaultOptions and the With* helpers.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Tracer receives search events; nil disables tracing.
	Tracer Tracer

	// MaxSolutions stops the search once that many solutions are recorded.
	// Zero or negative means unlimited.
	MaxSolutions int
}

// DefaultOptions returns Background context, no tracer, no solution limit.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Tracer:       nil,
		MaxSolutions: 0,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTracer installs t as the event sink. Panics on nil.
func WithTracer(t Tracer) Option {
	if t == nil {
		panic("euler: WithTracer(nil)")
	}

	return func(o *Options) { o.Tracer = t }
}

// WithMaxSolutions limits the number of recorded solutions.
func WithMaxSolutions(n int) Option {
	return func(o *Options) { o.MaxSolutions = n }
}
