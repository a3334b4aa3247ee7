package euler

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/eulerwalk/incidence"
)

// Format replays edges from initial on g and renders the alternating
// vertex/edge sequence separated by single spaces, e.g. "a e1 b e2 c".
// It depends only on (initial, edges), so solutions can be rendered after
// the fact or from stored data.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - incidence.ErrUnknownVertex if initial is not in g.
//   - incidence.ErrAmbiguousEdge / ErrDanglingEdge if a step cannot be resolved.
func Format(g *incidence.Graph, initial string, edges []string) (string, error) {
	t, err := Replay(g, initial, edges)
	if err != nil {
		return "", err
	}

	return t.String(), nil
}

// Replay resolves the vertex sequence of the walk that starts at initial and
// follows edges.
func Replay(g *incidence.Graph, initial string, edges []string) (Trail, error) {
	if g == nil {
		return Trail{}, ErrGraphNil
	}
	if !g.HasVertex(initial) {
		return Trail{}, fmt.Errorf("euler: replay: %w: %q", incidence.ErrUnknownVertex, initial)
	}

	t := Trail{
		Start:    initial,
		Edges:    make([]string, len(edges)),
		Vertices: make([]string, 0, len(edges)+1),
	}
	copy(t.Edges, edges)
	t.Vertices = append(t.Vertices, initial)

	current := initial
	for i, e := range edges {
		next, err := g.OtherEndpoint(e, current)
		if err != nil {
			return Trail{}, fmt.Errorf("euler: replay step %d: %w", i, err)
		}
		t.Vertices = append(t.Vertices, next)
		current = next
	}

	return t, nil
}

// FormatAll renders every solution, one string per solution.
func FormatAll(solutions []Solution) []string {
	out := make([]string, len(solutions))
	for i, s := range solutions {
		out[i] = s.String()
	}

	return out
}

// Verify checks that t is a well-formed Euler walk of g under mode: every
// edge of g used exactly once, each edge joining its neighbouring vertices,
// and for Circuit, ending at the start.
func Verify(g *incidence.Graph, t Trail, mode Mode) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(t.Vertices) != len(t.Edges)+1 || (len(t.Vertices) > 0 && t.Vertices[0] != t.Start) {
		return fmt.Errorf("euler: verify: malformed trail %q", t.String())
	}

	used := make(map[string]int, len(t.Edges))
	for i, e := range t.Edges {
		used[e]++
		eps := g.Endpoints(e)
		if !joins(eps, t.Vertices[i], t.Vertices[i+1]) {
			return fmt.Errorf("euler: verify: edge %q does not join %q and %q", e, t.Vertices[i], t.Vertices[i+1])
		}
	}

	var missing, repeated []string
	for _, e := range g.Edges() {
		switch used[e] {
		case 0:
			missing = append(missing, e)
		case 1:
		default:
			repeated = append(repeated, e)
		}
	}
	if len(missing) > 0 || len(repeated) > 0 || len(used) != g.EdgeCount() {
		return fmt.Errorf("euler: verify: missing [%s] repeated [%s]",
			strings.Join(missing, " "), strings.Join(repeated, " "))
	}

	if mode == Circuit && !t.IsCircuit() {
		return fmt.Errorf("euler: verify: circuit ends at %q, started at %q", t.End(), t.Start)
	}

	return nil
}

func joins(endpoints []string, u, v string) bool {
	hasU, hasV := false, false
	for _, x := range endpoints {
		hasU = hasU || x == u
		hasV = hasV || x == v
	}

	return hasU && hasV && u != v
}
