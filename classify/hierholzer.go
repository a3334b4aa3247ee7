package classify

import (
	"fmt"

	"github.com/katalvlaran/eulerwalk/euler"
	"github.com/katalvlaran/eulerwalk/incidence"
)

// stackFrame is a vertex on the Hierholzer stack and the edge used to reach it.
type stackFrame struct {
	vertex string
	via    string
}

// Witness returns one Euler walk of g: a circuit starting at the first
// non-isolated vertex when every degree is even, otherwise a trail starting
// at the first odd vertex. It runs Hierholzer's algorithm in O(V + E).
//
// Errors:
//   - ErrNoEulerWalk if Analyze reports Kind None.
//   - incidence errors for malformed graphs.
func Witness(g *incidence.Graph) (euler.Trail, error) {
	r, err := Analyze(g)
	if err != nil {
		return euler.Trail{}, err
	}

	var start string
	switch r.Kind {
	case Circuit:
		for _, vd := range r.Degrees {
			if vd.Degree > 0 {
				start = vd.Vertex
				break
			}
		}
	case Trail:
		start = r.OddVertices[0]
	default:
		return euler.Trail{}, fmt.Errorf("%w: %d odd vertices, %d components",
			ErrNoEulerWalk, len(r.OddVertices), r.Components)
	}

	return hierholzer(g, start)
}

func hierholzer(g *incidence.Graph, start string) (euler.Trail, error) {
	used := make(map[string]bool, g.EdgeCount())
	next := make(map[string]int, g.VertexCount()) // per-vertex cursor into its incidence list

	stack := []stackFrame{{vertex: start}}
	var popped []stackFrame // reversed walk

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		list, err := g.IncidentEdges(top.vertex)
		if err != nil {
			return euler.Trail{}, fmt.Errorf("classify: %w", err)
		}

		// skip edges already consumed from the other side
		i := next[top.vertex]
		for i < len(list) && used[list[i]] {
			i++
		}
		next[top.vertex] = i

		if i == len(list) {
			// no more edges: backtrack
			popped = append(popped, top)
			stack = stack[:len(stack)-1]
			continue
		}

		e := list[i]
		used[e] = true
		to, err := g.OtherEndpoint(e, top.vertex)
		if err != nil {
			return euler.Trail{}, fmt.Errorf("classify: %w", err)
		}
		stack = append(stack, stackFrame{vertex: to, via: e})
	}

	// popped[last] is the start; each frame's via joins it to the frame after it in walk order.
	t := euler.Trail{
		Start:    start,
		Edges:    make([]string, 0, len(popped)-1),
		Vertices: make([]string, 0, len(popped)),
	}
	t.Vertices = append(t.Vertices, popped[len(popped)-1].vertex)
	for i := len(popped) - 2; i >= 0; i-- {
		t.Edges = append(t.Edges, popped[i].via)
		t.Vertices = append(t.Vertices, popped[i].vertex)
	}

	if len(t.Edges) != g.EdgeCount() {
		return euler.Trail{}, fmt.Errorf("%w: walk covers %d of %d edges", ErrNoEulerWalk, len(t.Edges), g.EdgeCount())
	}

	return t, nil
}
