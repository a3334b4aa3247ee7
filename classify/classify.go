package classify

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/eulerwalk/incidence"
)

// ErrNoEulerWalk indicates that the graph has neither an Euler circuit nor an Euler trail.
var ErrNoEulerWalk = errors.New("classify: graph has no Euler walk")

// Kind is the best Euler walk a graph admits.
type Kind int

const (
	// None: no Euler trail exists.
	None Kind = iota
	// Trail: an Euler trail exists but no circuit.
	Trail
	// Circuit: an Euler circuit exists.
	Circuit
)

// String returns "none", "trail" or "circuit".
func (k Kind) String() string {
	switch k {
	case Trail:
		return "trail"
	case Circuit:
		return "circuit"
	default:
		return "none"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// VertexDegree pairs a vertex with the length of its incidence list.
type VertexDegree struct {
	Vertex string `json:"vertex"`
	Degree int    `json:"degree"`
}

// Report is the outcome of Analyze.
type Report struct {
	// Degrees in the Graph's vertex order.
	Degrees []VertexDegree `json:"degrees"`

	// OddVertices in the Graph's vertex order.
	OddVertices []string `json:"oddVertices"`

	// Components counts connected components that contain at least one edge.
	Components int `json:"components"`

	// Isolated lists vertices with no incident edges.
	Isolated []string `json:"isolated,omitempty"`

	// Kind is derived from OddVertices and Components.
	Kind Kind `json:"kind"`
}

// Connected reports whether all edges lie in a single component.
func (r *Report) Connected() bool { return r.Components == 1 }

// Analyze computes the degree and connectivity report of g.
//
// Errors:
//   - incidence.ErrInvalidGraph if some edge is not shared by exactly two vertices.
func Analyze(g *incidence.Graph) (*Report, error) {
	if g == nil {
		return nil, fmt.Errorf("classify: %w: nil graph", incidence.ErrInvalidGraph)
	}

	vertices := g.Vertices()
	ids := make(map[string]int64, len(vertices))
	mg := multi.NewUndirectedGraph()
	for i, v := range vertices {
		ids[v] = int64(i)
		mg.AddNode(multi.Node(i))
	}

	for _, e := range g.Edges() {
		eps := g.Endpoints(e)
		if len(eps) != 2 {
			return nil, fmt.Errorf("classify: %w: edge %q has %d endpoints", incidence.ErrInvalidGraph, e, len(eps))
		}
		mg.SetLine(mg.NewLine(multi.Node(ids[eps[0]]), multi.Node(ids[eps[1]])))
	}

	r := &Report{
		Degrees:     make([]VertexDegree, 0, len(vertices)),
		OddVertices: []string{},
	}
	degree := make(map[int64]int, len(vertices))
	for _, v := range vertices {
		d, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("classify: %w", err)
		}
		degree[ids[v]] = d
		r.Degrees = append(r.Degrees, VertexDegree{Vertex: v, Degree: d})
		if d%2 == 1 {
			r.OddVertices = append(r.OddVertices, v)
		}
		if d == 0 {
			r.Isolated = append(r.Isolated, v)
		}
	}

	for _, comp := range topo.ConnectedComponents(mg) {
		for _, n := range comp {
			if degree[n.ID()] > 0 {
				r.Components++
				break
			}
		}
	}

	switch {
	case r.Components != 1:
		r.Kind = None
	case len(r.OddVertices) == 0:
		r.Kind = Circuit
	case len(r.OddVertices) == 2:
		r.Kind = Trail
	default:
		r.Kind = None
	}

	return r, nil
}
