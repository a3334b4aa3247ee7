package incidence

import "fmt"

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Validated reports whether the Graph was built WithValidation().
func (g *Graph) Validated() bool { return g.validated }

// Vertices returns vertex IDs in insertion order. The slice is a copy.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns the distinct edge IDs in first-seen order. The slice is a copy.
func (g *Graph) Edges() []string {
	out := make([]string, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasVertex reports whether v was registered at construction.
func (g *Graph) HasVertex(v string) bool {
	_, ok := g.incidence[v]

	return ok
}

// IncidentEdges returns the incidence list of v in its original order.
// The returned slice is shared with the Graph and must not be modified.
func (g *Graph) IncidentEdges(v string) ([]string, error) {
	list, ok := g.incidence[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, v)
	}

	return list, nil
}

// Degree returns the length of v's incidence list.
func (g *Graph) Degree(v string) (int, error) {
	list, err := g.IncidentEdges(v)
	if err != nil {
		return 0, err
	}

	return len(list), nil
}

// Endpoints returns the vertices whose incidence lists contain e, in vertex
// order. A well-formed edge has exactly two.
func (g *Graph) Endpoints(e string) []string {
	eps := g.endpoints[e]
	out := make([]string, len(eps))
	copy(out, eps)

	return out
}

// OtherEndpoint returns the unique vertex other than excluding whose
// incidence list contains e.
//
// Errors:
//   - ErrAmbiguousEdge if more than one such vertex exists.
//   - ErrDanglingEdge if none exists (this includes edges the Graph never saw).
//
// Complexity: O(k), k = len(Endpoints(e)).
func (g *Graph) OtherEndpoint(e, excluding string) (string, error) {
	var found string
	n := 0
	for _, v := range g.endpoints[e] {
		if v == excluding {
			continue
		}
		found = v
		n++
	}

	switch n {
	case 1:
		return found, nil
	case 0:
		return "", fmt.Errorf("%w: %q has no endpoint other than %q", ErrDanglingEdge, e, excluding)
	default:
		return "", fmt.Errorf("%w: %q has %d endpoints other than %q", ErrAmbiguousEdge, e, n, excluding)
	}
}

// Entries returns the incidence structure in construction order, suitable for
// Build. The result shares nothing with the Graph.
func (g *Graph) Entries() []Entry {
	out := make([]Entry, 0, len(g.vertices))
	for _, v := range g.vertices {
		list := make([]string, len(g.incidence[v]))
		copy(list, g.incidence[v])
		out = append(out, Entry{Vertex: v, Edges: list})
	}

	return out
}
