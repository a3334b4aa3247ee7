package incidence

import "errors"

// Sentinel errors for incidence graph construction and queries.
var (
	// ErrInvalidGraph indicates malformed incidence data at construction time.
	ErrInvalidGraph = errors.New("incidence: invalid graph")

	// ErrUnknownVertex indicates a query for a vertex that was never registered.
	ErrUnknownVertex = errors.New("incidence: unknown vertex")

	// ErrAmbiguousEdge indicates an edge with more than one candidate "other" endpoint.
	ErrAmbiguousEdge = errors.New("incidence: ambiguous edge")

	// ErrDanglingEdge indicates an edge with no candidate "other" endpoint.
	ErrDanglingEdge = errors.New("incidence: dangling edge")
)

// Entry is one vertex together with its ordered incidence list.
type Entry struct {
	// Vertex is the vertex ID. Must be non-empty.
	Vertex string `json:"vertex" yaml:"vertex"`

	// Edges lists the IDs of the edges touching Vertex, in exploration order.
	Edges []string `json:"edges" yaml:"edges"`
}

// Option configures Graph construction.
type Option func(*buildOptions)

type buildOptions struct {
	validate bool
}

// WithValidation makes Build reject graphs whose edges do not appear in the
// incidence lists of exactly two distinct vertices.
func WithValidation() Option {
	return func(o *buildOptions) { o.validate = true }
}

// Graph is an immutable incidence-list multigraph.
//
// vertices keeps insertion order; incidence[v] keeps the caller's order;
// edges is the de-duplicated union of all lists in first-seen order;
// endpoints[e] lists the vertices whose list contains e, in vertex order.
type Graph struct {
	vertices  []string
	incidence map[string][]string
	edges     []string
	endpoints map[string][]string
	validated bool
}
