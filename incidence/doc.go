// Package incidence defines the read-only Graph model used by the Euler
// enumerators: an undirected multigraph described by its incidence lists
// (vertex → ordered list of incident edge IDs).
//
// What:
//
//   - Build / Builder: construct a Graph from ordered incidence entries.
//     Vertex order is insertion order; every incidence list keeps the order
//     it was given in. Nothing is re-sorted, so exploration order downstream
//     is fully determined by the input.
//   - Queries: IncidentEdges, OtherEndpoint, Endpoints, Degree, Vertices, Edges.
//
// Invariant:
//
//	Every edge appears in the incidence lists of exactly two distinct vertices
//	(no self-loops). This is a structural precondition; it is only checked when
//	the Graph is built WithValidation(). Lookups on a malformed Graph surface
//	ErrAmbiguousEdge or ErrDanglingEdge instead of guessing.
//
// Example:
//
//	    a ──e1── b
//	    │        │
//	    e4       e2
//	    │        │
//	    d ──e3── c
//
//	g, err := incidence.NewBuilder(incidence.WithValidation()).
//		Add("a", "e1", "e4").
//		Add("b", "e1", "e2").
//		Add("c", "e2", "e3").
//		Add("d", "e3", "e4").
//		Build()
//
// Errors:
//
//   - ErrInvalidGraph   malformed input at construction time
//   - ErrUnknownVertex  query for a vertex that was never registered
//   - ErrAmbiguousEdge  an edge resolves to more than one other endpoint
//   - ErrDanglingEdge   an edge resolves to no other endpoint
//
// Complexity:
//
//   - Build:         O(V + ΣL) where ΣL is the total length of all lists
//   - IncidentEdges: O(1)
//   - OtherEndpoint: O(k), k = number of lists containing the edge (2 when valid)
package incidence
