// Package classify reports, without searching, whether an incidence.Graph
// can have an Euler trail or circuit, and produces one witness walk with
// Hierholzer's algorithm.
//
// What:
//
//   - Analyze(g): vertex degrees, odd-degree vertices, connectivity of the
//     non-isolated part (via gonum's multigraph and topo.ConnectedComponents),
//     and the resulting Kind.
//   - Witness(g): one Euler circuit or trail in O(E), or ErrNoEulerWalk.
//
// Why:
//
//	The exhaustive enumerator in package euler intentionally performs no
//	parity pre-check and discovers impossibility by exhaustion. This package is
//	the cheap, independent cross-check used by the CLI's "inspect" command and
//	by tests.
//
// Kind rules (connected, non-isolated part):
//
//   - 0 odd vertices → Circuit
//   - 2 odd vertices → Trail (must start at one odd vertex, end at the other)
//   - otherwise, or disconnected → None
package classify
