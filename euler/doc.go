// Package euler enumerates every Euler trail or Euler circuit of an
// incidence.Graph by exhaustive depth-first backtracking.
//
// What:
//
//   - Search(g, mode, opts...) / FindPaths(g, mode, opts...): start a walk at
//     every vertex in the Graph's vertex order, extend it along unmarked
//     incident edges in incidence-list order, and record each walk that uses
//     all edges (AnyPath) or uses all edges and returns home (Circuit).
//   - Format(g, start, edges): render a walk as "v e v e … v" from its start
//     vertex and edge sequence alone.
//   - Tracer: injectable event sink (start, dead end, solution, backtrack).
//
// Enumeration contract:
//
//   - Exhaustive: recording a solution never prunes siblings.
//   - Ordered: solutions appear in discovery order, which is fixed by the
//     Graph's vertex order and incidence-list order.
//   - Redundant: rotations and reversals of the same circuit, and
//     trails found from different starts, are all reported.
//   - No parity pre-check: graphs without Euler walks are detected by exhausting
//     the search (see package classify for a fast, separate report).
//
// Search state:
//
//	One mutable path buffer and one bitset of marked edges per invocation.
//	Each recursive step pushes (mark + extend) before descending and pops
//	(unmark + shrink) after returning; the pair is exactly symmetric so every
//	sibling branch observes the same marks its parent did.
//
// Options:
//
//   - WithContext(ctx)       cancellation, checked between branch attempts.
//   - WithTracer(t)          receive trace events.
//   - WithMaxSolutions(n)    stop after n recorded solutions.
//
// Errors:
//
//   - ErrGraphNil            g is nil
//   - ErrInvalidMode         mode is neither AnyPath nor Circuit
//   - incidence.Err*         malformed graph detected while walking
//   - context errors         from WithContext
//
// Complexity:
//
//	Exponential in the worst case: every edge ordering consistent with the
//	incidence lists may be visited from every start vertex. Recursion depth is
//	at most EdgeCount().
package euler
