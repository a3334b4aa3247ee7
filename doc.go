// Package eulerwalk enumerates every Euler trail and Euler circuit of a small
// undirected multigraph, the way one would by hand: start somewhere, cross an
// unused bridge, and back up when stuck.
//
// What is in the module?
//
//	incidence/   read-only Graph built from ordered incidence lists
//	euler/       exhaustive backtracking enumerator, formatter, Tracer hook
//	classify/    degree/connectivity report and one Hierholzer witness walk
//	trace/       Tracer adapters: logr, zerolog, colored console, Prometheus
//	graphfile/   YAML/JSON graph documents in, YAML/JSON results out
//	samples/     the square, two triangles, Königsberg and two-odd graphs
//	cmd/eulerwalk  command line front end
//
// Quick ASCII example:
//
//	    a ──e1── b
//	    │        │
//	    e4       e2
//	    │        │
//	    d ──e3── c
//
//	g, _ := incidence.NewBuilder().
//		Add("a", "e1", "e4").
//		Add("b", "e1", "e2").
//		Add("c", "e2", "e3").
//		Add("d", "e3", "e4").
//		Build()
//	sols, _ := euler.FindPaths(g, euler.Circuit)
//	// 8 circuits: both directions from each of the four vertices.
//
// Every solution is reported, including rotations and reversals of the same
// circuit. No parity shortcut is taken; use classify for that.
//
//	go install github.com/katalvlaran/eulerwalk/cmd/eulerwalk@latest
package eulerwalk
