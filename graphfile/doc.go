// Package graphfile reads incidence graphs from YAML or JSON documents and
// writes search results and graphs back out.
//
// Two input shapes are accepted. The mapping form keeps vertex order as
// written in the document:
//
//	a: [e1, e4]
//	b: [e1, e2]
//	c: [e2, e3]
//	d: [e3, e4]
//
// The list form spells out incidence.Entry values:
//
//	# one item per vertex, in order
//	- vertex: a
//	  edges: [e1, e4]
//	- vertex: b
//	  edges: [e1, e2]
//
// JSON documents of either shape are read the same way. IDs are taken from
// the source text as written, so 010 and 1.10 stay "010" and "1.10" rather
// than being read as numbers. Null IDs, aliases and multi-document streams
// are rejected with ErrDecode.
//
// Output goes through Encode (results, reports) and EncodeGraph (graphs).
package graphfile
