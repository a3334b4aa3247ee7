// Package samples provides the small reference graphs used by the CLI,
// examples and tests. Each constructor returns a fresh, validated Graph.
//
//	Square          a-b-c-d-a, all degrees 2.
//	TwoTriangles    a-e-b-a and b-d-c-b sharing b; all degrees even.
//	Koenigsberg     the four landmasses and seven bridges; four odd vertices.
//	TwoOddVertices  a seven-vertex, nine-edge variant with exactly two odd
//	                vertices (a and b).
package samples

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/eulerwalk/incidence"
)

// Names of the built-in samples, as accepted by Lookup.
const (
	NameSquare         = "square"
	NameTwoTriangles   = "two-triangles"
	NameKoenigsberg    = "koenigsberg"
	NameTwoOddVertices = "two-odd"
)

var registry = map[string][]incidence.Entry{
	NameSquare: {
		{Vertex: "a", Edges: []string{"e1", "e4"}},
		{Vertex: "b", Edges: []string{"e1", "e2"}},
		{Vertex: "c", Edges: []string{"e2", "e3"}},
		{Vertex: "d", Edges: []string{"e3", "e4"}},
	},
	NameTwoTriangles: {
		{Vertex: "a", Edges: []string{"e1", "e3"}},
		{Vertex: "b", Edges: []string{"e3", "e2", "e4", "e6"}},
		{Vertex: "c", Edges: []string{"e5", "e6"}},
		{Vertex: "d", Edges: []string{"e4", "e5"}},
		{Vertex: "e", Edges: []string{"e1", "e2"}},
	},
	NameKoenigsberg: {
		{Vertex: "a", Edges: []string{"e1", "e2", "e5"}},
		{Vertex: "b", Edges: []string{"e1", "e2", "e3", "e4", "e6"}},
		{Vertex: "c", Edges: []string{"e3", "e4", "e7"}},
		{Vertex: "d", Edges: []string{"e5", "e6", "e7"}},
	},
	NameTwoOddVertices: {
		{Vertex: "a", Edges: []string{"1", "7", "8"}},
		{Vertex: "b", Edges: []string{"1", "2", "9"}},
		{Vertex: "c", Edges: []string{"2", "3"}},
		{Vertex: "d", Edges: []string{"3", "4"}},
		{Vertex: "e", Edges: []string{"5", "6"}},
		{Vertex: "f", Edges: []string{"6", "7"}},
		{Vertex: "g", Edges: []string{"4", "5", "8", "9"}},
	},
}

// ErrUnknownSample is returned by Lookup for names not in Names().
var ErrUnknownSample = errors.New("samples: unknown sample")

// Names returns the sample names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Entries returns a copy of the incidence entries of the named sample.
func Entries(name string) ([]incidence.Entry, error) {
	src, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownSample, name, Names())
	}
	out := make([]incidence.Entry, len(src))
	for i, en := range src {
		out[i] = incidence.Entry{Vertex: en.Vertex, Edges: append([]string(nil), en.Edges...)}
	}

	return out, nil
}

// Lookup builds the named sample graph.
func Lookup(name string) (*incidence.Graph, error) {
	entries, err := Entries(name)
	if err != nil {
		return nil, err
	}

	return incidence.Build(entries, incidence.WithValidation())
}

// Square returns the 4-cycle sample.
func Square() *incidence.Graph { return mustLookup(NameSquare) }

// TwoTriangles returns the bow-tie sample.
func TwoTriangles() *incidence.Graph { return mustLookup(NameTwoTriangles) }

// Koenigsberg returns the seven bridges of Königsberg.
func Koenigsberg() *incidence.Graph { return mustLookup(NameKoenigsberg) }

// TwoOddVertices returns the nine-edge variant with two odd vertices.
func TwoOddVertices() *incidence.Graph { return mustLookup(NameTwoOddVertices) }

// mustLookup panics only if a built-in sample is malformed, which the
// package tests rule out.
func mustLookup(name string) *incidence.Graph {
	g, err := Lookup(name)
	if err != nil {
		panic(err)
	}

	return g
}
