package incidence

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Builder accumulates incidence entries in insertion order.
//
// Adding a vertex that is already present appends to its list and keeps the
// vertex at its original position. A Builder is not safe for concurrent use.
type Builder struct {
	opts    buildOptions
	entries *linkedhashmap.Map // vertex ID → []string
	err     error
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{entries: linkedhashmap.New()}
	for _, opt := range opts {
		opt(&b.opts)
	}

	return b
}

// Add appends edges to the incidence list of vertex v and returns b for chaining.
// The first invalid argument is remembered and reported by Build.
func (b *Builder) Add(v string, edges ...string) *Builder {
	if b.err != nil {
		return b
	}
	if v == "" {
		b.err = fmt.Errorf("%w: empty vertex ID", ErrInvalidGraph)
		return b
	}
	for _, e := range edges {
		if e == "" {
			b.err = fmt.Errorf("%w: empty edge ID at vertex %q", ErrInvalidGraph, v)
			return b
		}
	}

	var list []string
	if prev, ok := b.entries.Get(v); ok {
		list = prev.([]string)
	}
	merged := make([]string, 0, len(list)+len(edges))
	merged = append(merged, list...)
	merged = append(merged, edges...)
	b.entries.Put(v, merged)

	return b
}

// Build freezes the accumulated entries into a Graph.
//
// Errors:
//   - ErrInvalidGraph if any Add was invalid, the edge set is empty, or
//     (WithValidation) an edge is not shared by exactly two distinct vertices.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}

	g := &Graph{
		vertices:  make([]string, 0, b.entries.Size()),
		incidence: make(map[string][]string, b.entries.Size()),
		endpoints: make(map[string][]string),
		validated: b.opts.validate,
	}
	edgeSet := linkedhashset.New()

	it := b.entries.Iterator()
	for it.Next() {
		v := it.Key().(string)
		list := it.Value().([]string)
		g.vertices = append(g.vertices, v)
		g.incidence[v] = list

		seen := make(map[string]bool, len(list))
		for _, e := range list {
			edgeSet.Add(e)
			if seen[e] {
				// Repeated inside one list: a self-loop, unsupported.
				if b.opts.validate {
					return nil, fmt.Errorf("%w: edge %q listed twice at vertex %q", ErrInvalidGraph, e, v)
				}
				continue
			}
			seen[e] = true
			g.endpoints[e] = append(g.endpoints[e], v)
		}
	}

	if edgeSet.Empty() {
		return nil, fmt.Errorf("%w: edge set is empty", ErrInvalidGraph)
	}

	g.edges = make([]string, 0, edgeSet.Size())
	for _, e := range edgeSet.Values() {
		g.edges = append(g.edges, e.(string))
	}

	if b.opts.validate {
		for _, e := range g.edges {
			if n := len(g.endpoints[e]); n != 2 {
				return nil, fmt.Errorf("%w: edge %q appears at %d vertices, want 2", ErrInvalidGraph, e, n)
			}
		}
	}

	return g, nil
}

// Build constructs a Graph from ordered entries. Entries sharing a vertex are
// merged as by Builder.Add.
func Build(entries []Entry, opts ...Option) (*Graph, error) {
	b := NewBuilder(opts...)
	for _, en := range entries {
		b.Add(en.Vertex, en.Edges...)
	}

	return b.Build()
}
