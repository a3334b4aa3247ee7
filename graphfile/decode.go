package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/katalvlaran/eulerwalk/incidence"
)

var (
	// ErrDecode indicates a document that is not valid YAML/JSON or does not
	// have one of the accepted shapes.
	ErrDecode = errors.New("graphfile: cannot decode graph")

	// ErrFormat indicates an unsupported output format.
	ErrFormat = errors.New("graphfile: unsupported format")
)

// Decode parses data into ordered incidence entries. IDs are read from the
// source text, so 010, 1.10 and true stay "010", "1.10" and "true".
func Decode(data []byte) ([]incidence.Entry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrDecode)
	}

	f, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, yaml.FormatError(err, false, true))
	}
	if len(f.Docs) != 1 {
		return nil, fmt.Errorf("%w: want one document, got %d", ErrDecode, len(f.Docs))
	}

	body, err := unwrap(f.Docs[0].Body)
	if err != nil {
		return nil, err
	}
	if pairs, ok := mapping(body); ok {
		return fromMapping(pairs)
	}
	switch b := body.(type) {
	case *ast.SequenceNode:
		return fromList(b)
	case nil, *ast.NullNode:
		return nil, fmt.Errorf("%w: empty document", ErrDecode)
	default:
		return nil, fmt.Errorf("%w: %s: top level must be a mapping or a list", ErrDecode, at(body))
	}
}

// Read decodes r and builds a Graph with opts.
func Read(r io.Reader, opts ...incidence.Option) (*incidence.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read: %w", err)
	}
	entries, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return incidence.Build(entries, opts...)
}

// Load reads the graph document at path.
func Load(path string, opts ...incidence.Option) (*incidence.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// fromMapping handles "vertex: [edges...]".
func fromMapping(pairs []*ast.MappingValueNode) ([]incidence.Entry, error) {
	out := make([]incidence.Entry, 0, len(pairs))
	for _, kv := range pairs {
		v, err := id(kv.Key)
		if err != nil {
			return nil, err
		}
		edges, err := edgeList(v, kv.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, incidence.Entry{Vertex: v, Edges: edges})
	}

	return out, nil
}

// fromList handles "- {vertex: v, edges: [...]}".
func fromList(seq *ast.SequenceNode) ([]incidence.Entry, error) {
	out := make([]incidence.Entry, 0, len(seq.Values))
	for i, it := range seq.Values {
		it, err := unwrap(it)
		if err != nil {
			return nil, err
		}
		pairs, ok := mapping(it)
		if !ok {
			return nil, fmt.Errorf("%w: item %d is not a mapping", ErrDecode, i)
		}

		var (
			e        incidence.Entry
			hasVert  bool
			rawEdges ast.Node
		)
		for _, kv := range pairs {
			field, err := id(kv.Key)
			if err != nil {
				return nil, err
			}
			switch field {
			case "vertex":
				if e.Vertex, err = id(kv.Value); err != nil {
					return nil, err
				}
				hasVert = true
			case "edges":
				rawEdges = kv.Value
			default:
				return nil, fmt.Errorf("%w: item %d: unknown field %q", ErrDecode, i, field)
			}
		}
		if !hasVert {
			return nil, fmt.Errorf("%w: item %d has no vertex", ErrDecode, i)
		}

		edges, err := edgeList(e.Vertex, rawEdges)
		if err != nil {
			return nil, err
		}
		e.Edges = edges
		out = append(out, e)
	}

	return out, nil
}

func edgeList(v string, raw ast.Node) ([]string, error) {
	raw, err := unwrap(raw)
	if err != nil {
		return nil, err
	}

	switch r := raw.(type) {
	case nil, *ast.NullNode:
		return []string{}, nil
	case *ast.SequenceNode:
		edges := make([]string, 0, len(r.Values))
		for _, x := range r.Values {
			e, err := id(x)
			if err != nil {
				return nil, fmt.Errorf("vertex %q: %w", v, err)
			}
			edges = append(edges, e)
		}

		return edges, nil
	default:
		return nil, fmt.Errorf("%w: vertex %q: %s: edges must be a list", ErrDecode, v, at(raw))
	}
}

// id returns the source text of a scalar. Nulls, collections and block
// literals are rejected.
func id(n ast.Node) (string, error) {
	n, err := unwrap(n)
	if err != nil {
		return "", err
	}

	switch s := n.(type) {
	case *ast.StringNode:
		return s.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		return s.GetToken().Value, nil
	case nil:
		return "", fmt.Errorf("%w: missing ID", ErrDecode)
	case *ast.NullNode:
		return "", fmt.Errorf("%w: %s: null is not an ID", ErrDecode, at(n))
	default:
		return "", fmt.Errorf("%w: %s: IDs must be plain scalars", ErrDecode, at(n))
	}
}

// unwrap strips tags, anchors and explicit "? key" markers.
func unwrap(n ast.Node) (ast.Node, error) {
	for {
		switch t := n.(type) {
		case *ast.TagNode:
			n = t.Value
		case *ast.AnchorNode:
			n = t.Value
		case *ast.MappingKeyNode:
			n = t.Value
		case *ast.AliasNode:
			return nil, fmt.Errorf("%w: %s: aliases are not supported", ErrDecode, at(n))
		default:
			return n, nil
		}
	}
}

func mapping(n ast.Node) ([]*ast.MappingValueNode, bool) {
	switch m := n.(type) {
	case *ast.MappingNode:
		return m.Values, true
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{m}, true
	default:
		return nil, false
	}
}

// at reports the position of n as "line:column".
func at(n ast.Node) string {
	if n == nil || n.GetToken() == nil || n.GetToken().Position == nil {
		return "?"
	}
	p := n.GetToken().Position

	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
