package graphfile

import (
	"encoding/json"
	"fmt"
	"io"

	goyaml "github.com/goccy/go-yaml"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/eulerwalk/incidence"
)

// Format selects an output encoding.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat accepts "text", "yaml" or "json". The empty string means Text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", Text:
		return Text, nil
	case YAML, JSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

// Encode writes v as YAML or JSON using its json tags. Text is not handled
// here; callers render text themselves.
func Encode(w io.Writer, v any, f Format) error {
	var (
		b   []byte
		err error
	)
	switch f {
	case YAML:
		b, err = yaml.Marshal(v)
	case JSON:
		b, err = json.MarshalIndent(v, "", "  ")
		b = append(b, '\n')
	default:
		return fmt.Errorf("%w: %q", ErrFormat, f)
	}
	if err != nil {
		return fmt.Errorf("graphfile: encode %s: %w", f, err)
	}
	_, err = w.Write(b)

	return err
}

// EncodeGraph writes g in a shape Decode reads back with the same vertex and
// incidence order: the mapping form for YAML, the list form for JSON.
func EncodeGraph(w io.Writer, g *incidence.Graph, f Format) error {
	switch f {
	case YAML, Text:
		m := make(goyaml.MapSlice, 0, g.VertexCount())
		for _, e := range g.Entries() {
			m = append(m, goyaml.MapItem{Key: e.Vertex, Value: e.Edges})
		}
		b, err := goyaml.MarshalWithOptions(m, goyaml.Flow(false))
		if err != nil {
			return fmt.Errorf("graphfile: encode graph: %w", err)
		}
		_, err = w.Write(b)

		return err
	case JSON:
		return Encode(w, g.Entries(), JSON)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, f)
	}
}
