package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eulerwalk/classify"
	"github.com/katalvlaran/eulerwalk/graphfile"
)

// inspection is the yaml/json shape of the inspect command.
type inspection struct {
	Vertices  int  `json:"vertices"`
	Edges     int  `json:"edges"`
	Validated bool `json:"validated"`
	*classify.Report
	Witness string `json:"witness,omitempty"`
}

func newInspectCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Report degrees, connectivity and one Euler walk if any exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := f.format()
			if err != nil {
				return err
			}
			g, err := f.loadGraph()
			if err != nil {
				return err
			}
			r, err := classify.Analyze(g)
			if err != nil {
				return err
			}

			in := inspection{Vertices: g.VertexCount(), Edges: g.EdgeCount(), Validated: g.Validated(), Report: r}
			w, err := classify.Witness(g)
			switch {
			case err == nil:
				in.Witness = w.String()
			case !errors.Is(err, classify.ErrNoEulerWalk):
				return err
			}

			if format != graphfile.Text {
				return graphfile.Encode(cmd.OutOrStdout(), in, format)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "vertices:\t%d\n", in.Vertices)
			fmt.Fprintf(tw, "edges:\t%d\n", in.Edges)
			fmt.Fprintf(tw, "validated:\t%t\n", in.Validated)
			fmt.Fprintf(tw, "components:\t%d\n", r.Components)
			fmt.Fprintf(tw, "odd vertices:\t%s\n", strings.Join(r.OddVertices, " "))
			if len(r.Isolated) > 0 {
				fmt.Fprintf(tw, "isolated:\t%s\n", strings.Join(r.Isolated, " "))
			}
			fmt.Fprintf(tw, "kind:\t%s\n", r.Kind)
			if in.Witness != "" {
				fmt.Fprintf(tw, "witness:\t%s\n", in.Witness)
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "VERTEX\tDEGREE")
			for _, d := range r.Degrees {
				fmt.Fprintf(tw, "%s\t%d\n", d.Vertex, d.Degree)
			}

			return tw.Flush()
		},
	}
}
