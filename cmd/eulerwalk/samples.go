package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eulerwalk/graphfile"
	"github.com/katalvlaran/eulerwalk/samples"
)

func newSamplesCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "samples [NAME]",
		Short: "List the built-in sample graphs, or print one as a graph file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range samples.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			format, err := f.format()
			if err != nil {
				return err
			}
			g, err := samples.Lookup(args[0])
			if err != nil {
				return err
			}

			return graphfile.EncodeGraph(cmd.OutOrStdout(), g, format)
		},
	}
}
