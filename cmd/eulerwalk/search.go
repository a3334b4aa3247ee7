package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/eulerwalk/euler"
	"github.com/katalvlaran/eulerwalk/graphfile"
	"github.com/katalvlaran/eulerwalk/trace"
)

func newSearchCmd(f *rootFlags, mode euler.Mode) *cobra.Command {
	var (
		narrate      bool
		backtracking bool
		limit        int
		timeout      time.Duration
		metricsFile  string
	)

	cmd := &cobra.Command{
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := f.format()
			if err != nil {
				return err
			}
			if timeout < 0 {
				return fmt.Errorf("invalid --timeout %v", timeout)
			}
			g, err := f.loadGraph()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			out := cmd.OutOrStdout()
			tracers := []euler.Tracer{f.tracer}
			if narrate {
				w := cmd.ErrOrStderr()
				if format == graphfile.Text {
					w = out
				}
				tracers = append(tracers, trace.Console(w, trace.WithBacktracking(backtracking)))
			}
			var reg *prometheus.Registry
			if metricsFile != "" {
				reg = prometheus.NewRegistry()
				m, err := trace.Metrics(reg)
				if err != nil {
					return err
				}
				tracers = append(tracers, m)
			}

			log.V(1).Info("searching", "mode", mode, "vertices", g.VertexCount(), "edges", g.EdgeCount())
			start := time.Now()
			res, searchErr := euler.Search(g, mode,
				euler.WithContext(ctx),
				euler.WithTracer(trace.Multi(tracers...)),
				euler.WithMaxSolutions(limit))
			if res == nil {
				return searchErr
			}
			log.V(1).Info("search finished", "solutions", len(res.Solutions), "deadEnds", res.DeadEnds,
				"steps", res.Steps, "truncated", res.Truncated, "elapsed", time.Since(start))

			if reg != nil {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return err
				}
			}
			if format == graphfile.Text {
				printSolutions(out, res)
			} else if err := graphfile.Encode(out, res, format); err != nil {
				return err
			}

			return searchErr
		},
	}

	switch mode {
	case euler.Circuit:
		cmd.Use = "circuits"
		cmd.Aliases = []string{"circuit", "cycles"}
		cmd.Short = "List every Euler circuit, from every start vertex"
	default:
		cmd.Use = "paths"
		cmd.Aliases = []string{"path", "trails"}
		cmd.Short = "List every Euler trail, from every start vertex"
	}

	fl := cmd.Flags()
	fl.BoolVar(&narrate, "trace", false, "narrate the search: starts, dead ends, solutions and backtracking")
	fl.BoolVar(&backtracking, "backtracking", true, "include backtracking steps in --trace output")
	fl.IntVar(&limit, "limit", 0, "stop after this many solutions, 0 for all")
	fl.DurationVar(&timeout, "timeout", 0, "abandon the search after this long, 0 for no limit")
	fl.StringVar(&metricsFile, "metrics-file", "", "write Prometheus counters for the search to this file")

	return cmd
}

func printSolutions(w io.Writer, res *euler.Result) {
	out := termenv.NewOutput(w)
	if len(res.Solutions) == 0 {
		fmt.Fprintln(out, out.String("No solutions found").Foreground(out.Convert(termenv.ANSIYellow)))
		return
	}

	fmt.Fprintln(out, "The following solutions found:")
	for _, s := range res.Strings() {
		fmt.Fprintln(out, s)
	}
	if res.Truncated {
		fmt.Fprintln(out, out.String(fmt.Sprintf("Stopped after %d solutions", len(res.Solutions))).
			Foreground(out.Convert(termenv.ANSIYellow)))
	}
}
