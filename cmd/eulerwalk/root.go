package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/eulerwalk/euler"
	"github.com/katalvlaran/eulerwalk/graphfile"
	"github.com/katalvlaran/eulerwalk/incidence"
	"github.com/katalvlaran/eulerwalk/internal/logging"
	"github.com/katalvlaran/eulerwalk/samples"
	"github.com/katalvlaran/eulerwalk/trace"
)

const defaultSample = samples.NameKoenigsberg

var log = logging.Log()

// rootFlags are shared by every subcommand.
type rootFlags struct {
	graph     string
	sample    string
	output    string
	logFormat string
	verbose   int
	strict    bool

	// tracer is the logging tracer chosen by --log-format, set before any RunE.
	tracer euler.Tracer
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "eulerwalk",
		Short:         "Enumerate Euler trails and circuits by exhaustive backtracking",
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logging.Init(f.verbose) // After flags are parsed
			switch f.logFormat {
			case "text":
				f.tracer = trace.Logr(log)
			case "json":
				v := f.verbose
				if v == 0 {
					v = logging.Verbosity()
				}
				f.tracer = zerologTracer(cmd.ErrOrStderr(), v)
			default:
				return fmt.Errorf("invalid --log-format %q: want text or json", f.logFormat)
			}

			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.graph, "graph", "", "YAML or JSON incidence file to read")
	pf.StringVar(&f.sample, "sample", "", "built-in sample graph (see 'eulerwalk samples'), default "+defaultSample)
	pf.StringVarP(&f.output, "output", "o", "text", "output format: text, yaml or json")
	pf.StringVar(&f.logFormat, "log-format", "text", "log format on stderr: text (logr) or json (zerolog)")
	pf.IntVarP(&f.verbose, "verbose", "v", 0, "verbosity for logging, also set by "+logging.VerboseEnv)
	pf.BoolVar(&f.strict, "strict", false, "reject graph files whose edges do not join exactly two vertices")

	cmd.AddCommand(
		newSearchCmd(f, euler.AnyPath),
		newSearchCmd(f, euler.Circuit),
		newInspectCmd(f),
		newSamplesCmd(f),
	)

	return cmd
}

// loadGraph resolves --graph or --sample.
func (f *rootFlags) loadGraph() (*incidence.Graph, error) {
	switch {
	case f.graph != "" && f.sample != "":
		return nil, errors.New("--graph and --sample are mutually exclusive")
	case f.graph != "":
		var opts []incidence.Option
		if f.strict {
			opts = append(opts, incidence.WithValidation())
		}
		log.V(1).Info("loading graph", "file", f.graph, "strict", f.strict)

		return graphfile.Load(f.graph, opts...)
	case f.sample != "":
		return samples.Lookup(f.sample)
	default:
		return samples.Lookup(defaultSample)
	}
}

func (f *rootFlags) format() (graphfile.Format, error) {
	return graphfile.ParseFormat(f.output)
}

// zerologTracer logs starts and solutions at Info (-v 1) and dead ends and
// backtracking at Debug (-v 2) on a logger of its own; zerolog's global
// level is left alone.
func zerologTracer(w io.Writer, verbosity int) euler.Tracer {
	level := zerolog.WarnLevel
	switch {
	case verbosity >= 2:
		level = zerolog.DebugLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	}
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	return trace.Zerolog(zl, trace.WithLevels(zerolog.InfoLevel, zerolog.DebugLevel))
}
