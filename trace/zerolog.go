package trace

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/eulerwalk/euler"
)

// ZerologOption configures Zerolog.
type ZerologOption func(*zerologTracer)

// WithLevels sets the level of start and solution events (summary) and of
// dead-end and backtracking events (detail). Defaults: Debug and Trace.
func WithLevels(summary, detail zerolog.Level) ZerologOption {
	return func(t *zerologTracer) { t.summary, t.detail = summary, detail }
}

type zerologTracer struct {
	log     zerolog.Logger
	summary zerolog.Level
	detail  zerolog.Level
}

// Zerolog returns a Tracer writing events to log with a "src" field of "euler".
// Filtering is left to log's own level and zerolog's global level.
func Zerolog(log zerolog.Logger, opts ...ZerologOption) euler.Tracer {
	t := &zerologTracer{
		log:     log.With().Str("src", "euler").Logger(),
		summary: zerolog.DebugLevel,
		detail:  zerolog.TraceLevel,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *zerologTracer) OnStart(v string) {
	t.log.WithLevel(t.summary).Str("vertex", v).Msg("starting")
}

func (t *zerologTracer) OnDeadEnd(v string, trail euler.Trail) {
	t.log.WithLevel(t.detail).Str("vertex", v).Strs("edges", trail.Edges).Int("depth", trail.Len()).Msg("dead end")
}

func (t *zerologTracer) OnSolution(s euler.Solution) {
	t.log.WithLevel(t.summary).Str("start", s.Start).Str("solution", s.String()).Msg("solution found")
}

func (t *zerologTracer) OnBacktrack(trail euler.Trail, found bool) {
	t.log.WithLevel(t.detail).Strs("edges", trail.Edges).Bool("found", found).Msg("backtracking")
}
