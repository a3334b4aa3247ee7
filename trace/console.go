package trace

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/eulerwalk/euler"
)

// ConsoleOption configures Console.
type ConsoleOption func(*consoleTracer)

// WithProfile forces a color profile; termenv.Ascii disables colors.
// By default the profile is detected from the environment.
func WithProfile(p termenv.Profile) ConsoleOption {
	return func(c *consoleTracer) { c.profile = &p }
}

// WithBacktracking controls whether backtracking steps are printed. Default true.
func WithBacktracking(show bool) ConsoleOption {
	return func(c *consoleTracer) { c.backtracking = show }
}

type consoleTracer struct {
	out          *termenv.Output
	profile      *termenv.Profile
	backtracking bool
}

// Console returns a Tracer narrating the search on w: starts in the default
// color, solutions in green, dead ends and backtracking in yellow.
// Backtracking is reported only for branches that did not end in a solution.
func Console(w io.Writer, opts ...ConsoleOption) euler.Tracer {
	c := &consoleTracer{backtracking: true}
	for _, opt := range opts {
		opt(c)
	}
	if c.profile != nil {
		c.out = termenv.NewOutput(w, termenv.WithProfile(*c.profile))
	} else {
		c.out = termenv.NewOutput(w)
	}

	return c
}

func (c *consoleTracer) OnStart(v string) {
	fmt.Fprintf(c.out, "Starting with vertex %s\n", v)
}

func (c *consoleTracer) OnDeadEnd(v string, trail euler.Trail) {
	fmt.Fprintf(c.out, "%s\n", c.yellow(fmt.Sprintf("Dead end: cannot exit vertex %s after %s", v, trail)))
}

func (c *consoleTracer) OnSolution(s euler.Solution) {
	fmt.Fprintf(c.out, "%s\n", c.green("Solution found: "+s.String()))
}

func (c *consoleTracer) OnBacktrack(trail euler.Trail, found bool) {
	if !c.backtracking || found {
		return
	}
	fmt.Fprintf(c.out, "%s %s\n", c.yellow("Backtracking..."), trail)
}

func (c *consoleTracer) green(s string) string {
	return c.out.String(s).Foreground(c.out.Convert(termenv.ANSIGreen)).String()
}

func (c *consoleTracer) yellow(s string) string {
	return c.out.String(s).Foreground(c.out.Convert(termenv.ANSIYellow)).String()
}
