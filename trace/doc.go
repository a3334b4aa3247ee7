// Package trace provides euler.Tracer implementations that forward search
// events to loggers, a terminal, or Prometheus counters.
//
//   - Logr(logger)        go-logr records; V(1) for starts and solutions, V(2) for dead ends and backtracking
//   - Zerolog(logger)     zerolog events; Debug for starts and solutions, Trace for the rest
//   - Console(w, opts...) colored narration for interactive use (termenv)
//   - Metrics(reg)        Prometheus counters per event type
//   - Multi(tracers...)   fan-out to several tracers in order
//
// None of them hold references to the solver; every Trail they receive is a copy.
package trace
