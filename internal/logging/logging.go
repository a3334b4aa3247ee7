// Package logging initializes the root logger used by the eulerwalk command.
package logging

import (
	"log"
	"os"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// VerboseEnv sets the default verbosity when no -v flag is given.
const VerboseEnv = "EULERWALK_VERBOSE"

var root logr.Logger

// Log returns the root logger.
func Log() logr.Logger { return root }

func init() { // Env verbosity first, Init() can over-ride.
	root = stdr.New(log.New(os.Stderr, "eulerwalk ", log.Ltime))
	if n, err := strconv.Atoi(os.Getenv(VerboseEnv)); err == nil {
		stdr.SetVerbosity(n)
	}
}

// Init sets verbosity for the root logger. Zero keeps the env verbosity.
func Init(verbosity int) {
	if verbosity != 0 {
		stdr.SetVerbosity(verbosity)
	}
}

// Verbosity returns the effective verbosity of the root logger.
func Verbosity() int {
	v := 0
	for root.V(v + 1).Enabled() {
		v++
	}

	return v
}
