// Package logger provides a configurable logger shared by the propagation
// engine and the constrained-zonotope bound solver.
//
// The root logger uses github.com/rs/zerolog with a console writer and is
// disabled by default: a verification library should be silent unless the
// caller explicitly opts into diagnostics.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.Nop()
}

// Enable turns on console logging at debug level.
func Enable() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// SetOutput changes the output of the global logger, keeping its level.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set allows a user to override the global logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable disables logging (the default state).
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the current global logger.
func Logger() zerolog.Logger {
	return logger
}
