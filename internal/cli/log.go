// Package cli implements the graphcore command-line interface.
//
// Commands read and write graphs in the graphio text format:
//   - generate: write a grid, polygon, wheel or random triangulation
//   - orient: direct every edge so no vertex has out-degree above k
//   - faces: list the faces of the embedding
//   - dual: write the dual graph
//   - verify: build the embedding and check its structural invariants
//   - render: export DOT or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The level can
// also come from the config file. Loggers are passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
