package dataflow

import (
	"context"
	"log/slog"

	"github.com/sarchlab/tenet/iset"
)

// LevelTrace is the log level of the per-query traces.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs a query result at LevelTrace.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// scalar reduces a count over every remaining domain dimension and extracts
// its value.
func scalar(c iset.Count) (float64, error) {
	v, err := c.Sum().Value()
	if err != nil {
		return 0, err
	}

	return float64(v), nil
}
