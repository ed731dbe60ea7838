//go:build unit || e2e

package testutil

import (
	"io"
	"log/slog"
)

// DiscardLogger is handed to adapters whose log output the test does not inspect.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
