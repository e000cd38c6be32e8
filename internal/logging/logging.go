// Package logging builds the structured logger used by long-running
// commands. One-shot CLI commands print through the colored output helpers
// instead; only the watcher runs long enough to need leveled, timestamped
// logs.
package logging

import "go.uber.org/zap"

// New creates the layerctl logger. Verbose enables debug-level output with
// development formatting.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
