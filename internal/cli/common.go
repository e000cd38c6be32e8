package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/geodeck/layerctl/internal/clock"
	"github.com/geodeck/layerctl/internal/config"
	"github.com/geodeck/layerctl/internal/engine"
	"github.com/geodeck/layerctl/internal/fsops"
	"github.com/geodeck/layerctl/internal/hash"
	"github.com/geodeck/layerctl/internal/meta"
	"github.com/geodeck/layerctl/internal/project"
	"github.com/geodeck/layerctl/internal/state"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	// Get default paths
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	// Ensure directories exist
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	// Create real implementations
	fs := fsops.NewRealFS()
	hasher := hash.NewSHA256Hasher()
	clk := &clock.RealClock{}
	projects := project.NewFileStore(fs)
	stateStore := state.NewFileStateStore(fs, paths.State)
	prober := meta.NewFSProber(fs)

	// Create engine
	return engine.New(projects, stateStore, prober, hasher, clk), nil
}

// resolveProjectPath returns the project document path from the --project
// flag or the LAYERCTL_PROJECT environment variable.
func resolveProjectPath() (string, error) {
	if projectFlag != "" {
		return projectFlag, nil
	}
	if env := os.Getenv("LAYERCTL_PROJECT"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("no project document given: use --project or set LAYERCTL_PROJECT")
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
