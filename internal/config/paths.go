// Package config manages layerctl configuration and filesystem paths.
//
// Configuration is limited to the locations of layerctl data directories.
// The default root is ~/.layerctl/ containing state/, where one snapshot
// state file is kept per project.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by layerctl.
type Paths struct {
	// Root is the base directory for all layerctl data (default: ~/.layerctl)
	Root string

	// State is the directory containing per-project snapshot state files
	State string
}

// DefaultPaths returns the default paths for layerctl.
// Paths can be overridden with environment variables:
// - LAYERCTL_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("LAYERCTL_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".layerctl")
	}

	return &Paths{
		Root:  root,
		State: filepath.Join(root, "state"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.State,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
