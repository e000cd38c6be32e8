package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/geodeck/layerctl/internal/fsops"
)

// StateStore provides an interface for persisting per-project snapshot state.
type StateStore interface {
	// Load loads the snapshot state for the given project ID.
	// Returns os.ErrNotExist if no snapshot is held.
	Load(projectID string) (*SnapshotState, error)

	// Save saves the snapshot state atomically.
	Save(projectID string, st *SnapshotState) error

	// Delete clears the snapshot state file. Deleting a missing file is
	// not an error.
	Delete(projectID string) error
}

// FileStateStore implements StateStore using JSON files on disk.
type FileStateStore struct {
	fs       fsops.FS
	stateDir string
}

// NewFileStateStore creates a new FileStateStore.
func NewFileStateStore(fs fsops.FS, stateDir string) *FileStateStore {
	return &FileStateStore{
		fs:       fs,
		stateDir: stateDir,
	}
}

// Load loads the snapshot state for the given project ID.
func (s *FileStateStore) Load(projectID string) (*SnapshotState, error) {
	if err := s.fs.ValidateIdentifier(projectID); err != nil {
		return nil, fmt.Errorf("invalid project ID: %w", err)
	}
	path := filepath.Join(s.stateDir, projectID+".json")

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read snapshot state: %w", err)
	}

	var st SnapshotState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot state: %w", err)
	}

	return &st, nil
}

// Save saves the snapshot state atomically.
func (s *FileStateStore) Save(projectID string, st *SnapshotState) error {
	if err := s.fs.ValidateIdentifier(projectID); err != nil {
		return fmt.Errorf("invalid project ID: %w", err)
	}
	path := filepath.Join(s.stateDir, projectID+".json")

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot state: %w", err)
	}

	if err := s.fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot state: %w", err)
	}

	return nil
}

// Delete clears the snapshot state file.
func (s *FileStateStore) Delete(projectID string) error {
	if err := s.fs.ValidateIdentifier(projectID); err != nil {
		return fmt.Errorf("invalid project ID: %w", err)
	}
	path := filepath.Join(s.stateDir, projectID+".json")

	if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot state: %w", err)
	}

	return nil
}
