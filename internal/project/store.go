package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/geodeck/layerctl/internal/fsops"
	"github.com/geodeck/layerctl/internal/layertree"
)

// Store provides an interface for reading and writing project documents.
type Store interface {
	// Load reads and parses the project document at path.
	// Returns os.ErrNotExist if the document doesn't exist.
	Load(path string) (*Document, error)

	// Save writes the project document to path atomically.
	Save(path string, doc *Document) error
}

// FileStore implements Store using YAML files on disk.
type FileStore struct {
	fs fsops.FS
}

// NewFileStore creates a new FileStore.
func NewFileStore(fs fsops.FS) *FileStore {
	return &FileStore{fs: fs}
}

// Load reads and parses the project document at path. Nodes missing a
// stable identifier are assigned one; the IDs are persisted on the next
// Save.
func (s *FileStore) Load(path string) (*Document, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read project document: %w", err)
	}

	var file docFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse project document: %w", err)
	}

	nodes, err := toNodes(file.Layers)
	if err != nil {
		return nil, fmt.Errorf("invalid project document: %w", err)
	}
	layertree.EnsureIDs(nodes)

	return &Document{Name: file.Name, Nodes: nodes}, nil
}

// Save writes the project document to path atomically.
func (s *FileStore) Save(path string, doc *Document) error {
	file := docFile{
		Name:   doc.Name,
		Layers: fromNodes(doc.Nodes),
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to marshal project document: %w", err)
	}

	if err := s.fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project document: %w", err)
	}

	return nil
}
