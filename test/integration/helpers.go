// Package integration exercises full sort/group/restore workflows against a
// real filesystem: real project documents, real layer data files, and real
// snapshot state on disk.
package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/geodeck/layerctl/internal/clock"
	"github.com/geodeck/layerctl/internal/engine"
	"github.com/geodeck/layerctl/internal/fsops"
	"github.com/geodeck/layerctl/internal/hash"
	"github.com/geodeck/layerctl/internal/meta"
	"github.com/geodeck/layerctl/internal/project"
	"github.com/geodeck/layerctl/internal/state"
)

// harness is one fully wired engine over a temp workspace.
type harness struct {
	t           *testing.T
	eng         *engine.Engine
	projects    *project.FileStore
	projectPath string
	dataDir     string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()

	stateDir := filepath.Join(dir, "state")
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		t.Fatalf("mkdir state: %v", err)
	}
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatalf("mkdir data: %v", err)
	}

	fs := fsops.NewRealFS()
	projects := project.NewFileStore(fs)
	eng := engine.New(
		projects,
		state.NewFileStateStore(fs, stateDir),
		meta.NewFSProber(fs),
		hash.NewSHA256Hasher(),
		&clock.RealClock{},
	)

	return &harness{
		t:           t,
		eng:         eng,
		projects:    projects,
		projectPath: filepath.Join(dir, "project.yaml"),
		dataDir:     dataDir,
	}
}

// writeProject writes the project document the engine will operate on.
func (h *harness) writeProject(content string) {
	h.t.Helper()
	if err := os.WriteFile(h.projectPath, []byte(content), 0644); err != nil {
		h.t.Fatalf("write project: %v", err)
	}
}

// writeGeoJSON writes a FeatureCollection with the given feature count under
// the data directory and returns its path.
func (h *harness) writeGeoJSON(rel string, features int, modTime time.Time) string {
	h.t.Helper()
	path := filepath.Join(h.dataDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		h.t.Fatalf("mkdir %s: %v", rel, err)
	}

	body := `{"type":"FeatureCollection","features":[`
	for i := 0; i < features; i++ {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"type":"Feature","id":%d}`, i)
	}
	body += `]}`

	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		h.t.Fatalf("write %s: %v", rel, err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		h.t.Fatalf("chtimes %s: %v", rel, err)
	}
	return path
}

// topNames reloads the persisted document and lists its top-level display
// names.
func (h *harness) topNames() []string {
	h.t.Helper()
	doc, err := h.projects.Load(h.projectPath)
	if err != nil {
		h.t.Fatalf("reload project: %v", err)
	}
	names := make([]string, len(doc.Nodes))
	for i, n := range doc.Nodes {
		names[i] = n.DisplayName()
	}
	return names
}

func assertOrder(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d nodes %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q (full order %v)", i, got[i], want[i], got)
		}
	}
}
