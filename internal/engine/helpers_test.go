package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/geodeck/layerctl/internal/clock"
	"github.com/geodeck/layerctl/internal/fsops"
	"github.com/geodeck/layerctl/internal/hash"
	"github.com/geodeck/layerctl/internal/meta"
	"github.com/geodeck/layerctl/internal/project"
	"github.com/geodeck/layerctl/internal/state"
)

// env wires an Engine against a real temp-dir project document, with faked
// metadata probing and time.
type env struct {
	t        *testing.T
	eng      *Engine
	prober   *meta.FakeProber
	clk      *clock.FakeClock
	projects *project.FileStore
	path     string
}

func newEnv(t *testing.T, docYAML string) *env {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "project.yaml")
	if err := os.WriteFile(path, []byte(docYAML), 0644); err != nil {
		t.Fatalf("write project: %v", err)
	}

	stateDir := filepath.Join(dir, "state")
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		t.Fatalf("mkdir state: %v", err)
	}

	fs := fsops.NewRealFS()
	prober := meta.NewFakeProber()
	clk := clock.NewFakeClock(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))
	projects := project.NewFileStore(fs)
	states := state.NewFileStateStore(fs, stateDir)

	return &env{
		t:        t,
		eng:      New(projects, states, prober, hash.NewSHA256Hasher(), clk),
		prober:   prober,
		clk:      clk,
		projects: projects,
		path:     path,
	}
}

// topNames reads the persisted document and lists its top-level display
// names.
func (v *env) topNames() []string {
	v.t.Helper()
	doc := v.doc()
	return displayNames(doc.Nodes)
}

func (v *env) doc() *project.Document {
	v.t.Helper()
	doc, err := v.projects.Load(v.path)
	if err != nil {
		v.t.Fatalf("reload project: %v", err)
	}
	return doc
}

func (v *env) sort(criterion SortCriterion) *SortResult {
	v.t.Helper()
	result, err := v.eng.Sort(&SortRequest{ProjectPath: v.path, Criterion: criterion})
	if err != nil {
		v.t.Fatalf("Sort(%s): %v", criterion, err)
	}
	return result
}

func (v *env) group(criterion GroupCriterion) *GroupResult {
	v.t.Helper()
	result, err := v.eng.Group(&GroupRequest{ProjectPath: v.path, Criterion: criterion})
	if err != nil {
		v.t.Fatalf("Group(%s): %v", criterion, err)
	}
	return result
}

func (v *env) restore() *RestoreResult {
	v.t.Helper()
	result, err := v.eng.Restore(&RestoreRequest{ProjectPath: v.path})
	if err != nil {
		v.t.Fatalf("Restore: %v", err)
	}
	return result
}

func (v *env) status() *StatusResult {
	v.t.Helper()
	result, err := v.eng.Status(&StatusRequest{ProjectPath: v.path})
	if err != nil {
		v.t.Fatalf("Status: %v", err)
	}
	return result
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
