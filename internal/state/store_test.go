package state

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/geodeck/layerctl/internal/fsops"
	"github.com/geodeck/layerctl/internal/layertree"
)

func TestCaptureOrder(t *testing.T) {
	nodes := []layertree.Node{
		&layertree.Layer{ID: "l1", Name: "Roads"},
		&layertree.Group{ID: "g1", Name: "Basemaps", Children: []layertree.Node{
			&layertree.Layer{ID: "l2", Name: "Hillshade"},
		}},
	}

	got := CaptureOrder(nodes)
	want := []SnapshotEntry{
		{ID: "l1", Kind: KindLayer, Name: "Roads"},
		{ID: "g1", Kind: KindGroup, Name: "Basemaps", Children: []SnapshotEntry{
			{ID: "l2", Kind: KindLayer, Name: "Hillshade"},
		}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CaptureOrder mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStateStore(t *testing.T) {
	newStore := func(t *testing.T) *FileStateStore {
		t.Helper()
		return NewFileStateStore(fsops.NewRealFS(), t.TempDir())
	}

	projectID := "0123456789abcdef"

	t.Run("save and load round-trip", func(t *testing.T) {
		store := newStore(t)
		captured := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
		st := NewSnapshotState("/data/project.yaml", "abc123", captured, []layertree.Node{
			&layertree.Layer{ID: "l1", Name: "Roads"},
		})

		if err := store.Save(projectID, st); err != nil {
			t.Fatalf("Save: %v", err)
		}
		loaded, err := store.Load(projectID)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}

		if diff := cmp.Diff(st, loaded); diff != "" {
			t.Errorf("snapshot changed across save/load (-want +got):\n%s", diff)
		}
	})

	t.Run("load missing snapshot", func(t *testing.T) {
		store := newStore(t)
		if _, err := store.Load(projectID); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Load: got %v, want os.ErrNotExist", err)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := newStore(t)
		st := NewSnapshotState("/data/project.yaml", "abc123", time.Now(), nil)
		if err := store.Save(projectID, st); err != nil {
			t.Fatalf("Save: %v", err)
		}

		if err := store.Delete(projectID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if err := store.Delete(projectID); err != nil {
			t.Errorf("Delete of a missing snapshot: %v", err)
		}
		if _, err := store.Load(projectID); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("snapshot still loads after delete")
		}
	})

	t.Run("rejects malicious project IDs", func(t *testing.T) {
		store := newStore(t)
		for _, id := range []string{"../escape", "a/b", ""} {
			if err := store.Save(id, &SnapshotState{}); err == nil {
				t.Errorf("Save accepted project ID %q", id)
			}
		}
	})
}
