// Package engine provides the core logic for layerctl operations.
//
// The engine package acts as the orchestration layer between CLI commands
// and the layer tree. Every action reads the project document fresh,
// computes a rewrite plan, applies it, and writes the document back; no
// references into the tree outlive a single action.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Sort/Group: Reorder and regroup the top-level layer order
//   - Restore: Replay the single-slot original-order snapshot
//   - Snapshot handling: capture-before-first-mutation, checksum-based
//     external-change detection
package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/geodeck/layerctl/internal/clock"
	"github.com/geodeck/layerctl/internal/hash"
	"github.com/geodeck/layerctl/internal/layertree"
	"github.com/geodeck/layerctl/internal/meta"
	"github.com/geodeck/layerctl/internal/project"
	"github.com/geodeck/layerctl/internal/state"
)

// Engine orchestrates all layerctl operations.
// It is the main API surface called by the CLI.
type Engine struct {
	projects   project.Store
	stateStore state.StateStore
	prober     meta.Prober
	hasher     hash.Hasher
	clock      clock.Clock
}

// New creates a new Engine with the given dependencies.
func New(
	projects project.Store,
	stateStore state.StateStore,
	prober meta.Prober,
	hasher hash.Hasher,
	clk clock.Clock,
) *Engine {
	return &Engine{
		projects:   projects,
		stateStore: stateStore,
		prober:     prober,
		hasher:     hasher,
		clock:      clk,
	}
}

// session holds everything one action needs: the freshly loaded document,
// the live snapshot (if any), and the document checksum observed at load.
type session struct {
	path          string
	projectID     string
	doc           *project.Document
	checksum      string
	snap         *state.SnapshotState
	staleCleared bool
	snapCaptured bool
}

// beginAction loads the project document and the snapshot slot. A snapshot
// whose recorded checksum no longer matches the document was invalidated by
// an external edit and is discarded here, so a stale order is never applied
// to an unrelated tree.
func (e *Engine) beginAction(projectPath string) (*session, error) {
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project path: %w", err)
	}

	checksum, err := e.hasher.HashFile(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, abs)
		}
		return nil, fmt.Errorf("failed to checksum project document: %w", err)
	}

	doc, err := e.projects.Load(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, abs)
		}
		return nil, err
	}

	s := &session{
		path:      abs,
		projectID: project.ComputeProjectID(abs),
		doc:       doc,
		checksum:  checksum,
	}

	snap, err := e.stateStore.Load(s.projectID)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load snapshot state: %w", err)
		}
		return s, nil
	}

	if snap.Checksum != checksum {
		// The document changed outside layerctl; the snapshot is stale.
		if err := e.stateStore.Delete(s.projectID); err != nil {
			return nil, err
		}
		s.staleCleared = true
		return s, nil
	}

	s.snap = snap
	return s, nil
}

// captureSnapshot saves the current top-level order if no snapshot is live.
// Only the first sort or group action since the slot was cleared captures
// state.
func (e *Engine) captureSnapshot(s *session) {
	if s.snap != nil {
		return
	}
	s.snap = state.NewSnapshotState(s.path, s.checksum, e.clock.Now(), s.doc.Nodes)
	s.snapCaptured = true
}

// commit writes the rewritten document and re-records its checksum in the
// snapshot state, so the next action recognizes the write as layerctl's own.
func (e *Engine) commit(s *session) error {
	if err := e.projects.Save(s.path, s.doc); err != nil {
		return err
	}

	checksum, err := e.hasher.HashFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to checksum project document: %w", err)
	}
	s.checksum = checksum

	if s.snap == nil {
		return nil
	}
	s.snap.Checksum = checksum
	if err := e.stateStore.Save(s.projectID, s.snap); err != nil {
		return err
	}

	return nil
}

// Status reports the project and snapshot status without rewriting the
// tree. A stale snapshot discovered here is still discarded.
func (e *Engine) Status(req *StatusRequest) (*StatusResult, error) {
	s, err := e.beginAction(req.ProjectPath)
	if err != nil {
		return nil, err
	}

	result := &StatusResult{
		ProjectPath:       s.path,
		ProjectID:         s.projectID,
		ProjectName:       s.doc.Name,
		TopLevelNodes:     len(s.doc.Nodes),
		TopLevelGroups:    countTopLevelGroups(s.doc),
		TotalLayers:       len(layertree.Layers(s.doc.Nodes)),
		SnapshotHeld:      s.snap != nil,
		SnapshotDiscarded: s.staleCleared,
	}
	if s.snap != nil {
		result.SnapshotCapturedAt = s.snap.CapturedAt
	}
	return result, nil
}

// countTopLevelGroups counts the groups in the top-level order.
func countTopLevelGroups(doc *project.Document) int {
	n := 0
	for _, node := range doc.Nodes {
		if _, ok := node.(*layertree.Group); ok {
			n++
		}
	}
	return n
}
