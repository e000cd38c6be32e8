// Package state persists the single-slot snapshot of a project's original
// layer order.
//
// At most one snapshot is live per project: the top-level order captured
// immediately before the first sort or group action since the slot was last
// cleared. The slot is cleared on successful restore, and discarded when the
// project document changes outside layerctl (the recorded checksum no
// longer matches the file).
package state

import (
	"time"

	"github.com/geodeck/layerctl/internal/layertree"
)

// SnapshotState is the authoritative record of a project's saved original
// order. One JSON file per project ID.
type SnapshotState struct {
	// ProjectPath is the absolute path of the project document.
	ProjectPath string `json:"projectPath"`

	// Checksum is the document checksum as of layerctl's last write. A
	// mismatch on load means the document was edited externally and the
	// snapshot is stale.
	Checksum string `json:"checksum"`

	// CapturedAt is when the snapshot was taken.
	CapturedAt time.Time `json:"capturedAt"`

	// Order is the captured top-level structure, by stable node ID.
	Order []SnapshotEntry `json:"order"`
}

// SnapshotEntry describes one node of the captured top-level order.
type SnapshotEntry struct {
	// ID is the stable node identifier.
	ID string `json:"id"`

	// Kind is the node kind: "layer" or "group".
	Kind string `json:"kind"`

	// Name is the display name at capture time. Used to recreate groups
	// that a later grouping action dissolved.
	Name string `json:"name"`

	// Children is the captured child structure (groups only).
	Children []SnapshotEntry `json:"children,omitempty"`
}

// Node kind constants
const (
	KindLayer = "layer"
	KindGroup = "group"
)

// CaptureOrder records the structure of an ordered forest as snapshot
// entries.
func CaptureOrder(nodes []layertree.Node) []SnapshotEntry {
	entries := make([]SnapshotEntry, 0, len(nodes))
	for _, n := range nodes {
		switch node := n.(type) {
		case *layertree.Group:
			entries = append(entries, SnapshotEntry{
				ID:       node.ID,
				Kind:     KindGroup,
				Name:     node.Name,
				Children: CaptureOrder(node.Children),
			})
		case *layertree.Layer:
			entries = append(entries, SnapshotEntry{
				ID:   node.ID,
				Kind: KindLayer,
				Name: node.Name,
			})
		}
	}
	return entries
}

// NewSnapshotState creates a snapshot of the given top-level order.
func NewSnapshotState(projectPath, checksum string, capturedAt time.Time, nodes []layertree.Node) *SnapshotState {
	return &SnapshotState{
		ProjectPath: projectPath,
		Checksum:    checksum,
		CapturedAt:  capturedAt,
		Order:       CaptureOrder(nodes),
	}
}
