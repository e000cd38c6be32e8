package engine

import (
	"time"

	"github.com/geodeck/layerctl/internal/plan"
)

// SortResult represents the result of a sort action.
type SortResult struct {
	// Plan is the executed (or, for dry runs, computed) rewrite plan.
	Plan *plan.Plan

	// Order is the resulting top-level order, by display name.
	Order []string

	// SnapshotCaptured is true if this action captured the original-order
	// snapshot.
	SnapshotCaptured bool
}

// BucketSummary summarizes one group produced by a grouping action.
type BucketSummary struct {
	// Name is the bucket (group) name.
	Name string `json:"name"`

	// Layers is the number of members moved into the group.
	Layers int `json:"layers"`
}

// GroupResult represents the result of a grouping action.
type GroupResult struct {
	// Plan is the executed (or, for dry runs, computed) rewrite plan.
	Plan *plan.Plan

	// Buckets summarizes the created groups in their final order.
	Buckets []BucketSummary

	// SnapshotCaptured is true if this action captured the original-order
	// snapshot.
	SnapshotCaptured bool
}

// RestoreResult represents the result of a restore action.
type RestoreResult struct {
	// Plan is the executed (or, for dry runs, computed) rewrite plan.
	Plan *plan.Plan

	// Restored is false when no snapshot was held; the action is then a
	// benign no-op.
	Restored bool

	// Order is the restored top-level order, by display name.
	Order []string
}

// StatusResult represents the current project and snapshot status.
type StatusResult struct {
	// ProjectPath is the absolute path of the project document.
	ProjectPath string `json:"projectPath"`

	// ProjectID is the stable state-file identifier for the project.
	ProjectID string `json:"projectId"`

	// ProjectName is the project's display name.
	ProjectName string `json:"projectName,omitempty"`

	// TopLevelNodes is the number of top-level nodes.
	TopLevelNodes int `json:"topLevelNodes"`

	// TopLevelGroups is the number of top-level groups.
	TopLevelGroups int `json:"topLevelGroups"`

	// TotalLayers is the number of layers at any depth.
	TotalLayers int `json:"totalLayers"`

	// SnapshotHeld is true when an original-order snapshot is live.
	SnapshotHeld bool `json:"snapshotHeld"`

	// SnapshotCapturedAt is when the live snapshot was taken.
	SnapshotCapturedAt time.Time `json:"snapshotCapturedAt,omitempty"`

	// SnapshotDiscarded is true when a stale snapshot was discarded because
	// the document changed outside layerctl.
	SnapshotDiscarded bool `json:"snapshotDiscarded,omitempty"`
}
