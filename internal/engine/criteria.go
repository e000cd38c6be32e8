package engine

import "fmt"

// SortCriterion selects the key used to order top-level nodes.
type SortCriterion string

const (
	// SortByPath orders by full source path, ascending.
	SortByPath SortCriterion = "path"
	// SortByName orders alphabetically by display name, ascending.
	SortByName SortCriterion = "name"
	// SortByDate orders by file modification time, newest first.
	SortByDate SortCriterion = "date"
	// SortByGeometry orders Point, Line, Polygon, Raster, then others.
	SortByGeometry SortCriterion = "geometry"
	// SortByFeatureCount orders vector layers by feature count, most first.
	SortByFeatureCount SortCriterion = "features"
	// SortBySize orders by file size on disk, largest first.
	SortBySize SortCriterion = "size"
)

// GroupCriterion selects the bucket key used to regroup layers.
type GroupCriterion string

const (
	// GroupByGeometry buckets layers by geometry kind.
	GroupByGeometry GroupCriterion = "geometry"
	// GroupByFolder buckets layers by source directory.
	GroupByFolder GroupCriterion = "folder"
)

// ParseSortCriterion parses a sort criterion name.
func ParseSortCriterion(s string) (SortCriterion, error) {
	switch SortCriterion(s) {
	case SortByPath, SortByName, SortByDate, SortByGeometry, SortByFeatureCount, SortBySize:
		return SortCriterion(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
	}
}

// ParseGroupCriterion parses a group criterion name.
func ParseGroupCriterion(s string) (GroupCriterion, error) {
	switch GroupCriterion(s) {
	case GroupByGeometry, GroupByFolder:
		return GroupCriterion(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
	}
}

// Action describes one user-facing sort or group action.
type Action struct {
	// Criterion is the criterion name accepted on the command line.
	Criterion string

	// Label is the menu-style action label.
	Label string

	// Description is the one-line action description.
	Description string
}

// SortActions returns the sort actions in menu order.
func SortActions() []Action {
	return []Action{
		{string(SortByPath), "Sort by File Path", "Sort layers by full file source path"},
		{string(SortByName), "Sort Alphabetically", "Sort layers alphabetically by name"},
		{string(SortByDate), "Sort by File Date (Newest First)", "Sort layers by file modification date"},
		{string(SortByGeometry), "Sort by Geometry Type", "Order layers: Point, Line, Polygon, Raster, then others"},
		{string(SortByFeatureCount), "Sort by Feature Count (Most First)", "Sort vector layers by number of features"},
		{string(SortBySize), "Sort by File Size (Largest First)", "Sort layers by file size on disk"},
	}
}

// GroupActions returns the group actions in menu order.
func GroupActions() []Action {
	return []Action{
		{string(GroupByGeometry), "Group by Geometry Type", "Create groups for Point, Line, Polygon, Raster layers"},
		{string(GroupByFolder), "Group by Folder Path", "Create groups based on each layer's source directory"},
	}
}
