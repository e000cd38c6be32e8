package engine

// SortRequest represents a request to sort the top-level layer order.
type SortRequest struct {
	// ProjectPath is the path to the project document.
	ProjectPath string

	// Criterion selects the sort key.
	Criterion SortCriterion

	// DryRun computes the plan without rewriting the document.
	DryRun bool
}

// GroupRequest represents a request to regroup the layer tree.
type GroupRequest struct {
	// ProjectPath is the path to the project document.
	ProjectPath string

	// Criterion selects the bucket key.
	Criterion GroupCriterion

	// DryRun computes the plan without rewriting the document.
	DryRun bool
}

// RestoreRequest represents a request to restore the saved original order.
type RestoreRequest struct {
	// ProjectPath is the path to the project document.
	ProjectPath string

	// DryRun computes the plan without rewriting the document.
	DryRun bool
}

// StatusRequest represents a request for project and snapshot status.
type StatusRequest struct {
	// ProjectPath is the path to the project document.
	ProjectPath string
}
