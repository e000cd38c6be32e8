// Package plan describes the tree rewrite an action is about to perform.
//
// Every sort, group, and restore action first computes a Plan of tree
// operations, then executes it against the project document. Dry runs stop
// after planning, so the CLI can show exactly what would change.
package plan

// Plan represents a planned rewrite of the top-level layer tree.
type Plan struct {
	// Action is the action that produced the plan ("sort", "group", "restore").
	Action string

	// Criterion is the sort or group criterion, empty for restore.
	Criterion string

	// Operations is the ordered list of tree operations to execute.
	Operations []Operation
}

// Operation represents a single layer-tree operation.
type Operation struct {
	// Type is the operation type: "reorder", "create_group",
	// "move_layer", "dissolve_group".
	Type string

	// Node is the display name of the node the operation touches.
	Node string

	// Detail is a human-readable description of the change.
	Detail string
}

// Operation type constants
const (
	OpReorder       = "reorder"
	OpCreateGroup   = "create_group"
	OpMoveLayer     = "move_layer"
	OpDissolveGroup = "dissolve_group"
)

// New creates a new empty Plan.
func New(action, criterion string) *Plan {
	return &Plan{
		Action:     action,
		Criterion:  criterion,
		Operations: []Operation{},
	}
}

// Add appends an operation to the plan.
func (p *Plan) Add(op Operation) {
	p.Operations = append(p.Operations, op)
}

// IsEmpty returns true if the plan changes nothing.
func (p *Plan) IsEmpty() bool {
	return len(p.Operations) == 0
}
