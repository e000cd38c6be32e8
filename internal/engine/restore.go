package engine

import (
	"fmt"

	"github.com/geodeck/layerctl/internal/layertree"
	"github.com/geodeck/layerctl/internal/plan"
	"github.com/geodeck/layerctl/internal/state"
)

// Restore rewrites the top level back to the captured original order and
// clears the snapshot slot.
//
// With no snapshot held the action is a benign no-op reporting
// Restored=false. Groups created by a grouping action since the capture are
// removed; their members return to their captured positions. Layers added
// since the capture are appended after the restored order; layers removed
// since the capture are skipped.
func (e *Engine) Restore(req *RestoreRequest) (*RestoreResult, error) {
	s, err := e.beginAction(req.ProjectPath)
	if err != nil {
		return nil, err
	}

	if s.snap == nil {
		return &RestoreResult{Restored: false}, nil
	}

	p := plan.New("restore", "")

	restored := rebuildOrder(s.snap.Order, s.doc.Nodes, p)
	result := &RestoreResult{
		Plan:     p,
		Restored: true,
		Order:    displayNames(restored),
	}

	if req.DryRun {
		return result, nil
	}

	s.doc.Nodes = restored

	// Clear the slot before the commit's state update: a successful
	// restore leaves no snapshot behind.
	s.snap = nil
	if err := e.commit(s); err != nil {
		return nil, err
	}
	if err := e.stateStore.Delete(s.projectID); err != nil {
		return nil, err
	}

	return result, nil
}

// rebuildOrder reconstructs a forest from captured snapshot entries and the
// nodes of the current tree.
func rebuildOrder(entries []state.SnapshotEntry, current []layertree.Node, p *plan.Plan) []layertree.Node {
	layerIndex := make(map[string]*layertree.Layer)
	for _, l := range layertree.Layers(current) {
		layerIndex[l.ID] = l
	}
	groupIndex := make(map[string]*layertree.Group)
	indexGroups(current, groupIndex)

	used := make(map[string]bool)
	restored := materializeEntries(entries, layerIndex, groupIndex, used, p)

	// Layers that appeared after the capture have no snapshot position;
	// they keep their current relative order after the restored nodes.
	for _, l := range layertree.Layers(current) {
		if !used[l.ID] {
			restored = append(restored, l)
			p.Add(plan.Operation{
				Type:   plan.OpReorder,
				Node:   l.Name,
				Detail: "not in snapshot, appended after restored order",
			})
		}
	}

	return restored
}

func indexGroups(nodes []layertree.Node, index map[string]*layertree.Group) {
	for _, n := range nodes {
		if g, ok := n.(*layertree.Group); ok {
			index[g.ID] = g
			indexGroups(g.Children, index)
		}
	}
}

// materializeEntries turns snapshot entries back into nodes. Layers are
// looked up by ID in the current tree; groups are recreated with their
// captured structure, reusing the surviving group's panel flags when it
// still exists.
func materializeEntries(
	entries []state.SnapshotEntry,
	layerIndex map[string]*layertree.Layer,
	groupIndex map[string]*layertree.Group,
	used map[string]bool,
	p *plan.Plan,
) []layertree.Node {
	var nodes []layertree.Node
	for _, entry := range entries {
		switch entry.Kind {
		case state.KindLayer:
			layer, ok := layerIndex[entry.ID]
			if !ok {
				// Removed from the project since the capture.
				continue
			}
			used[entry.ID] = true
			nodes = append(nodes, layer)

		case state.KindGroup:
			group := &layertree.Group{
				ID:       entry.ID,
				Name:     entry.Name,
				Visible:  true,
				Expanded: true,
			}
			if existing, ok := groupIndex[entry.ID]; ok {
				group.Visible = existing.Visible
				group.Expanded = existing.Expanded
			} else {
				p.Add(plan.Operation{
					Type:   plan.OpCreateGroup,
					Node:   entry.Name,
					Detail: fmt.Sprintf("recreated with %d captured members", len(entry.Children)),
				})
			}
			group.Children = materializeEntries(entry.Children, layerIndex, groupIndex, used, p)
			nodes = append(nodes, group)
		}
	}
	return nodes
}
