package engine

import (
	"fmt"
	"slices"

	"github.com/geodeck/layerctl/internal/layertree"
	"github.com/geodeck/layerctl/internal/plan"
)

// Sort reorders the top-level layer tree by the requested criterion.
//
// Groups at the top level are sorted one level deep: their immediate
// children are ordered by the same criterion, and the group itself is
// placed among its siblings using its first post-sort child as the
// representative key. Deeper nesting is left untouched.
//
// The first sort or group action since the snapshot slot was last cleared
// captures the original order before rewriting the tree. Empty and
// single-node trees are no-ops that still capture a snapshot.
func (e *Engine) Sort(req *SortRequest) (*SortResult, error) {
	if _, err := ParseSortCriterion(string(req.Criterion)); err != nil {
		return nil, err
	}

	s, err := e.beginAction(req.ProjectPath)
	if err != nil {
		return nil, err
	}

	// Capture before sorting: group children are reordered in place, and
	// the snapshot must record the pre-action structure.
	if !req.DryRun {
		e.captureSnapshot(s)
	}

	p := plan.New("sort", string(req.Criterion))
	sorted := e.sortTopLevel(s.doc.Nodes, req.Criterion, p)

	result := &SortResult{
		Plan:  p,
		Order: displayNames(sorted),
	}

	if req.DryRun {
		return result, nil
	}

	s.doc.Nodes = sorted
	if err := e.commit(s); err != nil {
		return nil, err
	}

	result.SnapshotCaptured = s.snapCaptured
	return result, nil
}

// sortTopLevel returns the top-level nodes in sorted order, recording every
// position change in the plan.
func (e *Engine) sortTopLevel(nodes []layertree.Node, crit SortCriterion, p *plan.Plan) []layertree.Node {
	type keyed struct {
		key  nodeKey
		node layertree.Node
	}

	keyedNodes := make([]keyed, 0, len(nodes))
	for _, n := range nodes {
		switch node := n.(type) {
		case *layertree.Group:
			e.sortChildren(node, crit, p)
			keyedNodes = append(keyedNodes, keyed{e.groupKey(crit, node), node})
		case *layertree.Layer:
			keyedNodes = append(keyedNodes, keyed{e.layerKey(crit, node), node})
		}
	}

	slices.SortStableFunc(keyedNodes, func(a, b keyed) int {
		return compareKeys(crit, a.key, b.key)
	})

	sorted := make([]layertree.Node, len(keyedNodes))
	for i, kn := range keyedNodes {
		sorted[i] = kn.node
	}

	for from, n := range nodes {
		to := slices.Index(sorted, n)
		if to != from {
			p.Add(plan.Operation{
				Type:   plan.OpReorder,
				Node:   n.DisplayName(),
				Detail: fmt.Sprintf("moved from position %d to %d", from+1, to+1),
			})
		}
	}

	return sorted
}

// sortChildren orders a group's immediate children in place. Sub-groups
// among the children are keyed by their fallback key; their own children
// are not touched.
func (e *Engine) sortChildren(g *layertree.Group, crit SortCriterion, p *plan.Plan) {
	if len(g.Children) < 2 {
		return
	}

	before := slices.Clone(g.Children)
	slices.SortStableFunc(g.Children, func(a, b layertree.Node) int {
		return compareKeys(crit, e.childKey(crit, a), e.childKey(crit, b))
	})

	for from, n := range before {
		to := slices.Index(g.Children, n)
		if to != from {
			p.Add(plan.Operation{
				Type:   plan.OpReorder,
				Node:   n.DisplayName(),
				Detail: fmt.Sprintf("moved from position %d to %d in group %q", from+1, to+1, g.Name),
			})
		}
	}
}

// childKey computes the key of a group's immediate child.
func (e *Engine) childKey(crit SortCriterion, n layertree.Node) nodeKey {
	switch node := n.(type) {
	case *layertree.Layer:
		return e.layerKey(crit, node)
	case *layertree.Group:
		return groupFallbackKey(crit, node)
	}
	return nodeKey{missing: true}
}

// groupKey derives a group's representative key from its first (post-sort)
// child, falling back to the group's own attributes when it is empty.
func (e *Engine) groupKey(crit SortCriterion, g *layertree.Group) nodeKey {
	if len(g.Children) == 0 {
		return groupFallbackKey(crit, g)
	}
	return e.childKey(crit, g.Children[0])
}

// displayNames lists the display names of an ordered forest.
func displayNames(nodes []layertree.Node) []string {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.DisplayName()
	}
	return names
}
