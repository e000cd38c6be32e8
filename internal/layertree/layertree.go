// Package layertree defines the in-memory model of a project's layer tree.
//
// A tree is an ordered forest of nodes. A node is either a Layer (a leaf
// bound to one data source) or a Group (an ordered container of child
// nodes). The engine only ever rewrites the top-level order of the forest;
// descendants of a group keep their internal structure.
//
// Key components:
//   - Node: common interface implemented by *Layer and *Group
//   - GeometryKind: geometry classification with a fixed sort rank
//   - Clone/Promote helpers used by the sort, group, and restore engines
package layertree

import "github.com/google/uuid"

// Node is a single entry in the layer tree.
type Node interface {
	// NodeID returns the stable identifier of the node.
	NodeID() string

	// DisplayName returns the name shown in the layers panel.
	DisplayName() string

	// Clone returns a deep copy of the node. Identifiers are preserved so
	// snapshots taken before a clone still resolve.
	Clone() Node
}

// Layer is a leaf node representing one data source: a vector or raster
// file, a database table, a network service, or an in-memory dataset.
type Layer struct {
	// ID is the stable node identifier. Empty IDs are filled in by EnsureIDs.
	ID string

	// Name is the display name.
	Name string

	// Source is the provider-specific data source string. Empty for
	// in-memory layers.
	Source string

	// Provider identifies the data provider ("ogr", "gdal", "spatialite",
	// "delimitedtext", "postgres", "wms", "wfs", "memory", ...).
	Provider string

	// Geometry is the layer's geometry classification.
	Geometry GeometryKind

	// Features is the declared feature count, or nil if not declared.
	Features *int64

	// Visible and Expanded mirror the panel check/expand state and are
	// carried through every reorder untouched.
	Visible  bool
	Expanded bool
}

// NodeID returns the layer's stable identifier.
func (l *Layer) NodeID() string { return l.ID }

// DisplayName returns the layer's display name.
func (l *Layer) DisplayName() string { return l.Name }

// Clone returns a deep copy of the layer.
func (l *Layer) Clone() Node {
	c := *l
	if l.Features != nil {
		n := *l.Features
		c.Features = &n
	}
	return &c
}

// Group is a container node holding an ordered list of child nodes.
type Group struct {
	// ID is the stable node identifier.
	ID string

	// Name is the display name.
	Name string

	// Children is the ordered list of child nodes.
	Children []Node

	// Visible and Expanded mirror the panel check/expand state.
	Visible  bool
	Expanded bool
}

// NodeID returns the group's stable identifier.
func (g *Group) NodeID() string { return g.ID }

// DisplayName returns the group's display name.
func (g *Group) DisplayName() string { return g.Name }

// Clone returns a deep copy of the group and all of its descendants.
func (g *Group) Clone() Node {
	c := &Group{
		ID:       g.ID,
		Name:     g.Name,
		Visible:  g.Visible,
		Expanded: g.Expanded,
	}
	if g.Children != nil {
		c.Children = make([]Node, len(g.Children))
		for i, child := range g.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// NewGroup creates a visible, expanded group with a fresh identifier.
func NewGroup(name string) *Group {
	return &Group{
		ID:       uuid.NewString(),
		Name:     name,
		Visible:  true,
		Expanded: true,
	}
}

// CloneAll deep-copies an ordered forest.
func CloneAll(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	clones := make([]Node, len(nodes))
	for i, n := range nodes {
		clones[i] = n.Clone()
	}
	return clones
}

// EnsureIDs assigns a fresh UUID to every node in the forest that does not
// already carry an identifier. Returns the number of IDs assigned.
func EnsureIDs(nodes []Node) int {
	assigned := 0
	for _, n := range nodes {
		switch node := n.(type) {
		case *Layer:
			if node.ID == "" {
				node.ID = uuid.NewString()
				assigned++
			}
		case *Group:
			if node.ID == "" {
				node.ID = uuid.NewString()
				assigned++
			}
			assigned += EnsureIDs(node.Children)
		}
	}
	return assigned
}

// TopLevelIDs returns the identifiers of the top-level nodes in order.
func TopLevelIDs(nodes []Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.NodeID()
	}
	return ids
}

// Layers collects every layer in the forest, at any depth, in tree order.
func Layers(nodes []Node) []*Layer {
	var out []*Layer
	for _, n := range nodes {
		switch node := n.(type) {
		case *Layer:
			out = append(out, node)
		case *Group:
			out = append(out, Layers(node.Children)...)
		}
	}
	return out
}

// PromoteTopLevel dissolves every top-level group and promotes its direct
// children to the top level, preserving order. Only one level is flattened:
// a sub-group nested inside a dissolved group is promoted intact, with its
// own children untouched.
func PromoteTopLevel(nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		if g, ok := n.(*Group); ok {
			out = append(out, g.Children...)
			continue
		}
		out = append(out, n)
	}
	return out
}

// FindByID returns the node with the given identifier, searching the forest
// at every depth, or nil if no such node exists.
func FindByID(nodes []Node, id string) Node {
	for _, n := range nodes {
		if n.NodeID() == id {
			return n
		}
		if g, ok := n.(*Group); ok {
			if found := FindByID(g.Children, id); found != nil {
				return found
			}
		}
	}
	return nil
}
