// Package project loads and saves layer-tree project documents.
//
// A project document is a YAML file describing the ordered forest of layers
// and groups shown in the layers panel. The document is the system of
// record: every sort, group, and restore action reads the tree fresh from
// the document and writes the rewritten tree back atomically.
package project

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/geodeck/layerctl/internal/layertree"
)

// Document is a parsed project file.
type Document struct {
	// Name is the project's display name.
	Name string

	// Nodes is the ordered forest of top-level tree nodes.
	Nodes []layertree.Node
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{
		Name:  d.Name,
		Nodes: layertree.CloneAll(d.Nodes),
	}
}

// ComputeProjectID computes a stable project ID from the project file path.
// This ID is used to name the per-project snapshot state file.
func ComputeProjectID(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	sum := sha256.Sum256([]byte(abs))
	return hex.EncodeToString(sum[:])
}

// docFile is the YAML shape of a project document.
type docFile struct {
	Name   string    `yaml:"name,omitempty"`
	Layers []docNode `yaml:"layers"`
}

// docNode is one entry in a document's layer list. An entry is a group when
// the "group" key is set, and a layer otherwise.
type docNode struct {
	ID       string    `yaml:"id,omitempty"`
	Name     string    `yaml:"name,omitempty"`
	Source   string    `yaml:"source,omitempty"`
	Provider string    `yaml:"provider,omitempty"`
	Geometry string    `yaml:"geometry,omitempty"`
	Features *int64    `yaml:"features,omitempty"`
	Visible  *bool     `yaml:"visible,omitempty"`
	Expanded *bool     `yaml:"expanded,omitempty"`
	Group    string    `yaml:"group,omitempty"`
	Children []docNode `yaml:"children,omitempty"`
}

// toNodes converts document entries to tree nodes.
func toNodes(entries []docNode) ([]layertree.Node, error) {
	nodes := make([]layertree.Node, 0, len(entries))
	for _, e := range entries {
		node, err := toNode(e)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func toNode(e docNode) (layertree.Node, error) {
	if e.Group != "" {
		children, err := toNodes(e.Children)
		if err != nil {
			return nil, fmt.Errorf("in group %q: %w", e.Group, err)
		}
		return &layertree.Group{
			ID:       e.ID,
			Name:     e.Group,
			Children: children,
			Visible:  boolOrDefault(e.Visible, true),
			Expanded: boolOrDefault(e.Expanded, true),
		}, nil
	}

	if e.Name == "" {
		return nil, fmt.Errorf("layer entry has no name")
	}
	geom, err := layertree.ParseGeometry(e.Geometry)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", e.Name, err)
	}

	return &layertree.Layer{
		ID:       e.ID,
		Name:     e.Name,
		Source:   e.Source,
		Provider: e.Provider,
		Geometry: geom,
		Features: e.Features,
		Visible:  boolOrDefault(e.Visible, true),
		Expanded: boolOrDefault(e.Expanded, false),
	}, nil
}

// fromNodes converts tree nodes back to document entries.
func fromNodes(nodes []layertree.Node) []docNode {
	entries := make([]docNode, 0, len(nodes))
	for _, n := range nodes {
		entries = append(entries, fromNode(n))
	}
	return entries
}

func fromNode(n layertree.Node) docNode {
	switch node := n.(type) {
	case *layertree.Group:
		return docNode{
			ID:       node.ID,
			Group:    node.Name,
			Children: fromNodes(node.Children),
			Visible:  omitIfDefault(node.Visible, true),
			Expanded: omitIfDefault(node.Expanded, true),
		}
	case *layertree.Layer:
		return docNode{
			ID:       node.ID,
			Name:     node.Name,
			Source:   node.Source,
			Provider: node.Provider,
			Geometry: geometryString(node.Geometry),
			Features: node.Features,
			Visible:  omitIfDefault(node.Visible, true),
			Expanded: omitIfDefault(node.Expanded, false),
		}
	default:
		return docNode{}
	}
}

// geometryString renders a geometry kind for the document, leaving the field
// empty for the unknown kind.
func geometryString(k layertree.GeometryKind) string {
	if k == layertree.GeometryUnknown {
		return ""
	}
	return k.String()
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// omitIfDefault returns nil when the value matches the default, so the
// serialized document stays free of noise.
func omitIfDefault(v, def bool) *bool {
	if v == def {
		return nil
	}
	return &v
}
