package engine

import (
	"github.com/geodeck/layerctl/internal/layertree"
)

// TreeNode is a display-oriented view of one tree node.
type TreeNode struct {
	// Name is the display name.
	Name string `json:"name"`

	// Kind is "layer" or "group".
	Kind string `json:"kind"`

	// Geometry names the layer's geometry kind (layers only).
	Geometry string `json:"geometry,omitempty"`

	// Source is the layer's data source string (layers only).
	Source string `json:"source,omitempty"`

	// Children contains the group's children (groups only).
	Children []TreeNode `json:"children,omitempty"`
}

// Tree returns the project's layer tree for display.
func (e *Engine) Tree(req *StatusRequest) ([]TreeNode, error) {
	s, err := e.beginAction(req.ProjectPath)
	if err != nil {
		return nil, err
	}
	return treeNodes(s.doc.Nodes), nil
}

func treeNodes(nodes []layertree.Node) []TreeNode {
	out := make([]TreeNode, 0, len(nodes))
	for _, n := range nodes {
		switch node := n.(type) {
		case *layertree.Layer:
			out = append(out, TreeNode{
				Name:     node.Name,
				Kind:     "layer",
				Geometry: node.Geometry.String(),
				Source:   node.Source,
			})
		case *layertree.Group:
			out = append(out, TreeNode{
				Name:     node.Name,
				Kind:     "group",
				Children: treeNodes(node.Children),
			})
		}
	}
	return out
}
