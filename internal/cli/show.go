package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geodeck/layerctl/internal/engine"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the project's layer tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		projectPath, err := resolveProjectPath()
		if err != nil {
			return err
		}

		nodes, err := eng.Tree(&engine.StatusRequest{ProjectPath: projectPath})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(nodes)
		}

		if len(nodes) == 0 {
			PrintEmptyState("The project has no layers.")
			return nil
		}
		printTree(nodes, 0)
		return nil
	},
}

// printTree renders the tree with indentation, one node per line.
func printTree(nodes []engine.TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		if n.Kind == "group" {
			PrintInfo(fmt.Sprintf("%s%s/", indent, n.Name))
			printTree(n.Children, depth+1)
			continue
		}
		if n.Geometry != "" && n.Geometry != "unknown" {
			PrintInfo(fmt.Sprintf("%s%s [%s]", indent, n.Name, n.Geometry))
		} else {
			PrintInfo(fmt.Sprintf("%s%s", indent, n.Name))
		}
	}
}
