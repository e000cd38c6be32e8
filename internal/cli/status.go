package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/geodeck/layerctl/internal/engine"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the project and saved-order status",
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

		result, err := eng.Status(&engine.StatusRequest{ProjectPath: projectPath})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Project Status")
		if result.ProjectName != "" {
			PrintLabelValue("Project", result.ProjectName)
		}
		PrintLabelValue("Document", result.ProjectPath)
		PrintLabelValue("Top-level nodes", fmt.Sprintf("%d (%s)", result.TopLevelNodes, PrintCount(result.TopLevelGroups, "group", "groups")))
		PrintLabelValue("Total layers", fmt.Sprintf("%d", result.TotalLayers))

		if result.SnapshotDiscarded {
			PrintWarning("The project changed outside layerctl; the saved order was discarded.")
		}
		if result.SnapshotHeld {
			PrintLabelValue("Original order", fmt.Sprintf("saved %s", result.SnapshotCapturedAt.Format(time.RFC3339)))
		} else {
			PrintEmptyState("No original order saved.")
		}
		return nil
	},
}
