package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geodeck/layerctl/internal/engine"
)

var restoreDryRun bool

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the layer order saved before the first sort or group",
	Long: `Restore the top-level layer order captured before the first sort or group
action. Groups created by a 'layerctl group' action are removed and their
layers return to their saved positions. The saved order is cleared after a
successful restore.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		projectPath, err := resolveProjectPath()
		if err != nil {
			return err
		}

		result, err := eng.Restore(&engine.RestoreRequest{
			ProjectPath: projectPath,
			DryRun:      restoreDryRun,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if !result.Restored {
			PrintWarning("No original order has been saved yet. Use a sort or group option first.")
			return nil
		}

		if restoreDryRun {
			PrintSection("Dry Run")
			printPlan(result.Plan)
			return nil
		}

		PrintSuccess(fmt.Sprintf("Restored original order (%s)", PrintCount(len(result.Order), "node", "nodes")))
		PrintNumberedList(result.Order, 1)
		return nil
	},
}

func init() {
	restoreCmd.Flags().BoolVar(&restoreDryRun, "dry-run", false, "Show the changes without rewriting the project")
}
