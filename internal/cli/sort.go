package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geodeck/layerctl/internal/engine"
)

var sortDryRun bool

var sortCmd = &cobra.Command{
	Use:   "sort <criterion>",
	Short: "Sort top-level layers by a criterion",
	Long: `Sort the project's top-level layers by the given criterion.

Layers inside top-level groups are sorted as well, and the groups themselves
are reordered among their siblings. The order from before the first sort or
group action is saved and can be brought back with 'layerctl restore'.

Criteria:
` + criteriaHelp(engine.SortActions()),
	Args:      cobra.ExactArgs(1),
	ValidArgs: criteriaNames(engine.SortActions()),
	RunE: func(cmd *cobra.Command, args []string) error {
		criterion, err := engine.ParseSortCriterion(args[0])
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}
		projectPath, err := resolveProjectPath()
		if err != nil {
			return err
		}

		result, err := eng.Sort(&engine.SortRequest{
			ProjectPath: projectPath,
			Criterion:   criterion,
			DryRun:      sortDryRun,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if sortDryRun {
			PrintSection("Dry Run")
			PrintInfo(fmt.Sprintf("Would apply %s", PrintCount(len(result.Plan.Operations), "change", "changes")))
			printPlan(result.Plan)
			return nil
		}

		PrintSuccess(fmt.Sprintf("Sorted %s (%s)", PrintCount(len(result.Order), "node", "nodes"), actionLabel(engine.SortActions(), args[0])))
		PrintNumberedList(result.Order, 1)
		if result.SnapshotCaptured {
			PrintInfo("Original order saved; use 'layerctl restore' to bring it back.")
		}
		return nil
	},
}

func init() {
	sortCmd.Flags().BoolVar(&sortDryRun, "dry-run", false, "Show the changes without rewriting the project")
}

// criteriaHelp renders the criterion list for command help text.
func criteriaHelp(actions []engine.Action) string {
	var b strings.Builder
	for _, a := range actions {
		fmt.Fprintf(&b, "  %-10s %s\n", a.Criterion, a.Description)
	}
	return b.String()
}

// criteriaNames lists the criterion names for shell completion.
func criteriaNames(actions []engine.Action) []string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.Criterion
	}
	return names
}

// actionLabel returns the menu-style label of a criterion.
func actionLabel(actions []engine.Action, criterion string) string {
	for _, a := range actions {
		if a.Criterion == criterion {
			return a.Label
		}
	}
	return criterion
}
