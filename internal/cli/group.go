package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geodeck/layerctl/internal/engine"
	"github.com/geodeck/layerctl/internal/plan"
)

var groupDryRun bool

var groupCmd = &cobra.Command{
	Use:   "group <criterion>",
	Short: "Regroup all layers by a criterion",
	Long: `Regroup the project's layers by the given criterion.

Existing top-level groups are dissolved first, then one group is created per
category. The tree from before the first sort or group action is saved and
can be brought back with 'layerctl restore'.

Criteria:
` + criteriaHelp(engine.GroupActions()),
	Args:      cobra.ExactArgs(1),
	ValidArgs: criteriaNames(engine.GroupActions()),
	RunE: func(cmd *cobra.Command, args []string) error {
		criterion, err := engine.ParseGroupCriterion(args[0])
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

		result, err := eng.Group(&engine.GroupRequest{
			ProjectPath: projectPath,
			Criterion:   criterion,
			DryRun:      groupDryRun,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if groupDryRun {
			PrintSection("Dry Run")
			PrintInfo(fmt.Sprintf("Would create %s", PrintCount(len(result.Buckets), "group", "groups")))
			printPlan(result.Plan)
			return nil
		}

		PrintSuccess(fmt.Sprintf("Created %s (%s)", PrintCount(len(result.Buckets), "group", "groups"), actionLabel(engine.GroupActions(), args[0])))
		for _, b := range result.Buckets {
			PrintLabelValue(b.Name, PrintCount(b.Layers, "layer", "layers"))
		}
		if result.SnapshotCaptured {
			PrintInfo("Original order saved; use 'layerctl restore' to bring it back.")
		}
		return nil
	},
}

func init() {
	groupCmd.Flags().BoolVar(&groupDryRun, "dry-run", false, "Show the changes without rewriting the project")
}

// printPlan lists a plan's operations.
func printPlan(p *plan.Plan) {
	if p == nil || p.IsEmpty() {
		PrintEmptyState("No changes.")
		return
	}
	items := make([]string, 0, len(p.Operations))
	for _, op := range p.Operations {
		items = append(items, fmt.Sprintf("%s: %s (%s)", op.Type, op.Node, op.Detail))
	}
	PrintList(items, 1)
}
