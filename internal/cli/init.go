package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geodeck/layerctl/internal/fsops"
	"github.com/geodeck/layerctl/internal/project"
)

var initName string

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Create an empty project document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		fs := fsops.NewRealFS()

		exists, err := fs.Exists(path)
		if err != nil {
			return fmt.Errorf("failed to check project path: %w", err)
		}
		if exists {
			return fmt.Errorf("project document already exists: %s", path)
		}

		store := project.NewFileStore(fs)
		doc := &project.Document{Name: initName}
		if err := store.Save(path, doc); err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Created project document %s", path))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Project display name")
}
