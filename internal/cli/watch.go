package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/geodeck/layerctl/internal/logging"
	"github.com/geodeck/layerctl/internal/watch"
)

var watchVerbose bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the project document and discard stale saved orders",
	Long: `Watch the project document for edits made outside layerctl.

When the document is rewritten by another tool, the saved original order no
longer matches the tree and is discarded, so a restore never applies a stale
order to an unrelated project. Runs until interrupted.`,
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

		log, err := logging.New(watchVerbose)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		w, err := watch.New(projectPath, eng, log)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "Enable debug logging")
}
