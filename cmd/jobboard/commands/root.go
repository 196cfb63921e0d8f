package commands

import (
	"github.com/spf13/cobra"
)

type holder struct {
	app   *App
	owned bool
}

// NewRootCmd creates the root command. A nil app is built from the
// environment before any subcommand runs.
func NewRootCmd(app *App) *cobra.Command {
	h := &holder{app: app, owned: app == nil}

	rootCmd := &cobra.Command{
		Use:          "jobboard",
		Short:        "Browse and post blue-collar jobs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if h.app != nil {
				return nil
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			h.app = a
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if h.owned && h.app != nil {
				h.app.Close()
			}
		},
	}

	rootCmd.AddCommand(
		newModeCommand(h),
		newJobsCommand(h),
		newMessagesCommand(h),
		newChatCommand(h),
		newLoginCommand(h),
		newCatalogCommand(h),
	)

	return rootCmd
}
