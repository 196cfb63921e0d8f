package commands

import (
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/spf13/cobra"
)

func newModeCommand(h *holder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Show or change the data source (local or api)",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the current data source",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), h.app.Mode.Mode(cmd.Context()))
				return nil
			},
		},
		&cobra.Command{
			Use:       "set [local|api]",
			Short:     "Switch the data source",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(domain.ModeLocal), string(domain.ModeAPI)},
			RunE: func(cmd *cobra.Command, args []string) error {
				mode := domain.DataSourceMode(args[0])
				if err := h.app.Mode.Set(cmd.Context(), mode); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Data source switched to %s\n", mode)
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Flip between local and api",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				mode, err := h.app.Mode.Toggle(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Data source switched to %s\n", mode)
				return nil
			},
		},
	)

	return cmd
}
