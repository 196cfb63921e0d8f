package commands

import (
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/spf13/cobra"
)

func newLoginCommand(h *holder) *cobra.Command {
	var profile domain.Profile

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Create or show the local user identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := h.app.Session.EnsureLoggedIn(cmd.Context(), profile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", user.NickName, user.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&profile.NickName, "nick", "", "display name")
	cmd.Flags().StringVar(&profile.AvatarURL, "avatar", "", "avatar URL")
	return cmd
}
