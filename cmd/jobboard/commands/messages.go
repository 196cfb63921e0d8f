package commands

import (
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/spf13/cobra"
)

func newMessagesCommand(h *holder) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"msg"},
		Short:   "Read and leave messages",
	}

	var contact string
	post := &cobra.Command{
		Use:   "post [content]",
		Short: "Leave a message (at most 300 characters)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := h.app.Messages.Post(cmd.Context(), domain.MessageDraft{Content: args[0], Contact: contact})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Posted message %s\n", msg.ID)
			return nil
		},
	}
	post.Flags().StringVarP(&contact, "contact", "c", "", "how to reach you")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List messages, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				messages := h.app.Messages.List(cmd.Context())
				if len(messages) == 0 {
					fmt.Fprintln(out, "No messages")
					return nil
				}
				for _, m := range messages {
					fmt.Fprintf(out, "%s  %s  (%s)\n", m.CreatedAt, m.Content, m.Contact)
				}
				return nil
			},
		},
		post,
	)

	return cmd
}
