package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/spf13/cobra"
)

const defaultChatWait = 3 * time.Second

func newChatCommand(h *holder) *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the recruiter of a job",
	}
	cmd.PersistentFlags().DurationVarP(&wait, "wait", "w", defaultChatWait, "how long to wait for recruiter replies")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "open [job-id]",
			Short: "Show the conversation for a job",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				chatID := args[0]
				history, err := h.app.Chat.Open(ctx, chatID, jobTitle(ctx, h.app, chatID))
				if err != nil {
					return err
				}
				if len(history) == 0 {
					sleep(ctx, wait)
				}
				return printHistory(ctx, cmd.OutOrStdout(), h.app, chatID)
			},
		},
		&cobra.Command{
			Use:   "send [job-id] [message]",
			Short: "Send a message to the recruiter",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				user, err := h.app.Session.EnsureLoggedIn(ctx, domain.Profile{})
				if err != nil {
					return err
				}
				if _, err := h.app.Chat.Send(ctx, args[0], user.UserID, strings.Join(args[1:], " ")); err != nil {
					return err
				}
				sleep(ctx, wait)
				return printHistory(ctx, cmd.OutOrStdout(), h.app, args[0])
			},
		},
	)

	return cmd
}

func jobTitle(ctx context.Context, app *App, id string) string {
	jobs, err := app.Jobs.GetJobs(ctx)
	if err != nil {
		return id
	}
	for _, job := range jobs {
		if job.ID == id {
			return job.Title
		}
	}
	return id
}

func printHistory(ctx context.Context, w io.Writer, app *App, chatID string) error {
	history, err := app.Chat.History(ctx, chatID)
	if err != nil {
		return err
	}
	for _, m := range history {
		who := "me"
		if m.FromRecruiter() {
			who = "recruiter"
		}
		fmt.Fprintf(w, "%s  %-9s  %s\n", time.UnixMilli(m.Timestamp).Format("15:04:05"), who, m.Content)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
