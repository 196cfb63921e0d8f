package commands

import (
	"fmt"
	"io"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/listing"

	"github.com/spf13/cobra"
)

func newJobsCommand(h *holder) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jobs",
		Aliases: []string{"j"},
		Short:   "List and post jobs",
	}

	cmd.AddCommand(
		newJobsListCommand(h),
		newJobsPostCommand(h),
	)

	return cmd
}

func newJobsListCommand(h *holder) *cobra.Command {
	var filters listing.Filters
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters.Keyword = strings.TrimSpace(filters.Keyword)
			feed := listing.NewFeed(h.app.Jobs, h.app.Bus, h.app.Logger)
			if err := feed.Mount(cmd.Context()); err != nil {
				return err
			}
			defer feed.Unmount()

			feed.SetPageSize(pageSize)
			feed.SetFilters(filters)
			for feed.Page() < page && feed.LoadMore() {
			}

			out := cmd.OutOrStdout()
			jobs := feed.Visible()
			if len(jobs) == 0 {
				fmt.Fprintln(out, "No jobs found")
				return nil
			}
			for _, job := range jobs {
				printJob(out, job)
			}
			if feed.HasMore() {
				fmt.Fprintf(out, "-- more results: --page %d --\n", feed.Page()+1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filters.Keyword, "keyword", "k", "", "match title, company or description")
	cmd.Flags().StringVarP(&filters.Type, "type", "t", listing.All, "job type, or all")
	cmd.Flags().StringVarP(&filters.Location, "location", "l", listing.All, "location, or all")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "number of pages to show")
	cmd.Flags().IntVar(&pageSize, "page-size", listing.DefaultPageSize, "jobs per page")
	return cmd
}

func newJobsPostCommand(h *holder) *cobra.Command {
	var draft domain.JobDraft
	var workingPeriod, contactPhone string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft.WorkingPeriod = domain.StringPtr(workingPeriod)
			draft.ContactPhone = domain.StringPtr(contactPhone)
			if err := draft.Validate(); err != nil {
				return err
			}

			created, err := h.app.Jobs.CreateJob(cmd.Context(), draft)
			if err != nil {
				return fmt.Errorf("failed to post job: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Posted job %s at %s\n", created.Job.ID, created.Job.CreatedAt)
			if !created.Durable {
				fmt.Fprintln(out, "Saved locally only; it will not be visible to others")
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&draft.Title, "title", "", "job title")
	f.StringVar(&draft.Company, "company", "", "company name")
	f.StringVar(&draft.Location, "location", "", "work location")
	f.StringVar(&draft.Type, "type", "", "job type")
	f.StringVar(&draft.Salary, "salary", "", "salary, e.g. 300-450元/天")
	f.StringVar(&draft.Duration, "duration", "", "duration, e.g. 90天 or 长期")
	f.StringVar(&draft.Description, "description", "", "at least 10 characters")
	f.StringVar(&workingPeriod, "working-period", "", "optional working period")
	f.StringVar(&contactPhone, "contact-phone", "", "optional contact phone")
	return cmd
}

func printJob(w io.Writer, job domain.Job) {
	fmt.Fprintf(w, "[%s] %s | %s | %s | %s | %s | %s\n",
		job.ID, job.Title, job.Company, job.Location, job.Type, job.Salary, job.Duration)
	if job.WorkingPeriod != nil {
		fmt.Fprintf(w, "    period: %s\n", *job.WorkingPeriod)
	}
	if job.ContactPhone != nil {
		fmt.Fprintf(w, "    phone: %s\n", *job.ContactPhone)
	}
}
