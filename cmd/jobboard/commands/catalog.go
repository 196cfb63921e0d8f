package commands

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/seed"

	"github.com/spf13/cobra"
)

func newCatalogCommand(h *holder) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the job types and locations used by filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			types, locations := catalog(cmd.Context(), h.app)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "types: %s\n", strings.Join(types, ", "))
			fmt.Fprintf(out, "locations: %s\n", strings.Join(locations, ", "))
			return nil
		},
	}
}

// catalog asks the API in api mode and falls back to the built-in lists.
func catalog(ctx context.Context, app *App) ([]string, []string) {
	types, locations := seed.JobTypes(), seed.Locations()
	if app.Mode.Mode(ctx) != domain.ModeAPI {
		return types, locations
	}
	if remote, err := app.API.JobTypes(ctx); err == nil {
		types = remote
	} else {
		app.Logger.Warn("Failed to fetch job types from API", "error", err)
	}
	if remote, err := app.API.Locations(ctx); err == nil {
		locations = remote
	} else {
		app.Logger.Warn("Failed to fetch locations from API", "error", err)
	}
	return types, locations
}
