package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/nearby/internal/app"
	"github.com/runoshun/nearby/internal/usecase"
)

// newRecommendCommand creates the recommend command.
func newRecommendCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Lat float64
		Lon float64
	}

	cmd := &cobra.Command{
		Use:     "recommend",
		Aliases: []string{"rec"},
		Short:   "Show the task to do here",
		Long: `Recommend the single task whose location is closest to you.

Only tasks within 30 km are considered. Ties go to the earliest due date,
then the highest priority.

The position comes from --lat/--lon, the [location] config section, or
NEARBY_LAT/NEARBY_LON, in that order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input usecase.RecommendTaskInput
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
				if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
					return fmt.Errorf("--lat and --lon must be given together")
				}
				input.Latitude = &opts.Lat
				input.Longitude = &opts.Lon
			}

			out, err := c.RecommendTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("Error getting location: %w", err) //nolint:staticcheck // User-facing message
			}

			w := cmd.OutOrStdout()
			if out.Task == nil {
				_, _ = fmt.Fprintln(w, "No tasks nearby")
				return nil
			}

			_, _ = fmt.Fprintf(w, "#%d %s (%s, %.1f km away)\n", out.Index, out.Task.Name, out.Task.Location, out.DistanceKm)
			if out.Task.DueDate != "" {
				_, _ = fmt.Fprintf(w, "  due %s, %s priority\n", out.Task.DueDate, out.Task.Priority)
			}
			if out.Task.Description != "" {
				_, _ = fmt.Fprintf(w, "  %s\n", out.Task.Description)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.Lat, "lat", 0, "Current latitude")
	cmd.Flags().Float64Var(&opts.Lon, "lon", 0, "Current longitude")

	return cmd
}
