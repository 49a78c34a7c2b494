package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"strava-dashboard/internal/pipeline"
	"strava-dashboard/internal/strava"
)

func NewExportCommand() *cobra.Command {
	var (
		opts    pipeline.Options
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch activities from Strava and write them to a file",
		Long: `Exchange the refresh token for an access token, fetch every activity page and
write the collection to --out. The format follows the extension: .csv and
.xlsx write a fixed column projection, .db/.sqlite write an archive, anything
else writes the full JSON document. The destination is replaced, never merged.

Credentials are read from STRAVA_CLIENT_ID, STRAVA_CLIENT_SECRET and
STRAVA_REFRESH_TOKEN, in the environment or a .env file next to the binary or
in the working directory.`,
		Example: `  strava-dashboard export --out data/activities.json --per-page 200
  strava-dashboard export --after 2024-01-01 --before 2024-12-31 --out 2024.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Timeout = timeout
			res, err := pipeline.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Summary())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Out, "out", pipeline.DefaultOutput, "Output path (.json, .csv, .xlsx, .db)")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", strava.MaxPerPage, "Activities per page (max 200)")
	cmd.Flags().IntVar(&opts.MaxPages, "max-pages", 0, "Stop after this many pages (0 = no limit)")
	cmd.Flags().StringVar(&opts.After, "after", "", "Only activities on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Before, "before", "", "Only activities before this date (YYYY-MM-DD)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for each Strava request")

	return cmd
}
