package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "strava-dashboard",
		Short: "Export Strava activities and serve a personal dashboard",
		Long: `strava-dashboard exports your Strava activity history to a local file and
serves the aggregates a dashboard needs: weekly and daily volume, distance
distribution and the latest activity.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			setupCLILogger(debug)
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(NewExportCommand())
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewSummaryCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupCLILogger keeps one-shot commands quiet unless --debug is set
func setupCLILogger(debug bool) {
	level := slog.LevelError
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
