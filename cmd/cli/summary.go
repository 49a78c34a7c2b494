package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"strava-dashboard/internal/config"
	"strava-dashboard/internal/dataset"
)

type summaryOptions struct {
	dataPath string
	year     int
	month    int
	sports   []string
}

func NewSummaryCommand() *cobra.Command {
	var opts summaryOptions

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print dashboard totals for the exported dataset",
		Long: `Load the exported dataset and print the headline totals, the latest activity
and weekly volume for the selected month. Without flags the latest month of
the latest year is shown, across every sport.`,
		Example: `  strava-dashboard summary
  strava-dashboard summary --year 2025 --month 3 --sport Run --sport TrailRun`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadSettings()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if opts.dataPath == "" {
				opts.dataPath = cfg.DataPath
			}
			return runSummary(cmd.OutOrStdout(), opts, cfg.HomeLocation(), time.Now())
		},
	}

	cmd.Flags().StringVar(&opts.dataPath, "data", "", "Exported dataset (default $DATA_PATH)")
	cmd.Flags().IntVar(&opts.year, "year", 0, "ISO year (default: latest)")
	cmd.Flags().IntVar(&opts.month, "month", 0, "Month 1-12 (default: latest in the year)")
	cmd.Flags().StringSliceVar(&opts.sports, "sport", nil, "Sport to include, repeatable (default: all)")

	return cmd
}

func runSummary(w io.Writer, opts summaryOptions, loc *time.Location, now time.Time) error {
	if opts.month < 0 || opts.month > 12 {
		return fmt.Errorf("--month must be between 1 and 12")
	}

	snap, err := dataset.Load(opts.dataPath)
	if err != nil {
		return err
	}

	frame := dataset.Normalize(snap.Activities, loc)
	q, _ := frame.DefaultQuery()
	if opts.year != 0 && opts.year != q.Year {
		q = q.WithYear(opts.year)
		if months := frame.Months(opts.year); len(months) > 0 {
			q = q.WithMonth(months[len(months)-1].Number)
		}
	}
	if opts.month != 0 {
		q = q.WithMonth(opts.month)
	}
	if len(opts.sports) > 0 {
		q = q.WithSports(opts.sports...)
	}

	view := dataset.BuildView(frame, q, now)
	printSummary(w, view)
	return nil
}

func printSummary(w io.Writer, view dataset.View) {
	if view.Notice != nil {
		fmt.Fprintln(w, view.Notice.Message)
		if view.KPIs.Activities == 0 && len(view.Options.Years) == 0 {
			return
		}
	}

	q := view.Query
	fmt.Fprintf(w, "%s %d", time.Month(q.Month), q.Year)
	if len(q.Sports) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(q.Sports, ", "))
	}
	fmt.Fprintln(w)

	k := view.KPIs
	fmt.Fprintf(w, "  Activities: %d\n", k.Activities)
	fmt.Fprintf(w, "  Distance:   %.1f km\n", k.DistanceKm)
	fmt.Fprintf(w, "  Time:       %.1f h\n", k.MovingTimeH)
	fmt.Fprintf(w, "  Elevation:  %.0f m\n", k.ElevationM)

	if l := view.Latest; l != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Latest: %s (%s)\n", l.Name, l.Sport)
		if l.Country != nil {
			fmt.Fprintf(w, "  %s, %s\n", l.Start, *l.Country)
		} else {
			fmt.Fprintf(w, "  %s\n", l.Start)
		}
		fmt.Fprintf(w, "  %.2f km in %s (elapsed %s)\n", l.DistanceKm, l.MovingTime, l.ElapsedTime)
		switch {
		case l.RunLike && l.PaceMinKm != nil:
			fmt.Fprintf(w, "  Avg pace: %.2f min/km\n", *l.PaceMinKm)
		case !l.RunLike && l.SpeedKmh != nil:
			fmt.Fprintf(w, "  Avg speed: %.1f km/h\n", *l.SpeedKmh)
		}
		if l.AvgHR != nil {
			fmt.Fprintf(w, "  Avg HR: %.0f bpm\n", *l.AvgHR)
		}
		if l.URL != "" {
			fmt.Fprintf(w, "  %s\n", l.URL)
		}
	}

	if len(view.Weekly) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Weekly volume:")
		for _, wk := range view.Weekly {
			fmt.Fprintf(w, "  %s  %6.1f km  %5.1f h\n", wk.WeekStart, wk.DistanceKm, wk.MovingTimeH)
		}
	}

	r := view.Running
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Running this week: %.1f km over %d runs (%+.0f%% vs last week)\n",
		r.KmThisWeek, r.ActivityCount, r.LoadPct)
	if f := view.FastestRun; f != nil {
		fmt.Fprintf(w, "Fastest run: %s over %.1f km on %s\n", dataset.FormatPace(f.PaceSecPerKm), f.DistanceKm, f.Date)
	}
}
