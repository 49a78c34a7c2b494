package dataset

import (
	"fmt"
	"math"
	"time"
)

// RunSport is the sport label the running metrics consider
const RunSport = "Run"

// DefaultFastestMinKm is the shortest run eligible for the fastest pace
const DefaultFastestMinKm = 5.0

// WeeklyRunning summarises runs in the ISO week containing the anchor
type WeeklyRunning struct {
	WeekStart            string  `json:"week_start"`
	KmThisWeek           float64 `json:"km_this_week"`
	KmPrevWeek           float64 `json:"km_prev_week"`
	AvgHRThisWeek        float64 `json:"avg_hr_this_week"`
	LoadPct              float64 `json:"load_pct"`
	ActivityCount        int     `json:"activity_count"`
	ActivityCountAllTime int     `json:"activity_count_all_time"`
}

// isRun reports whether the provider classified r as a run. Rows that only
// received the default label are not counted.
func isRun(r *Row) bool {
	sport, ok := r.Activity.Sport()
	return ok && sport == RunSport
}

// WeeklyRunning computes running volume for the week containing anchor,
// evaluated in the frame's timezone
func (f *Frame) WeeklyRunning(anchor time.Time) WeeklyRunning {
	anchor = anchor.In(f.Location)
	y, m, d := anchor.Date()
	offset := (int(anchor.Weekday()) + 6) % 7
	thisWeek := time.Date(y, m, d-offset, 0, 0, 0, 0, f.Location)
	nextWeek := thisWeek.AddDate(0, 0, 7)
	prevWeek := thisWeek.AddDate(0, 0, -7)

	out := WeeklyRunning{WeekStart: thisWeek.Format(time.DateOnly)}
	var hrSum float64
	var hrCount int
	for i := range f.Rows {
		r := &f.Rows[i]
		if !isRun(r) {
			continue
		}
		out.ActivityCountAllTime++
		if r.Start == nil {
			continue
		}

		switch {
		case inRange(*r.Start, thisWeek, nextWeek):
			out.KmThisWeek += value(r.DistanceKm)
			out.ActivityCount++
			a := r.Activity
			if a.HasHeartrate != nil && *a.HasHeartrate && a.AverageHeartrate != nil && !math.IsNaN(*a.AverageHeartrate) {
				hrSum += *a.AverageHeartrate
				hrCount++
			}
		case inRange(*r.Start, prevWeek, thisWeek):
			out.KmPrevWeek += value(r.DistanceKm)
		}
	}

	if hrCount > 0 {
		out.AvgHRThisWeek = hrSum / float64(hrCount)
	}
	if out.KmPrevWeek > 0 {
		out.LoadPct = (out.KmThisWeek - out.KmPrevWeek) / out.KmPrevWeek * 100
	}
	return out
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// FastestRun is the run with the best average pace
type FastestRun struct {
	Row          Row     `json:"-"`
	ActivityID   *int64  `json:"id,omitempty"`
	Name         *string `json:"name,omitempty"`
	Date         string  `json:"date"`
	PaceSecPerKm float64 `json:"pace_sec_per_km"`
	DistanceKm   float64 `json:"distance_km"`
	MovingTimeS  float64 `json:"moving_time_s"`
}

// FastestRun returns the run of at least minKm with the lowest seconds per
// kilometre. Earlier rows win ties.
func (f *Frame) FastestRun(minKm float64) (*FastestRun, bool) {
	var best *FastestRun
	for i := range f.Rows {
		r := &f.Rows[i]
		if !isRun(r) || r.DistanceKm == nil || r.Activity.MovingTime == nil {
			continue
		}
		km, moving := *r.DistanceKm, *r.Activity.MovingTime
		if !(km >= minKm && moving > 0) {
			continue
		}

		pace := moving / km
		if best == nil || pace < best.PaceSecPerKm {
			best = &FastestRun{
				Row:          *r,
				ActivityID:   r.Activity.ID,
				Name:         r.Activity.Name,
				Date:         r.Date,
				PaceSecPerKm: pace,
				DistanceKm:   km,
				MovingTimeS:  moving,
			}
		}
	}
	return best, best != nil
}

// LastRun returns the most recent run
func (f *Frame) LastRun() (*Row, bool) {
	runs := &Frame{Location: f.Location}
	for i := range f.Rows {
		if isRun(&f.Rows[i]) {
			runs.Rows = append(runs.Rows, f.Rows[i])
		}
	}
	return runs.Latest()
}

// FormatDuration renders seconds as H:MM:SS, omitting a zero hour
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return "–"
	}
	s := int64(seconds)
	h, m, sec := s/3600, (s%3600)/60, s%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}

// FormatPace renders seconds per kilometre as M:SS /km
func FormatPace(secPerKm float64) string {
	if math.IsNaN(secPerKm) || math.IsInf(secPerKm, 0) || secPerKm <= 0 {
		return "–"
	}
	minutes := int64(secPerKm / 60)
	seconds := int64(math.Round(math.Mod(secPerKm, 60)))
	if seconds == 60 {
		minutes++
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d /km", minutes, seconds)
}
