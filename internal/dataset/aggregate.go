package dataset

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// HistogramBinKm is the width of a distance histogram bucket
const HistogramBinKm = 0.2

// KPIs are the headline totals of a frame
type KPIs struct {
	Activities  int     `json:"activities"`
	DistanceKm  float64 `json:"distance_km"`
	MovingTimeH float64 `json:"moving_time_h"`
	ElevationM  float64 `json:"elevation_gain_m"`
}

// KPIs sums the frame
func (f *Frame) KPIs() KPIs {
	k := KPIs{Activities: len(f.Rows)}
	for i := range f.Rows {
		r := &f.Rows[i]
		k.DistanceKm += value(r.DistanceKm)
		k.MovingTimeH += value(r.MovingTimeH)
		k.ElevationM += value(r.Activity.TotalElevationGain)
	}
	return k
}

// WeekTotal is one ISO week of volume
type WeekTotal struct {
	ISOYear     int     `json:"year"`
	ISOWeek     int     `json:"week"`
	WeekStart   string  `json:"week_start"`
	DistanceKm  float64 `json:"distance_km"`
	MovingTimeH float64 `json:"moving_time_h"`
	ElevationM  float64 `json:"elev_m"`
}

// Weekly groups rows by ISO week, ordered by week start
func (f *Frame) Weekly() []WeekTotal {
	weeks := []WeekTotal{}
	index := map[string]int{}
	for i := range f.Rows {
		r := &f.Rows[i]
		if r.Start == nil {
			continue
		}
		start := WeekStart(*r.Start)
		key := fmt.Sprintf("%d-%d-%s", r.ISOYear, r.ISOWeek, start)
		pos, ok := index[key]
		if !ok {
			pos = len(weeks)
			index[key] = pos
			weeks = append(weeks, WeekTotal{ISOYear: r.ISOYear, ISOWeek: r.ISOWeek, WeekStart: start})
		}
		weeks[pos].DistanceKm += value(r.DistanceKm)
		weeks[pos].MovingTimeH += value(r.MovingTimeH)
		weeks[pos].ElevationM += value(r.Activity.TotalElevationGain)
	}
	slices.SortFunc(weeks, func(a, b WeekTotal) int { return strings.Compare(a.WeekStart, b.WeekStart) })
	return weeks
}

// DayTotal is the distance covered on one calendar date
type DayTotal struct {
	Date       string  `json:"date"`
	DistanceKm float64 `json:"distance_km"`
}

// Daily groups rows by calendar date, ascending
func (f *Frame) Daily() []DayTotal {
	days := []DayTotal{}
	index := map[string]int{}
	for i := range f.Rows {
		r := &f.Rows[i]
		if r.Start == nil {
			continue
		}
		pos, ok := index[r.Date]
		if !ok {
			pos = len(days)
			index[r.Date] = pos
			days = append(days, DayTotal{Date: r.Date})
		}
		days[pos].DistanceKm += value(r.DistanceKm)
	}
	slices.SortFunc(days, func(a, b DayTotal) int { return strings.Compare(a.Date, b.Date) })
	return days
}

// Bucket is one distance histogram bar
type Bucket struct {
	DistanceKm float64 `json:"distance_bin"`
	Count      int     `json:"count"`
}

// Histogram counts rows per distance bucket, rounding each distance to the
// nearest multiple of HistogramBinKm. Rows without a distance are skipped.
func (f *Frame) Histogram() []Bucket {
	counts := map[int64]int{}
	for i := range f.Rows {
		km := f.Rows[i].DistanceKm
		if km == nil || math.IsNaN(*km) {
			continue
		}
		counts[int64(math.RoundToEven(*km/HistogramBinKm))]++
	}

	steps := make([]int64, 0, len(counts))
	for step := range counts {
		steps = append(steps, step)
	}
	slices.Sort(steps)

	buckets := make([]Bucket, 0, len(steps))
	for _, step := range steps {
		km := math.Round(float64(step)*HistogramBinKm*10) / 10
		buckets = append(buckets, Bucket{DistanceKm: km, Count: counts[step]})
	}
	return buckets
}

// Latest returns the row with the greatest local datetime
func (f *Frame) Latest() (*Row, bool) {
	var latest *Row
	for i := range f.Rows {
		r := &f.Rows[i]
		if r.Start == nil {
			continue
		}
		if latest == nil || r.Start.After(*latest.Start) {
			latest = r
		}
	}
	return latest, latest != nil
}

// Newest returns the rows ordered by local datetime, newest first. Rows
// without a date sort last.
func (f *Frame) Newest() []Row {
	rows := slices.Clone(f.Rows)
	slices.SortStableFunc(rows, func(a, b Row) int {
		switch {
		case a.Start == nil && b.Start == nil:
			return 0
		case a.Start == nil:
			return 1
		case b.Start == nil:
			return -1
		}
		return b.Start.Compare(*a.Start)
	})
	return rows
}

// PaceMinPerKm is moving time per kilometre in minutes. It is absent unless
// both distance and moving time are positive.
func PaceMinPerKm(distanceKm, movingTimeS float64) (float64, bool) {
	if distanceKm <= 0 || movingTimeS <= 0 {
		return 0, false
	}
	return movingTimeS / distanceKm / 60, true
}

// SpeedKmh converts metres per second to km/h
func SpeedKmh(ms float64) float64 {
	return ms * 3.6
}

// ActivityURL links an activity on Strava
func ActivityURL(id int64) string {
	return fmt.Sprintf("https://www.strava.com/activities/%d", id)
}

// FormatHMS renders seconds as H:MM:SS
func FormatHMS(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		return "-"
	}
	s := int64(seconds)
	return fmt.Sprintf("%d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}
