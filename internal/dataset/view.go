package dataset

import (
	"strings"
	"time"
)

// Level grades a notice shown instead of, or alongside, the dashboard
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a user-facing message about the dataset
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

const (
	emptyDatasetMessage = "No activities found in the dataset. Try exporting with a wider date range: " +
		"strava-dashboard export --out data/activities.json --after 2024-01-01"
	emptyFilterMessage = "No activities match the current filters."
)

// LatestView details the most recent activity of a filtered frame
type LatestView struct {
	ID          *int64   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Sport       string   `json:"sport"`
	Start       string   `json:"start"`
	Country     *string  `json:"country,omitempty"`
	DistanceKm  float64  `json:"distance_km"`
	MovingTime  string   `json:"moving_time"`
	ElapsedTime string   `json:"elapsed_time"`
	ElevationM  float64  `json:"elevation_gain_m"`
	RunLike     bool     `json:"run_like"`
	PaceMinKm   *float64 `json:"pace_min_per_km,omitempty"`
	SpeedKmh    *float64 `json:"avg_speed_kmh,omitempty"`
	MaxSpeedKmh *float64 `json:"max_speed_kmh,omitempty"`
	AvgHR       *float64 `json:"avg_hr,omitempty"`
	MaxHR       *float64 `json:"max_hr,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// NewLatestView derives the display fields for r
func NewLatestView(r *Row) LatestView {
	a := r.Activity
	v := LatestView{
		ID:         a.ID,
		Name:       "Untitled",
		Sport:      r.Sport,
		Country:    r.Country,
		DistanceKm: value(r.DistanceKm),
		ElevationM: value(a.TotalElevationGain),
		RunLike:    strings.HasPrefix(strings.ToLower(r.Sport), "run"),
		AvgHR:      a.AverageHeartrate,
		MaxHR:      a.MaxHeartrate,
	}
	if a.Name != nil {
		v.Name = *a.Name
	}
	if r.Start != nil {
		v.Start = r.Start.Format("2006-01-02 15:04")
	}

	moving := value(a.MovingTime)
	elapsed := moving
	if a.ElapsedTime != nil {
		elapsed = *a.ElapsedTime
	}
	v.MovingTime = FormatHMS(moving)
	v.ElapsedTime = FormatHMS(elapsed)

	if pace, ok := PaceMinPerKm(v.DistanceKm, moving); ok {
		v.PaceMinKm = &pace
	}
	if v.DistanceKm > 0 && a.AverageSpeed != nil && *a.AverageSpeed > 0 {
		speed := SpeedKmh(*a.AverageSpeed)
		v.SpeedKmh = &speed
	}
	if a.MaxSpeed != nil {
		maxSpeed := SpeedKmh(*a.MaxSpeed)
		v.MaxSpeedKmh = &maxSpeed
	}
	if a.ID != nil {
		v.URL = ActivityURL(*a.ID)
	}
	return v
}

// TableRow is one line of the activity table
type TableRow struct {
	Date        string   `json:"date"`
	Name        *string  `json:"name,omitempty"`
	Sport       string   `json:"sport"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
	MovingTimeH *float64 `json:"moving_time_h,omitempty"`
	ElevationM  *float64 `json:"elevation_gain_m,omitempty"`
	AvgHR       *float64 `json:"avg_hr,omitempty"`
	Kudos       *int64   `json:"kudos,omitempty"`
}

// Table lists the frame newest first
func (f *Frame) Table() []TableRow {
	rows := f.Newest()
	table := make([]TableRow, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		row := TableRow{
			Name:        r.Activity.Name,
			Sport:       r.Sport,
			DistanceKm:  r.DistanceKm,
			MovingTimeH: r.MovingTimeH,
			ElevationM:  r.Activity.TotalElevationGain,
			AvgHR:       r.Activity.AverageHeartrate,
			Kudos:       r.Activity.KudosCount,
		}
		if r.Start != nil {
			row.Date = r.Start.Format(time.RFC3339)
		}
		table = append(table, row)
	}
	return table
}

// View is everything the dashboard renders for one query
type View struct {
	Query      Query         `json:"query"`
	Options    Options       `json:"options"`
	KPIs       KPIs          `json:"kpis"`
	Latest     *LatestView   `json:"latest,omitempty"`
	Weekly     []WeekTotal   `json:"weekly"`
	Daily      []DayTotal    `json:"daily"`
	Histogram  []Bucket      `json:"histogram"`
	Table      []TableRow    `json:"table"`
	Running    WeeklyRunning `json:"running"`
	FastestRun *FastestRun   `json:"fastest_run,omitempty"`
	Notice     *Notice       `json:"notice,omitempty"`
}

// BuildView renders frame for q. The running summary covers the whole frame
// for the week containing now. An empty frame or empty selection yields a
// zero-row view carrying an info notice.
func BuildView(frame *Frame, q Query, now time.Time) View {
	filtered := frame.Filter(q)
	view := View{
		Query:     q,
		Options:   frame.Options(q.Year),
		KPIs:      filtered.KPIs(),
		Weekly:    filtered.Weekly(),
		Daily:     filtered.Daily(),
		Histogram: filtered.Histogram(),
		Table:     filtered.Table(),
		Running:   frame.WeeklyRunning(now),
	}
	if fastest, ok := frame.FastestRun(DefaultFastestMinKm); ok {
		view.FastestRun = fastest
	}
	if latest, ok := filtered.Latest(); ok {
		lv := NewLatestView(latest)
		view.Latest = &lv
	}

	switch {
	case len(frame.Rows) == 0:
		view.Notice = &Notice{Level: LevelInfo, Message: emptyDatasetMessage}
	case len(filtered.Rows) == 0:
		view.Notice = &Notice{Level: LevelInfo, Message: emptyFilterMessage}
	}
	return view
}
