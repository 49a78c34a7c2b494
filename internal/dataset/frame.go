package dataset

import (
	"strings"
	"time"
	_ "time/tzdata"

	"strava-dashboard/internal/strava"
)

// DefaultSport labels activities with no sport classification
const DefaultSport = "Run"

// Row is one normalized activity. Optional source values stay pointers so
// absence is explicit; sums treat an absent value as contributing nothing.
type Row struct {
	Activity strava.Activity

	// Start is the local datetime in the home timezone, nil when the source
	// timestamp is absent or unparseable
	Start     *time.Time
	Date      string // 2006-01-02
	ISOYear   int
	ISOWeek   int
	Month     int
	MonthName string

	DistanceKm  *float64
	MovingTimeH *float64
	Sport       string

	TZName        *string
	CountryFromTZ *string
	Country       *string
}

// Frame is the normalized dataset. Filtering returns a new Frame and never
// mutates the receiver.
type Frame struct {
	Location *time.Location
	Rows     []Row
}

// Normalize derives every calendar, unit and location field for activities
// with local datetimes expressed in loc
func Normalize(activities []strava.Activity, loc *time.Location) *Frame {
	if loc == nil {
		loc = time.UTC
	}
	rows := make([]Row, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, normalizeRow(a, loc))
	}
	return &Frame{Location: loc, Rows: rows}
}

func normalizeRow(a strava.Activity, loc *time.Location) Row {
	row := Row{Activity: a, Sport: DefaultSport}

	if a.StartDateLocal != nil {
		if t, ok := parseTimestamp(*a.StartDateLocal); ok {
			local := t.In(loc)
			row.Start = &local
			row.Date = local.Format(time.DateOnly)
			row.ISOYear, row.ISOWeek = local.ISOWeek()
			row.Month = int(local.Month())
			row.MonthName = local.Month().String()
		}
	}

	if a.Distance != nil {
		km := *a.Distance / 1000
		row.DistanceKm = &km
	}
	if a.MovingTime != nil {
		h := *a.MovingTime / 3600
		row.MovingTimeH = &h
	}
	if sport, ok := a.Sport(); ok {
		row.Sport = sport
	}

	if a.Timezone != nil {
		name := TimezoneName(*a.Timezone)
		row.TZName = &name
		if country, ok := CountryForZone(name); ok {
			row.CountryFromTZ = &country
		}
	}

	if a.LocationCountry != nil && *a.LocationCountry != "" {
		row.Country = a.LocationCountry
	} else {
		row.Country = row.CountryFromTZ
	}
	return row
}

// parseTimestamp accepts RFC 3339 timestamps; values without an offset are
// read as UTC
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// TimezoneName extracts the zone name from descriptors such as
// "(GMT+01:00) Europe/Prague". Plain zone names are returned unchanged.
func TimezoneName(descriptor string) string {
	if _, after, found := strings.Cut(descriptor, ") "); found {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(descriptor)
}

// CountryForZone looks up the country a canonical zone name belongs to
func CountryForZone(zone string) (string, bool) {
	country, ok := zoneCountries[zone]
	return country, ok
}

// WeekStart returns the Monday of t's ISO week as a calendar date
func WeekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location()).Format(time.DateOnly)
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
