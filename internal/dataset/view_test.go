package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedFrame(t *testing.T) *Frame {
	t.Helper()
	return frameOf(t,
		activity(1, "2024-11-20T07:00:00Z", 10000, `"sport_type": "Run", "moving_time": 3100`),
		activity(2, "2025-02-10T07:00:00Z", 30000, `"sport_type": "Ride", "moving_time": 3600`),
		activity(3, "2025-03-03T07:00:00Z", 5000, `"sport_type": "Run", "moving_time": 1500, "has_heartrate": true, "average_heartrate": 150`),
		activity(4, "2025-03-05T07:00:00Z", 6000, `"sport_type": "Run", "moving_time": 1860, "has_heartrate": true, "average_heartrate": 160`),
		activity(5, "2025-03-06T07:00:00Z", 3000, `"moving_time": 900`),
		activity(6, "2025-02-26T07:00:00Z", 8000, `"type": "Run", "moving_time": 2640`),
	)
}

func TestOptionsAndDefaultQuery(t *testing.T) {
	frame := mixedFrame(t)

	assert.Equal(t, []int{2024, 2025}, frame.Years())
	assert.Equal(t, []string{"Ride", "Run"}, frame.Sports())

	months := frame.Months(2025)
	require.Len(t, months, 2)
	assert.Equal(t, MonthOption{Number: 2, Name: "February", Label: "02 - February"}, months[0])
	assert.Equal(t, 3, months[1].Number)

	q, ok := frame.DefaultQuery()
	require.True(t, ok)
	assert.Equal(t, 2025, q.Year)
	assert.Equal(t, 3, q.Month)
	assert.Equal(t, []string{"Ride", "Run"}, q.Sports)
}

func TestFilterIsPure(t *testing.T) {
	frame := mixedFrame(t)
	base := Query{Year: 2025, Month: 3}

	all := frame.Filter(base)
	assert.Len(t, all.Rows, 3)

	rides := frame.Filter(base.WithMonth(2).WithSports("Ride"))
	require.Len(t, rides.Rows, 1)
	assert.Equal(t, int64(2), *rides.Rows[0].Activity.ID)

	none := frame.Filter(base.WithYear(2023))
	assert.Empty(t, none.Rows)

	// Neither the source frame nor the base query changed
	assert.Len(t, frame.Rows, 6)
	assert.Empty(t, base.Sports)
	assert.Equal(t, 3, base.Month)
}

func TestQueryCopiesSports(t *testing.T) {
	sports := []string{"Run"}
	q := Query{}.WithSports(sports...)
	sports[0] = "Ride"
	assert.Equal(t, []string{"Run"}, q.Sports)
}

func TestWeeklyRunning(t *testing.T) {
	frame := mixedFrame(t)
	anchor := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

	m := frame.WeeklyRunning(anchor)
	assert.Equal(t, "2025-03-03", m.WeekStart)
	assert.InDelta(t, 11.0, m.KmThisWeek, 1e-9)
	assert.InDelta(t, 8.0, m.KmPrevWeek, 1e-9)
	assert.InDelta(t, 155.0, m.AvgHRThisWeek, 1e-9)
	assert.InDelta(t, 37.5, m.LoadPct, 1e-9)
	assert.Equal(t, 2, m.ActivityCount)
	assert.Equal(t, 4, m.ActivityCountAllTime)
}

func TestWeeklyRunningWithoutPreviousWeek(t *testing.T) {
	frame := mixedFrame(t)

	m := frame.WeeklyRunning(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC))
	assert.Zero(t, m.KmThisWeek)
	assert.Zero(t, m.LoadPct)
	assert.Zero(t, m.AvgHRThisWeek)
	assert.Zero(t, m.ActivityCount)
}

func TestFastestRun(t *testing.T) {
	frame := mixedFrame(t)

	best, ok := frame.FastestRun(DefaultFastestMinKm)
	require.True(t, ok)
	assert.Equal(t, int64(3), *best.ActivityID)
	assert.InDelta(t, 300.0, best.PaceSecPerKm, 1e-9)

	_, ok = frame.FastestRun(50)
	assert.False(t, ok)
}

func TestLastRun(t *testing.T) {
	last, ok := mixedFrame(t).LastRun()
	require.True(t, ok)
	assert.Equal(t, int64(4), *last.Activity.ID)
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "25:00", FormatDuration(1500))
	assert.Equal(t, "1:02:03", FormatDuration(3723))
	assert.Equal(t, "–", FormatDuration(0))

	assert.Equal(t, "5:00 /km", FormatPace(300))
	assert.Equal(t, "4:35 /km", FormatPace(274.6))
	assert.Equal(t, "5:00 /km", FormatPace(299.7))
	assert.Equal(t, "–", FormatPace(-1))
}

func TestBuildView(t *testing.T) {
	frame := mixedFrame(t)
	q, ok := frame.DefaultQuery()
	require.True(t, ok)

	view := BuildView(frame, q, time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC))
	assert.Nil(t, view.Notice)
	assert.Equal(t, 3, view.KPIs.Activities)
	assert.InDelta(t, 14.0, view.KPIs.DistanceKm, 1e-9)
	require.NotNil(t, view.Latest)
	assert.Equal(t, "https://www.strava.com/activities/5", view.Latest.URL)
	assert.Equal(t, DefaultSport, view.Latest.Sport)

	require.Len(t, view.Table, 3)
	assert.Equal(t, "2025-03-06T07:00:00Z", view.Table[0].Date)
	assert.Equal(t, "2025-03-03T07:00:00Z", view.Table[2].Date)

	require.NotNil(t, view.FastestRun)
	assert.Equal(t, 2, view.Running.ActivityCount)
}

func TestBuildViewNotices(t *testing.T) {
	empty := BuildView(Normalize(nil, time.UTC), Query{}, time.Now())
	require.NotNil(t, empty.Notice)
	assert.Equal(t, LevelInfo, empty.Notice.Level)
	assert.Contains(t, empty.Notice.Message, "No activities found")
	assert.Nil(t, empty.Latest)

	frame := mixedFrame(t)
	filtered := BuildView(frame, Query{Year: 2025, Month: 3, Sports: []string{"Swim"}}, time.Now())
	require.NotNil(t, filtered.Notice)
	assert.Equal(t, "No activities match the current filters.", filtered.Notice.Message)
	assert.Zero(t, filtered.KPIs.Activities)
	assert.Empty(t, filtered.Histogram)
}
