package dataset

import (
	"fmt"
	"slices"
	"time"
)

// Query selects a subset of the frame. An empty Sports set selects every
// sport. Query is a value; the With* helpers return modified copies.
type Query struct {
	Year   int      `json:"year"`
	Month  int      `json:"month"`
	Sports []string `json:"sports"`
}

// WithYear returns a copy of q for another year
func (q Query) WithYear(year int) Query {
	q.Sports = slices.Clone(q.Sports)
	q.Year = year
	return q
}

// WithMonth returns a copy of q for another month
func (q Query) WithMonth(month int) Query {
	q.Sports = slices.Clone(q.Sports)
	q.Month = month
	return q
}

// WithSports returns a copy of q restricted to sports
func (q Query) WithSports(sports ...string) Query {
	q.Sports = slices.Clone(sports)
	return q
}

func (q Query) matches(r *Row) bool {
	if r.Start == nil || r.ISOYear != q.Year || r.Month != q.Month {
		return false
	}
	return len(q.Sports) == 0 || slices.Contains(q.Sports, r.Sport)
}

// Filter returns the rows selected by q as a new frame
func (f *Frame) Filter(q Query) *Frame {
	out := &Frame{Location: f.Location, Rows: []Row{}}
	for i := range f.Rows {
		if q.matches(&f.Rows[i]) {
			out.Rows = append(out.Rows, f.Rows[i])
		}
	}
	return out
}

// MonthOption is one selectable month
type MonthOption struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Label  string `json:"label"`
}

// Options lists the values a query can take for this frame
type Options struct {
	Years  []int         `json:"years"`
	Months []MonthOption `json:"months"`
	Sports []string      `json:"sports"`
}

// Years returns the ISO years present, ascending
func (f *Frame) Years() []int {
	var years []int
	for i := range f.Rows {
		r := &f.Rows[i]
		if r.Start != nil && !slices.Contains(years, r.ISOYear) {
			years = append(years, r.ISOYear)
		}
	}
	slices.Sort(years)
	return years
}

// Months returns the months present in year, ascending
func (f *Frame) Months(year int) []MonthOption {
	var months []int
	for i := range f.Rows {
		r := &f.Rows[i]
		if r.Start != nil && r.ISOYear == year && !slices.Contains(months, r.Month) {
			months = append(months, r.Month)
		}
	}
	slices.Sort(months)

	options := make([]MonthOption, 0, len(months))
	for _, m := range months {
		name := time.Month(m).String()
		options = append(options, MonthOption{Number: m, Name: name, Label: fmt.Sprintf("%02d - %s", m, name)})
	}
	return options
}

// Sports returns the distinct sport labels, sorted
func (f *Frame) Sports() []string {
	var sports []string
	for i := range f.Rows {
		if !slices.Contains(sports, f.Rows[i].Sport) {
			sports = append(sports, f.Rows[i].Sport)
		}
	}
	slices.Sort(sports)
	return sports
}

// Options returns the selectable values, with months listed for year
func (f *Frame) Options(year int) Options {
	return Options{Years: f.Years(), Months: f.Months(year), Sports: f.Sports()}
}

// DefaultQuery selects the latest year, the latest month of that year and
// every sport. ok is false when no row has a usable date.
func (f *Frame) DefaultQuery() (Query, bool) {
	years := f.Years()
	if len(years) == 0 {
		return Query{}, false
	}
	year := years[len(years)-1]
	months := f.Months(year)
	return Query{Year: year, Month: months[len(months)-1].Number, Sports: f.Sports()}, true
}
