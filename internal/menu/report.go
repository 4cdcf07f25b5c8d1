package menu

import (
	"context"
	"time"
)

// Fetcher fetches the published menu for a single date.
// A fetch problem (network error, bad status, timeout) is returned as an
// error; an empty published menu is a nil error with zero entries.
type Fetcher interface {
	MenuForDate(ctx context.Context, date time.Time) ([]Entry, error)
}

// Report accumulates per-date results across a search run.
// It only ever grows: totals after N days are the sums over those days.
type Report struct {
	Keyword         string      `json:"keyword"`
	Start           time.Time   `json:"start"`
	DaysRequested   int         `json:"days_requested"`
	Days            []DayResult `json:"days"`
	Matches         []Match     `json:"matches"`
	TotalScanned    int         `json:"total_scanned"`
	TotalMatches    int         `json:"total_matches"`
	DaysWithMatches int         `json:"days_with_matches"`
	FetchFailures   int         `json:"fetch_failures"`
}

// NewReport creates an empty report for the given search parameters.
func NewReport(keyword string, start time.Time, days int) *Report {
	return &Report{
		Keyword:       keyword,
		Start:         start,
		DaysRequested: days,
		Days:          make([]DayResult, 0, days),
		Matches:       make([]Match, 0),
	}
}

// AddDay folds one day's result into the report.
func (r *Report) AddDay(day DayResult) {
	r.Days = append(r.Days, day)
	r.TotalScanned += day.Scanned
	if !day.FetchOK {
		r.FetchFailures++
	}
	if len(day.Matches) > 0 {
		r.DaysWithMatches++
	}
	for _, e := range day.Matches {
		r.Matches = append(r.Matches, Match{Date: day.Date, Entry: e})
		r.TotalMatches++
	}
}

// ProgressFunc is called after each date is processed, in chronological order.
type ProgressFunc func(day DayResult)

// Search fetches and filters menus for days consecutive dates starting at
// start, one date at a time. A fetch failure for one date is recorded on
// that date's DayResult and the run continues; it never aborts the range.
func Search(ctx context.Context, f Fetcher, filter *Filter, start time.Time, days int, progress ProgressFunc) *Report {
	report := NewReport(filter.Keyword, start, days)

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)

		day := DayResult{Date: date, FetchOK: true}
		entries, err := f.MenuForDate(ctx, date)
		if err != nil {
			day.FetchOK = false
			day.FetchNote = err.Error()
		} else {
			day.Entries = entries
			day.Scanned = len(entries)
			day.Matches = filter.Apply(entries)
		}

		report.AddDay(day)
		if progress != nil {
			progress(day)
		}
	}

	return report
}
