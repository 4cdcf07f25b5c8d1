package menu

import "time"

// Entry represents one servable menu item at a station within a location.
// Entries are plain values; equality is structural.
type Entry struct {
	Location string `json:"location"`
	Station  string `json:"station"`
	Item     string `json:"item"`
}

// Match ties a matching entry to the date it was found on.
type Match struct {
	Date  time.Time `json:"date"`
	Entry Entry     `json:"entry"`
}

// DayResult holds the outcome of processing one date: everything scanned,
// everything that matched, and whether the fetch itself succeeded.
// A failed fetch yields zero entries and a note, never an aborted run.
type DayResult struct {
	Date      time.Time `json:"date"`
	Entries   []Entry   `json:"entries,omitempty"`
	Matches   []Entry   `json:"matches,omitempty"`
	Scanned   int       `json:"scanned"`
	FetchOK   bool      `json:"fetch_ok"`
	FetchNote string    `json:"fetch_note,omitempty"`
}

// DateFormat is the wire format the daily-menu endpoint expects.
const DateFormat = "2006-01-02"

// DayLabel formats a date the way the report displays it,
// e.g. "Monday, August 31, 2026".
func DayLabel(date time.Time) string {
	return date.Format("Monday, January 2, 2006")
}
