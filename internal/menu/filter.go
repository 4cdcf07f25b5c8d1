package menu

import "strings"

// Filter narrows menu entries down to the ones worth reporting.
//
// Matching logic:
//   - Keyword: item name must contain the keyword (case-insensitive).
//     An empty keyword matches every entry.
//   - Locations: entry location must contain at least one of the given
//     names (case-insensitive substring match).
//   - Stations: same, against the station label.
type Filter struct {
	Keyword   string   `json:"keyword,omitempty"`
	Locations []string `json:"locations,omitempty"`
	Stations  []string `json:"stations,omitempty"`
}

// NewFilter creates a filter for a single keyword.
func NewFilter(keyword string) *Filter {
	return &Filter{Keyword: keyword}
}

// IsEmpty reports whether the filter has any active criteria.
// An empty filter matches all entries.
func (f *Filter) IsEmpty() bool {
	return f.Keyword == "" && len(f.Locations) == 0 && len(f.Stations) == 0
}

// Matches checks whether an entry passes all active criteria.
func (f *Filter) Matches(e Entry) bool {
	if f.IsEmpty() {
		return true
	}

	if f.Keyword != "" {
		if !strings.Contains(strings.ToLower(e.Item), strings.ToLower(f.Keyword)) {
			return false
		}
	}

	if len(f.Locations) > 0 && !containsAny(e.Location, f.Locations) {
		return false
	}

	if len(f.Stations) > 0 && !containsAny(e.Station, f.Stations) {
		return false
	}

	return true
}

// Apply returns the entries that match, preserving document order.
// Identical items served at different stations or locations each come
// through as their own entry; Apply never deduplicates.
func (f *Filter) Apply(entries []Entry) []Entry {
	matched := make([]Entry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

// containsAny reports whether s contains any of the needles, case-insensitively.
func containsAny(s string, needles []string) bool {
	lower := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
