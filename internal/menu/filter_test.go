package menu

import (
	"reflect"
	"testing"
)

func sampleEntries() []Entry {
	return []Entry{
		{Location: "The Market", Station: "The Carvery Dinner", Item: "Steak Night"},
		{Location: "The Market", Station: "Grill House", Item: "Grilled Chicken Breast"},
		{Location: "Mudie's - Village 1", Station: "Comfort Food", Item: "Philly Steak Sandwich"},
		{Location: "Mudie's - Village 1", Station: "Daily Dish", Item: "Vegetable Stir Fry"},
	}
}

func TestFilterMatchesKeyword(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		entry   Entry
		want    bool
	}{
		{
			name:    "exact substring",
			keyword: "steak",
			entry:   Entry{Location: "The Market", Station: "The Carvery Dinner", Item: "Steak Night"},
			want:    true,
		},
		{
			name:    "uppercase keyword matches",
			keyword: "STEAK",
			entry:   Entry{Location: "The Market", Station: "The Carvery Dinner", Item: "Steak Night"},
			want:    true,
		},
		{
			name:    "no match",
			keyword: "steak",
			entry:   Entry{Location: "The Market", Station: "Grill House", Item: "Grilled Chicken Breast"},
			want:    false,
		},
		{
			name:    "empty keyword matches everything",
			keyword: "",
			entry:   Entry{Location: "The Market", Station: "Daily Dish", Item: "Anything"},
			want:    true,
		},
		{
			name:    "keyword embedded mid-word",
			keyword: "steak",
			entry:   Entry{Location: "Mudie's", Station: "Comfort Food", Item: "Philly Steak Sandwich"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(tt.keyword)
			if got := f.Matches(tt.entry); got != tt.want {
				t.Errorf("Matches(%+v) with keyword %q = %v, want %v", tt.entry, tt.keyword, got, tt.want)
			}
		})
	}
}

func TestFilterApplyCaseInsensitive(t *testing.T) {
	entries := sampleEntries()

	lower := NewFilter("steak").Apply(entries)
	upper := NewFilter("STEAK").Apply(entries)

	if !reflect.DeepEqual(lower, upper) {
		t.Errorf("case-sensitive divergence: %v vs %v", lower, upper)
	}

	if len(lower) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(lower))
	}

	// Document order must be preserved
	if lower[0].Item != "Steak Night" || lower[1].Item != "Philly Steak Sandwich" {
		t.Errorf("matches out of document order: %v", lower)
	}
}

func TestFilterApplyNoDeduplication(t *testing.T) {
	// Same item at two stations stays two entries
	entries := []Entry{
		{Location: "The Market", Station: "Lunch", Item: "Steak Frites"},
		{Location: "The Market", Station: "Dinner", Item: "Steak Frites"},
	}

	got := NewFilter("steak").Apply(entries)
	if len(got) != 2 {
		t.Errorf("expected 2 matches (no dedup), got %d", len(got))
	}
}

func TestFilterLocationAndStationCriteria(t *testing.T) {
	entries := sampleEntries()

	f := &Filter{Keyword: "steak", Locations: []string{"mudie"}}
	got := f.Apply(entries)
	if len(got) != 1 || got[0].Item != "Philly Steak Sandwich" {
		t.Errorf("location filter: got %v", got)
	}

	f = &Filter{Stations: []string{"carvery"}}
	got = f.Apply(entries)
	if len(got) != 1 || got[0].Item != "Steak Night" {
		t.Errorf("station filter: got %v", got)
	}
}

func TestFilterIsEmpty(t *testing.T) {
	if !(&Filter{}).IsEmpty() {
		t.Error("zero filter should be empty")
	}
	if NewFilter("steak").IsEmpty() {
		t.Error("keyword filter should not be empty")
	}
	if (&Filter{Locations: []string{"market"}}).IsEmpty() {
		t.Error("location filter should not be empty")
	}
}
