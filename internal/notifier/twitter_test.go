package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/kdriscoll/menuwatch/internal/menu"
)

func TestFormatDigest(t *testing.T) {
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		digest   digest
		contains []string
	}{
		{
			name: "single match",
			digest: digest{
				date: date,
				matches: []menu.Match{
					{Date: date, Entry: menu.Entry{Location: "The Market", Station: "The Carvery Dinner", Item: "Steak Night"}},
				},
			},
			contains: []string{
				"steak",
				"Tuesday, September 1, 2026",
				"The Market",
				"The Carvery Dinner",
				"Steak Night",
				"#UWaterloo",
			},
		},
		{
			name: "multiple matches on one date",
			digest: digest{
				date: date,
				matches: []menu.Match{
					{Date: date, Entry: menu.Entry{Location: "The Market", Station: "Lunch", Item: "Steak Wrap"}},
					{Date: date, Entry: menu.Entry{Location: "Mudie's - Village 1", Station: "Dinner", Item: "Flank Steak"}},
				},
			},
			contains: []string{
				"Steak Wrap",
				"Flank Steak",
				"Mudie's - Village 1",
			},
		},
		{
			name: "overly long digest gets truncated",
			digest: digest{
				date: date,
				matches: []menu.Match{
					{Date: date, Entry: menu.Entry{Location: strings.Repeat("Very Long Location Name ", 5), Station: strings.Repeat("Station ", 10), Item: strings.Repeat("Item Name ", 10)}},
					{Date: date, Entry: menu.Entry{Location: "Another Location", Station: "Another Station", Item: "Another Very Long Item Name"}},
				},
			},
			contains: []string{"..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDigest("steak", tt.digest)

			if len(got) > tweetLimit {
				t.Errorf("formatDigest() length = %d, want <= %d", len(got), tweetLimit)
			}

			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("formatDigest() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestGroupByDate(t *testing.T) {
	day1 := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)

	matches := []menu.Match{
		{Date: day1, Entry: menu.Entry{Item: "Steak Night"}},
		{Date: day2, Entry: menu.Entry{Item: "Steak Wrap"}},
		{Date: day1, Entry: menu.Entry{Item: "Philly Steak Sandwich"}},
	}

	digests := groupByDate(matches)

	if len(digests) != 2 {
		t.Fatalf("expected 2 digests, got %d", len(digests))
	}
	if !digests[0].date.Equal(day1) || len(digests[0].matches) != 2 {
		t.Errorf("first digest: date %v, %d matches", digests[0].date, len(digests[0].matches))
	}
	if !digests[1].date.Equal(day2) || len(digests[1].matches) != 1 {
		t.Errorf("second digest: date %v, %d matches", digests[1].date, len(digests[1].matches))
	}
}

func TestDryRunNotifier(t *testing.T) {
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	matches := []menu.Match{
		{Date: date, Entry: menu.Entry{Location: "The Market", Station: "Lunch", Item: "Steak Wrap"}},
	}

	// Should not error
	if err := NewDryRunNotifier().Notify("steak", matches); err != nil {
		t.Errorf("DryRunNotifier.Notify() error = %v, want nil", err)
	}
}
