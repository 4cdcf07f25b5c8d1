package notifier

import (
	"time"

	"github.com/kdriscoll/menuwatch/internal/menu"
)

// Notifier defines the interface for posting match notifications
type Notifier interface {
	// Notify posts notifications for the given matches
	Notify(keyword string, matches []menu.Match) error
}

// digest is one date's worth of matches, ready to format as a single post.
type digest struct {
	date    time.Time
	matches []menu.Match
}

// groupByDate splits matches into per-date digests, keeping the
// chronological order the matches arrived in.
func groupByDate(matches []menu.Match) []digest {
	digests := make([]digest, 0)
	index := make(map[string]int)

	for _, m := range matches {
		key := m.Date.Format(menu.DateFormat)
		i, ok := index[key]
		if !ok {
			i = len(digests)
			index[key] = i
			digests = append(digests, digest{date: m.Date})
		}
		digests[i].matches = append(digests[i].matches, m)
	}

	return digests
}
