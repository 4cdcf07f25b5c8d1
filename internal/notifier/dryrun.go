package notifier

import (
	"fmt"

	"github.com/kdriscoll/menuwatch/internal/menu"
)

// DryRunNotifier prints what would be tweeted without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the tweets that would be posted
func (n *DryRunNotifier) Notify(keyword string, matches []menu.Match) error {
	digests := groupByDate(matches)
	for i, d := range digests {
		tweet := formatDigest(keyword, d)
		fmt.Printf("--- Tweet %d/%d ---\n", i+1, len(digests))
		fmt.Println(tweet)
		fmt.Printf("\n(Length: %d characters)\n\n", len(tweet))
	}
	return nil
}
