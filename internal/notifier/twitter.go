package notifier

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"github.com/kdriscoll/menuwatch/internal/menu"
)

const tweetLimit = 280

// TwitterNotifier posts per-date match digests to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Notify posts one tweet per date that had matches
func (n *TwitterNotifier) Notify(keyword string, matches []menu.Match) error {
	digests := groupByDate(matches)

	for i, d := range digests {
		tweet := formatDigest(keyword, d)

		_, _, err := n.client.Statuses.Update(tweet, nil)
		if err != nil {
			return fmt.Errorf("failed to post tweet for %s: %w", d.date.Format(menu.DateFormat), err)
		}

		// Rate limiting: wait between tweets
		if i < len(digests)-1 {
			time.Sleep(2 * time.Second)
		}
	}

	return nil
}

// formatDigest formats one date's matches as a tweet
func formatDigest(keyword string, d digest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ %q spotted on the UW menu!\n\n", keyword)
	fmt.Fprintf(&b, "📅 %s\n", menu.DayLabel(d.date))

	for _, m := range d.matches {
		fmt.Fprintf(&b, "📍 %s · %s: %s\n", m.Entry.Location, m.Entry.Station, m.Entry.Item)
	}

	b.WriteString("\n🔗 uwaterloo.ca/food-services-information\n#UWaterloo")

	tweet := b.String()
	if len(tweet) > tweetLimit {
		tweet = tweet[:tweetLimit-3] + "..."
	}
	return tweet
}
