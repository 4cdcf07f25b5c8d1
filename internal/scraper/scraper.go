package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/kdriscoll/menuwatch/internal/menu"
)

const (
	// BaseURL is the UW Food Services daily-menu page.
	BaseURL = "https://uwaterloo.ca/food-services-information/locations-and-hours/daily-menu"

	// dateParam is the query parameter the page uses to select a date.
	dateParam = "field_uw_fs_dm_date_value[value][date]"

	UserAgent = "menuwatch/1.0 (github.com/kdriscoll/menuwatch)"
	Timeout   = 15 * time.Second
)

// Scraper fetches and parses daily menus
type Scraper struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// New creates a Scraper with the default endpoint and timeout
func New() *Scraper {
	return NewWithConfig(BaseURL, UserAgent, Timeout)
}

// NewWithConfig creates a Scraper against a specific endpoint, for
// configuration overrides and tests
func NewWithConfig(baseURL, userAgent string, timeout time.Duration) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

// FetchError reports a failed fetch for one date. It satisfies the error
// interface; callers treat it as zero entries for that date, never as a
// reason to abort the run.
type FetchError struct {
	Date time.Time
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching menu for %s: %v", e.Date.Format(menu.DateFormat), e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MenuForDate fetches and parses the menu for a single date.
// One GET per call; no retries.
func (s *Scraper) MenuForDate(ctx context.Context, date time.Time) ([]menu.Entry, error) {
	reqURL, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, &FetchError{Date: date, Err: fmt.Errorf("bad base URL: %w", err)}
	}
	q := reqURL.Query()
	q.Set(dateParam, date.Format(menu.DateFormat))
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, &FetchError{Date: date, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{Date: date, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Date: date, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	entries, err := parseMenu(resp.Body)
	if err != nil {
		return nil, &FetchError{Date: date, Err: err}
	}
	return entries, nil
}

// parseMenu extracts menu entries from the daily-menu HTML, in document
// order. Each location is an li.dm-location inside a paragraphs-item
// container; the location carries forward across the following containers,
// which hold one station (li.dm-menu-type) and its item list (ul.dm-menus).
func parseMenu(r io.Reader) ([]menu.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	entries := make([]menu.Entry, 0)
	currentLocation := ""

	doc.Find("div.entity-paragraphs-item").Each(func(i int, container *goquery.Selection) {
		if loc := container.Find("li.dm-location").First(); loc.Length() > 0 {
			currentLocation = cleanText(loc.Text())
		}
		if currentLocation == "" {
			return
		}

		station := container.Find("li.dm-menu-type").First()
		if station.Length() == 0 {
			return
		}
		stationName := cleanText(station.Text())

		items := container.Find("ul.dm-menus").First()
		if items.Length() == 0 {
			return
		}

		items.Find("li.dm-menu-item").Each(func(j int, row *goquery.Selection) {
			name := itemName(row)
			if name == "" {
				return
			}
			entries = append(entries, menu.Entry{
				Location: currentLocation,
				Station:  stationName,
				Item:     name,
			})
		})
	})

	return dedupe(entries), nil
}

// itemName reads an item row's display name. The name lives in the row's
// link when one is present; otherwise the row text is used with nested
// metadata (dietary icons, calorie counts) stripped out.
func itemName(row *goquery.Selection) string {
	if link := row.Find("a").First(); link.Length() > 0 {
		return cleanText(link.Text())
	}
	stripped := row.Clone()
	stripped.Find("span, sup, small").Remove()
	return cleanText(stripped.Text())
}

// dedupe drops exact (location, station, item) repeats caused by nested
// paragraph containers, keeping first-occurrence order. Distinct stations
// or locations serving the same item are untouched.
func dedupe(entries []menu.Entry) []menu.Entry {
	seen := make(map[menu.Entry]bool, len(entries))
	unique := make([]menu.Entry, 0, len(entries))
	for _, e := range entries {
		if !seen[e] {
			seen[e] = true
			unique = append(unique, e)
		}
	}
	return unique
}

// cleanText trims and collapses whitespace and normalizes the typographic
// characters the page embeds in names, so "Mudie’s" compares and displays
// as "Mudie's".
func cleanText(s string) string {
	replacer := strings.NewReplacer(
		"‘", "'", // left single quote
		"’", "'", // right single quote
		" ", " ", // non-breaking space
	)
	return strings.Join(strings.Fields(replacer.Replace(s)), " ")
}
