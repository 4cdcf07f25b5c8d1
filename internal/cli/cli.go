package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kdriscoll/menuwatch/internal/config"
	"github.com/kdriscoll/menuwatch/internal/logger"
	"github.com/kdriscoll/menuwatch/internal/menu"
	"github.com/kdriscoll/menuwatch/internal/notifier"
	"github.com/kdriscoll/menuwatch/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitMatches = 2
)

var (
	flagKeyword   string
	flagDays      int
	flagStart     string
	flagLocations []string
	flagStations  []string
	flagFormat    string
	flagVerbose   bool
	flagNotify    bool
	flagDryRun    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menuwatch",
		Short: "Search UW Food Services daily menus for a keyword",
		Long: `A CLI tool to search University of Waterloo Food Services daily menus.
Fetches the daily-menu page for each date in the range and reports every
menu item whose name contains the keyword (case-insensitive).`,
		RunE: runSearch,
	}

	// Define flags
	cmd.Flags().StringVarP(&flagKeyword, "keyword", "k", "steak", "Menu item keyword to search for")
	cmd.Flags().IntVarP(&flagDays, "days", "d", 14, "Number of days to search ahead")
	cmd.Flags().StringVarP(&flagStart, "start", "s", "", "Start date in YYYY-MM-DD format (default: today)")
	cmd.Flags().StringSliceVar(&flagLocations, "location", nil, "Only report entries from locations containing this name (repeatable)")
	cmd.Flags().StringSliceVar(&flagStations, "station", nil, "Only report entries from stations containing this name (repeatable)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flagNotify, "notify", false, "Tweet matches (requires TWITTER_* env vars)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print notifications without posting")

	return cmd
}

// parseStartDate validates the --start flag. An empty value means today
// (local midnight). Validation happens before any network activity.
func parseStartDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	t, err := time.Parse(menu.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

// timedFetcher wraps a Fetcher with per-date timing and failure metrics
type timedFetcher struct {
	inner menu.Fetcher
}

func (f timedFetcher) MenuForDate(ctx context.Context, date time.Time) ([]menu.Entry, error) {
	begin := time.Now()
	entries, err := f.inner.MenuForDate(ctx, date)
	logger.RecordTiming("fetch", time.Since(begin))
	if err != nil {
		logger.IncrCounter("fetch.failure")
	} else {
		logger.IncrCounter("fetch.success")
	}
	return entries, err
}

// runSearch is the main command logic
func runSearch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	level := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	if flagDays < 1 {
		return fmt.Errorf("--days must be at least 1, got %d", flagDays)
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	start, err := parseStartDate(flagStart)
	if err != nil {
		return err
	}

	filter := &menu.Filter{
		Keyword:   flagKeyword,
		Locations: flagLocations,
		Stations:  flagStations,
	}

	baseURL := scraper.BaseURL
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	userAgent := scraper.UserAgent
	if cfg.UserAgent != "" {
		userAgent = cfg.UserAgent
	}
	sc := scraper.NewWithConfig(baseURL, userAgent, cfg.RequestTimeout)

	logger.Info("starting search", logger.Fields{
		"keyword": flagKeyword,
		"start":   start.Format(menu.DateFormat),
		"days":    flagDays,
		"url":     baseURL,
	})

	// Per-date progress on stderr, so stdout stays a clean report
	var progress menu.ProgressFunc
	if format == FormatText {
		progress = func(day menu.DayResult) {
			switch {
			case !day.FetchOK:
				fmt.Fprintf(os.Stderr, "  Checking %s... [error: %s]\n", menu.DayLabel(day.Date), day.FetchNote)
			case len(day.Matches) > 0:
				fmt.Fprintf(os.Stderr, "  Checking %s... found %d match(es)!\n", menu.DayLabel(day.Date), len(day.Matches))
			default:
				fmt.Fprintf(os.Stderr, "  Checking %s... no matches (%d items scanned)\n", menu.DayLabel(day.Date), day.Scanned)
			}
		}
	}

	report := menu.Search(cmd.Context(), timedFetcher{inner: sc}, filter, start, flagDays, progress)

	if err := WriteOutput(os.Stdout, report, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if (flagNotify || flagDryRun) && report.TotalMatches > 0 {
		var n notifier.Notifier
		if flagDryRun {
			n = notifier.NewDryRunNotifier()
		} else {
			n, err = notifier.NewTwitterNotifier()
			if err != nil {
				return fmt.Errorf("initializing notifier: %w", err)
			}
		}
		if err := n.Notify(flagKeyword, report.Matches); err != nil {
			return fmt.Errorf("posting notifications: %w", err)
		}
	}

	if flagVerbose {
		logger.Debug("run metrics", logger.Fields{"metrics": logger.MetricsSnapshot()})
	}

	if report.TotalMatches > 0 {
		os.Exit(ExitMatches)
	} else {
		os.Exit(ExitSuccess)
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
