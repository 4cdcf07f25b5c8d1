package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kdriscoll/menuwatch/internal/menu"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

const bannerWidth = 65

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, report *menu.Report, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		return writeText(w, report, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the full report as JSON
func writeJSON(w io.Writer, report *menu.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// writeText outputs the report as human-readable text, matches grouped
// by date in chronological order.
func writeText(w io.Writer, report *menu.Report, verbose bool) error {
	banner := strings.Repeat("=", bannerWidth)

	if report.TotalMatches == 0 {
		fmt.Fprintln(w, banner)
		fmt.Fprintf(w, "  No %q found in the next %d days.\n", report.Keyword, report.DaysRequested)
		fmt.Fprintln(w, banner)
		if report.FetchFailures > 0 {
			fmt.Fprintf(w, "\n  Note: %d of %d dates could not be fetched.\n", report.FetchFailures, len(report.Days))
		}
		fmt.Fprintf(w, "\n  Tip: try a broader keyword, e.g. --keyword beef, or a wider range with --days 30.\n")
		return nil
	}

	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "  RESULTS: Found %q on %d menu(s)!\n", report.Keyword, report.TotalMatches)
	fmt.Fprintln(w, banner)

	var currentDate string
	for _, m := range report.Matches {
		label := menu.DayLabel(m.Date)
		if label != currentDate {
			currentDate = label
			fmt.Fprintf(w, "\n  %s\n", label)
			fmt.Fprintf(w, "  %s\n", strings.Repeat("-", 40))
		}
		fmt.Fprintf(w, "    Location : %s\n", m.Entry.Location)
		fmt.Fprintf(w, "    Station  : %s\n", m.Entry.Station)
		fmt.Fprintf(w, "    Item     : %s\n\n", m.Entry.Item)
	}

	fmt.Fprintf(w, "  Scanned %d items across %d days", report.TotalScanned, len(report.Days))
	if report.FetchFailures > 0 {
		fmt.Fprintf(w, " (%d fetch failures)", report.FetchFailures)
	}
	fmt.Fprintln(w)

	if verbose {
		for _, day := range report.Days {
			status := "ok"
			if !day.FetchOK {
				status = "fetch failed: " + day.FetchNote
			}
			fmt.Fprintf(w, "    %s: %d scanned, %d matched [%s]\n",
				day.Date.Format(menu.DateFormat), day.Scanned, len(day.Matches), status)
		}
	}

	return nil
}
