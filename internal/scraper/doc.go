// Package scraper provides HTTP fetching and HTML parsing for the UW Food
// Services daily-menu page.
//
// The scraper fetches the public daily-menu page for a given date and
// extracts menu entries (location, station, item) from its paragraph
// containers. The page's markup is assumed stable but not trusted: any
// container missing its expected substructure is skipped rather than
// failing the whole extraction, and a date with no published menu parses
// to zero entries.
package scraper
