// Package menu provides the core types and search logic for UW Food Services
// daily menus.
//
// The menu package models menu entries (location, station, item), keyword
// filtering, and the per-date search loop that folds fetched menus into a
// Report. Fetching and HTML parsing live in the scraper package; menu only
// sees the Fetcher interface.
package menu
