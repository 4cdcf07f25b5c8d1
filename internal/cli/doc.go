// Package cli implements the command-line interface for menuwatch.
//
// The cli package provides the Cobra-based CLI that drives the search:
// it validates the keyword/date-range arguments, runs the sequential
// per-date fetch/extract/filter loop, and writes the match report as
// text or JSON. Optional notification of matches is delegated to the
// notifier package.
package cli
