// Package notifier posts menu match notifications.
//
// The notifier package turns a run's keyword matches into per-date digest
// posts. The Twitter implementation handles OAuth1 authentication, rate
// limiting between posts, and the 280-character limit; the dry-run
// implementation prints what would be posted.
package notifier
