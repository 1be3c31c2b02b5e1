// Package store persists per-concept mastery records. The backing medium
// is a local SQLite database; callers only rely on atomic upserts and
// crash-safe reads.
package store

import "errors"

var (
	ErrNotFound = errors.New("not found")
)
