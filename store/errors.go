package store

import "errors"

var (
	// ErrStoreOpen is returned when the database file cannot be opened or
	// migrated to the latest schema version.
	ErrStoreOpen = errors.New("store: failed to open database")
	// ErrStoreInsert is returned when a write (insert, update, or
	// transaction) fails. Fatal for the committer; it closes and exits.
	ErrStoreInsert = errors.New("store: write failed")
	// ErrStoreQuery is returned when a read fails. Filters degrade this to
	// "forward anyway" rather than treating it as fatal.
	ErrStoreQuery = errors.New("store: query failed")
)
