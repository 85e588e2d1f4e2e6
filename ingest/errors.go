package ingest

import "errors"

var (
	// ErrBadFilename is returned when a scan filename does not carry the
	// expected start/end timestamp fields.
	ErrBadFilename = errors.New("ingest: malformed scan filename")
)
