package stats

import "errors"

var (
	// ErrPlacemarkTag is returned when a PlacemarkMeta field's kml struct
	// tag cannot be parsed.
	ErrPlacemarkTag = errors.New("stats: bad kml struct tag")
	// ErrPlacemarkWrite is returned when the KML document cannot be
	// written to the destination writer.
	ErrPlacemarkWrite = errors.New("stats: failed to write placemark")
)
