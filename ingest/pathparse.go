package ingest

import (
	"strconv"
	"strings"

	"github.com/rnleach/satfire/internal/satkind"
)

// pathDepth names the five directory levels under the archive root, per
// §6's <SATELLITE>/<SECTOR>/<YEAR>/<DOY>/<HOUR>/<file>.nc layout.
type pathDepth int

const (
	depthRoot pathDepth = iota
	depthSatellite
	depthSector
	depthYear
	depthDOY
	depthHour
	depthFile
)

// pathKey is the parsed prefix of an archive-relative path, filled in as
// far as the walker has descended. Fields for levels that are absent or
// not numeric stay zero; Depth records the deepest level that was set,
// and the pruning filter decides from Depth, not from the zero values.
type pathKey struct {
	Satellite satkind.Satellite
	Sector    satkind.Sector
	Year      int
	DOY       int
	Hour      int
	Depth     pathDepth
}

// parsePathKey walks rel (the path relative to the archive root, using
// forward-slash separators) component by component, classifying as many
// levels as are present.
func parsePathKey(rel string) pathKey {
	parts := strings.Split(filepathToSlash(rel), "/")
	var key pathKey

	for i, p := range parts {
		switch pathDepth(i + 1) {
		case depthSatellite:
			key.Satellite = satkind.StringContainsSatellite(p)
			key.Depth = depthSatellite
		case depthSector:
			key.Sector = satkind.StringContainsSector(p)
			key.Depth = depthSector
		case depthYear:
			if y, err := strconv.Atoi(p); err == nil {
				key.Year = y
				key.Depth = depthYear
			}
		case depthDOY:
			if d, err := strconv.Atoi(p); err == nil {
				key.DOY = d
				key.Depth = depthDOY
			}
		case depthHour:
			if h, err := strconv.Atoi(p); err == nil {
				key.Hour = h
				key.Depth = depthHour
			}
		default:
			key.Depth = depthFile
		}
	}

	return key
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
