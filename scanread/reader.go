// Package scanread defines the contract for decoding one satellite scan
// file into a pixel list plus its scan-window metadata (C4). The ingest
// pipeline's loader stage depends only on this interface; the actual
// NetCDF/GOES-R decoder lives outside this module's scope and is supplied
// by the caller (see cmd/satfire-ingest for the wiring point).
package scanread

import (
	"time"

	"github.com/rnleach/satfire"
	"github.com/rnleach/satfire/internal/satkind"
)

// Result is everything the loader stage needs out of one scan file: the
// decoded fire/hotspot pixels plus the scan's satellite, sector, and time
// window, used to build a store.ScanIdentity and a cluster.ClusterList.
type Result struct {
	Satellite satkind.Satellite
	Sector    satkind.Sector
	ScanStart time.Time
	ScanEnd   time.Time
	Pixels    satfire.PixelList
}

// Reader decodes one scan file at path into a Result. Implementations may
// assume path has already passed the walker's directory/extension filter;
// they are responsible only for the bytes-to-pixels decode and should
// return an error rather than panic on a malformed file, since a single
// bad file must not kill the ingest pipeline.
type Reader interface {
	Read(path string) (Result, error)
}
