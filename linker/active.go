package linker

import (
	"time"

	"github.com/rnleach/satfire"
	"github.com/rnleach/satfire/store"
)

// DefaultDtMax is the sliding temporal window for the active-fire set: a
// fire whose latest cluster is older than now_in_stream - DefaultDtMax is
// retired. spec.md §9 leaves the exact value open; 12 hours is its own
// suggested default.
const DefaultDtMax = 12 * time.Hour

// activeFire is one fire currently eligible to receive new clusters: it
// tracks only what adjacency/merge decisions and store writes need, not
// the full cluster history.
type activeFire struct {
	fireID      string
	satellite   store.ScanIdentity // not populated or read by the linker
	startTime   time.Time
	endTime     time.Time
	maxPower    float64
	lastPixels  satfire.PixelList
	lastCentroid satfire.Coord
}

// activeSet holds every fire still eligible to be matched against
// incoming clusters, for one satellite's replay.
type activeSet struct {
	fires []*activeFire
}

func newActiveSet() *activeSet {
	return &activeSet{}
}

// retire drops fires whose last cluster predates cutoff.
func (a *activeSet) retire(cutoff time.Time) {
	kept := a.fires[:0]
	for _, f := range a.fires {
		if !f.endTime.Before(cutoff) {
			kept = append(kept, f)
		}
	}
	a.fires = kept
}

// add registers a newly opened fire in the active set.
func (a *activeSet) add(f *activeFire) {
	a.fires = append(a.fires, f)
}

// remove drops the given fires from the active set (used after a merge
// retires the losing fire_ids).
func (a *activeSet) remove(losers []*activeFire) {
	lose := make(map[*activeFire]bool, len(losers))
	for _, f := range losers {
		lose[f] = true
	}
	kept := a.fires[:0]
	for _, f := range a.fires {
		if !lose[f] {
			kept = append(kept, f)
		}
	}
	a.fires = kept
}

// candidates returns the active fires whose last cluster overlaps or is
// adjacent to pixels, within epsGeo (reusing C1's pixel-pair tests summed
// across both clusters' pixel lists: any pair touching is enough).
func (a *activeSet) candidates(pixels satfire.PixelList, epsGeo float64) []*activeFire {
	var out []*activeFire
	for _, f := range a.fires {
		if clustersTouch(f.lastPixels, pixels, epsGeo) {
			out = append(out, f)
		}
	}
	return out
}

// clustersTouch reports whether any pixel of a overlaps or is adjacent to
// any pixel of b.
func clustersTouch(a, b satfire.PixelList, eps float64) bool {
	for _, pa := range a {
		for _, pb := range b {
			if pa.Overlap(pb, eps) || pa.Adjacent(pb, eps) {
				return true
			}
		}
	}
	return false
}
