package ingest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rnleach/satfire/internal/satkind"
	"github.com/rnleach/satfire/store"
)

// newestScans looks up the newest scan_start per (satellite, sector), used
// by the pruning filter to decide whether a subtree can possibly contain
// anything newer than what's already stored.
type newestScans map[satkind.Satellite]map[satkind.Sector]int64

func loadNewestScans(s *store.Store, prune bool) newestScans {
	n := make(newestScans)
	if !prune {
		return n
	}
	for _, sat := range satkind.AllSatellites() {
		for _, sector := range satkind.AllSectors() {
			ts := s.NewestScanStart(sat, sector)
			if ts > 0 {
				if n[sat] == nil {
					n[sat] = make(map[satkind.Sector]int64)
				}
				n[sat][sector] = ts
			}
		}
	}
	return n
}

// walk performs a depth-first traversal of cfg.ArchiveRoot, applying the
// pruning filter (when cfg.PruneToNewest is set) and emitting only paths
// that end in ".nc" and are not a Meso sector. It sends each surviving
// path on out and calls out.done when the tree is exhausted.
func walk(cfg Config, newest newestScans, out *courier[string]) {
	defer out.done()

	root := cfg.ArchiveRoot
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// IOError on a subtree: skip it, keep walking siblings.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}

		if d.IsDir() {
			if cfg.PruneToNewest && shouldPruneDir(rel, newest) {
				return filepath.SkipDir
			}
			return nil
		}

		if !shouldEmitFile(rel) {
			return nil
		}

		out.send(path)
		return nil
	})
}

// shouldPruneDir reports whether the subtree rooted at rel is certainly
// older than the newest scan already stored for the (satellite, sector)
// its path prefix names, mirroring standard_dir_filter's year/doy/hour
// gating: a level not yet parseable is always kept (recurse deeper to be
// sure), and any level strictly older than the newest recorded one prunes
// the whole subtree.
func shouldPruneDir(rel string, newest newestScans) bool {
	key := parsePathKey(rel)
	if key.Satellite == satkind.SatelliteNone || key.Sector == satkind.SectorNone {
		return false
	}

	bySector, ok := newest[key.Satellite]
	if !ok {
		return false
	}
	mrTS, ok := bySector[key.Sector]
	if !ok {
		return false
	}

	mr := unixToYDH(mrTS)

	if key.Depth < depthYear {
		return false
	}
	if key.Year != mr.year {
		return key.Year < mr.year
	}
	if key.Depth < depthDOY {
		return false
	}
	if key.DOY != mr.doy {
		return key.DOY < mr.doy
	}
	if key.Depth < depthHour {
		return false
	}
	return key.Hour < mr.hour
}

type ydh struct{ year, doy, hour int }

func unixToYDH(ts int64) ydh {
	t := unixToTimeUTC(ts)
	return ydh{year: t.Year(), doy: t.YearDay(), hour: t.Hour()}
}

// shouldEmitFile reports whether rel names a recognized, non-Meso scan
// file: only ".nc" files are considered, and files under a Meso1/Meso2
// sector directory are dropped, per skip_path.
func shouldEmitFile(rel string) bool {
	if strings.ToLower(filepath.Ext(rel)) != ".nc" {
		return false
	}

	key := parsePathKey(rel)
	if key.Satellite == satkind.SatelliteNone || key.Sector == satkind.SectorNone {
		return false
	}
	if key.Sector.IsMeso() {
		return false
	}

	return true
}
