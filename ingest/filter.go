package ingest

import (
	"log"
	"path/filepath"

	"github.com/alitto/pond"

	"github.com/rnleach/satfire/internal/satkind"
	"github.com/rnleach/satfire/store"
)

// runFilters starts the K_f filter workers on a bounded pond pool, each
// pulling paths from in and forwarding only those not already present in
// the store. A query error is treated as "forward anyway" per §4.5: add is
// idempotent, so a spurious re-ingest is cheaper than a silent skip.
func runFilters(cfg Config, s *store.Store, in *courier[string], out *courier[string]) {
	out.addSender(cfg.FilterWorkers)

	pool := pond.New(cfg.FilterWorkers, 0, pond.MinWorkers(cfg.FilterWorkers))
	for i := 0; i < cfg.FilterWorkers; i++ {
		pool.Submit(func() {
			defer out.done()
			for path, ok := in.receive(); ok; path, ok = in.receive() {
				if shouldForward(s, path) {
					out.send(path)
				}
			}
		})
	}
	go pool.StopAndWait()
}

func shouldForward(s *store.Store, path string) bool {
	name := filepath.Base(path)
	rel := path

	sat := satkind.StringContainsSatellite(rel)
	sector := satkind.StringContainsSector(rel)
	if sat == satkind.SatelliteNone || sector == satkind.SectorNone {
		return true
	}

	start, end, err := parseScanWindow(name)
	if err != nil {
		log.Printf("filter: %v, forwarding anyway", err)
		return true
	}

	id := store.ScanIdentity{
		Satellite: sat,
		Sector:    sector,
		ScanStart: start.Unix(),
		ScanEnd:   end.Unix(),
	}

	n := s.Present(id)
	if n < 0 {
		log.Printf("filter: present-check failed for %s, forwarding anyway", path)
		return true
	}
	return n == 0
}
