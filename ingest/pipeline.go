package ingest

import (
	"github.com/rnleach/satfire/scanread"
	"github.com/rnleach/satfire/store"
)

// Run wires the four pipeline stages together and blocks until the
// committer has drained, returning the run's accumulated stats. s is used
// for both the filters' present-checks and the committer's writes; a single
// Store is sufficient here since database/sql pools connections internally
// and runs each concurrent query on its own connection.
func Run(cfg Config, s *store.Store, reader scanread.Reader) Stats {
	newest := loadNewestScans(s, cfg.PruneToNewest)

	paths := newCourier[string](cfg.CourierCapacity)
	filtered := newCourier[string](cfg.CourierCapacity)
	loaded := newCourier[loadResult](cfg.CourierCapacity)

	paths.addSender(1)
	paths.closeWhenDrained()

	go func() {
		walk(cfg, newest, paths)
	}()

	runFilters(cfg, s, paths, filtered)
	filtered.closeWhenDrained()

	runLoaders(cfg, reader, filtered, loaded)
	loaded.closeWhenDrained()

	return runCommitter(cfg, s, loaded)
}
