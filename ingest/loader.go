package ingest

import (
	"log"

	"github.com/alitto/pond"

	"github.com/rnleach/satfire/cluster"
	"github.com/rnleach/satfire/scanread"
	"github.com/rnleach/satfire/store"
)

// loadResult bundles a built ClusterList with the scan identity the
// committer needs to write cluster rows.
type loadResult struct {
	ID      store.ScanIdentity
	Cluster *cluster.ClusterList
}

// runLoaders starts the K_l loader workers on a bounded pond pool, each
// pulling a path from in, invoking reader then cluster.Build, and
// forwarding the result. A reader error is logged and the path dropped
// entirely, per §4.5 and the BadFormat error kind.
func runLoaders(cfg Config, reader scanread.Reader, in *courier[string], out *courier[loadResult]) {
	out.addSender(cfg.LoaderWorkers)

	pool := pond.New(cfg.LoaderWorkers, 0, pond.MinWorkers(cfg.LoaderWorkers))
	for i := 0; i < cfg.LoaderWorkers; i++ {
		pool.Submit(func() {
			defer out.done()
			for path, ok := in.receive(); ok; path, ok = in.receive() {
				result, err := reader.Read(path)
				if err != nil {
					log.Printf("loader: failed to read %s: %v", path, err)
					continue
				}

				cl := cluster.FromScan(result.Satellite, result.Sector, result.ScanStart, result.ScanEnd, result.Pixels, nil)

				if cfg.Verbose {
					log.Printf("loader: %s -> %d clusters", path, len(cl.Clusters))
				}

				out.send(loadResult{
					ID: store.ScanIdentity{
						Satellite: result.Satellite,
						Sector:    result.Sector,
						ScanStart: result.ScanStart.Unix(),
						ScanEnd:   result.ScanEnd.Unix(),
					},
					Cluster: cl,
				})
			}
		})
	}
	go pool.StopAndWait()
}
