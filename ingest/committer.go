package ingest

import (
	"log"
	"os"

	"github.com/rnleach/satfire/cluster"
	"github.com/rnleach/satfire/stats"
	"github.com/rnleach/satfire/store"
)

// Stats bundles the two running aggregates the committer maintains,
// returned to the caller once the pipeline finishes so cmd/satfire-ingest
// can print and optionally export them.
type Stats struct {
	Cluster     *stats.ClusterStats
	ClusterList *stats.ClusterListStats
}

// runCommitter is the single writer: it drains in, opening one transaction
// per ClusterList and writing every cluster within it, then updates the
// run's stats. A store write failure is fatal, per §4.5/§7 (StoreError):
// the committer logs, stops, and the function returns.
func runCommitter(cfg Config, s *store.Store, in *courier[loadResult]) Stats {
	clusterStats := stats.NewClusterStats()
	listStats := stats.NewClusterListStats()

	for item, ok := in.receive(); ok; item, ok = in.receive() {
		cl := item.Cluster
		if cl.Err != nil {
			log.Printf("committer: skipping scan %v/%v with read error: %v", cl.Satellite, cl.Sector, cl.Err)
			continue
		}
		if len(cl.Clusters) == 0 {
			continue
		}

		if err := commitOne(s, cl, item.ID); err != nil {
			log.Printf("committer: fatal: %v", err)
			return Stats{Cluster: clusterStats, ClusterList: listStats}
		}

		for _, c := range cl.Clusters {
			clusterStats.Update(cl.Satellite, cl.Sector, cl.ScanStart, cl.ScanEnd, c)
		}
		listStats.Update(cl)

		if cfg.Verbose {
			log.Printf("committer: wrote %d clusters for %v/%v scan starting %v",
				len(cl.Clusters), cl.Satellite, cl.Sector, cl.ScanStart)
		}
	}

	return Stats{Cluster: clusterStats, ClusterList: listStats}
}

// commitOne writes every cluster of cl in a single transaction, per §4.4:
// a crash mid-scan must leave the store containing either all of a scan's
// clusters or none.
func commitOne(s *store.Store, cl *cluster.ClusterList, id store.ScanIdentity) error {
	tx, err := s.BeginCommit()
	if err != nil {
		return err
	}

	for _, c := range cl.Clusters {
		if err := s.Add(tx, c, id); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// ExportBiggest writes the run's biggest cluster to a placemark file next
// to dbPath (<store>.kml), when at least one cluster was committed.
func ExportBiggest(dbPath string, cs *stats.ClusterStats) error {
	if cs == nil || cs.BiggestCluster == nil {
		return nil
	}

	out := dbPath + ".kml"
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	return stats.WritePlacemark(f, cs.BiggestSat, cs.BiggestSector, cs.BiggestStart, cs.BiggestEnd, cs.BiggestCluster)
}
