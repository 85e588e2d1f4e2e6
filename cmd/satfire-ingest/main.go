// Command satfire-ingest walks a satellite archive, clusters newly
// arrived scans, and commits them to the cluster database (C6).
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rnleach/satfire/ingest"
	"github.com/rnleach/satfire/internal/envcfg"
	"github.com/rnleach/satfire/scanread"
	"github.com/rnleach/satfire/store"
)

func runIngest(cCtx *cli.Context) error {
	cfg, err := envcfg.Load(cCtx.String("db"), cCtx.String("archive"))
	if err != nil {
		return err
	}

	s, err := store.Open(cfg.ClusterDBPath)
	if err != nil {
		return err
	}
	defer s.Close()

	pipelineCfg := ingest.DefaultConfig(cfg.SatArchiveRoot)
	pipelineCfg.PruneToNewest = cCtx.Bool("new")
	pipelineCfg.Verbose = cCtx.Bool("verbose")
	if pipelineCfg.Verbose {
		// The stages report per-scan progress through the log package.
		log.SetOutput(os.Stdout)
	}

	log.Println("Archive:", cfg.SatArchiveRoot)
	log.Println("Database:", cfg.ClusterDBPath)
	log.Println("Only new:", pipelineCfg.PruneToNewest)

	runStats := ingest.Run(pipelineCfg, s, scanread.Unsupported{})

	printStats(runStats)

	if err := ingest.ExportBiggest(cfg.ClusterDBPath, runStats.Cluster); err != nil {
		log.Printf("warning: failed to write placemark: %v", err)
	}

	return nil
}

func printStats(s ingest.Stats) {
	if s.Cluster.NumClusters == 0 {
		log.Println("No new clusters added to the database.")
		return
	}

	log.Printf("Clusters committed: %d", s.Cluster.NumClusters)
	log.Printf("  Power < 1 MW:  %d (%.0f%%)", s.Cluster.NumPowerLt1MW, s.Cluster.PctLt1MW())
	log.Printf("  Power < 10 MW: %d (%.0f%%)", s.Cluster.NumPowerLt10MW, s.Cluster.PctLt10MW())
	log.Printf("  Biggest: %v/%v power=%.0f MW", s.Cluster.BiggestSat, s.Cluster.BiggestSector, s.Cluster.BiggestCluster.TotalPower())

	mean, stdev := s.ClusterList.PowerSummary()
	log.Printf("Scan total power: mean=%.1f MW stdev=%.1f MW", mean, stdev)
}

func main() {
	app := &cli.App{
		Name:  "satfire-ingest",
		Usage: "ingest geostationary FDC scans into the cluster database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Usage: "Path to the cluster database (overrides CLUSTER_DB)."},
			&cli.StringFlag{Name: "archive", Usage: "Path to the satellite archive root (overrides SAT_ARCHIVE)."},
			&cli.BoolFlag{Name: "new", Aliases: []string{"n"}, Usage: "Enable the newest-scan pruning filter in the walker."},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Emit per-scan progress to stdout."},
		},
		Action: runIngest,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
