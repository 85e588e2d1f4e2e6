// Command satfire-link replays stored clusters per satellite and builds
// per-satellite fire-event time series (C7).
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rnleach/satfire/internal/envcfg"
	"github.com/rnleach/satfire/linker"
	"github.com/rnleach/satfire/store"
)

func runLink(cCtx *cli.Context) error {
	cfg, err := envcfg.LoadDB(cCtx.String("db"))
	if err != nil {
		return err
	}

	s, err := store.Open(cfg.ClusterDBPath)
	if err != nil {
		return err
	}
	defer s.Close()

	linkCfg := linker.DefaultConfig()
	if dt := cCtx.Float64("dt-max-hours"); dt > 0 {
		linkCfg.DtMax = dt
	}

	log.Println("Database:", cfg.ClusterDBPath)
	log.Printf("Dt max: %.1f hours", linkCfg.DtMax)

	return linker.Run(linkCfg, s)
}

func main() {
	app := &cli.App{
		Name:  "satfire-link",
		Usage: "temporally link stored clusters into fire event time series",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Usage: "Path to the cluster database (overrides CLUSTER_DB)."},
			&cli.Float64Flag{Name: "dt-max-hours", Usage: "Active-fire window in hours (default 12)."},
		},
		Action: runLink,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
