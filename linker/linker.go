// Package linker implements the temporal-linking batch job (C7): replaying
// stored clusters per satellite in scan-start order and assembling
// per-satellite fire-event time series, reusing the geometry kernel (C1)
// to decide when a cluster continues, merges, or starts a fire.
package linker

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/rnleach/satfire/internal/satkind"
	"github.com/rnleach/satfire/store"
)

// Config configures one linker run.
type Config struct {
	// DtMax is the sliding window beyond which an active fire is retired.
	DtMax float64 // hours, for convenience at the CLI layer; converted internally
	// EpsGeo is the geometric tolerance used for cluster-to-fire adjacency.
	EpsGeo float64
}

// DefaultConfig returns the suggested Δt_max (12h) and a geometric epsilon
// matching the clustering engine's default.
func DefaultConfig() Config {
	return Config{DtMax: DefaultDtMax.Hours(), EpsGeo: 1e-6}
}

// Run replays every satellite's clusters in scan-start order and updates
// the fires/fire_clusters tables accordingly. It processes satellites
// independently since a fire never spans satellites.
func Run(cfg Config, s *store.Store) error {
	dtMax := time.Duration(cfg.DtMax * float64(time.Hour))

	for _, sat := range satkind.AllSatellites() {
		if err := linkSatellite(s, sat, dtMax, cfg.EpsGeo); err != nil {
			return fmt.Errorf("linker: satellite %v: %w", sat, err)
		}
	}
	return nil
}

func linkSatellite(s *store.Store, sat satkind.Satellite, dtMax time.Duration, epsGeo float64) error {
	cur, err := s.QueryRows(sat, satkind.SectorNone, store.TimeRange{Start: time.Unix(0, 0)}, nil)
	if err != nil {
		return err
	}
	defer cur.Close()

	active := newActiveSet()

	for cur.Next() {
		row := cur.Row()
		active.retire(row.ScanStart.Add(-dtMax))

		candidates := active.candidates(row.Pixels, epsGeo)

		switch len(candidates) {
		case 0:
			f, err := openNewFire(s, sat, row)
			if err != nil {
				return err
			}
			active.add(f)
		case 1:
			if err := appendToFire(s, candidates[0], row); err != nil {
				return err
			}
		default:
			survivor, losers, err := mergeFires(s, candidates)
			if err != nil {
				return err
			}
			active.remove(losers)
			if err := appendToFire(s, survivor, row); err != nil {
				return err
			}
		}
	}

	return cur.Err()
}

func openNewFire(s *store.Store, sat satkind.Satellite, row store.ClusterRow) (*activeFire, error) {
	f := &activeFire{
		fireID:       uuid.New().String(),
		startTime:    row.ScanStart,
		endTime:      row.ScanEnd,
		maxPower:     row.TotalPower,
		lastPixels:   row.Pixels,
		lastCentroid: row.Centroid,
	}

	if err := s.AddFire(store.Fire{
		FireID:    f.fireID,
		Satellite: sat,
		StartTime: f.startTime.Unix(),
		EndTime:   f.endTime.Unix(),
		MaxPower:  f.maxPower,
		Centroid:  row.Centroid,
	}); err != nil {
		return nil, err
	}

	if err := s.AddFireCluster(f.fireID, row.RowID); err != nil {
		return nil, err
	}

	return f, nil
}

func appendToFire(s *store.Store, f *activeFire, row store.ClusterRow) error {
	f.endTime = row.ScanEnd
	f.lastPixels = row.Pixels
	f.lastCentroid = row.Centroid
	if row.TotalPower > f.maxPower {
		f.maxPower = row.TotalPower
	}

	if err := s.UpdateFire(store.Fire{
		FireID:   f.fireID,
		EndTime:  f.endTime.Unix(),
		MaxPower: f.maxPower,
		Centroid: row.Centroid,
	}); err != nil {
		return err
	}

	return s.AddFireCluster(f.fireID, row.RowID)
}

// mergeFires collapses candidates into one: the earliest-started fire
// keeps its id, the others' cluster associations are rewritten onto it
// and their now-empty fire rows are deleted. Returns the survivor and the
// losing fires (for removal from the caller's active set).
func mergeFires(s *store.Store, candidates []*activeFire) (survivor *activeFire, losers []*activeFire, err error) {
	survivor = candidates[0]
	for _, f := range candidates[1:] {
		if f.startTime.Before(survivor.startTime) {
			survivor = f
		}
	}

	for _, f := range candidates {
		if f == survivor {
			continue
		}
		if f.maxPower > survivor.maxPower {
			survivor.maxPower = f.maxPower
		}
		if err := s.RewriteFireClusterOwner(f.fireID, survivor.fireID); err != nil {
			return nil, nil, err
		}
		if err := s.DeleteFire(f.fireID); err != nil {
			return nil, nil, err
		}
		log.Printf("linker: merged fire %s into %s", f.fireID, survivor.fireID)
		losers = append(losers, f)
	}

	return survivor, losers, nil
}
