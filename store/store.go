// Package store implements the durable layout for clusters, fires, and
// fire<->cluster associations (C5), backed by an embedded SQLite database.
package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/rnleach/satfire"
	"github.com/rnleach/satfire/cluster"
	"github.com/rnleach/satfire/internal/satkind"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps a single-file SQLite database holding the cluster, fire, and
// fire_clusters tables. A Store is not safe for concurrent writers; the
// ingest pipeline's committer is its only writer. In ingest, the filter
// workers' present-checks and the committer's writes share one Store, whose
// database/sql pool hands each concurrent query its own connection; the
// linker opens a Store of its own.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite file at path and brings its
// schema up to the latest migration.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrStoreOpen, path, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("%w: journal_mode: %v", ErrStoreOpen, err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("%w: busy_timeout: %v", ErrStoreOpen, err)
	}

	s := &Store{db: db}
	if err := s.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrateUp() error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("%w: migration source: %v", ErrStoreOpen, err)
	}

	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("%w: migration driver: %v", ErrStoreOpen, err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("%w: migration instance: %v", ErrStoreOpen, err)
	}
	m.Log = migrateLogger{}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: migrate up: %v", ErrStoreOpen, err)
	}

	return nil
}

type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...interface{}) { log.Printf("[migrate] "+format, v...) }
func (migrateLogger) Verbose() bool                          { return false }

// ScanIdentity is the tuple that uniquely identifies one satellite image.
type ScanIdentity struct {
	Satellite satkind.Satellite
	Sector    satkind.Sector
	ScanStart int64 // unix seconds
	ScanEnd   int64 // unix seconds
}

// Add inserts one cluster's row for the given scan identity. It is
// idempotent in intent (re-insertion is allowed, ingest avoids it via
// Present) but does not itself deduplicate.
func (s *Store) Add(tx *sql.Tx, c *cluster.Cluster, id ScanIdentity) error {
	blob := c.Pixels().Serialize()
	centroid := c.Centroid()

	_, err := tx.Exec(
		`INSERT INTO clusters
			(satellite, sector, scan_start, scan_end, centroid_lat, centroid_lon,
			 total_power, max_temperature, pixel_count, pixels)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		int(id.Satellite), int(id.Sector), id.ScanStart, id.ScanEnd,
		centroid.Lat, centroid.Lon, c.TotalPower(), c.MaxTemperature(), c.PixelCount(), blob,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreInsert, err)
	}
	return nil
}

// BeginCommit opens a transaction for committing one ClusterList: all of
// its clusters are written in a single unit, so a crash mid-scan leaves
// the store containing either all of a scan's clusters or none.
func (s *Store) BeginCommit() (*sql.Tx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreInsert, err)
	}
	return tx, nil
}

// Present returns the number of cluster rows matching the scan identity,
// or -1 on a query error.
func (s *Store) Present(id ScanIdentity) int {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM clusters WHERE satellite = ? AND sector = ? AND scan_start = ? AND scan_end = ?`,
		int(id.Satellite), int(id.Sector), id.ScanStart, id.ScanEnd,
	).Scan(&count)
	if err != nil {
		return -1
	}
	return count
}

// NewestScanStart returns the maximum scan_start recorded for
// (satellite, sector), or 0 if none.
func (s *Store) NewestScanStart(sat satkind.Satellite, sector satkind.Sector) int64 {
	var ts sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(scan_start) FROM clusters WHERE satellite = ? AND sector = ?`,
		int(sat), int(sector),
	).Scan(&ts)
	if err != nil || !ts.Valid {
		return 0
	}
	return ts.Int64
}

// AddFire inserts a new fire row.
func (s *Store) AddFire(f Fire) error {
	_, err := s.db.Exec(
		`INSERT INTO fires (fire_id, satellite, start_time, end_time, max_power, centroid_lat, centroid_lon)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.FireID, int(f.Satellite), f.StartTime, f.EndTime, f.MaxPower, f.Centroid.Lat, f.Centroid.Lon,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreInsert, err)
	}
	return nil
}

// UpdateFire overwrites a fire's mutable fields (end time, max power,
// centroid) as clusters are appended to its time series.
func (s *Store) UpdateFire(f Fire) error {
	_, err := s.db.Exec(
		`UPDATE fires SET end_time = ?, max_power = ?, centroid_lat = ?, centroid_lon = ? WHERE fire_id = ?`,
		f.EndTime, f.MaxPower, f.Centroid.Lat, f.Centroid.Lon, f.FireID,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreInsert, err)
	}
	return nil
}

// AddFireCluster records the (fire, cluster) association.
func (s *Store) AddFireCluster(fireID string, clusterRowID int64) error {
	_, err := s.db.Exec(
		`INSERT INTO fire_clusters (fire_id, cluster_row_id) VALUES (?, ?)`,
		fireID, clusterRowID,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreInsert, err)
	}
	return nil
}

// RewriteFireClusterOwner moves every association row from oldFireID to
// newFireID, used when the linker merges two active fires into one.
func (s *Store) RewriteFireClusterOwner(oldFireID, newFireID string) error {
	_, err := s.db.Exec(
		`UPDATE fire_clusters SET fire_id = ? WHERE fire_id = ?`,
		newFireID, oldFireID,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreInsert, err)
	}
	return nil
}

// DeleteFire removes a fire row whose associations have all been rewritten
// away (used after a merge retires the losing fire_id).
func (s *Store) DeleteFire(fireID string) error {
	_, err := s.db.Exec(`DELETE FROM fires WHERE fire_id = ?`, fireID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreInsert, err)
	}
	return nil
}

// CountFires returns the number of rows in the fires table, mainly useful
// for tests and run summaries.
func (s *Store) CountFires() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM fires`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreQuery, err)
	}
	return n, nil
}

// Fire mirrors the fires table row.
type Fire struct {
	FireID    string
	Satellite satkind.Satellite
	StartTime int64
	EndTime   int64
	MaxPower  float64
	Centroid  satfire.Coord
}
