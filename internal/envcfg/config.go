// Package envcfg bootstraps process-wide configuration shared by
// cmd/satfire-ingest and cmd/satfire-link: the cluster database path, the
// satellite archive root, and the forced UTC timezone every timestamp in
// this module is computed in. CLI flags (see the cmd packages) override
// these environment defaults.
package envcfg

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Environment variable names. Load reads EnvClusterDB and EnvSatArchive
// (LoadDB only EnvClusterDB); EnvWorkerCount is not read by either.
const (
	EnvClusterDB   = "CLUSTER_DB"
	EnvSatArchive  = "SAT_ARCHIVE"
	EnvWorkerCount = "SATFIRE_WORKERS"
)

// ErrMissingEnv is returned when a required environment variable is unset
// and no overriding flag value was supplied either.
var ErrMissingEnv = errors.New("envcfg: required setting is missing")

// Config holds the bootstrap settings every satfire command needs before it
// can open a store or walk an archive.
type Config struct {
	// ClusterDBPath is the path to the SQLite cluster database.
	ClusterDBPath string
	// SatArchiveRoot is the root directory the walker scans for new scans.
	SatArchiveRoot string
}

func init() {
	// Every scan_start/scan_end in this module is stored and compared as a
	// Unix timestamp computed in UTC; force it process-wide so a
	// misconfigured host TZ can't skew it.
	time.Local = time.UTC
}

// Load reads Config from the environment, letting flagDB and flagArchive
// (typically sourced from CLI flags) override the corresponding
// environment variable when non-empty. Returns ErrMissingEnv if a setting
// has neither a flag value nor an environment fallback. Both settings are
// required, matching ingest's needs; commands that don't walk an archive
// (satfire-link) should use LoadDB instead.
func Load(flagDB, flagArchive string) (Config, error) {
	cfg, err := LoadDB(flagDB)
	if err != nil {
		return Config{}, err
	}

	cfg.SatArchiveRoot = firstNonEmpty(flagArchive, os.Getenv(EnvSatArchive))
	if cfg.SatArchiveRoot == "" {
		return Config{}, fmt.Errorf("%w: %s or --archive", ErrMissingEnv, EnvSatArchive)
	}

	return cfg, nil
}

// LoadDB reads only the cluster database path, for commands (satfire-link)
// that never walk the archive.
func LoadDB(flagDB string) (Config, error) {
	dbPath := firstNonEmpty(flagDB, os.Getenv(EnvClusterDB))
	if dbPath == "" {
		return Config{}, fmt.Errorf("%w: %s or --db", ErrMissingEnv, EnvClusterDB)
	}
	return Config{ClusterDBPath: dbPath}, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
