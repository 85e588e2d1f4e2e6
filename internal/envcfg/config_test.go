package envcfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFlagOverridesEnv(t *testing.T) {
	t.Setenv(EnvClusterDB, "/env/db.sqlite")
	t.Setenv(EnvSatArchive, "/env/archive")

	cfg, err := Load("/flag/db.sqlite", "")
	require.NoError(t, err)
	require.Equal(t, "/flag/db.sqlite", cfg.ClusterDBPath)
	require.Equal(t, "/env/archive", cfg.SatArchiveRoot)
}

func TestLoadMissingClusterDB(t *testing.T) {
	t.Setenv(EnvClusterDB, "")
	t.Setenv(EnvSatArchive, "/env/archive")

	_, err := Load("", "")
	require.ErrorIs(t, err, ErrMissingEnv)
}

func TestLoadDBIgnoresArchiveRequirement(t *testing.T) {
	t.Setenv(EnvClusterDB, "")

	cfg, err := LoadDB("/flag/db.sqlite")
	require.NoError(t, err)
	require.Equal(t, "/flag/db.sqlite", cfg.ClusterDBPath)
	require.Empty(t, cfg.SatArchiveRoot)
}
