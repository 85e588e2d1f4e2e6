package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rnleach/satfire"
	"github.com/rnleach/satfire/cluster"
	"github.com/rnleach/satfire/internal/satkind"
	"github.com/stretchr/testify/require"
)

func testCluster(t *testing.T) *cluster.Cluster {
	t.Helper()
	pixels := satfire.PixelList{
		{
			UL: satfire.Coord{Lat: 1, Lon: 0}, UR: satfire.Coord{Lat: 1, Lon: 1},
			LR: satfire.Coord{Lat: 0, Lon: 1}, LL: satfire.Coord{Lat: 0, Lon: 0},
			Power: 5.0, Temperature: 310,
		},
	}
	cs := cluster.Build(pixels, cluster.DefaultEps)
	require.Len(t, cs, 1)
	return cs[0]
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.sqlite")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorePresentColdStoreIsZero(t *testing.T) {
	s := openTestStore(t)
	id := ScanIdentity{Satellite: satkind.G16, Sector: satkind.FullDisk, ScanStart: 100, ScanEnd: 200}
	require.Equal(t, 0, s.Present(id))
}

func TestStoreAddAndPresent(t *testing.T) {
	s := openTestStore(t)
	id := ScanIdentity{Satellite: satkind.G16, Sector: satkind.FullDisk, ScanStart: 100, ScanEnd: 200}

	tx, err := s.BeginCommit()
	require.NoError(t, err)
	require.NoError(t, s.Add(tx, testCluster(t), id))
	require.NoError(t, tx.Commit())

	require.Equal(t, 1, s.Present(id))
}

func TestStoreNewestScanStart(t *testing.T) {
	s := openTestStore(t)
	require.Equal(t, int64(0), s.NewestScanStart(satkind.G16, satkind.FullDisk))

	id := ScanIdentity{Satellite: satkind.G16, Sector: satkind.FullDisk, ScanStart: 1000, ScanEnd: 1100}
	tx, err := s.BeginCommit()
	require.NoError(t, err)
	require.NoError(t, s.Add(tx, testCluster(t), id))
	require.NoError(t, tx.Commit())

	require.Equal(t, int64(1000), s.NewestScanStart(satkind.G16, satkind.FullDisk))
}

func TestStoreQueryRowsOrdering(t *testing.T) {
	s := openTestStore(t)

	starts := []int64{300, 100, 200}
	for _, start := range starts {
		id := ScanIdentity{Satellite: satkind.G17, Sector: satkind.CONUS, ScanStart: start, ScanEnd: start + 60}
		tx, err := s.BeginCommit()
		require.NoError(t, err)
		require.NoError(t, s.Add(tx, testCluster(t), id))
		require.NoError(t, tx.Commit())
	}

	cur, err := s.QueryRows(satkind.G17, satkind.CONUS, TimeRange{Start: time.Unix(0, 0)}, nil)
	require.NoError(t, err)
	defer cur.Close()

	var gotStarts []int64
	for cur.Next() {
		gotStarts = append(gotStarts, cur.Row().ScanStart.Unix())
	}
	require.NoError(t, cur.Err())
	require.Equal(t, []int64{100, 200, 300}, gotStarts)
}
