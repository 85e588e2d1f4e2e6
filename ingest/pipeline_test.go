package ingest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rnleach/satfire"
	"github.com/rnleach/satfire/internal/satkind"
	"github.com/rnleach/satfire/scanread"
	"github.com/rnleach/satfire/store"
)

func writeEmptyFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte{}, 0o644))
}

func TestPipelineEndToEnd(t *testing.T) {
	root := t.TempDir()
	name := "OR_ABI-L2-FDCF-M6_G16_s20202381500000_e20202381509000_c20202381509300.nc"
	path := filepath.Join(root, "G16", "ABI-L2-FDCF", "2020", "238", "15", name)
	writeEmptyFile(t, path)

	start, end, err := parseScanWindow(name)
	require.NoError(t, err)

	fake := scanread.NewFake()
	fake.Add(path, scanread.Result{
		Satellite: satkind.G16,
		Sector:    satkind.FullDisk,
		ScanStart: start,
		ScanEnd:   end,
		Pixels: satfire.PixelList{
			{
				UL: satfire.Coord{Lat: 1, Lon: 0}, UR: satfire.Coord{Lat: 1, Lon: 1},
				LR: satfire.Coord{Lat: 0, Lon: 1}, LL: satfire.Coord{Lat: 0, Lon: 0},
				Power: 3, Temperature: 330,
			},
			{
				UL: satfire.Coord{Lat: 1, Lon: 1}, UR: satfire.Coord{Lat: 1, Lon: 2},
				LR: satfire.Coord{Lat: 0, Lon: 2}, LL: satfire.Coord{Lat: 0, Lon: 1},
				Power: 4, Temperature: 320,
			},
		},
	})

	dbPath := filepath.Join(t.TempDir(), "clusters.sqlite")
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	cfg := DefaultConfig(root)
	res := Run(cfg, s, fake)

	require.Equal(t, 1, res.Cluster.NumClusters)
	require.InDelta(t, 7.0, res.Cluster.BiggestCluster.TotalPower(), 1e-9)

	cur, err := s.QueryRows(satkind.G16, satkind.FullDisk, store.TimeRange{Start: time.Unix(0, 0)}, nil)
	require.NoError(t, err)
	defer cur.Close()

	count := 0
	for cur.Next() {
		count++
		require.Equal(t, 2, cur.Row().PixelCount)
	}
	require.NoError(t, cur.Err())
	require.Equal(t, 1, count)
}
