package linker

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rnleach/satfire"
	"github.com/rnleach/satfire/cluster"
	"github.com/rnleach/satfire/internal/satkind"
	"github.com/rnleach/satfire/store"
)

func squarePixel(xOff, power float64) satfire.SatPixel {
	return satfire.SatPixel{
		UL: satfire.Coord{Lat: 1, Lon: xOff}, UR: satfire.Coord{Lat: 1, Lon: xOff + 1},
		LR: satfire.Coord{Lat: 0, Lon: xOff + 1}, LL: satfire.Coord{Lat: 0, Lon: xOff},
		Power: power, Temperature: 320,
	}
}

func addScan(t *testing.T, s *store.Store, start, end int64, pixel satfire.SatPixel) {
	t.Helper()
	cs := cluster.Build(satfire.PixelList{pixel}, cluster.DefaultEps)
	require.Len(t, cs, 1)

	id := store.ScanIdentity{Satellite: satkind.G16, Sector: satkind.FullDisk, ScanStart: start, ScanEnd: end}
	tx, err := s.BeginCommit()
	require.NoError(t, err)
	require.NoError(t, s.Add(tx, cs[0], id))
	require.NoError(t, tx.Commit())
}

func openLinkerTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "link.sqlite")
	s, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLinkerAppendsOverlappingSuccessiveClusters(t *testing.T) {
	s := openLinkerTestStore(t)

	addScan(t, s, 1000, 1060, squarePixel(0, 5))
	addScan(t, s, 2000, 2060, squarePixel(0, 6))

	require.NoError(t, Run(DefaultConfig(), s))

	n, err := s.CountFires()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestLinkerOpensSeparateFiresWhenDisjoint(t *testing.T) {
	s := openLinkerTestStore(t)

	addScan(t, s, 1000, 1060, squarePixel(0, 5))
	addScan(t, s, 2000, 2060, squarePixel(1000, 6))

	require.NoError(t, Run(DefaultConfig(), s))

	n, err := s.CountFires()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}
