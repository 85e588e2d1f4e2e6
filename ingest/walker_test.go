package ingest

import (
	"fmt"
	"testing"

	"github.com/rnleach/satfire/internal/satkind"
	"github.com/stretchr/testify/require"
)

func TestShouldEmitFileRejectsNonNC(t *testing.T) {
	require.False(t, shouldEmitFile("G16/ABI-L2-FDCF/2020/238/15/foo.txt"))
}

func TestShouldEmitFileRejectsMeso(t *testing.T) {
	require.False(t, shouldEmitFile("G16/ABI-L2-FDCM1/2020/238/15/foo.nc"))
}

func TestShouldEmitFileAcceptsFullDiskNC(t *testing.T) {
	require.True(t, shouldEmitFile("G16/ABI-L2-FDCF/2020/238/15/foo.nc"))
}

func TestShouldPruneDirOlderYear(t *testing.T) {
	newest := newestScans{
		satkind.G16: {satkind.FullDisk: mustUnix(t, 2021, 10, 0)},
	}
	require.True(t, shouldPruneDir("G16/ABI-L2-FDCF/2020", newest))
}

func TestShouldPruneDirSameYearNewerDOYKept(t *testing.T) {
	newest := newestScans{
		satkind.G16: {satkind.FullDisk: mustUnix(t, 2021, 100, 0)},
	}
	require.False(t, shouldPruneDir("G16/ABI-L2-FDCF/2021/150", newest))
}

func TestShouldPruneDirOlderDOYPruned(t *testing.T) {
	newest := newestScans{
		satkind.G16: {satkind.FullDisk: mustUnix(t, 2021, 100, 0)},
	}
	require.True(t, shouldPruneDir("G16/ABI-L2-FDCF/2021/050", newest))
}

func TestShouldPruneDirNotYetParseableIsKept(t *testing.T) {
	newest := newestScans{
		satkind.G16: {satkind.FullDisk: mustUnix(t, 2021, 100, 0)},
	}
	require.False(t, shouldPruneDir("G16/ABI-L2-FDCF", newest))
}

func mustUnix(t *testing.T, year, doy, hour int) int64 {
	t.Helper()
	ts, err := parseYDHMS(fmt.Sprintf("%04d%03d%02d00000", year, doy, hour))
	require.NoError(t, err)
	return ts.Unix()
}
