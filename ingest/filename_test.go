package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseScanWindow(t *testing.T) {
	name := "OR_ABI-L2-FDCF-M6_G16_s20202381500000_e20202381509000_c20202381509300.nc"
	start, end, err := parseScanWindow(name)
	require.NoError(t, err)

	require.Equal(t, 2020, start.Year())
	require.Equal(t, 238, start.YearDay())
	require.Equal(t, 15, start.Hour())
	require.Equal(t, 0, start.Minute())

	require.True(t, end.After(start))
}

func TestParseScanWindowRejectsMalformed(t *testing.T) {
	_, _, err := parseScanWindow("no_timestamps_here.nc")
	require.ErrorIs(t, err, ErrBadFilename)
}
