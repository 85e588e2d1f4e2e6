package scanread

import (
	"testing"
	"time"

	"github.com/rnleach/satfire"
	"github.com/rnleach/satfire/internal/satkind"
	"github.com/stretchr/testify/require"
)

func TestFakeReadKnownPath(t *testing.T) {
	f := NewFake()
	want := Result{
		Satellite: satkind.G16,
		Sector:    satkind.FullDisk,
		ScanStart: time.Unix(100, 0),
		ScanEnd:   time.Unix(160, 0),
		Pixels:    satfire.PixelList{},
	}
	f.Add("scan.nc", want)

	got, err := f.Read("scan.nc")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestFakeReadUnknownPath(t *testing.T) {
	f := NewFake()
	_, err := f.Read("missing.nc")
	require.ErrorIs(t, err, ErrUnknownPath)
}
