package satfire

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPixelListRoundTrip(t *testing.T) {
	pl := PixelList{
		unitSquareAt(0, 0),
		unitSquareAt(1, 0),
		unitSquareAt(0, 1),
	}

	buf := pl.Serialize()
	require.Equal(t, pl.SerializeSize(), len(buf))

	got, err := DeserializePixelList(buf)
	require.NoError(t, err)

	if diff := cmp.Diff(pl, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPixelListDeserializeBadMagic(t *testing.T) {
	pl := PixelList{unitSquareAt(0, 0)}
	buf := pl.Serialize()
	buf[0] ^= 0xFF

	_, err := DeserializePixelList(buf)
	require.ErrorIs(t, err, ErrBadFormat)
}

func TestPixelListDeserializeTruncated(t *testing.T) {
	pl := PixelList{unitSquareAt(0, 0), unitSquareAt(1, 0)}
	buf := pl.Serialize()

	_, err := DeserializePixelList(buf[:len(buf)-4])
	require.ErrorIs(t, err, ErrBadFormat)
}

func TestPixelListAggregates(t *testing.T) {
	pl := PixelList{unitSquareAt(0, 0), unitSquareAt(1, 0)}
	require.InDelta(t, 10.0, pl.TotalPower(), 1e-9)
	require.InDelta(t, 310.0, pl.MaxTemperature(), 1e-9)

	box := pl.BoundingBox()
	require.InDelta(t, 0.0, box.LL.Lon, 1e-9)
	require.InDelta(t, 2.0, box.UR.Lon, 1e-9)
}

func TestPixelListEmptyCentroid(t *testing.T) {
	var pl PixelList
	require.Equal(t, Coord{}, pl.Centroid())
}
