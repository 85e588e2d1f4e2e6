package cluster

import (
	"testing"

	"github.com/rnleach/satfire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareAt(x, y, power float64) satfire.SatPixel {
	return satfire.SatPixel{
		UL:    satfire.Coord{Lat: y + 1, Lon: x},
		UR:    satfire.Coord{Lat: y + 1, Lon: x + 1},
		LR:    satfire.Coord{Lat: y, Lon: x + 1},
		LL:    satfire.Coord{Lat: y, Lon: x},
		Power: power,
	}
}

func TestBuildMergesAdjacentPixels(t *testing.T) {
	pixels := satfire.PixelList{
		squareAt(0, 0, 3.0),
		squareAt(1, 0, 4.0), // edge-adjacent to the first
		squareAt(10, 10, 2.0), // isolated
	}

	clusters := Build(pixels, 1e-6)
	require.Len(t, clusters, 2)

	var sizes []int
	for _, c := range clusters {
		sizes = append(sizes, c.PixelCount())
	}
	assert.ElementsMatch(t, []int{2, 1}, sizes)
}

func TestBuildExcludesUnflaggedPixels(t *testing.T) {
	pixels := satfire.PixelList{
		squareAt(0, 0, 0.0),
		squareAt(5, 5, 1.0),
	}

	clusters := Build(pixels, 1e-6)
	require.Len(t, clusters, 1)
	assert.Equal(t, 1, clusters[0].PixelCount())
}

func TestBuildPartitionIsExhaustiveAndDisjoint(t *testing.T) {
	pixels := satfire.PixelList{
		squareAt(0, 0, 1),
		squareAt(1, 0, 1),
		squareAt(2, 0, 1),
		squareAt(100, 100, 1),
	}

	clusters := Build(pixels, 1e-6)

	total := 0
	for _, c := range clusters {
		total += c.PixelCount()
		assert.Greater(t, c.TotalPower(), 0.0)
	}
	assert.Equal(t, len(pixels), total)
}

func TestBuildEmptyInput(t *testing.T) {
	assert.Nil(t, Build(nil, 1e-6))
}
