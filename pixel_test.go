package satfire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func unitSquareAt(x, y float64) SatPixel {
	return SatPixel{
		UL:          Coord{Lat: y + 1, Lon: x},
		UR:          Coord{Lat: y + 1, Lon: x + 1},
		LR:          Coord{Lat: y, Lon: x + 1},
		LL:          Coord{Lat: y, Lon: x},
		Power:       5.0,
		Temperature: 310.0,
	}
}

func TestCentroidUnitSquare(t *testing.T) {
	p := unitSquareAt(0, 0)
	c := p.Centroid()
	assert.InDelta(t, 0.5, c.Lat, 1e-9)
	assert.InDelta(t, 0.5, c.Lon, 1e-9)
}

func TestContainsCoordBoundary(t *testing.T) {
	p := unitSquareAt(0, 0)

	assert.True(t, p.ContainsCoord(Coord{Lat: 0.5, Lon: 0.5}))
	assert.False(t, p.ContainsCoord(Coord{Lat: 0, Lon: 0}))
	assert.False(t, p.ContainsCoord(Coord{Lat: 1.5, Lon: 0.5}))
}

func TestCentroidIsContained(t *testing.T) {
	p := unitSquareAt(3.2, -5.7)
	assert.True(t, p.ContainsCoord(p.Centroid()))
}

func TestOverlapSymmetric(t *testing.T) {
	a := unitSquareAt(0, 0)
	b := unitSquareAt(0.5, 0.5)

	assert.True(t, a.Overlap(b, 1e-9))
	assert.True(t, b.Overlap(a, 1e-9))
}

func TestAdjacentEdgeSharingSquares(t *testing.T) {
	a := unitSquareAt(0, 0)
	b := unitSquareAt(1.0, 0)

	assert.True(t, a.Adjacent(b, 1e-6))
	assert.True(t, b.Adjacent(a, 1e-6))
	assert.False(t, a.Overlap(b, 1e-6))
}

func TestAdjacentCornerSharingSquares(t *testing.T) {
	a := unitSquareAt(0, 0)
	b := unitSquareAt(1.0, 1.0)

	assert.True(t, a.Adjacent(b, 1e-6))
	assert.False(t, a.Overlap(b, 1e-6))
}

func TestSelfOverlapNotAdjacent(t *testing.T) {
	p := unitSquareAt(10, 10)

	assert.True(t, p.ApproxEqual(p, 1e-9))
	assert.True(t, p.Overlap(p, 1e-9))
	assert.False(t, p.Adjacent(p, 1e-9))
}

func TestDisjointPixelsNeitherOverlapNorAdjacent(t *testing.T) {
	a := unitSquareAt(0, 0)
	b := unitSquareAt(10, 10)

	assert.False(t, a.Overlap(b, 1e-6))
	assert.False(t, a.Adjacent(b, 1e-6))
}

func TestBoundingBoxStrictContainment(t *testing.T) {
	p := unitSquareAt(0, 0)
	box := p.BoundingBox()

	assert.True(t, box.Contains(Coord{Lat: 0.5, Lon: 0.5}))
	assert.False(t, box.Contains(Coord{Lat: 0, Lon: 0.5}))
	assert.False(t, box.Contains(Coord{Lat: 1, Lon: 0.5}))
}
