package cluster

import (
	"math"

	"github.com/rnleach/satfire"
)

// gridCell identifies a bucket in the spatial index.
type gridCell struct {
	x, y int
}

// spatialIndex buckets pixel indices by the grid cell containing their
// bounding-box center, at a cell size near the nominal pixel span. Only
// pixels in the same or neighbouring (8-connected) cells are considered
// candidate pairs, bringing the adjacency search down from O(n^2) to
// O(n log n) in practice for imagery where pixels cluster spatially.
type spatialIndex struct {
	cellSize float64
	buckets  map[gridCell][]int
}

// defaultCellSize is chosen comfortably above typical GOES ABI FDC pixel
// extents (a few hundredths of a degree at nadir) so that adjacent pixels
// always land in the same or a neighbouring cell.
const defaultCellSize = 0.1

func newSpatialIndex(pixels satfire.PixelList, cellSize float64) *spatialIndex {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	idx := &spatialIndex{cellSize: cellSize, buckets: make(map[gridCell][]int)}
	for i, p := range pixels {
		box := p.BoundingBox()
		cx := (box.LL.Lon + box.UR.Lon) / 2.0
		cy := (box.LL.Lat + box.UR.Lat) / 2.0
		cell := idx.cellFor(cx, cy)
		idx.buckets[cell] = append(idx.buckets[cell], i)
	}
	return idx
}

func (idx *spatialIndex) cellFor(lon, lat float64) gridCell {
	return gridCell{
		x: int(math.Floor(lon / idx.cellSize)),
		y: int(math.Floor(lat / idx.cellSize)),
	}
}

// candidatesFor returns every pixel index sharing the cell of pixel i or
// one of its 8 neighbouring cells, excluding i itself.
func (idx *spatialIndex) candidatesFor(pixels satfire.PixelList, i int) []int {
	box := pixels[i].BoundingBox()
	cx := (box.LL.Lon + box.UR.Lon) / 2.0
	cy := (box.LL.Lat + box.UR.Lat) / 2.0
	center := idx.cellFor(cx, cy)

	var out []int
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			cell := gridCell{x: center.x + dx, y: center.y + dy}
			for _, j := range idx.buckets[cell] {
				if j != i {
					out = append(out, j)
				}
			}
		}
	}
	return out
}
