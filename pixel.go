package satfire

import "math"

// SatPixel is a convex quadrilateral in lat/lon space describing one scan
// cell, plus the scalar attributes carried by the FDC product. Corners are
// named the way the source imagery's scan geometry names them: upper/lower,
// left/right.
type SatPixel struct {
	UL Coord
	UR Coord
	LR Coord
	LL Coord

	Power       float64 // MW; > 0 for a pixel flagged as fire.
	Temperature float64 // Kelvin or Celsius, per the source product.
	Area        float64
	ScanAngle   float64
}

// triangleCentroid averages three corners.
func triangleCentroid(v1, v2, v3 Coord) Coord {
	return Coord{
		Lat: (v1.Lat + v2.Lat + v3.Lat) / 3.0,
		Lon: (v1.Lon + v2.Lon + v3.Lon) / 3.0,
	}
}

// Centroid computes the power-unaware geometric centroid of the
// quadrilateral by decomposing it into two triangles along each diagonal,
// averaging each triangle's corners, and intersecting the two resulting
// lines. For a convex, non-degenerate quadrilateral this intersection must
// exist; its absence is a programmer error (malformed pixel) and panics.
func (p SatPixel) Centroid() Coord {
	t1 := triangleCentroid(p.UL, p.LL, p.LR)
	t2 := triangleCentroid(p.UL, p.UR, p.LR)
	diag1 := Line{Start: t1, End: t2}

	t3 := triangleCentroid(p.UL, p.LL, p.UR)
	t4 := triangleCentroid(p.LR, p.UR, p.LL)
	diag2 := Line{Start: t3, End: t4}

	res := Intersect(diag1, diag2)
	if res.Kind != Interior && res.Kind != EndpointTouch {
		panic("satfire: centroid diagonals did not intersect; pixel is degenerate or non-convex")
	}

	return res.Point
}

// BoundingBox is an axis-aligned lat/lon envelope. Containment is strict:
// points exactly on the boundary are not contained.
type BoundingBox struct {
	LL Coord
	UR Coord
}

// BoundingBox computes the pixel's bounding envelope.
func (p SatPixel) BoundingBox() BoundingBox {
	xmax := math.Max(p.UR.Lon, p.LR.Lon)
	xmin := math.Min(p.UL.Lon, p.LL.Lon)
	ymax := math.Max(p.UR.Lat, p.UL.Lat)
	ymin := math.Min(p.LR.Lat, p.LL.Lat)

	return BoundingBox{
		LL: Coord{Lat: ymin, Lon: xmin},
		UR: Coord{Lat: ymax, Lon: xmax},
	}
}

// Contains reports whether the box strictly contains coord.
func (b BoundingBox) Contains(c Coord) bool {
	lonInRange := c.Lon < b.UR.Lon && c.Lon > b.LL.Lon
	latInRange := c.Lat < b.UR.Lat && c.Lat > b.LL.Lat
	return lonInRange && latInRange
}

// Union returns the smallest bounding box containing both boxes.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		LL: Coord{Lat: math.Min(b.LL.Lat, o.LL.Lat), Lon: math.Min(b.LL.Lon, o.LL.Lon)},
		UR: Coord{Lat: math.Max(b.UR.Lat, o.UR.Lat), Lon: math.Max(b.UR.Lon, o.UR.Lon)},
	}
}

func (p SatPixel) edges() [4]Line {
	return [4]Line{
		{Start: p.UL, End: p.UR},
		{Start: p.UR, End: p.LR},
		{Start: p.LR, End: p.LL},
		{Start: p.LL, End: p.UL},
	}
}

func (p SatPixel) corners() [4]Coord {
	return [4]Coord{p.UL, p.UR, p.LR, p.LL}
}

// ContainsCoord reports whether coord lies strictly inside the pixel. A
// point inside a convex quadrilateral cannot be separated from any corner
// by any edge, so the test first rejects via the bounding box, then checks
// whether any edge of the pixel has an interior intersection with any
// segment from coord to a pixel corner; if none do, coord is inside.
func (p SatPixel) ContainsCoord(c Coord) bool {
	box := p.BoundingBox()
	if !box.Contains(c) {
		return false
	}

	edges := p.edges()
	corners := p.corners()

	for _, e := range edges {
		for _, corner := range corners {
			res := Intersect(e, Line{Start: c, End: corner})
			if res.Kind == Interior {
				return false
			}
		}
	}

	return true
}

// ApproxEqual reports whether all four corresponding corner pairs are
// within eps of each other.
func (p SatPixel) ApproxEqual(o SatPixel, eps float64) bool {
	return Close(p.UL, o.UL, eps) && Close(p.UR, o.UR, eps) &&
		Close(p.LR, o.LR, eps) && Close(p.LL, o.LL, eps)
}

// Overlap reports whether two pixels overlap: they are approximately equal,
// or some edge of one has an interior intersection with an edge of the
// other, or a corner of one is contained within the other. Edge-only touch
// (EndpointTouch) does not count as overlap.
func (p SatPixel) Overlap(o SatPixel, eps float64) bool {
	if p.ApproxEqual(o, eps) {
		return true
	}

	pEdges := p.edges()
	oEdges := o.edges()

	for _, pe := range pEdges {
		for _, oe := range oEdges {
			res := Intersect(pe, oe)
			if res.Kind == Interior {
				return true
			}
		}
	}

	for _, c := range p.corners() {
		if o.ContainsCoord(c) {
			return true
		}
	}
	for _, c := range o.corners() {
		if p.ContainsCoord(c) {
			return true
		}
	}

	return false
}

// cornerNearEdge reports whether coord is within eps of edge e without
// being interior to it (i.e. it touches or nearly touches the edge, which
// is the adjacency condition, not the overlap condition).
func cornerNearEdge(c Coord, e Line, eps float64) bool {
	// Distance from point to segment: project onto the segment and clamp.
	dx := e.End.Lon - e.Start.Lon
	dy := e.End.Lat - e.Start.Lat
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Close(c, e.Start, eps)
	}

	t := ((c.Lon-e.Start.Lon)*dx + (c.Lat-e.Start.Lat)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := Coord{Lat: e.Start.Lat + t*dy, Lon: e.Start.Lon + t*dx}
	return Close(c, proj, eps)
}

// Adjacent reports whether two pixels share a common edge or corner: any
// corner of one is within eps of any corner of the other, or a corner of
// one is within eps of an edge of the other without being interior to it.
// Adjacency is symmetric and mutually exclusive with Overlap: a pixel
// compared to itself overlaps but is never adjacent to itself.
func (p SatPixel) Adjacent(o SatPixel, eps float64) bool {
	if p.Overlap(o, eps) {
		return false
	}

	pCorners := p.corners()
	oCorners := o.corners()

	for _, pc := range pCorners {
		for _, oc := range oCorners {
			if Close(pc, oc, eps) {
				return true
			}
		}
	}

	oEdges := o.edges()
	for _, pc := range pCorners {
		for _, oe := range oEdges {
			if cornerNearEdge(pc, oe, eps) {
				return true
			}
		}
	}

	pEdges := p.edges()
	for _, oc := range oCorners {
		for _, pe := range pEdges {
			if cornerNearEdge(oc, pe, eps) {
				return true
			}
		}
	}

	return false
}
