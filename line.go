package satfire

import "math"

// Line is a line segment described by its two endpoints.
type Line struct {
	Start Coord
	End   Coord
}

// IntersectKind classifies the result of intersecting two line segments.
type IntersectKind int

const (
	// Parallel means the two segments' supporting lines are parallel
	// (including collinear and coincident-vertical cases).
	Parallel IntersectKind = iota
	// Disjoint means the supporting lines cross, but not within both
	// segments' bounding intervals.
	Disjoint
	// Interior means the segments cross at a point interior to both.
	Interior
	// EndpointTouch means the intersection point coincides exactly
	// (bitwise) with an endpoint of both segments.
	EndpointTouch
)

// IntersectResult is the outcome of intersecting two line segments.
type IntersectResult struct {
	Point Coord
	Kind  IntersectKind
}

// Intersect computes the intersection of two line segments per the
// documented classification. Endpoint-touch equality is exact (bitwise),
// never eps-tolerant; tolerance is applied only at the pixel API layer.
func Intersect(l1, l2 Line) IntersectResult {
	m1 := (l1.End.Lat - l1.Start.Lat) / (l1.End.Lon - l1.Start.Lon)
	m2 := (l2.End.Lat - l2.Start.Lat) / (l2.End.Lon - l2.Start.Lon)

	x1, y1 := l1.Start.Lon, l1.Start.Lat
	x2, y2 := l2.Start.Lon, l2.Start.Lat

	if m1 == m2 || (math.IsInf(m1, 0) && math.IsInf(m2, 0)) {
		return IntersectResult{Point: Coord{Lat: math.NaN(), Lon: math.NaN()}, Kind: Parallel}
	}

	var x0, y0 float64
	switch {
	case math.IsInf(m1, 0):
		x0 = l1.Start.Lon
		y0 = m2*(x0-x2) + y2
	case math.IsInf(m2, 0):
		x0 = l2.Start.Lon
		y0 = m1*(x0-x1) + y1
	default:
		x0 = (y2 - y1 + m1*x1 - m2*x2) / (m1 - m2)
		y0 = m1*(x0-x1) + y1
	}

	p := Coord{Lat: y0, Lon: x0}

	if outsideSegment(p, l1) || outsideSegment(p, l2) {
		return IntersectResult{Point: p, Kind: Disjoint}
	}

	isL1Endpoint := p == l1.Start || p == l1.End
	isL2Endpoint := p == l2.Start || p == l2.End

	if isL1Endpoint && isL2Endpoint {
		return IntersectResult{Point: p, Kind: EndpointTouch}
	}
	return IntersectResult{Point: p, Kind: Interior}
}

func outsideSegment(p Coord, l Line) bool {
	ymax, ymin := math.Max(l.Start.Lat, l.End.Lat), math.Min(l.Start.Lat, l.End.Lat)
	xmax, xmin := math.Max(l.Start.Lon, l.End.Lon), math.Min(l.Start.Lon, l.End.Lon)
	return p.Lat > ymax || p.Lat < ymin || p.Lon > xmax || p.Lon < xmin
}
