package cluster

import (
	"time"

	"github.com/rnleach/satfire"
	"github.com/rnleach/satfire/internal/satkind"
)

// ClusterList holds every cluster found in one scan, identified by the
// tuple (satellite, sector, scan start, scan end). Err is set when the
// source file for this scan could not be read; in that case Clusters is
// empty.
type ClusterList struct {
	Satellite satkind.Satellite
	Sector    satkind.Sector
	ScanStart time.Time
	ScanEnd   time.Time
	Clusters  []*Cluster
	Err       error
}

// Build partitions the flagged pixels of one scan (power > 0) into
// 8-connected clusters using union-find over a spatial index: two pixels
// are joined iff they overlap or are adjacent within eps. The resulting
// partition does not depend on iteration order. Clusters whose total power
// is exactly 0 are excluded (this can only happen for a cluster built from
// pixels whose individual powers summed to nothing, i.e. never for a
// properly flagged pixel, but the check is kept as a defensive invariant
// from the source spec).
func Build(pixels satfire.PixelList, eps float64) []*Cluster {
	flagged := make(satfire.PixelList, 0, len(pixels))
	for _, p := range pixels {
		if p.Power > 0 {
			flagged = append(flagged, p)
		}
	}

	if len(flagged) == 0 {
		return nil
	}

	idx := newSpatialIndex(flagged, nominalCellSize(flagged, eps))
	uf := newUnionFind(len(flagged))

	for i := range flagged {
		for _, j := range idx.candidatesFor(flagged, i) {
			if j <= i {
				continue
			}
			if flagged[i].Overlap(flagged[j], eps) || flagged[i].Adjacent(flagged[j], eps) {
				uf.union(i, j)
			}
		}
	}

	groups := uf.groups()
	clusters := make([]*Cluster, 0, len(groups))
	for _, members := range groups {
		pl := make(satfire.PixelList, len(members))
		for k, m := range members {
			pl[k] = flagged[m]
		}
		c := seal(pl)
		if c.TotalPower() == 0 {
			continue
		}
		clusters = append(clusters, c)
	}

	return clusters
}

// nominalCellSize picks a grid cell size of four times the longitude span
// of the first pixel, bounded below by the default, so sparse scans still
// bucket sensibly. eps does not affect the result.
func nominalCellSize(pixels satfire.PixelList, eps float64) float64 {
	if len(pixels) == 0 {
		return defaultCellSize
	}
	box := pixels[0].BoundingBox()
	span := box.UR.Lon - box.LL.Lon
	if span <= 0 {
		span = defaultCellSize
	}
	cell := span * 4
	if cell < defaultCellSize {
		cell = defaultCellSize
	}
	return cell
}

// FromScan builds a ClusterList for one scan's worth of pixels. readErr, if
// non-nil, marks the ClusterList as errored with no clusters, per the
// contract that the engine itself never signals failure — failure comes
// only from an unreadable source file.
func FromScan(sat satkind.Satellite, sector satkind.Sector, start, end time.Time, pixels satfire.PixelList, readErr error) *ClusterList {
	if readErr != nil {
		return &ClusterList{Satellite: sat, Sector: sector, ScanStart: start, ScanEnd: end, Err: readErr}
	}

	return &ClusterList{
		Satellite: sat,
		Sector:    sector,
		ScanStart: start,
		ScanEnd:   end,
		Clusters:  Build(pixels, DefaultEps),
	}
}
