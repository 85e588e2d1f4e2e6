// Package cluster implements the 8-connectivity clustering engine that
// groups the flagged pixels of one scan into connected components (C3).
package cluster

import (
	"github.com/rnleach/satfire"
)

// DefaultEps is the geometric tolerance, in degrees, used for adjacency and
// overlap tests during clustering. It is chosen below typical FDC pixel
// resolution.
const DefaultEps = 1e-6

// Cluster is a sealed connected component of one scan. It is never empty
// and, once returned by the clustering engine, its fields do not change;
// there is no exported constructor — only Build produces Clusters.
type Cluster struct {
	pixels         satfire.PixelList
	totalPower     float64
	maxTemperature float64
	centroid       satfire.Coord
}

// Pixels returns the cluster's member pixels. The returned PixelList is a
// view; callers must not mutate it.
func (c *Cluster) Pixels() satfire.PixelList { return c.pixels }

// TotalPower is the sum of Power across the cluster's pixels.
func (c *Cluster) TotalPower() float64 { return c.totalPower }

// MaxTemperature is the maximum Temperature across the cluster's pixels.
func (c *Cluster) MaxTemperature() float64 { return c.maxTemperature }

// PixelCount is the number of pixels in the cluster.
func (c *Cluster) PixelCount() int { return len(c.pixels) }

// Centroid is the power-weighted centroid of the cluster's pixels.
func (c *Cluster) Centroid() satfire.Coord { return c.centroid }

// seal builds an immutable Cluster from its member pixels, computing the
// aggregate statistics once at construction time.
func seal(pixels satfire.PixelList) *Cluster {
	return &Cluster{
		pixels:         pixels,
		totalPower:     pixels.TotalPower(),
		maxTemperature: pixels.MaxTemperature(),
		centroid:       pixels.Centroid(),
	}
}
