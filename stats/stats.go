// Package stats implements the committer's running aggregates (C8):
// per-cluster stats (biggest cluster observed, power-bucket counts) and
// per-scan stats (max/min cluster count, max/min total power), grounded
// on the source's cluster_stats/cluster_list_stats accumulators.
package stats

import (
	"math"
	"time"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/rnleach/satfire/cluster"
	"github.com/rnleach/satfire/internal/satkind"
)

// ClusterStats tracks the most powerful cluster seen across a run, plus
// counts by power bucket. The "< 10 MW" bucket is a superset of "< 1 MW":
// every cluster under 1 MW is also under 10 MW, and both counters are
// incremented independently (see DESIGN.md for why this isn't mutually
// exclusive).
type ClusterStats struct {
	BiggestCluster *cluster.Cluster
	BiggestSat     satkind.Satellite
	BiggestSector  satkind.Sector
	BiggestStart   time.Time
	BiggestEnd     time.Time

	NumClusters    int
	NumPowerLt1MW  int
	NumPowerLt10MW int
}

// NewClusterStats returns a zeroed accumulator.
func NewClusterStats() *ClusterStats {
	return &ClusterStats{}
}

// Update folds one cluster from one scan into the accumulator.
func (s *ClusterStats) Update(sat satkind.Satellite, sector satkind.Sector, start, end time.Time, c *cluster.Cluster) {
	power := c.TotalPower()

	isNewBiggest := s.BiggestCluster == nil || power > s.BiggestCluster.TotalPower()
	s.BiggestCluster = lo.Ternary(isNewBiggest, c, s.BiggestCluster)
	if isNewBiggest {
		s.BiggestSat = sat
		s.BiggestSector = sector
		s.BiggestStart = start
		s.BiggestEnd = end
	}

	if power < 1.0 {
		s.NumPowerLt1MW++
	}
	if power < 10.0 {
		s.NumPowerLt10MW++
	}

	s.NumClusters++
}

// PctLt1MW returns the percentage of clusters under 1 MW, or 0 if no
// clusters have been observed yet (guards the divide-by-zero the source's
// integer-division version was vulnerable to).
func (s *ClusterStats) PctLt1MW() float64 {
	if s.NumClusters == 0 {
		return 0
	}
	return float64(s.NumPowerLt1MW) * 100 / float64(s.NumClusters)
}

// PctLt10MW returns the percentage of clusters under 10 MW, or 0 if no
// clusters have been observed yet.
func (s *ClusterStats) PctLt10MW() float64 {
	if s.NumClusters == 0 {
		return 0
	}
	return float64(s.NumPowerLt10MW) * 100 / float64(s.NumClusters)
}

// ClusterListStats tracks, across all scans processed in a run, the scan
// with the most and fewest clusters, and the scan with the highest and
// lowest total power.
type ClusterListStats struct {
	MinNumClustersSat    satkind.Satellite
	MinNumClustersSector satkind.Sector
	MinNumClusters       int
	MinNumClustersStart  time.Time
	MinNumClustersEnd    time.Time

	MaxNumClustersSat    satkind.Satellite
	MaxNumClustersSector satkind.Sector
	MaxNumClusters       int
	MaxNumClustersStart  time.Time
	MaxNumClustersEnd    time.Time

	MaxTotalPowerSat    satkind.Satellite
	MaxTotalPowerSector satkind.Sector
	MaxTotalPower       float64
	MaxTotalPowerStart  time.Time
	MaxTotalPowerEnd    time.Time

	MinTotalPowerSat    satkind.Satellite
	MinTotalPowerSector satkind.Sector
	MinTotalPower       float64
	MinTotalPowerStart  time.Time
	MinTotalPowerEnd    time.Time

	scanTotalPowers []float64
}

// NewClusterListStats returns an accumulator seeded so the first update
// always wins both the min and max comparisons.
func NewClusterListStats() *ClusterListStats {
	return &ClusterListStats{
		MinNumClusters: math.MaxInt,
		MinTotalPower:  math.Inf(1),
	}
}

// Update folds one scan's ClusterList into the accumulator.
func (s *ClusterListStats) Update(cl *cluster.ClusterList) {
	n := len(cl.Clusters)
	var totalPower float64
	for _, c := range cl.Clusters {
		totalPower += c.TotalPower()
	}
	s.scanTotalPowers = append(s.scanTotalPowers, totalPower)

	if n > s.MaxNumClusters {
		s.MaxNumClusters = n
		s.MaxNumClustersSat = cl.Satellite
		s.MaxNumClustersSector = cl.Sector
		s.MaxNumClustersStart = cl.ScanStart
		s.MaxNumClustersEnd = cl.ScanEnd
	}
	if n < s.MinNumClusters {
		s.MinNumClusters = n
		s.MinNumClustersSat = cl.Satellite
		s.MinNumClustersSector = cl.Sector
		s.MinNumClustersStart = cl.ScanStart
		s.MinNumClustersEnd = cl.ScanEnd
	}

	if totalPower > s.MaxTotalPower {
		s.MaxTotalPower = totalPower
		s.MaxTotalPowerSat = cl.Satellite
		s.MaxTotalPowerSector = cl.Sector
		s.MaxTotalPowerStart = cl.ScanStart
		s.MaxTotalPowerEnd = cl.ScanEnd
	}
	if totalPower < s.MinTotalPower {
		s.MinTotalPower = totalPower
		s.MinTotalPowerSat = cl.Satellite
		s.MinTotalPowerSector = cl.Sector
		s.MinTotalPowerStart = cl.ScanStart
		s.MinTotalPowerEnd = cl.ScanEnd
	}
}

// PowerSummary returns the mean and standard deviation of per-scan total
// power observed so far, computed with an unweighted sample estimator.
// Returns (0, 0) if no scans have been recorded yet.
func (s *ClusterListStats) PowerSummary() (mean, stdev float64) {
	if len(s.scanTotalPowers) == 0 {
		return 0, 0
	}
	return stat.MeanStdDev(s.scanTotalPowers, nil)
}
