package snapshot

import (
	"sort"

	"github.com/openplacer/placeviz/internal/config"
	"github.com/openplacer/placeviz/internal/errors"
)

// Grid is a dense |Y|×|X| density field reconstructed from sparse samples.
// Row 0 holds the smallest y coordinate; column 0 the smallest x.
type Grid struct {
	Xs    []float64   // distinct x coordinates, ascending
	Ys    []float64   // distinct y coordinates, ascending
	Cells [][]float64 // Cells[yRank][xRank]
}

// ReconstructGrid maps an unordered sample set onto the dense grid implied
// by its distinct coordinates. Combinations never sampled stay zero;
// duplicate (x, y) pairs keep the value of the last sample in input order.
// It fails with an EMPTY_DATA error when no samples were parsed.
func ReconstructGrid(samples []DensitySample) (*Grid, error) {
	if len(samples) == 0 {
		return nil, errors.New(errors.CodeEmptyData, "no usable density samples")
	}

	xs, xRank := rankAxis(samples, func(s DensitySample) float64 { return s.X })
	ys, yRank := rankAxis(samples, func(s DensitySample) float64 { return s.Y })

	cells := make([][]float64, len(ys))
	for i := range cells {
		cells[i] = make([]float64, len(xs))
	}
	for _, s := range samples {
		cells[yRank[s.Y]][xRank[s.X]] = s.Value
	}

	return &Grid{Xs: xs, Ys: ys, Cells: cells}, nil
}

// rankAxis returns the sorted distinct coordinates along one axis together
// with a map from coordinate to 0-based rank. The map keeps sample
// placement O(n) after the O(n log n) sort; searching the slice per sample
// would degrade to O(n²) on large grids.
func rankAxis(samples []DensitySample, coord func(DensitySample) float64) ([]float64, map[float64]int) {
	seen := make(map[float64]struct{}, len(samples))
	axis := make([]float64, 0, len(samples))
	for _, s := range samples {
		v := coord(s)
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			axis = append(axis, v)
		}
	}
	sort.Float64s(axis)

	rank := make(map[float64]int, len(axis))
	for i, v := range axis {
		rank[v] = i
	}
	return axis, rank
}

// ValueRange returns the smallest and largest values across all bins,
// including the implicit zeros of unsampled combinations.
func (g *Grid) ValueRange() (lo, hi float64) {
	lo, hi = g.Cells[0][0], g.Cells[0][0]
	for _, row := range g.Cells {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// GridStats summarizes a grid for the image annotation: the maximum and
// mean bin values, and how many bins exceed the overcrowding threshold.
type GridStats struct {
	Max         float64
	Mean        float64
	Overcrowded int
	Bins        int
}

// Stats computes summary statistics over every bin of the grid.
func (g *Grid) Stats() GridStats {
	st := GridStats{}
	var sum float64
	for _, row := range g.Cells {
		for _, v := range row {
			st.Bins++
			sum += v
			if st.Bins == 1 || v > st.Max {
				st.Max = v
			}
			if v > config.OvercrowdThreshold {
				st.Overcrowded++
			}
		}
	}
	if st.Bins > 0 {
		st.Mean = sum / float64(st.Bins)
	}
	return st
}

// OvercrowdedPct returns the overcrowded bin share as a percentage.
func (s GridStats) OvercrowdedPct() float64 {
	if s.Bins == 0 {
		return 0
	}
	return 100 * float64(s.Overcrowded) / float64(s.Bins)
}
