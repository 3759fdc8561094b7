// Package snapshot holds the data model and table readers for placement
// snapshots: cell placement tables and placement-density samples, plus the
// normalization that turns parsed rows into something a renderer can draw
// deterministically.
package snapshot

import "math"

// CellRecord is one placed rectangle from a placement table. The rectangle
// occupies [X, X+Width) × [Y, Y+Height) in world coordinates. Names are
// not guaranteed unique.
type CellRecord struct {
	Name   string
	X      float64
	Y      float64
	Width  float64
	Height float64
	Fixed  bool
}

// DensitySample is one sparse utilization sample. Samples lie on an
// implicit regular grid whose axes are the distinct X and Y values across
// the whole sample set.
type DensitySample struct {
	X     float64
	Y     float64
	Value float64
}

// Extent is an axis-aligned bounding box in world coordinates.
type Extent struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// Width returns the horizontal span.
func (e Extent) Width() float64 { return e.XMax - e.XMin }

// Height returns the vertical span.
func (e Extent) Height() float64 { return e.YMax - e.YMin }

// Pad returns the extent grown on every side by frac of the larger span.
// Using the larger span keeps a visible margin even when the layout is
// degenerate along one axis.
func (e Extent) Pad(frac float64) Extent {
	pad := frac * math.Max(e.Width(), e.Height())
	return Extent{
		XMin: e.XMin - pad,
		YMin: e.YMin - pad,
		XMax: e.XMax + pad,
		YMax: e.YMax + pad,
	}
}
