package snapshot

import (
	"math"
	"sort"

	"github.com/openplacer/placeviz/internal/config"
	"github.com/openplacer/placeviz/internal/errors"
)

// Layout is the normalized form of a placement snapshot: the cells in
// deterministic draw order plus the core bounding box and the padded
// viewing extent.
type Layout struct {
	Cells  []CellRecord
	Core   Extent // union bounding box of all cells, unpadded
	Extent Extent // Core grown by config.PaddingFrac of the larger span
}

// NormalizeLayout computes the extent and draw order for a parsed cell
// set. It fails with an EMPTY_DATA error when no cells were parsed, so a
// renderer never sees an empty or unbounded extent.
func NormalizeLayout(cells []CellRecord) (*Layout, error) {
	if len(cells) == 0 {
		return nil, errors.New(errors.CodeEmptyData, "no usable cell records")
	}

	core := Extent{
		XMin: math.Inf(1),
		YMin: math.Inf(1),
		XMax: math.Inf(-1),
		YMax: math.Inf(-1),
	}
	for _, c := range cells {
		core.XMin = math.Min(core.XMin, c.X)
		core.YMin = math.Min(core.YMin, c.Y)
		core.XMax = math.Max(core.XMax, c.X+c.Width)
		core.YMax = math.Max(core.YMax, c.Y+c.Height)
	}

	ordered := make([]CellRecord, len(cells))
	copy(ordered, cells)
	sort.Slice(ordered, func(i, j int) bool {
		return drawBefore(ordered[i], ordered[j])
	})

	return &Layout{
		Cells:  ordered,
		Core:   core,
		Extent: core.Pad(config.PaddingFrac),
	}, nil
}

// drawBefore orders fixed cells first so movable cells visually overlay
// them, then by name ascending. The remaining fields act as tie-breakers
// so the order is a pure function of the record multiset: permuting input
// rows never changes what gets drawn over what.
func drawBefore(a, b CellRecord) bool {
	if a.Fixed != b.Fixed {
		return a.Fixed
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.Width != b.Width {
		return a.Width < b.Width
	}
	return a.Height < b.Height
}

// Counts returns how many cells are movable and how many are fixed.
func (l *Layout) Counts() (movable, fixed int) {
	for _, c := range l.Cells {
		if c.Fixed {
			fixed++
		} else {
			movable++
		}
	}
	return movable, fixed
}
