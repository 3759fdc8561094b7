package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openplacer/placeviz/internal/errors"
)

func TestNormalizeLayout_PaddingFormula(t *testing.T) {
	// One 2×1 cell at the origin: the larger span is 2, so every side
	// grows by 0.05 × 2 = 0.1.
	layout, err := NormalizeLayout([]CellRecord{
		{Name: "A", X: 0, Y: 0, Width: 2, Height: 1},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.0, layout.Core.XMin, 1e-9)
	assert.InDelta(t, 0.0, layout.Core.YMin, 1e-9)
	assert.InDelta(t, 2.0, layout.Core.XMax, 1e-9)
	assert.InDelta(t, 1.0, layout.Core.YMax, 1e-9)

	assert.InDelta(t, -0.1, layout.Extent.XMin, 1e-9)
	assert.InDelta(t, -0.1, layout.Extent.YMin, 1e-9)
	assert.InDelta(t, 2.1, layout.Extent.XMax, 1e-9)
	assert.InDelta(t, 1.1, layout.Extent.YMax, 1e-9)
}

func TestNormalizeLayout_CoreSpansAllCells(t *testing.T) {
	layout, err := NormalizeLayout([]CellRecord{
		{Name: "a", X: -3, Y: 2, Width: 1, Height: 1},
		{Name: "b", X: 5, Y: -1, Width: 4, Height: 0.5},
		{Name: "c", X: 0, Y: 0, Width: 1, Height: 8},
	})
	require.NoError(t, err)

	assert.InDelta(t, -3.0, layout.Core.XMin, 1e-9, "leftmost cell edge")
	assert.InDelta(t, -1.0, layout.Core.YMin, 1e-9, "lowest cell edge")
	assert.InDelta(t, 9.0, layout.Core.XMax, 1e-9, "rightmost edge is x+width")
	assert.InDelta(t, 8.0, layout.Core.YMax, 1e-9, "topmost edge is y+height")

	assert.Less(t, layout.Extent.XMin, layout.Core.XMin)
	assert.Less(t, layout.Extent.YMin, layout.Core.YMin)
	assert.Greater(t, layout.Extent.XMax, layout.Core.XMax)
	assert.Greater(t, layout.Extent.YMax, layout.Core.YMax)
}

func TestNormalizeLayout_DrawOrder(t *testing.T) {
	layout, err := NormalizeLayout([]CellRecord{
		{Name: "m2", X: 0, Y: 0, Width: 1, Height: 1},
		{Name: "f1", X: 4, Y: 4, Width: 1, Height: 1, Fixed: true},
		{Name: "m1", X: 2, Y: 2, Width: 1, Height: 1},
		{Name: "f2", X: 6, Y: 6, Width: 1, Height: 1, Fixed: true},
	})
	require.NoError(t, err)

	var names []string
	for _, c := range layout.Cells {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"f1", "f2", "m1", "m2"}, names,
		"fixed cells draw first, then by name")
}

func TestNormalizeLayout_DuplicateNamesOrderByPosition(t *testing.T) {
	layout, err := NormalizeLayout([]CellRecord{
		{Name: "row", X: 5, Y: 0, Width: 1, Height: 1},
		{Name: "row", X: 1, Y: 0, Width: 1, Height: 1},
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, layout.Cells[0].X, 1e-9)
	assert.InDelta(t, 5.0, layout.Cells[1].X, 1e-9)
}

func TestNormalizeLayout_OrderIndependent(t *testing.T) {
	cells := []CellRecord{
		{Name: "b", X: 1, Y: 1, Width: 1, Height: 1},
		{Name: "pad", X: 0, Y: 0, Width: 1, Height: 1, Fixed: true},
		{Name: "a", X: 2, Y: 2, Width: 1, Height: 1},
	}
	shuffled := []CellRecord{cells[2], cells[0], cells[1]}

	first, err := NormalizeLayout(cells)
	require.NoError(t, err)
	second, err := NormalizeLayout(shuffled)
	require.NoError(t, err)

	assert.Equal(t, first.Cells, second.Cells)
	assert.Equal(t, first.Core, second.Core)
	assert.Equal(t, first.Extent, second.Extent)
}

func TestNormalizeLayout_DoesNotMutateInput(t *testing.T) {
	cells := []CellRecord{
		{Name: "z", X: 0, Y: 0, Width: 1, Height: 1},
		{Name: "a", X: 1, Y: 1, Width: 1, Height: 1, Fixed: true},
	}

	_, err := NormalizeLayout(cells)
	require.NoError(t, err)

	assert.Equal(t, "z", cells[0].Name, "caller's slice must keep file order")
	assert.Equal(t, "a", cells[1].Name)
}

func TestNormalizeLayout_Empty(t *testing.T) {
	_, err := NormalizeLayout(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeEmptyData), "expected EMPTY_DATA, got %v", err)
}

func TestLayout_Counts(t *testing.T) {
	layout, err := NormalizeLayout([]CellRecord{
		{Name: "a", X: 0, Y: 0, Width: 1, Height: 1},
		{Name: "b", X: 1, Y: 0, Width: 1, Height: 1},
		{Name: "pad0", X: 2, Y: 0, Width: 1, Height: 1, Fixed: true},
	})
	require.NoError(t, err)

	movable, fixed := layout.Counts()
	assert.Equal(t, 2, movable)
	assert.Equal(t, 1, fixed)
}

func TestExtent_PadUsesLargerSpan(t *testing.T) {
	// A wide, flat extent: 10 across, 2 tall. Padding comes from the
	// 10-unit span on both axes.
	e := Extent{XMin: 0, YMin: 0, XMax: 10, YMax: 2}
	padded := e.Pad(0.05)

	assert.InDelta(t, -0.5, padded.XMin, 1e-9)
	assert.InDelta(t, -0.5, padded.YMin, 1e-9)
	assert.InDelta(t, 10.5, padded.XMax, 1e-9)
	assert.InDelta(t, 2.5, padded.YMax, 1e-9)

	assert.InDelta(t, 10.0, e.Width(), 1e-9)
	assert.InDelta(t, 2.0, e.Height(), 1e-9)
}
