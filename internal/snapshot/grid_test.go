package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openplacer/placeviz/internal/errors"
)

func TestReconstructGrid_SortsAndRanksCoordinates(t *testing.T) {
	// Unsorted samples on an uneven 3×2 grid.
	grid, err := ReconstructGrid([]DensitySample{
		{X: 10, Y: 5, Value: 0.3},
		{X: 0, Y: 0, Value: 0.1},
		{X: 3, Y: 5, Value: 0.2},
		{X: 0, Y: 5, Value: 0.4},
		{X: 3, Y: 0, Value: 0.5},
		{X: 10, Y: 0, Value: 0.6},
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 3, 10}, grid.Xs)
	assert.Equal(t, []float64{0, 5}, grid.Ys)
	require.Len(t, grid.Cells, 2)
	require.Len(t, grid.Cells[0], 3)

	assert.InDelta(t, 0.1, grid.Cells[0][0], 1e-9)
	assert.InDelta(t, 0.5, grid.Cells[0][1], 1e-9)
	assert.InDelta(t, 0.6, grid.Cells[0][2], 1e-9)
	assert.InDelta(t, 0.4, grid.Cells[1][0], 1e-9)
	assert.InDelta(t, 0.2, grid.Cells[1][1], 1e-9)
	assert.InDelta(t, 0.3, grid.Cells[1][2], 1e-9)
}

func TestReconstructGrid_MissingCombinationsStayZero(t *testing.T) {
	// Only the diagonal of a 2×2 grid is sampled.
	grid, err := ReconstructGrid([]DensitySample{
		{X: 0, Y: 0, Value: 0.9},
		{X: 1, Y: 1, Value: 0.8},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.9, grid.Cells[0][0], 1e-9)
	assert.InDelta(t, 0.0, grid.Cells[0][1], 1e-9, "unsampled bin")
	assert.InDelta(t, 0.0, grid.Cells[1][0], 1e-9, "unsampled bin")
	assert.InDelta(t, 0.8, grid.Cells[1][1], 1e-9)
}

func TestReconstructGrid_LastWriteWins(t *testing.T) {
	grid, err := ReconstructGrid([]DensitySample{
		{X: 0, Y: 0, Value: 0.2},
		{X: 1, Y: 0, Value: 0.5},
		{X: 0, Y: 0, Value: 0.7},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.7, grid.Cells[0][0], 1e-9, "later duplicate replaces earlier")
	assert.InDelta(t, 0.5, grid.Cells[0][1], 1e-9)
}

func TestReconstructGrid_Empty(t *testing.T) {
	_, err := ReconstructGrid(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeEmptyData), "expected EMPTY_DATA, got %v", err)
}

func TestGrid_ValueRange(t *testing.T) {
	grid, err := ReconstructGrid([]DensitySample{
		{X: 0, Y: 0, Value: 0.9},
		{X: 1, Y: 1, Value: 0.3},
	})
	require.NoError(t, err)

	lo, hi := grid.ValueRange()
	assert.InDelta(t, 0.0, lo, 1e-9, "implicit zeros count toward the range")
	assert.InDelta(t, 0.9, hi, 1e-9)
}

func TestGrid_Stats(t *testing.T) {
	// 2×2 grid: values 0.9, 0.3 and two implicit zeros.
	grid, err := ReconstructGrid([]DensitySample{
		{X: 0, Y: 0, Value: 0.9},
		{X: 1, Y: 1, Value: 0.3},
	})
	require.NoError(t, err)

	st := grid.Stats()
	assert.Equal(t, 4, st.Bins)
	assert.InDelta(t, 0.9, st.Max, 1e-9)
	assert.InDelta(t, 0.3, st.Mean, 1e-9, "mean over all bins including zeros")
	assert.Equal(t, 1, st.Overcrowded)
	assert.InDelta(t, 25.0, st.OvercrowdedPct(), 1e-9)
}

func TestGrid_StatsThresholdIsExclusive(t *testing.T) {
	grid, err := ReconstructGrid([]DensitySample{
		{X: 0, Y: 0, Value: 0.7},
	})
	require.NoError(t, err)

	st := grid.Stats()
	assert.Equal(t, 0, st.Overcrowded, "a bin at exactly 0.7 is not overcrowded")
}

func TestGrid_StatsNegativeValues(t *testing.T) {
	grid, err := ReconstructGrid([]DensitySample{
		{X: 0, Y: 0, Value: -0.5},
		{X: 1, Y: 0, Value: -0.1},
	})
	require.NoError(t, err)

	st := grid.Stats()
	assert.InDelta(t, -0.1, st.Max, 1e-9, "max must track the first bin even when all values are negative")

	lo, hi := grid.ValueRange()
	assert.InDelta(t, -0.5, lo, 1e-9)
	assert.InDelta(t, -0.1, hi, 1e-9)
}
