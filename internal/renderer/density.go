package renderer

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"

	"github.com/openplacer/placeviz/internal/config"
	"github.com/openplacer/placeviz/internal/errors"
	"github.com/openplacer/placeviz/internal/snapshot"
)

// RenderDensity draws the grid as a color-mapped raster: one rectangle per
// bin colored by its normalized value, a labeled colorbar on the right,
// corner tick labels from the sorted axis coordinates, and a statistics
// box overlaid on the plot. The caller owns writing the image out.
func RenderDensity(grid *snapshot.Grid, title string) (*image.RGBA, error) {
	if grid == nil || len(grid.Xs) == 0 || len(grid.Ys) == 0 {
		return nil, errors.New(errors.CodeEmptyData, "no density grid to render")
	}

	ss := config.SuperSample
	w, h := config.Width*ss, config.Height*ss

	titleFace, err := LoadBoldFont(config.TitleFontSize * float64(ss))
	if err != nil {
		return nil, err
	}
	defer titleFace.Close()

	labelFace, err := LoadFont(config.LabelFontSize * float64(ss))
	if err != nil {
		return nil, err
	}
	defer labelFace.Close()

	statsFace, err := LoadFont(config.LegendFontSize * float64(ss))
	if err != nil {
		return nil, err
	}
	defer statsFace.Close()

	footerFace, err := LoadFont(config.FooterFontSize * float64(ss))
	if err != nil {
		return nil, err
	}
	defer footerFace.Close()

	canvas := NewCanvas(w, h, mustRGBA(config.BackgroundColor))
	img := canvas.Image()

	_, th := MeasureString(titleFace, title)
	DrawCenteredString(img, titleFace, title, w/2, (config.MarginTop*ss+th)/2, mustRGBA(config.TitleColor))

	// The colorbar and its gutter come out of the right margin side.
	plotX := config.MarginSide * ss
	plotY := config.MarginTop * ss
	plotW := w - 2*plotX - (config.ColorbarWidth+config.ColorbarGutter)*ss
	plotH := h - (config.MarginTop+config.MarginBottom)*ss

	lo, hi := grid.ValueRange()
	span := hi - lo
	if span <= 0 {
		span = 1
	}

	cmap := DensityColormap()
	nx, ny := len(grid.Xs), len(grid.Ys)
	binW := float64(plotW) / float64(nx)
	binH := float64(plotH) / float64(ny)

	// Row rank 0 holds the smallest y, which belongs at the bottom of
	// the plot.
	for iy, row := range grid.Cells {
		py1 := plotY + plotH - int(math.Round(float64(iy)*binH))
		py0 := plotY + plotH - int(math.Round(float64(iy+1)*binH))
		for ix, v := range row {
			px0 := plotX + int(math.Round(float64(ix)*binW))
			px1 := plotX + int(math.Round(float64(ix+1)*binW))
			canvas.FillRect(px0, py0, px1, py1, cmap.At((v-lo)/span), 1)
		}
	}

	frame := mustRGBA(config.FrameColor)
	canvas.StrokeRect(plotX, plotY, plotX+plotW, plotY+plotH, frame, ss)

	drawAxisLabels(canvas, labelFace, grid, plotX, plotY, plotW, plotH, ss)
	drawColorbar(canvas, labelFace, cmap, lo, hi, plotX+plotW+config.ColorbarGutter*ss, plotY, plotH, ss)
	drawStatsBox(canvas, statsFace, grid.Stats(), plotX, plotY, ss)

	footer := fmt.Sprintf("%d × %d density grid", nx, ny)
	DrawCenteredString(img, footerFace, footer, w/2, h-12*ss, mustRGBA(config.FooterColor))

	return canvas.Downsample(ss), nil
}

// drawAxisLabels marks the plot corners with the extreme axis coordinates
// so the world range is readable without a full tick ruler.
func drawAxisLabels(c *Canvas, face font.Face, grid *snapshot.Grid, plotX, plotY, plotW, plotH, ss int) {
	img := c.Image()
	col := mustRGBA(config.FooterColor)

	xLo := fmt.Sprintf("%g", grid.Xs[0])
	xHi := fmt.Sprintf("%g", grid.Xs[len(grid.Xs)-1])
	yLo := fmt.Sprintf("%g", grid.Ys[0])
	yHi := fmt.Sprintf("%g", grid.Ys[len(grid.Ys)-1])

	// X extremes under the plot's bottom edge.
	_, lh := MeasureString(face, xLo)
	baseline := plotY + plotH + lh + 6*ss
	DrawString(img, face, xLo, plotX, baseline, col)
	wHi, _ := MeasureString(face, xHi)
	DrawString(img, face, xHi, plotX+plotW-wHi, baseline, col)

	// Y extremes to the left of the plot, bottom and top.
	wLo, lhLo := MeasureString(face, yLo)
	DrawString(img, face, yLo, plotX-wLo-6*ss, plotY+plotH, col)
	wYHi, _ := MeasureString(face, yHi)
	DrawString(img, face, yHi, plotX-wYHi-6*ss, plotY+lhLo, col)
}

// drawColorbar paints the value ramp alongside the plot with the high,
// middle and low values labeled.
func drawColorbar(c *Canvas, face font.Face, cmap Colormap, lo, hi float64, barX, barY, barH, ss int) {
	img := c.Image()
	barW := config.ColorbarWidth * ss

	for y := 0; y < barH; y++ {
		t := 1 - float64(y)/float64(barH-1)
		c.FillRect(barX, barY+y, barX+barW, barY+y+1, cmap.At(t), 1)
	}
	c.StrokeRect(barX, barY, barX+barW, barY+barH, mustRGBA(config.FrameColor), ss)

	col := mustRGBA(config.TitleColor)
	labels := []struct {
		value float64
		frac  float64
	}{
		{hi, 0},
		{lo + (hi-lo)/2, 0.5},
		{lo, 1},
	}
	for _, l := range labels {
		text := fmt.Sprintf("%.2f", l.value)
		_, lh := MeasureString(face, text)
		baseline := barY + int(l.frac*float64(barH)) + lh/2
		DrawString(img, face, text, barX+barW+4*ss, baseline, col)
	}
}

// drawStatsBox overlays the summary annotation in the top-left plot
// corner on a translucent panel so it stays readable over bright bins.
func drawStatsBox(c *Canvas, face font.Face, st snapshot.GridStats, plotX, plotY, ss int) {
	img := c.Image()

	lines := []string{
		fmt.Sprintf("max %.3f", st.Max),
		fmt.Sprintf("mean %.3f", st.Mean),
		fmt.Sprintf("> %.1f: %d bins (%.1f%%)", config.OvercrowdThreshold, st.Overcrowded, st.OvercrowdedPct()),
	}

	pad := 8 * ss
	lineH := int(config.LegendFontSize*1.5) * ss
	boxW := 0
	for _, line := range lines {
		tw, _ := MeasureString(face, line)
		if tw > boxW {
			boxW = tw
		}
	}
	boxW += 2 * pad
	boxH := lineH*len(lines) + 2*pad

	bx := plotX + 10*ss
	by := plotY + 10*ss
	c.FillRect(bx, by, bx+boxW, by+boxH, mustRGBA(config.BackgroundColor), config.StatsBoxAlpha)
	c.StrokeRect(bx, by, bx+boxW, by+boxH, mustRGBA(config.FrameColor), ss)

	col := mustRGBA(config.StatsTextColor)
	for i, line := range lines {
		baseline := by + pad + lineH*i + lineH*3/4
		DrawString(img, face, line, bx+pad, baseline, col)
	}
}
