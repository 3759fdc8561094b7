// Package renderer draws placement layouts and density grids into RGBA
// images. Both renderers draw at a supersampled resolution and scale down
// once at the end, so rectangle edges and labels come out smooth without a
// dedicated anti-aliasing rasterizer.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"

	"github.com/openplacer/placeviz/internal/config"
	"github.com/openplacer/placeviz/internal/errors"
	"github.com/openplacer/placeviz/internal/snapshot"
)

// view maps world coordinates onto the pixel plot area. World y grows
// upward while pixel y grows downward, so vertical positions flip around
// the mapped extent.
type view struct {
	xMin, yMin float64
	scale      float64
	offX, offY float64
	mapH       float64
}

// fitView centers the extent inside the plot rectangle at the largest
// scale that preserves the world aspect ratio.
func fitView(e snapshot.Extent, plotX, plotY, plotW, plotH int) view {
	ew, eh := e.Width(), e.Height()
	if ew <= 0 {
		ew = 1
	}
	if eh <= 0 {
		eh = 1
	}
	scale := math.Min(float64(plotW)/ew, float64(plotH)/eh)
	mapW, mapH := ew*scale, eh*scale
	return view{
		xMin:  e.XMin,
		yMin:  e.YMin,
		scale: scale,
		offX:  float64(plotX) + (float64(plotW)-mapW)/2,
		offY:  float64(plotY) + (float64(plotH)-mapH)/2,
		mapH:  mapH,
	}
}

// at returns the pixel position of a world coordinate.
func (v view) at(wx, wy float64) (int, int) {
	px := int(math.Round(v.offX + (wx-v.xMin)*v.scale))
	py := int(math.Round(v.offY + v.mapH - (wy-v.yMin)*v.scale))
	return px, py
}

// RenderPlacement draws an annotated floorplan: the unpadded core outline,
// every cell as an alpha-blended rectangle colored by fixed status with
// its name centered inside when there is room, a legend with category
// counts, and a footer summary. The view covers the padded extent. The
// caller owns writing the image out.
func RenderPlacement(layout *snapshot.Layout, title string) (*image.RGBA, error) {
	if layout == nil || len(layout.Cells) == 0 {
		return nil, errors.New(errors.CodeEmptyData, "no cells to render")
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

	legendFace, err := LoadFont(config.LegendFontSize * float64(ss))
	if err != nil {
		return nil, err
	}
	defer legendFace.Close()

	footerFace, err := LoadFont(config.FooterFontSize * float64(ss))
	if err != nil {
		return nil, err
	}
	defer footerFace.Close()

	canvas := NewCanvas(w, h, mustRGBA(config.BackgroundColor))
	img := canvas.Image()

	_, th := MeasureString(titleFace, title)
	DrawCenteredString(img, titleFace, title, w/2, (config.MarginTop*ss+th)/2, mustRGBA(config.TitleColor))

	plotX := config.MarginSide * ss
	plotY := config.MarginTop * ss
	plotW := w - 2*plotX
	plotH := h - (config.MarginTop+config.MarginBottom)*ss
	v := fitView(layout.Extent, plotX, plotY, plotW, plotH)

	// Core outline around the unpadded bounding box.
	cx0, cy0 := v.at(layout.Core.XMin, layout.Core.YMax)
	cx1, cy1 := v.at(layout.Core.XMax, layout.Core.YMin)
	canvas.StrokeRect(cx0, cy0, cx1, cy1, mustRGBA(config.FrameColor), config.CoreOutlineWidth*ss)

	movableFill := mustRGBA(config.MovableCellColor)
	fixedFill := mustRGBA(config.FixedCellColor)
	edge := mustRGBA(config.CellEdgeColor)
	labelCol := mustRGBA(config.CellLabelColor)

	for _, c := range layout.Cells {
		x0, y0 := v.at(c.X, c.Y+c.Height)
		x1, y1 := v.at(c.X+c.Width, c.Y)

		fill := movableFill
		if c.Fixed {
			fill = fixedFill
		}
		canvas.FillRect(x0, y0, x1, y1, fill, config.CellFillAlpha)
		canvas.StrokeRect(x0, y0, x1, y1, edge, config.CellEdgeWidth*ss)

		// Label only cells big enough to hold readable text.
		if x1-x0 < config.MinLabelWidth*ss || y1-y0 < config.MinLabelHeight*ss {
			continue
		}
		tw, lh := MeasureString(labelFace, c.Name)
		if tw > (x1-x0)-4*ss {
			continue
		}
		DrawCenteredString(img, labelFace, c.Name, (x0+x1)/2, (y0+y1+lh)/2, labelCol)
	}

	movable, fixed := layout.Counts()
	drawLegend(canvas, legendFace, movable, fixed, ss)

	footer := fmt.Sprintf("%d cells | core %.4g × %.4g", len(layout.Cells), layout.Core.Width(), layout.Core.Height())
	DrawCenteredString(img, footerFace, footer, w/2, h-12*ss, mustRGBA(config.FooterColor))

	return canvas.Downsample(ss), nil
}

// drawLegend centers the category swatches and counts in the bottom
// margin, above the footer line.
func drawLegend(c *Canvas, face font.Face, movable, fixed int, ss int) {
	img := c.Image()
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	entries := []struct {
		label string
		col   color.RGBA
	}{
		{fmt.Sprintf("movable (%d)", movable), mustRGBA(config.MovableCellColor)},
		{fmt.Sprintf("fixed (%d)", fixed), mustRGBA(config.FixedCellColor)},
	}

	swatch := config.LegendSwatchSize * ss
	gap := 8 * ss
	spacing := 28 * ss

	total := spacing * (len(entries) - 1)
	widths := make([]int, len(entries))
	for i, e := range entries {
		tw, _ := MeasureString(face, e.label)
		widths[i] = swatch + gap + tw
		total += widths[i]
	}

	x := (w - total) / 2
	baseline := h - config.MarginBottom*ss/2 - 6*ss
	textCol := mustRGBA(config.TitleColor)
	edge := mustRGBA(config.CellEdgeColor)
	for i, e := range entries {
		c.FillRect(x, baseline-swatch+2*ss, x+swatch, baseline+2*ss, e.col, 1)
		c.StrokeRect(x, baseline-swatch+2*ss, x+swatch, baseline+2*ss, edge, ss)
		DrawString(img, face, e.label, x+swatch+gap, baseline, textCol)
		x += widths[i] + spacing
	}
}
