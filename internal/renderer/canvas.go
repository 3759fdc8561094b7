package renderer

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/openplacer/placeviz/internal/config"
	"github.com/openplacer/placeviz/internal/errors"
)

// Canvas wraps an RGBA image with the rectangle primitives both renderers
// are built from. All coordinates are pixel coordinates with the origin at
// the top left; rectangles span [x0, x1) × [y0, y1) and are clipped to the
// canvas.
type Canvas struct {
	img  *image.RGBA
	w, h int
}

// NewCanvas allocates a w×h canvas filled with the background color.
func NewCanvas(w, h int, bg color.RGBA) *Canvas {
	c := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		w:   w,
		h:   h,
	}

	// Fill the first scanline pixel by pixel, then replicate it; one
	// row of writes plus h-1 copies beats w*h individual stores.
	row := c.img.Pix[0 : w*4]
	for x := 0; x < w; x++ {
		row[x*4] = bg.R
		row[x*4+1] = bg.G
		row[x*4+2] = bg.B
		row[x*4+3] = 255
	}
	for y := 1; y < h; y++ {
		copy(c.img.Pix[y*c.img.Stride:y*c.img.Stride+w*4], row)
	}
	return c
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// FillRect fills the rectangle with col at the given opacity. alpha is in
// [0, 1]; 1 takes an opaque fast path, anything lower blends against
// whatever is already on the canvas.
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col color.RGBA, alpha float64) {
	x0, y0, x1, y1 = c.clip(x0, y0, x1, y1)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	if alpha >= 1 {
		// Build one row of the fill pattern and replicate it.
		rowLen := (x1 - x0) * 4
		pattern := make([]byte, rowLen)
		for i := 0; i < rowLen; i += 4 {
			pattern[i] = col.R
			pattern[i+1] = col.G
			pattern[i+2] = col.B
			pattern[i+3] = 255
		}
		for y := y0; y < y1; y++ {
			offset := y*c.img.Stride + x0*4
			copy(c.img.Pix[offset:offset+rowLen], pattern)
		}
		return
	}

	alphaF := alpha
	invAlphaF := 1.0 - alphaF
	for y := y0; y < y1; y++ {
		offset := y*c.img.Stride + x0*4
		for x := x0; x < x1; x++ {
			pixOffset := offset + (x-x0)*4

			bgR := c.img.Pix[pixOffset]
			bgG := c.img.Pix[pixOffset+1]
			bgB := c.img.Pix[pixOffset+2]

			c.img.Pix[pixOffset] = uint8(float64(col.R)*alphaF + float64(bgR)*invAlphaF)
			c.img.Pix[pixOffset+1] = uint8(float64(col.G)*alphaF + float64(bgG)*invAlphaF)
			c.img.Pix[pixOffset+2] = uint8(float64(col.B)*alphaF + float64(bgB)*invAlphaF)
		}
	}
}

// StrokeRect draws an opaque border of the given width just inside the
// rectangle.
func (c *Canvas) StrokeRect(x0, y0, x1, y1 int, col color.RGBA, width int) {
	if width <= 0 {
		return
	}
	// Top and bottom bands span the full width; the side bands fill the
	// remaining rows so corners are painted exactly once.
	c.FillRect(x0, y0, x1, y0+width, col, 1)
	c.FillRect(x0, y1-width, x1, y1, col, 1)
	c.FillRect(x0, y0+width, x0+width, y1-width, col, 1)
	c.FillRect(x1-width, y0+width, x1, y1-width, col, 1)
}

// clip clamps the rectangle to the canvas bounds.
func (c *Canvas) clip(x0, y0, x1, y1 int) (int, int, int, int) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.w {
		x1 = c.w
	}
	if y1 > c.h {
		y1 = c.h
	}
	return x0, y0, x1, y1
}

// Downsample scales the canvas down by factor using high-quality
// interpolation. Rendering at a multiple of the target size and scaling
// down smooths rectangle edges and text without an AA rasterizer.
func (c *Canvas) Downsample(factor int) *image.RGBA {
	if factor <= 1 {
		return c.img
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.w/factor, c.h/factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), draw.Over, nil)
	return dst
}

// SavePNG writes img to path as PNG.
func SavePNG(img *image.RGBA, path string) error {
	outFile, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.CodeRender, err, "creating %s", path)
	}
	defer outFile.Close()

	if err := png.Encode(outFile, img); err != nil {
		return errors.Wrap(errors.CodeRender, err, "encoding %s", path)
	}
	return nil
}

// mustRGBA converts one of the config hex constants to a color. Palette
// constants are validated by tests, so a bad value is a programming error.
func mustRGBA(hex string) color.RGBA {
	r, g, b, err := config.ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
