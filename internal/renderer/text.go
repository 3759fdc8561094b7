package renderer

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/openplacer/placeviz/internal/errors"
)

// LoadFont returns a Go Regular face at the given point size. Callers own
// the face and should Close it when done.
func LoadFont(size float64) (font.Face, error) {
	return newFace(goregular.TTF, size)
}

// LoadBoldFont returns a Go Bold face at the given point size.
func LoadBoldFont(size float64) (font.Face, error) {
	return newFace(gobold.TTF, size)
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrap(errors.CodeRender, err, "parsing font")
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// MeasureString returns the rendered width and height of text in pixels.
func MeasureString(face font.Face, text string) (int, int) {
	d := &font.Drawer{Face: face}
	bounds, _ := d.BoundString(text)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	height := (bounds.Max.Y - bounds.Min.Y).Ceil()
	return width, height
}

// DrawString draws text with the baseline starting at (x, y).
func DrawString(img *image.RGBA, face font.Face, text string, x, y int, col color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	d.Dot = freetype.Pt(x, y)
	d.DrawString(text)
}

// DrawCenteredString draws text horizontally centered on centerX with the
// baseline at baselineY.
func DrawCenteredString(img *image.RGBA, face font.Face, text string, centerX, baselineY int, col color.RGBA) {
	width, _ := MeasureString(face, text)
	DrawString(img, face, text, centerX-width/2, baselineY, col)
}
