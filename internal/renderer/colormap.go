package renderer

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/openplacer/placeviz/internal/config"
)

// Colormap maps a normalized value in [0, 1] onto a color ramp by blending
// between fixed stops in Lab space, which keeps perceived brightness
// increasing monotonically along the ramp.
type Colormap struct {
	stops []colorful.Color
}

// DensityColormap returns the ramp used for density grids: dark violet
// for empty bins through teal to bright yellow for the most crowded.
func DensityColormap() Colormap {
	return Colormap{stops: []colorful.Color{
		mustHex(config.DensityStop0),
		mustHex(config.DensityStop1),
		mustHex(config.DensityStop2),
		mustHex(config.DensityStop3),
		mustHex(config.DensityStop4),
	}}
}

// At returns the ramp color for t, clamping t to [0, 1].
func (m Colormap) At(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	segments := len(m.stops) - 1
	pos := t * float64(segments)
	i := int(pos)
	if i >= segments {
		i = segments - 1
		pos = float64(segments)
	}

	c := m.stops[i].BlendLab(m.stops[i+1], pos-float64(i)).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}
