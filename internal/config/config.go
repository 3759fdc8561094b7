package config

import (
	"fmt"
	"strings"
)

// Canvas settings
const (
	Width       = 1280
	Height      = 960
	SuperSample = 2 // scenes draw at SuperSample× and downscale before encoding
)

// Plot layout settings (pixels at base resolution)
const (
	MarginTop    = 86 // title zone
	MarginBottom = 72 // legend / footer zone
	MarginSide   = 56

	TitleFontSize  = 30.0
	LabelFontSize  = 11.0
	LegendFontSize = 14.0
	FooterFontSize = 13.0
)

// Placement rendering settings
const (
	PaddingFrac = 0.05 // extent grows by this fraction of the larger span, every side

	CoreOutlineWidth = 2
	CellEdgeWidth    = 1
	CellFillAlpha    = 0.60 // movable/fixed fills blend against the background

	// Labels draw only when the on-canvas rectangle is at least this big.
	MinLabelWidth  = 26
	MinLabelHeight = 14

	LegendSwatchSize = 14
)

// Density rendering settings
const (
	OvercrowdThreshold = 0.7 // bins above this count as overcrowded

	ColorbarWidth  = 26
	ColorbarGutter = 34 // space between plot area and colorbar
	StatsBoxAlpha  = 0.78
)

// Colors (hex, parsed with ParseHexColor)
const (
	// Page colors
	BackgroundColor = "#FFFFFF"
	TitleColor      = "#1A1A1A"
	FooterColor     = "#555555"
	FrameColor      = "#2B2B2B" // core-area outline and plot borders

	// Cell fills by fixed-status
	MovableCellColor = "#1F77B4"
	FixedCellColor   = "#D62728"
	CellEdgeColor    = "#30343A"
	CellLabelColor   = "#101010"

	// Density gradient stops, low to high
	DensityStop0 = "#440154"
	DensityStop1 = "#3B528B"
	DensityStop2 = "#21918C"
	DensityStop3 = "#5EC962"
	DensityStop4 = "#FDE725"

	StatsTextColor = "#1A1A1A"
)

// Terminal preview settings
const (
	PreviewMaxCols = 96
	PreviewMaxRows = 42
)

// ParseHexColor parses an RRGGBB colour, with or without a leading '#',
// into its 8-bit channels.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: want 6 hex digits", s)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, fmt.Errorf("invalid hex colour %q: bad digit", s)
		}
		channels[i] = hi<<4 | lo
	}

	return channels[0], channels[1], channels[2], nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
