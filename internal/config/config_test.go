package config

import (
	"testing"
)

// TestParseHexColor_ValidInputs verifies that ParseHexColor correctly parses
// various valid hex colour formats, catching case sensitivity issues,
// prefix handling, and byte ordering bugs.
func TestParseHexColor_ValidInputs(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		wantR uint8
		wantG uint8
		wantB uint8
	}{
		{
			name:  "FF0000 (uppercase red, no hash)",
			input: "FF0000",
			wantR: 255,
			wantG: 0,
			wantB: 0,
		},
		{
			name:  "ff0000 (lowercase red, no hash)",
			input: "ff0000",
			wantR: 255,
			wantG: 0,
			wantB: 0,
		},
		{
			name:  "#FF0000 (uppercase red, with hash)",
			input: "#FF0000",
			wantR: 255,
			wantG: 0,
			wantB: 0,
		},
		{
			name:  "Ff00fF (mixed case magenta)",
			input: "Ff00fF",
			wantR: 255,
			wantG: 0,
			wantB: 255,
		},
		{
			name:  "000000 (black)",
			input: "000000",
			wantR: 0,
			wantG: 0,
			wantB: 0,
		},
		{
			name:  "FFFFFF (white)",
			input: "FFFFFF",
			wantR: 255,
			wantG: 255,
			wantB: 255,
		},
		{
			name:  "#1F77B4 (movable cell blue)",
			input: MovableCellColor,
			wantR: 0x1F,
			wantG: 0x77,
			wantB: 0xB4,
		},
		{
			name:  "#D62728 (fixed cell red)",
			input: FixedCellColor,
			wantR: 0xD6,
			wantG: 0x27,
			wantB: 0x28,
		},
		{
			name:  "010203 (low values)",
			input: "010203",
			wantR: 1,
			wantG: 2,
			wantB: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b, err := ParseHexColor(tc.input)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) returned error: %v", tc.input, err)
			}

			if r != tc.wantR || g != tc.wantG || b != tc.wantB {
				t.Errorf("ParseHexColor(%q) = (%d, %d, %d), want (%d, %d, %d)",
					tc.input, r, g, b, tc.wantR, tc.wantG, tc.wantB)
			}
		})
	}
}

// TestParseHexColor_InvalidInputs verifies that ParseHexColor rejects
// malformed input with an error.
func TestParseHexColor_InvalidInputs(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"FFF (too short)", "FFF"},
		{"#FFF (too short with hash)", "#FFF"},
		{"FFFFFFF (too long)", "FFFFFFF"},
		{"GGGGGG (invalid hex)", "GGGGGG"},
		{"FF00GG (mixed valid/invalid)", "FF00GG"},
		{"Empty string", ""},
		{"# (just hash)", "#"},
		{"FF 000 (spaces)", "FF 000"},
		{"FF#000 (hash in middle)", "FF#000"},
		{"FF0000\\n (with newline)", "FF0000\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, _, err := ParseHexColor(tc.input); err == nil {
				t.Errorf("ParseHexColor(%q) expected error, got nil", tc.input)
			}
		})
	}
}

// TestParseHexColor_ByteOrder verifies correct channel ordering (R, G, B).
// This catches swaps like (B, G, R) or (G, R, B).
func TestParseHexColor_ByteOrder(t *testing.T) {
	testCases := []struct {
		name                string
		input               string
		wantR, wantG, wantB uint8
	}{
		{
			name:  "010203 (1, 2, 3)",
			input: "010203",
			wantR: 1,
			wantG: 2,
			wantB: 3,
		},
		{
			name:  "AABBCC (170, 187, 204)",
			input: "AABBCC",
			wantR: 0xAA,
			wantG: 0xBB,
			wantB: 0xCC,
		},
		{
			name:  "DDEEFF (221, 238, 255)",
			input: "DDEEFF",
			wantR: 0xDD,
			wantG: 0xEE,
			wantB: 0xFF,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b, err := ParseHexColor(tc.input)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) returned error: %v", tc.input, err)
			}

			if r != tc.wantR {
				t.Errorf("Red channel: got %d (0x%02X), want %d (0x%02X)",
					r, r, tc.wantR, tc.wantR)
			}
			if g != tc.wantG {
				t.Errorf("Green channel: got %d (0x%02X), want %d (0x%02X)",
					g, g, tc.wantG, tc.wantG)
			}
			if b != tc.wantB {
				t.Errorf("Blue channel: got %d (0x%02X), want %d (0x%02X)",
					b, b, tc.wantB, tc.wantB)
			}
		})
	}
}

// TestPaletteConstants verifies every colour constant in this package is a
// parseable hex colour, so renderers can convert them without error paths.
func TestPaletteConstants(t *testing.T) {
	palette := map[string]string{
		"BackgroundColor":  BackgroundColor,
		"TitleColor":       TitleColor,
		"FooterColor":      FooterColor,
		"FrameColor":       FrameColor,
		"MovableCellColor": MovableCellColor,
		"FixedCellColor":   FixedCellColor,
		"CellEdgeColor":    CellEdgeColor,
		"CellLabelColor":   CellLabelColor,
		"DensityStop0":     DensityStop0,
		"DensityStop1":     DensityStop1,
		"DensityStop2":     DensityStop2,
		"DensityStop3":     DensityStop3,
		"DensityStop4":     DensityStop4,
		"StatsTextColor":   StatsTextColor,
	}

	for name, hex := range palette {
		t.Run(name, func(t *testing.T) {
			if _, _, _, err := ParseHexColor(hex); err != nil {
				t.Errorf("constant %s = %q does not parse: %v", name, hex, err)
			}
		})
	}
}
