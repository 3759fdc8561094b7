// Package ui renders images into the terminal: a 24-bit ANSI preview grid
// and an interactive viewer used when no output file is requested.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// PreviewConfig holds the preview size in terminal cells
type PreviewConfig struct {
	Cols int
	Rows int
}

// FitPreview sizes a preview to the image's aspect ratio within the given
// cell limits. Terminal cells are roughly twice as tall as they are wide,
// so rows are halved to keep world squares square on screen.
func FitPreview(img *image.RGBA, maxCols, maxRows int) PreviewConfig {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w <= 0 || h <= 0 || maxCols < 1 || maxRows < 1 {
		return PreviewConfig{Cols: 1, Rows: 1}
	}

	cols := maxCols
	rows := int(float64(cols) * float64(h) / float64(w) / 2)
	if rows > maxRows {
		rows = maxRows
		cols = int(float64(rows) * 2 * float64(w) / float64(h))
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols > w {
		cols = w
	}
	if rows > h {
		rows = h
	}
	return PreviewConfig{Cols: cols, Rows: rows}
}

// DownsampleImage reduces a full-resolution image to preview size. Each
// terminal cell represents a rectangular region of the source image;
// averaging every pixel in the region gives smooth, high-quality output.
func DownsampleImage(img *image.RGBA, config PreviewConfig) [][]color.RGBA {
	bounds := img.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()

	cellWidth := srcWidth / config.Cols
	cellHeight := srcHeight / config.Rows
	if cellWidth < 1 {
		cellWidth = 1
	}
	if cellHeight < 1 {
		cellHeight = 1
	}

	preview := make([][]color.RGBA, config.Rows)
	for row := 0; row < config.Rows; row++ {
		preview[row] = make([]color.RGBA, config.Cols)
		for col := 0; col < config.Cols; col++ {
			srcX := col * cellWidth
			srcY := row * cellHeight

			// Average all pixels in this cell region
			var sumR, sumG, sumB uint32
			pixelCount := 0

			for y := srcY; y < srcY+cellHeight && y < srcHeight; y++ {
				for x := srcX; x < srcX+cellWidth && x < srcWidth; x++ {
					r, g, b, _ := img.At(x, y).RGBA()
					// RGBA() returns 16-bit values, convert to 8-bit
					sumR += uint32(r >> 8)
					sumG += uint32(g >> 8)
					sumB += uint32(b >> 8)
					pixelCount++
				}
			}

			if pixelCount > 0 {
				preview[row][col] = color.RGBA{
					R: uint8(sumR / uint32(pixelCount)),
					G: uint8(sumG / uint32(pixelCount)),
					B: uint8(sumB / uint32(pixelCount)),
					A: 255,
				}
			}
		}
	}

	return preview
}

// RenderANSI converts a preview grid to a boxed string using ANSI 24-bit
// background colors, one space character per cell.
func RenderANSI(preview [][]color.RGBA) string {
	if len(preview) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("┌" + strings.Repeat("─", len(preview[0])) + "┐\n")

	for _, row := range preview {
		sb.WriteString("│")
		for _, pixel := range row {
			// \x1b[48;2;R;G;Bm sets a 24-bit RGB background color
			sb.WriteString(fmt.Sprintf("\x1b[48;2;%d;%d;%dm \x1b[0m", pixel.R, pixel.G, pixel.B))
		}
		sb.WriteString("│\n")
	}

	sb.WriteString("└" + strings.Repeat("─", len(preview[0])) + "┘")
	return sb.String()
}
