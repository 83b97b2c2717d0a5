package pixelart

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// An image.Paletted stores each index in a single byte
const maxColors = 256

// reduceColors returns a copy of m using no more than n colors, chosen by
// median cut. n is capped at 256.
func reduceColors(m image.Image, n int) image.Image {
	b := m.Bounds()
	if b.Empty() || n < 1 {
		return m
	}
	if n > maxColors {
		n = maxColors
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm
}
