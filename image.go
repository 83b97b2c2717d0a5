package pixelart

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// Decode opens file and decodes it using whichever registered image format
// matches, returning it converted to opaque RGB.
func Decode(file string) (*image.RGBA, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", file, err)
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", file, err)
	}

	return ToRGB(m), nil
}

// round16 reduces a 16-bit channel to 8 bits, rounding to nearest.
func round16(v uint16) uint8 {
	return uint8((uint32(v) + 128) / 257)
}

func opaque(c color.Color) color.RGBA {
	if n, ok := c.(color.NRGBA); ok {
		return color.RGBA{n.R, n.G, n.B, 0xff}
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return color.RGBA{round16(n.R), round16(n.G), round16(n.B), 0xff}
}

// ToRGB returns a copy of m with its top-left corner at (0, 0) and every
// pixel fully opaque. The color channels are taken from the non-premultiplied
// color so transparency does not darken them, and 16-bit channels are
// rounded rather than truncated.
func ToRGB(m image.Image) *image.RGBA {
	b := m.Bounds()
	rgb := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgb.SetRGBA(x-b.Min.X, y-b.Min.Y, opaque(m.At(x, y)))
		}
	}
	return rgb
}
