package pixelart

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// Sampling selects how the source pixels of a block are reduced to a single
// output pixel.
type Sampling int

const (
	// SamplingFlat walks a single counter over the output pixels, scales it
	// by the block size and splits it back into coordinates using the
	// source width. Rows after the first drift horizontally whenever the
	// source width is not a multiple of the block size.
	SamplingFlat Sampling = iota
	// SamplingBlock takes the top-left pixel of each block.
	SamplingBlock
	// SamplingSmooth resamples the whole image with bilinear
	// interpolation.
	SamplingSmooth
)

var samplingNames = map[Sampling]string{
	SamplingFlat:   "flat",
	SamplingBlock:  "block",
	SamplingSmooth: "smooth",
}

func (s Sampling) String() string {
	if name, ok := samplingNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Sampling(%d)", int(s))
}

// ParseSampling returns the Sampling with the given name.
func ParseSampling(name string) (Sampling, error) {
	for s, n := range samplingNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown sampling %q", name)
}

func outputSize(b image.Rectangle, size int) (int, int) {
	if size < 1 {
		return 0, 0
	}
	w, h := b.Dx()/size, b.Dy()/size
	if w == 0 || h == 0 {
		return 0, 0
	}
	return w, h
}

// Downsample reduces m by size in both dimensions using flat sampling. If
// either dimension of m is smaller than size, or size is less than one, an
// empty image is returned.
func Downsample(m image.Image, size int) *image.RGBA {
	return SamplingFlat.Downsample(m, size)
}

// Downsample reduces m by size in both dimensions using the sampling method
// s.
func (s Sampling) Downsample(m image.Image, size int) *image.RGBA {
	b := m.Bounds()
	w, h := outputSize(b, size)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 {
		return dst
	}

	switch s {
	case SamplingBlock:
		for oy := 0; oy < h; oy++ {
			for ox := 0; ox < w; ox++ {
				dst.Set(ox, oy, m.At(b.Min.X+ox*size, b.Min.Y+oy*size))
			}
		}
	case SamplingSmooth:
		r := resize.Resize(uint(w), uint(h), m, resize.Bilinear)
		draw.Draw(dst, dst.Bounds(), r, r.Bounds().Min, draw.Src)
	default:
		for i := 0; i < w*h; i++ {
			x := i * size % b.Dx()
			y := i * size / b.Dx() * size
			dst.Set(i%w, i/w, m.At(b.Min.X+x, b.Min.Y+y))
		}
	}

	return dst
}
