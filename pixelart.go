/*
Package pixelart is a library for turning an image into a series of
progressively coarser pixel art frames suitable for printing on a 256 color
terminal.
*/
package pixelart

import (
	"image"
	"io"
	"log/slog"

	"github.com/bodgit/pixelart/ansi"
)

// Options control how each frame is produced.
type Options struct {
	// Sampling selects the downsampling method.
	Sampling Sampling
	// Colors limits each frame to at most this many colors before it is
	// mapped onto the terminal palette. Zero leaves the frame untouched.
	Colors int
	// Reset restores the default terminal color after each frame.
	Reset bool
}

type PixelArt struct {
	logger *slog.Logger
	opts   Options
}

// New returns a PixelArt using the given logger. Default options are used if
// o is nil.
func New(logger *slog.Logger, o *Options) *PixelArt {
	p := &PixelArt{
		logger: logger,
	}
	if o != nil {
		p.opts = *o
	}
	return p
}

// Frames writes one frame to w for every block size generated by a Sequence
// starting at size, each followed by a newline. It returns the number of
// frames written.
func (p *PixelArt) Frames(w io.Writer, m image.Image, size int) (int, error) {
	width := m.Bounds().Dx()

	var n int
	for s := NewSequence(size, width); s.Next(); n++ {
		var frame image.Image = p.opts.Sampling.Downsample(m, s.Size())

		b := frame.Bounds()
		p.logger.Debug("rendering frame", "size", s.Size(), "width", b.Dx(), "height", b.Dy(), "sampling", p.opts.Sampling)

		if p.opts.Colors > 0 {
			frame = reduceColors(frame, p.opts.Colors)
		}

		if err := ansi.Encode(w, frame, &ansi.Options{Reset: p.opts.Reset}); err != nil {
			return n, err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return n, err
		}
	}

	if n == 0 {
		p.logger.Warn("no frames rendered", "size", size, "width", width)
	}

	return n, nil
}

// Run decodes the image in file and writes its frames to w.
func (p *PixelArt) Run(w io.Writer, file string, size int) error {
	m, err := Decode(file)
	if err != nil {
		return err
	}

	b := m.Bounds()
	p.logger.Info("decoded image", "file", file, "width", b.Dx(), "height", b.Dy())

	_, err = p.Frames(w, m, size)
	return err
}
