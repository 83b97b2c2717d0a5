package ansi

import (
	"bufio"
	"image"
	"io"
	"strconv"
)

// Options are the encoding parameters.
type Options struct {
	// Reset appends an attribute reset after the last pixel so the
	// terminal color does not leak into whatever is printed next.
	Reset bool
}

type encoder struct {
	w *bufio.Writer

	// Enough to hold one escape sequence and glyph
	tmp []byte
}

func (e *encoder) writePixel(index uint8) error {
	e.tmp = append(e.tmp[:0], foreground...)
	e.tmp = strconv.AppendUint(e.tmp, uint64(index), 10)
	e.tmp = append(e.tmp, 'm')
	e.tmp = append(e.tmp, glyph...)
	_, err := e.w.Write(e.tmp)
	return err
}

func (e *encoder) encode(m image.Image, o *Options) error {
	b := m.Bounds()
	width := b.Dx()

	if b.Empty() {
		return nil
	}

	for i := 0; i < width*b.Dy(); i++ {
		if i%width == 0 {
			if err := e.w.WriteByte('\n'); err != nil {
				return err
			}
		}
		if err := e.writePixel(IndexOf(m.At(b.Min.X+i%width, b.Min.Y+i/width))); err != nil {
			return err
		}
	}

	if o != nil && o.Reset {
		if _, err := e.w.WriteString(reset); err != nil {
			return err
		}
	}

	return e.w.Flush()
}

// Encode writes the Image m to w as 256 color ANSI text. Default parameters
// are used if a nil *Options is passed. An empty image writes nothing.
func Encode(w io.Writer, m image.Image, o *Options) error {
	e := encoder{
		w:   bufio.NewWriter(w),
		tmp: make([]byte, 0, len(foreground)+len("255m")+len(glyph)),
	}
	return e.encode(m, o)
}
