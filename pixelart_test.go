package pixelart

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"io/fs"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(tint.NewHandler(io.Discard, nil))
}

func fill(w, h int, c color.RGBA) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetRGBA(x, y, c)
		}
	}
	return m
}

var indexPattern = regexp.MustCompile(`\x1b\[38;5;(\d+)m`)

func TestRunSolidBlue(t *testing.T) {
	file := writeImage(t, "blue.png", fill(100, 100, color.RGBA{0, 0, 0xff, 0xff}), encodePNG)

	b := new(bytes.Buffer)
	require.Nil(t, New(discardLogger(), nil).Run(b, file, 5))

	row := strings.Repeat("\x1b[38;5;21m██", 20)
	first := strings.Repeat("\n"+row, 20) + "\n"
	assert.True(t, strings.HasPrefix(b.String(), first))

	for _, m := range indexPattern.FindAllStringSubmatch(b.String(), -1) {
		assert.Equal(t, "21", m[1])
	}
}

func TestFramesSequence(t *testing.T) {
	m := fill(100, 100, color.RGBA{0xff, 0, 0, 0xff})

	b := new(bytes.Buffer)
	n, err := New(discardLogger(), nil).Frames(b, m, 5)
	require.Nil(t, err)
	assert.Equal(t, 3, n)

	// Sizes 5, 15 and 45 give 20, 6 and 2 pixels square
	var expected string
	for _, side := range []int{20, 6, 2} {
		expected += strings.Repeat("\n"+strings.Repeat("\x1b[38;5;196m██", side), side) + "\n"
	}
	assert.Equal(t, expected, b.String())
}

func TestFramesShape(t *testing.T) {
	m := gradient(50, 30)

	for _, size := range Sizes(2, 50) {
		d := Downsample(m, size)
		if d.Bounds().Empty() {
			continue
		}

		b := new(bytes.Buffer)
		n, err := New(discardLogger(), &Options{Reset: true}).Frames(b, d, 1)
		require.Nil(t, err)
		require.NotZero(t, n)

		// The first frame is d itself
		first := strings.SplitAfter(b.String(), "\x1b[0m\n")[0]
		first = strings.TrimSuffix(first, "\x1b[0m\n")

		lines := strings.Split(first, "\n")
		require.Equal(t, "", lines[0])
		lines = lines[1:]
		assert.Len(t, lines, d.Bounds().Dy(), "size %d", size)
		for _, line := range lines {
			assert.Equal(t, d.Bounds().Dx(), strings.Count(line, "██"), "size %d", size)
		}
	}
}

func TestFramesNone(t *testing.T) {
	b := new(bytes.Buffer)
	n, err := New(discardLogger(), nil).Frames(b, gradient(10, 10), 11)
	require.Nil(t, err)
	assert.Zero(t, n)
	assert.Zero(t, b.Len())
}

func TestFramesEmptyFrame(t *testing.T) {
	// Tall and narrow: size 3 fits the width but not the height
	b := new(bytes.Buffer)
	n, err := New(discardLogger(), nil).Frames(b, gradient(4, 2), 3)
	require.Nil(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "\n", b.String())
}

func TestFramesReset(t *testing.T) {
	m := fill(4, 4, color.RGBA{0, 0xff, 0, 0xff})

	b := new(bytes.Buffer)
	_, err := New(discardLogger(), &Options{Reset: true}).Frames(b, m, 2)
	require.Nil(t, err)

	frames := strings.SplitAfter(b.String(), "\x1b[0m\n")
	assert.Equal(t, "", frames[len(frames)-1])
	assert.Len(t, frames, 3)
}

func TestFramesColors(t *testing.T) {
	m := gradient(64, 64)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			m.SetRGBA(x, y, color.RGBA{uint8(x * 4), uint8(y * 4), uint8((x + y) * 2), 0xff})
		}
	}

	b := new(bytes.Buffer)
	n, err := New(discardLogger(), &Options{Colors: 2, Reset: true}).Frames(b, m, 1)
	require.Nil(t, err)
	require.Equal(t, 4, n)

	frames := strings.SplitAfter(b.String(), "\x1b[0m\n")
	require.Len(t, frames, n+1)
	for _, frame := range frames[:n] {
		indices := make(map[string]struct{})
		for _, match := range indexPattern.FindAllStringSubmatch(frame, -1) {
			indices[match[1]] = struct{}{}
		}
		assert.LessOrEqual(t, len(indices), 2)
	}
}

func TestFramesSampling(t *testing.T) {
	m := gradient(30, 30)

	for _, s := range []Sampling{SamplingFlat, SamplingBlock, SamplingSmooth} {
		t.Run(s.String(), func(t *testing.T) {
			b := new(bytes.Buffer)
			n, err := New(discardLogger(), &Options{Sampling: s}).Frames(b, m, 3)
			require.Nil(t, err)
			assert.Equal(t, 3, n)
			assert.Equal(t, 10*10+3*3+1, strings.Count(b.String(), "██"))
		})
	}
}

func TestRunMissing(t *testing.T) {
	err := New(discardLogger(), nil).Run(io.Discard, "does-not-exist.png", 1)
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
