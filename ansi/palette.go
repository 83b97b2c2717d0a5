package ansi

import "image/color"

// Index maps an RGB triple onto the xterm color cube, returning a palette
// index between 16 and 231 inclusive.
func Index(r, g, b uint8) uint8 {
	return cubeOffset + cubeLevels*cubeLevels*(r/levelWidth) + cubeLevels*(g/levelWidth) + b/levelWidth
}

// IndexOf returns the palette index for c. Any alpha is discarded rather
// than multiplied into the color channels.
func IndexOf(c color.Color) uint8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Index(n.R, n.G, n.B)
}
