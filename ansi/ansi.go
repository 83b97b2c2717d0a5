/*
Package ansi implements an encoder that renders an image as text for a 256
color terminal.

Each pixel is written as two full block characters preceded by a foreground
color escape sequence selecting one of the 216 colors of the xterm color cube.
Every row, including the first, starts with a newline. The color is left set
after the last pixel unless a reset is requested.
*/
package ansi

const (
	escape     = "\x1b["
	foreground = escape + "38;5;"
	reset      = escape + "0m"
	glyph      = "██"

	cubeOffset = 16
	cubeLevels = 6
	levelWidth = 43
)
