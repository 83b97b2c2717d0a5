package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

type fileDescriptor interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fileDescriptor)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// newLogger discards everything unless verbose is set, in which case debug
// and above is written to w, colorized if w is a terminal.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		w = io.Discard
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}))
}
