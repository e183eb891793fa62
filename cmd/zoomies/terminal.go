package main

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/components"
)

// terminalSize returns the requested size, filling unset dimensions from the
// output terminal or the 80x24 default.
func terminalSize(out io.Writer, cols, rows int) (int, int) {
	if cols > 0 && rows > 0 {
		return cols, rows
	}

	w, h := components.DefaultColumns, components.DefaultRows
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			w, h = tw, th
		}
	}

	if cols <= 0 {
		cols = w
	}
	if rows <= 0 {
		rows = h
	}
	return cols, rows
}
