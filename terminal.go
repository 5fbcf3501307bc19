package main

import (
	"os"

	"golang.org/x/term"
)

// isInteractive reports whether f is attached to a terminal.
func isInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalColumns returns the width of the terminal behind f, or 0 if f
// is not a terminal.
func terminalColumns(f *os.File) int {
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return 0
	}
	return cols
}
