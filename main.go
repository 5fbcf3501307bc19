//go:build !js

package main

import (
	"bufio"
	"os"

	"github.com/tebeka/atexit"
)

func main() {
	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		stdout.Flush()
	})

	inv := &invocation{
		Program:     "ipp-parse",
		Args:        os.Args[1:],
		Stdin:       os.Stdin,
		Stdout:      stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		Interactive: isInteractive(os.Stdin),
		Columns:     terminalColumns(os.Stdout),
	}
	atexit.Exit(inv.run())
}
