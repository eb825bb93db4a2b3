package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// exitOnError prints the error to stderr and exits. Render problems are
// configuration or I/O mistakes; there is nothing to retry.
func exitOnError(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// warnf prints a non-fatal data-quality notice to stderr.
func warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintln(os.Stderr, "Warning: "+fmt.Sprintf(format, args...))
}
