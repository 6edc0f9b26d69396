// Command bigo measures how an algorithm's cost grows with input size and
// classifies it as one of the canonical complexity classes.
//
// # Usage
//
//	bigo run <workload> [--sizes 16,256,4096] [--mode count|time|alloc] [--cpu-profile cpu.prof]
//	bigo fit [file.yaml|-]
//	bigo classes
//	bigo workloads
//	bigo schema
//	bigo version
//
// Defaults for any flag can be placed in $XDG_CONFIG_HOME/bigo/config.yaml or
// a file given with --config. Flags given on the command line always win.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	a.terminal = term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // Fd fits in int on supported platforms.

	err := a.rootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
