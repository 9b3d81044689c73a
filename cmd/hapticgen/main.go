// Package main is the entry point for the hapticgen CLI.
//
// Usage:
//
//	hapticgen [flags] <command> [args]
//
// Commands:
//
//	generate   - Translate an audio file into a vibrotactile WAV
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/MAINAKSAHA07/Audio-Vibration-Rating-Explorer/cmd/hapticgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
