// hourtracker — weekly teaching-hour tracker.
//
// Usage:
//
//	hourtracker <command> [flags]
//
// Commands:
//
//	log       Record one teaching session
//	import    Import sessions from JSON
//	summary   Print weekly totals and per-teacher status
//	render    Print the hour tracker card once
//	tui       Open the interactive hour tracker
//	version   Print version information
package main

import (
	"fmt"
	"os"

	"github.com/Mr-Dark-debug/hourtracker/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
