// Package main provides a CLI that lays out a scene file and prints the
// resulting frames.
//
// Usage:
//
//	gridlayout tile <scene.json>       Lay out with the tile layout
//	gridlayout masonry <scene.json>    Lay out with the masonry layout
//	gridlayout help                    Show help
//
// The viewport is read from GRIDLAYOUT_WIDTH, GRIDLAYOUT_HEIGHT and
// GRIDLAYOUT_SCROLL.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `gridlayout - lay out list and grid scenes

Usage:
  gridlayout <command> [options] <scene.json>

Commands:
  tile        Pack the scene with the tile layout
  masonry     Balance the scene into masonry columns
  version     Print version information
  help        Show this help message

Options:
  -v          Log layout passes to stderr
  -visible    Print only the items inside the viewport

Environment:
  GRIDLAYOUT_WIDTH            Viewport width (default 320)
  GRIDLAYOUT_HEIGHT           Viewport height (default 480)
  GRIDLAYOUT_SCROLL           Scroll offset along the main axis (default 0)
  GRIDLAYOUT_DEBUG            Append debug logs to this file
  GRIDLAYOUT_DEBUG_VERBOSITY  Debug log verbosity (default 1)

Examples:
  gridlayout tile photos.json
  GRIDLAYOUT_WIDTH=800 gridlayout masonry -visible feed.json
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "tile", "masonry":
		if err := run(command, args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("gridlayout version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
