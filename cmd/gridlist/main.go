// Command gridlist inspects grid layouts described by YAML scenes: it
// prints the resolved configuration and row packing, the render window at
// a scroll position, and renders SVG or PDF snapshots.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
