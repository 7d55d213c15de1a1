// Command pxblit renders a raw 400x400 RGB frame in parallel and writes
// the assembled image to disk.
//
// Usage:
//
//	pxblit NUM_WORKERS INPUT_FILE [FILTERS]
//
// FILTERS is a string of single-character filter keys applied left to
// right: g (grayscale), i (invert), l (lighten), d (darken). Unknown
// characters are ignored. Inputs ending in .zst are decompressed first.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pxblit NUM_WORKERS INPUT_FILE [FILTERS]",
	Short: "Render a raw RGB frame across parallel workers",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runRender,
}

func init() {
	rootCmd.Flags().StringP("output", "o", "out.png", "Output image file (.png or .bmp)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging to stderr")
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
