package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"

	"github.com/blitforge/pxblit"
	"github.com/blitforge/pxblit/sink"
)

func runRender(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		pxblit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	workers, err := strconv.Atoi(args[0])
	if err != nil || workers < 1 {
		return fmt.Errorf("invalid number of workers %q", args[0])
	}

	filters := ""
	if len(args) == 3 {
		filters = args[2]
	}

	src, err := pxblit.Open(args[1])
	if err != nil {
		return err
	}
	defer src.Close()

	target := sink.NewImageSink(pxblit.Width, pxblit.Height)
	c := &pxblit.Collector{
		Workers: workers,
		Filters: pxblit.ParseFilters(filters),
	}
	if err := c.Run(cmd.Context(), src, target); err != nil {
		return err
	}

	if err := writeImage(outputPath, target); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Rendered %dx%d frame with %d workers → %s\n",
		pxblit.Width, pxblit.Height, workers, outputPath)
	return nil
}

// writeImage encodes the assembled frame, choosing the format from the
// output extension: .bmp writes BMP, everything else PNG.
func writeImage(path string, target *sink.ImageSink) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := target.Snapshot()
	if strings.HasSuffix(strings.ToLower(path), ".bmp") {
		return bmp.Encode(f, img)
	}
	return png.Encode(f, img)
}
