package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coloring-page-maker/stamptools/pkg/imaging"
	"github.com/coloring-page-maker/stamptools/pkg/logging"
)

const version = "0.2.0"

var (
	targetHeight int
	logLevel     string
	rootCmd      *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "stamp-resize <file>",
		Short: "Resize a stamp image in place",
		Long:  `Resize a stamp PNG to a target height, preserving aspect ratio, overwriting the original.`,
		Args:  cobra.ExactArgs(1),
		Run:   resizeStamp,
	}

	rootCmd.Flags().IntVar(&targetHeight, "height", 512, "Target height in pixels")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resizeStamp(cmd *cobra.Command, args []string) {
	logger := logging.NewToolLogger("stamp-resize", logLevel)
	path := args[0]

	img, err := imaging.Load(path)
	if err != nil {
		logger.Error("❌ Failed to load image", "error", err)
		os.Exit(1)
	}

	b := img.Bounds()
	fmt.Printf("Current size: %dx%d pixels\n", b.Dx(), b.Dy())

	resized := imaging.FitHeight(img, targetHeight)
	if err := imaging.SavePNG(path, resized); err != nil {
		logger.Error("❌ Failed to save image", "error", err)
		os.Exit(1)
	}

	nb := resized.Bounds()
	fmt.Printf("Resized to: %dx%d pixels\n", nb.Dx(), nb.Dy())
}
