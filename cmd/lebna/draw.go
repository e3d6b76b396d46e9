package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/lebna/internal/state"
	"github.com/philipparndt/lebna/pkg/render"
	"github.com/spf13/cobra"
)

var (
	drawOutput string
	drawLabels bool
)

var drawCmd = &cobra.Command{
	Use:   "draw <side1> <side2> <base>",
	Short: "Draw a triangle to a PNG file",
	Long: `Render a schematic of the triangle with its longest side on the baseline.
Sides that do not form a triangle produce an empty canvas.`,
	Args: cobra.ExactArgs(3),
	Run:  runDraw,
}

func init() {
	rootCmd.AddCommand(drawCmd)

	drawCmd.Flags().StringVarP(&drawOutput, "output", "o", "triangle.png", "Output PNG file")
	drawCmd.Flags().BoolVar(&drawLabels, "labels", false, "Label each side with its length")
}

func runDraw(cmd *cobra.Command, args []string) {
	opts, err := cfg.RenderOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("labels") {
		opts.Labels = drawLabels
	}

	sides := state.ParseSides(state.Input{Side1: args[0], Side2: args[1], Base: args[2]})
	if !sides.Validate() {
		logger.Warn("sides do not form a triangle, writing empty canvas")
	}

	if err := render.WritePNG(drawOutput, render.Draw(sides, opts)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", drawOutput, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d)\n", drawOutput, int(opts.Width), int(opts.Height))
}
