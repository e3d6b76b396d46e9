package main

import (
	"fmt"

	"github.com/philipparndt/lebna/internal/state"
	"github.com/philipparndt/lebna/pkg/units"
	"github.com/spf13/cobra"
)

var areaCmd = &cobra.Command{
	Use:   "area <side1> <side2> <base>",
	Short: "Compute the area of a triangle",
	Long: `Compute a triangle's area from its side lengths in meters.
Sides that do not form a triangle give an area of 0.`,
	Args: cobra.ExactArgs(3),
	Run:  runArea,
}

func init() {
	rootCmd.AddCommand(areaCmd)
}

func runArea(cmd *cobra.Command, args []string) {
	s := state.Submit(state.New(), state.Input{Side1: args[0], Side2: args[1], Base: args[2]})
	view := state.Render(s)

	if !view.Valid {
		logger.Warn("sides do not form a triangle", "sides", view.Display.String())
	}

	fmt.Println("Triangle Area")
	fmt.Println("=============")
	fmt.Printf("Sides: %s m\n", view.Display.String())
	fmt.Printf("  %s\n", units.FormatMeasurement(view.AreaSquareMeters, units.SquareMeterSymbol))
	fmt.Printf("  %s\n", units.FormatMeasurement(view.AreaLebna, units.LebnaSymbol))
}
