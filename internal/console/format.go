package console

import (
	"fmt"
	"io"

	"github.com/philipparndt/lebna/internal/state"
	"github.com/philipparndt/lebna/pkg/units"
)

func writeArea(w io.Writer, view state.View) {
	fmt.Fprintf(w, "area:  %s | %s\n",
		units.FormatMeasurement(view.AreaSquareMeters, units.SquareMeterSymbol),
		units.FormatMeasurement(view.AreaLebna, units.LebnaSymbol))
}

func writeTotal(w io.Writer, view state.View) {
	fmt.Fprintf(w, "total: %s | %s\n",
		units.FormatMeasurement(view.TotalSquareMeters, units.SquareMeterSymbol),
		units.FormatMeasurement(view.TotalLebna, units.LebnaSymbol))
}

func writeHistory(w io.Writer, history []state.Record) {
	if len(history) == 0 {
		fmt.Fprintln(w, "No calculations yet.")
		return
	}

	fmt.Fprintf(w, "%-4s %-5s %-24s %-12s %-12s\n", "#", "Event", "Sides", "Area (m²)", "Total (m²)")
	fmt.Fprintln(w, "---------------------------------------------------------------")
	for i, r := range history {
		fmt.Fprintf(w, "%-4d %-5s %-24s %-12s %-12s\n",
			i+1,
			r.Kind,
			r.Sides,
			units.FormatSquareMeters(r.Area),
			units.FormatSquareMeters(r.Total))
	}
}
