package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/philipparndt/lebna/internal/state"
	"github.com/philipparndt/lebna/pkg/geometry"
	"github.com/philipparndt/lebna/pkg/units"
)

// LineResult is the outcome of one input line
type LineResult struct {
	Line  int
	Sides geometry.Sides
	Area  geometry.Area
}

// Report is the outcome of a batch of triangles
type Report struct {
	Lines []LineResult
	State state.State
}

// Invalid returns the number of lines that did not form a triangle
func (r Report) Invalid() int {
	n := 0
	for _, l := range r.Lines {
		if !l.Area.Valid {
			n++
		}
	}
	return n
}

// Totals submits and accumulates every triangle in r. Each non-blank line
// holds three side lengths separated by spaces or commas; lines starting
// with # are comments. Lines that are not triangles add 0.
func Totals(r io.Reader) (Report, error) {
	scanner := bufio.NewScanner(r)
	report := Report{State: state.New()}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		in, _ := inputFrom(splitFields(line))
		s := state.Submit(report.State, in)
		report.State = state.Accumulate(s)
		report.Lines = append(report.Lines, LineResult{
			Line:  lineNo,
			Sides: s.Display,
			Area:  s.Area,
		})
	}

	if err := scanner.Err(); err != nil {
		return Report{}, fmt.Errorf("failed to read input: %w", err)
	}
	return report, nil
}

// TotalsFile runs Totals on a file
func TotalsFile(filename string) (Report, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Report{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Totals(file)
}

// WriteReport prints one row per triangle followed by the total
func WriteReport(w io.Writer, report Report) {
	fmt.Fprintf(w, "%-6s %-24s %-12s %-12s\n", "Line", "Sides", "Area (m²)", "Lebna")
	fmt.Fprintln(w, "---------------------------------------------------------")
	for _, l := range report.Lines {
		area := l.Area.OrZero()
		note := ""
		if !l.Area.Valid {
			note = "  (not a triangle)"
		}
		fmt.Fprintf(w, "%-6d %-24s %-12s %-12s%s\n",
			l.Line,
			l.Sides,
			units.FormatSquareMeters(area),
			units.FormatLebna(area),
			note)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Triangles: %d (%d invalid)\n", len(report.Lines), report.Invalid())
	writeTotal(w, state.Render(report.State))
}
