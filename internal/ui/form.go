// Package ui realizes the calculator form with fyne: side entries, the
// calculate and add-to-total actions, result rows with copy buttons, the
// triangle drawing and a record of past calculations.
package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/lebna/internal/state"
	"github.com/philipparndt/lebna/pkg/render"
	"github.com/philipparndt/lebna/pkg/units"
	"github.com/philipparndt/lebna/version"
)

// Labels shown on the form
const (
	LabelSide1     = "side 1 (right)"
	LabelSide2     = "side 2 (left)"
	LabelBase      = "base/hypotenuse"
	LabelCalculate = "Calculate"
	LabelAdd       = "Add to total"
	LabelCopy      = "Copy"
	LabelCopied    = "Copied"
)

// Form is the calculator window content bound to a presentation state
type Form struct {
	app    fyne.App
	opts   render.Options
	logger *slog.Logger
	state  state.State

	side1 *widget.Entry
	side2 *widget.Entry
	base  *widget.Entry

	calcButton *widget.Button
	addButton  *widget.Button

	areaSquareMeters  *resultRow
	areaLebna         *resultRow
	totalSquareMeters *resultRow
	totalLebna        *resultRow
	status            *widget.Label

	drawing *canvas.Image
	records *widget.List
	history []state.Record
}

// resultRow is one read-only value with a copy button
type resultRow struct {
	value *widget.Label
	copy  *widget.Button
}

// NewForm builds the form widgets
func NewForm(a fyne.App, opts render.Options, logger *slog.Logger) *Form {
	if logger == nil {
		logger = slog.Default()
	}

	f := &Form{
		app:    a,
		opts:   opts,
		logger: logger,
		state:  state.New(),
		status: widget.NewLabel(""),
	}

	f.side1 = f.newSideEntry(LabelSide1, state.FieldSide1)
	f.side2 = f.newSideEntry(LabelSide2, state.FieldSide2)
	f.base = f.newSideEntry(LabelBase, state.FieldBase)

	f.calcButton = widget.NewButton(LabelCalculate, f.Calculate)
	f.addButton = widget.NewButton(LabelAdd, f.AddToTotal)

	f.areaSquareMeters = f.newResultRow()
	f.areaLebna = f.newResultRow()
	f.totalSquareMeters = f.newResultRow()
	f.totalLebna = f.newResultRow()

	f.drawing = canvas.NewImageFromImage(render.Draw(f.state.Display, opts))
	f.drawing.FillMode = canvas.ImageFillContain
	f.drawing.SetMinSize(fyne.NewSize(float32(opts.Width), float32(opts.Height)))

	f.records = widget.NewList(
		func() int { return len(f.history) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(formatRecord(id, f.history[id]))
		},
	)

	f.refresh()
	return f
}

func (f *Form) newSideEntry(placeholder string, field state.Field) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	entry.OnChanged = func(text string) {
		f.state = state.SetField(f.state, field, text)
	}
	entry.OnSubmitted = func(string) {
		f.Calculate()
	}
	return entry
}

func (f *Form) newResultRow() *resultRow {
	row := &resultRow{value: widget.NewLabel("")}
	row.copy = widget.NewButton(LabelCopy, func() {
		f.CopyToClipboard(row.value.Text)
	})
	return row
}

// Content returns the tabbed window content
func (f *Form) Content() fyne.CanvasObject {
	inputs := container.NewGridWithColumns(3, f.side1, f.side2, f.base)
	actions := container.NewGridWithColumns(2, f.calcButton, f.addButton)

	results := container.NewVBox(
		f.row(units.SquareMeterSymbol, f.areaSquareMeters),
		f.row(units.LebnaSymbol, f.areaLebna),
		widget.NewLabelWithStyle("Total area of all triangles:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		f.row(units.SquareMeterSymbol, f.totalSquareMeters),
		f.row(units.LebnaSymbol, f.totalLebna),
		f.status,
	)

	mainTab := container.NewVBox(
		f.drawing,
		inputs,
		actions,
		widget.NewSeparator(),
		results,
	)

	about := widget.NewLabel(fmt.Sprintf(
		"Triangle area calculator %s\n\n"+
			"Enter the three side lengths in meters and press %s.\n"+
			"The area uses Heron's formula. 1 lebna = %.2f m².",
		version.GetFullVersion(), LabelCalculate, units.SquareMetersPerLebna))
	about.Wrapping = fyne.TextWrapWord

	return container.NewAppTabs(
		container.NewTabItem("Main", container.NewVScroll(mainTab)),
		container.NewTabItem("Record", f.records),
		container.NewTabItem("About", about),
	)
}

func (f *Form) row(unit string, r *resultRow) fyne.CanvasObject {
	return container.NewBorder(nil, nil, widget.NewLabel(unit), r.copy, container.NewHBox(layout.NewSpacer(), r.value))
}

// Calculate submits the entries and clears them
func (f *Form) Calculate() {
	f.state = state.Submit(f.state, state.Input{
		Side1: f.side1.Text,
		Side2: f.side2.Text,
		Base:  f.base.Text,
	})
	f.clearEntries()

	view := state.Render(f.state)
	f.logger.Debug("calculated", "sides", view.Display.String(), "valid", view.Valid)
	f.refresh()
}

// AddToTotal adds the last calculated area to the total
func (f *Form) AddToTotal() {
	f.state = state.Accumulate(f.state)
	f.refresh()
}

// CopyToClipboard places text on the clipboard and confirms it in the
// status line
func (f *Form) CopyToClipboard(text string) {
	f.app.Clipboard().SetContent(text)
	f.status.SetText(fmt.Sprintf("%s: %s", LabelCopied, text))
}

// State returns the current presentation state
func (f *Form) State() state.State {
	return f.state
}

// clearEntries empties the fields; their OnChanged handlers clear the
// state's input as well
func (f *Form) clearEntries() {
	for _, e := range []*widget.Entry{f.side1, f.side2, f.base} {
		e.SetText("")
	}
}

func (f *Form) refresh() {
	view := state.Render(f.state)

	f.areaSquareMeters.value.SetText(view.AreaSquareMeters)
	f.areaLebna.value.SetText(view.AreaLebna)
	f.totalSquareMeters.value.SetText(view.TotalSquareMeters)
	f.totalLebna.value.SetText(view.TotalLebna)

	f.drawing.Image = render.Draw(view.Display, f.opts)
	f.drawing.Refresh()

	f.history = f.state.History()
	f.records.Refresh()
}

func formatRecord(id int, r state.Record) string {
	return fmt.Sprintf("%d. %s  %s  →  %s m²  (total %s m²)",
		id+1,
		r.Kind,
		r.Sides,
		units.FormatSquareMeters(r.Area),
		units.FormatSquareMeters(r.Total))
}
