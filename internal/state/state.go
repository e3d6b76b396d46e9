package state

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/philipparndt/lebna/pkg/geometry"
	"github.com/philipparndt/lebna/pkg/units"
)

// newID generates record IDs
var newID = uuid.NewString

// New returns the state at application start
func New() State {
	return State{}
}

// ParseSide converts a raw field to a length. Blank or non-numeric text
// gives NaN, which every later step treats as "not a triangle".
func ParseSide(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ParseSides parses all three fields
func ParseSides(raw Input) geometry.Sides {
	return geometry.NewSides(ParseSide(raw.Side1), ParseSide(raw.Side2), ParseSide(raw.Base))
}

// SetField updates one input field
func SetField(s State, field Field, value string) State {
	switch field {
	case FieldSide1:
		s.Input.Side1 = value
	case FieldSide2:
		s.Input.Side2 = value
	case FieldBase:
		s.Input.Base = value
	}
	return s
}

// Submit computes the area of raw, makes it the displayed triangle and
// clears the input fields whether or not raw was a valid triangle.
func Submit(s State, raw Input) State {
	sides := ParseSides(raw)

	s.Display = sides
	s.Area = sides.Area()
	s.Input = Input{}
	s.history = appendRecord(s.history, Record{
		ID:    newID(),
		Kind:  RecordSubmit,
		Sides: sides,
		Area:  s.Area.OrZero(),
		Total: s.Total,
	})

	return s
}

// SubmitInput submits the fields currently held in the state
func SubmitInput(s State) State {
	return Submit(s, s.Input)
}

// Accumulate adds the area from the last submit to the total. Calling it
// twice adds the area twice.
func Accumulate(s State) State {
	area := s.Area.OrZero()

	s.Total += area
	s.history = appendRecord(s.history, Record{
		ID:    newID(),
		Kind:  RecordAccumulate,
		Sides: s.Display,
		Area:  area,
		Total: s.Total,
	})

	return s
}

// Render prepares the values shown to the user
func Render(s State) View {
	area := s.Area.OrZero()
	return View{
		Display:           s.Display,
		Valid:             s.Area.Valid,
		AreaSquareMeters:  units.FormatSquareMeters(area),
		AreaLebna:         units.FormatLebna(area),
		TotalSquareMeters: units.FormatSquareMeters(s.Total),
		TotalLebna:        units.FormatLebna(s.Total),
	}
}

// History returns a copy of the recorded events, oldest first
func (s State) History() []Record {
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}

// appendRecord never writes into a backing array shared with an older State
func appendRecord(history []Record, r Record) []Record {
	return append(history[:len(history):len(history)], r)
}
