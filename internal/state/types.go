package state

import "github.com/philipparndt/lebna/pkg/geometry"

// Field identifies one of the three form inputs
type Field int

const (
	FieldSide1 Field = iota // side 1 (right)
	FieldSide2              // side 2 (left)
	FieldBase               // base/hypotenuse
)

// Input holds the raw text the user is typing
type Input struct {
	Side1 string
	Side2 string
	Base  string
}

// Empty reports whether all three fields are blank
func (i Input) Empty() bool {
	return i.Side1 == "" && i.Side2 == "" && i.Base == ""
}

// RecordKind is the event a history record was created for
type RecordKind int

const (
	RecordSubmit RecordKind = iota
	RecordAccumulate
)

func (k RecordKind) String() string {
	if k == RecordAccumulate {
		return "add"
	}
	return "calc"
}

// Record is one entry in the session history
type Record struct {
	ID    string
	Kind  RecordKind
	Sides geometry.Sides
	Area  float64 // square meters, 0 for an invalid triangle
	Total float64 // running total after the event
}

// State is the whole presentation state. It is a value: update functions
// return a new State and never modify their argument.
type State struct {
	Input   Input          // fields being typed, cleared after every submit
	Display geometry.Sides // last submitted sides
	Area    geometry.Area  // area of Display
	Total   float64        // sum of accumulated areas, square meters

	history []Record
}

// View is what the display surface shows
type View struct {
	Display geometry.Sides
	Valid   bool

	AreaSquareMeters  string
	AreaLebna         string
	TotalSquareMeters string
	TotalLebna        string
}
