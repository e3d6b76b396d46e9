package units

import (
	"fmt"
	"math"
)

// SquareMetersPerLebna is the size of one Lebna, the local land-area unit
const SquareMetersPerLebna = 44.44

// Display precision for each unit
const (
	SquareMeterDecimals = 2
	LebnaDecimals       = 6
)

// Unit symbols used next to formatted values
const (
	SquareMeterSymbol = "m²"
	LebnaSymbol       = "lebna"
)

// ToLebna converts square meters to Lebna. Non-finite input gives 0.
func ToLebna(squareMeters float64) float64 {
	if !finite(squareMeters) {
		return 0
	}
	return squareMeters / SquareMetersPerLebna
}

// FormatSquareMeters formats an area in square meters with two decimals
func FormatSquareMeters(squareMeters float64) string {
	return formatFixed(squareMeters, SquareMeterDecimals)
}

// FormatLebna converts an area in square meters to Lebna and formats it
// with six decimals
func FormatLebna(squareMeters float64) string {
	return formatFixed(ToLebna(squareMeters), LebnaDecimals)
}

// FormatMeasurement formats a value with its unit symbol
func FormatMeasurement(value string, unit string) string {
	if unit == "" {
		return value
	}
	return fmt.Sprintf("%s %s", value, unit)
}

func formatFixed(value float64, decimals int) string {
	if !finite(value) {
		value = 0
	}
	s := fmt.Sprintf("%.*f", decimals, value)
	// -0.00 reads as a negative area
	if math.Signbit(value) && isZeroString(s) {
		s = s[1:]
	}
	return s
}

func isZeroString(s string) bool {
	for _, r := range s {
		if r != '-' && r != '0' && r != '.' {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
