package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLebna(t *testing.T) {
	for _, m := range []float64{0, 1, 6, 44.44, 100.5, 12345.678} {
		assert.InDelta(t, m/44.44, ToLebna(m), 1e-12, "ToLebna(%v)", m)
	}
}

func TestToLebnaNonFinite(t *testing.T) {
	assert.Equal(t, 0.0, ToLebna(math.NaN()))
	assert.Equal(t, 0.0, ToLebna(math.Inf(1)))
	assert.Equal(t, 0.0, ToLebna(math.Inf(-1)))
}

func TestFormatLebna(t *testing.T) {
	cases := []struct {
		squareMeters float64
		expected     string
	}{
		{0, "0.000000"},
		{6, "0.135014"},
		{25 * math.Sqrt(3) / 4, "0.243594"},
		{44.44, "1.000000"},
		{6 + 25*math.Sqrt(3)/4, "0.378608"},
		{math.NaN(), "0.000000"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatLebna(tc.squareMeters), "FormatLebna(%v)", tc.squareMeters)
	}
}

func TestFormatSquareMeters(t *testing.T) {
	assert.Equal(t, "6.00", FormatSquareMeters(6))
	assert.Equal(t, "10.83", FormatSquareMeters(25*math.Sqrt(3)/4))
	assert.Equal(t, "16.83", FormatSquareMeters(6+25*math.Sqrt(3)/4))
	assert.Equal(t, "0.00", FormatSquareMeters(0))
	assert.Equal(t, "0.00", FormatSquareMeters(math.Inf(1)))
	assert.Equal(t, "0.00", FormatSquareMeters(math.Copysign(0, -1)))
}

func TestFormatMeasurement(t *testing.T) {
	assert.Equal(t, "6.00 m²", FormatMeasurement(FormatSquareMeters(6), SquareMeterSymbol))
	assert.Equal(t, "6.00", FormatMeasurement("6.00", ""))
}
