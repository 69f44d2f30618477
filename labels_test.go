package qtexcirq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAngle(t *testing.T) {
	cases := []struct {
		theta float64
		want  string
	}{
		{0, "0"},
		{math.Pi, `\pi`},
		{-math.Pi, `-\pi`},
		{2 * math.Pi, `2\pi`},
		{-3 * math.Pi, `-3\pi`},
		{math.Pi / 2, `\pi/2`},
		{-math.Pi / 2, `-\pi/2`},
		{math.Pi / 3, `\pi/3`},
		{3 * math.Pi / 4, `3\pi/4`},
		{math.Pi / 16, `\pi/16`},
		{-5 * math.Pi / 8, `-5\pi/8`},
		{0.123456, "0.123"},
		{1.0, "1.000"},
		{-0.5, "-0.500"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatAngle(tc.theta), "theta=%v", tc.theta)
	}
}

func TestFormatAngleSnapsNearMultiples(t *testing.T) {
	// Values within tolerance of an exact multiple take the compact form.
	assert.Equal(t, `\pi`, FormatAngle(math.Pi+1e-7))
	assert.Equal(t, `2\pi`, FormatAngle(2*math.Pi-1e-7))
	assert.Equal(t, `\pi/2`, FormatAngle(math.Pi/2+1e-7))
	assert.Equal(t, "0", FormatAngle(1e-7))
}

func TestFormatAngleDenominatorBound(t *testing.T) {
	// pi/17 has no denominator within the search bound and falls back to
	// a plain decimal.
	assert.Equal(t, "0.185", FormatAngle(math.Pi/17))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "H", Symbol("H"))
	assert.Equal(t, `S^\dagger`, Symbol("Sdg"))
	assert.Equal(t, "R_x", Symbol("Rx"))
	assert.Equal(t, `\mathrm{QFT}`, Symbol("QFT"))

	// Unknown kinds fall back to the raw identifier.
	assert.Equal(t, "MyGate", Symbol("MyGate"))
}

func TestShapeFor(t *testing.T) {
	assert.Equal(t, targetCross, shapeFor("CX"))
	assert.Equal(t, targetCross, shapeFor("Toffoli"))
	assert.Equal(t, targetDot, shapeFor("CZ"))
	assert.Equal(t, targetDot, shapeFor("CS"))
	assert.Equal(t, targetBox, shapeFor("CRz"))
	assert.Equal(t, targetBox, shapeFor("CH"))
	assert.Equal(t, targetBox, shapeFor("Custom"))
}

func TestGateLabel(t *testing.T) {
	h, err := NewGate(Single, "H", []int{1})
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}
	assert.Equal(t, "H", GateLabel(h))

	rz, err := NewGate(ParamSingle, "Rz", []int{1}, math.Pi/4)
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}
	assert.Equal(t, `R_z(\pi/4)`, GateLabel(rz))

	u3, err := NewGate(ParamSingle, "U3", []int{1}, math.Pi/2, 0, math.Pi)
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}
	assert.Equal(t, `U_3(\pi/2, 0, \pi)`, GateLabel(u3))
}
