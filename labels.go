package qtexcirq

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// angleTolerance is the absolute tolerance used when snapping an angle to a
// multiple or fraction of pi.
const angleTolerance = 1e-6

// maxDenominator bounds the pi-fraction search.
const maxDenominator = 16

// formatAngleSym renders theta compactly against pi using the given pi
// symbol. Exact multiples come first (0, sym, -sym, k·sym), then fractions
// k·sym/n for denominators 2..16, then a plain decimal with three fractional
// digits. Total and deterministic.
func formatAngleSym(theta float64, sym string) string {
	if k := math.Round(theta / math.Pi); math.Abs(theta/math.Pi-k) < angleTolerance {
		switch k {
		case 0:
			return "0"
		case 1:
			return sym
		case -1:
			return "-" + sym
		}
		return strconv.Itoa(int(k)) + sym
	}
	for n := 2; n <= maxDenominator; n++ {
		scaled := theta * float64(n)
		m := math.Round(scaled / math.Pi)
		if math.Abs(scaled-m*math.Pi) < angleTolerance {
			den := "/" + strconv.Itoa(n)
			switch m {
			case 1:
				return sym + den
			case -1:
				return "-" + sym + den
			}
			return strconv.Itoa(int(m)) + sym + den
		}
	}
	return strconv.FormatFloat(theta, 'f', 3, 64)
}

// FormatAngle renders theta for LaTeX output, e.g. \pi/2, 3\pi/4, 2\pi,
// or 0.123 when no compact pi form exists.
func FormatAngle(theta float64) string {
	return formatAngleSym(theta, `\pi`)
}

// gateSymbols maps gate kind identifiers to their display symbols. Built
// once, never mutated; shared freely across concurrent renders. Controlled
// kinds map to the symbol drawn on the target wire when the target is a box.
var gateSymbols = map[string]string{
	"H":       "H",
	"X":       "X",
	"Y":       "Y",
	"Z":       "Z",
	"S":       "S",
	"Sdg":     `S^\dagger`,
	"T":       "T",
	"Tdg":     `T^\dagger`,
	"Rx":      "R_x",
	"Ry":      "R_y",
	"Rz":      "R_z",
	"P":       "P",
	"U1":      "U_1",
	"U2":      "U_2",
	"U3":      "U_3",
	"CH":      "H",
	"CY":      "Y",
	"CRx":     "R_x",
	"CRy":     "R_y",
	"CRz":     "R_z",
	"CP":      "P",
	"SWAP":    `\times`,
	"iSWAP":   "iSWAP",
	"XX":      "XX",
	"YY":      "YY",
	"ZZ":      "ZZ",
	"QFT":     `\mathrm{QFT}`,
	"Oracle":  "U_f",
	"Diffuse": "U_s",
}

// flipFamily marks controlled kinds whose target draws as the crossed
// circle. phaseFamily marks controlled kinds whose target draws as a second
// control dot; both ends of a controlled-phase are interchangeable.
// exchangeFamily marks symmetric two-wire kinds drawn as crossed wires.
var (
	flipFamily = map[string]bool{
		"CX": true, "CNOT": true, "CCX": true, "Toffoli": true, "CCCX": true,
	}
	phaseFamily = map[string]bool{
		"CZ": true, "CCZ": true, "CCCZ": true, "CS": true,
	}
	exchangeFamily = map[string]bool{
		"SWAP": true,
	}
)

// Symbol returns the display symbol for a gate kind. Unknown kinds fall back
// to the raw identifier so display-only extensions never hard-fail.
func Symbol(name string) string {
	if s, ok := gateSymbols[name]; ok {
		return s
	}
	return name
}

// targetShape classifies the target cell of a controlled kind.
type targetShape int

const (
	targetBox   targetShape = iota // labeled box on the target wire
	targetCross                    // crossed circle (bit-flip family)
	targetDot                      // control-style dot (phase family)
)

// shapeFor returns the target shape for a controlled gate kind.
func shapeFor(name string) targetShape {
	switch {
	case flipFamily[name]:
		return targetCross
	case phaseFamily[name]:
		return targetDot
	}
	return targetBox
}

// GateLabel formats the visible label for a gate: the kind symbol plus a
// parenthesized parameter list for parametric kinds.
func GateLabel(g Gate) string {
	return gateLabelSym(g, `\pi`)
}

// gateLabelSym is GateLabel with a configurable pi symbol, shared by the
// LaTeX and terminal renderers.
func gateLabelSym(g Gate, pi string) string {
	sym := Symbol(g.Name)
	if len(g.Params) == 0 {
		return sym
	}
	parts := make([]string, len(g.Params))
	for i, p := range g.Params {
		parts[i] = formatAngleSym(p, pi)
	}
	return fmt.Sprintf("%s(%s)", sym, strings.Join(parts, ", "))
}
