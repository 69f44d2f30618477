package qtexcirq

import (
	"fmt"
	"math"
)

// GateClass tags the shape of a gate: how many wires it touches and which
// role each wire plays. The set is closed; layout and rendering switch
// exhaustively over it.
type GateClass int

const (
	// Single is a one-wire gate drawn as a labeled box.
	Single GateClass = iota
	// ParamSingle is a one-wire gate with rotation-style parameters.
	ParamSingle
	// Controlled is a two-wire gate with wires ordered [control, target].
	Controlled
	// ParamControlled is a Controlled gate carrying parameters.
	ParamControlled
	// TwoWire is a symmetric two-wire gate (exchange gates, two-wire boxes).
	TwoWire
	// ParamTwoWire is a TwoWire gate carrying parameters.
	ParamTwoWire
	// ThreeWire is a doubly-controlled gate, wires ordered [c1, c2, target].
	ThreeWire
	// FourWire is a triply-controlled gate, wires ordered [c1, c2, c3, target].
	FourWire
	// MultiWire is a generalized n-wire gate. It carries no control/target
	// roles and always renders as a span box.
	MultiWire
	// ParamMultiWire is a MultiWire gate carrying parameters.
	ParamMultiWire
)

// String returns the class name used in circuit files and error messages.
func (c GateClass) String() string {
	switch c {
	case Single:
		return "single"
	case ParamSingle:
		return "parametric-single"
	case Controlled:
		return "controlled"
	case ParamControlled:
		return "parametric-controlled"
	case TwoWire:
		return "two-wire"
	case ParamTwoWire:
		return "parametric-two-wire"
	case ThreeWire:
		return "three-wire"
	case FourWire:
		return "four-wire"
	case MultiWire:
		return "n-wire"
	case ParamMultiWire:
		return "parametric-n-wire"
	}
	return fmt.Sprintf("GateClass(%d)", int(c))
}

// parametric reports whether the class carries parameters.
func (c GateClass) parametric() bool {
	switch c {
	case ParamSingle, ParamControlled, ParamTwoWire, ParamMultiWire:
		return true
	}
	return false
}

// wireArity returns the exact wire count a class requires, or -1 for the
// open-ended n-wire classes.
func (c GateClass) wireArity() int {
	switch c {
	case Single, ParamSingle:
		return 1
	case Controlled, ParamControlled, TwoWire, ParamTwoWire:
		return 2
	case ThreeWire:
		return 3
	case FourWire:
		return 4
	}
	return -1
}

// paramArity lists the expected parameter count for known parametric kinds.
// Kinds not listed accept any non-empty parameter list.
var paramArity = map[string]int{
	"Rx":  1,
	"Ry":  1,
	"Rz":  1,
	"P":   1,
	"U1":  1,
	"CRx": 1,
	"CRy": 1,
	"CRz": 1,
	"CP":  1,
	"U2":  2,
	"U3":  3,
	"XX":  1,
	"YY":  1,
	"ZZ":  1,
}

// Gate is one operation in a circuit. Wires is role-ordered: controls come
// before the target for controlled classes; symmetric and n-wire classes use
// the caller's fixed order. Wire indices are 1-based.
type Gate struct {
	Class  GateClass
	Name   string
	Wires  []int
	Params []float64
}

// NewGate builds a validated gate. Wires must be non-empty, positive, and
// pairwise distinct; the wire count must match the class arity; parameter
// presence must match the class, and the count must match the kind's
// expected arity when known. Violations return ErrValidation.
func NewGate(class GateClass, name string, wires []int, params ...float64) (Gate, error) {
	if len(wires) == 0 {
		return Gate{}, fmt.Errorf("%w: %s gate %q has no wires", ErrValidation, class, name)
	}
	if n := class.wireArity(); n >= 0 && len(wires) != n {
		return Gate{}, fmt.Errorf("%w: %s gate %q needs %d wires, got %d",
			ErrValidation, class, name, n, len(wires))
	}
	seen := make(map[int]bool, len(wires))
	for _, w := range wires {
		if w <= 0 {
			return Gate{}, fmt.Errorf("%w: gate %q has non-positive wire %d", ErrValidation, name, w)
		}
		if seen[w] {
			return Gate{}, fmt.Errorf("%w: gate %q uses wire %d twice", ErrValidation, name, w)
		}
		seen[w] = true
	}
	if class.parametric() {
		if len(params) == 0 {
			return Gate{}, fmt.Errorf("%w: %s gate %q has no parameters", ErrValidation, class, name)
		}
		if n, ok := paramArity[name]; ok && len(params) != n {
			return Gate{}, fmt.Errorf("%w: gate %q needs %d parameters, got %d",
				ErrValidation, name, n, len(params))
		}
		for _, p := range params {
			if math.IsNaN(p) || math.IsInf(p, 0) {
				return Gate{}, fmt.Errorf("%w: gate %q has non-finite parameter %v", ErrValidation, name, p)
			}
		}
	} else if len(params) > 0 {
		return Gate{}, fmt.Errorf("%w: %s gate %q takes no parameters", ErrValidation, class, name)
	}
	return Gate{Class: class, Name: name, Wires: wires, Params: params}, nil
}

// WireRange returns the minimum and maximum wire the gate touches. Role
// order is preserved in Wires; the range exists only for span and collision
// purposes and never reassigns roles.
func (g Gate) WireRange() (lo, hi int) {
	lo, hi = g.Wires[0], g.Wires[0]
	for _, w := range g.Wires[1:] {
		if w < lo {
			lo = w
		}
		if w > hi {
			hi = w
		}
	}
	return lo, hi
}

// Controls returns the control wires for the controlled classes, nil
// otherwise.
func (g Gate) Controls() []int {
	switch g.Class {
	case Controlled, ParamControlled, ThreeWire, FourWire:
		return g.Wires[:len(g.Wires)-1]
	}
	return nil
}

// Target returns the target wire for the controlled classes, 0 otherwise.
func (g Gate) Target() int {
	switch g.Class {
	case Controlled, ParamControlled, ThreeWire, FourWire:
		return g.Wires[len(g.Wires)-1]
	}
	return 0
}

// Circuit is a fixed-width wire grid plus an ordered gate sequence. Program
// order defines precedence; layout never reorders gates. A Circuit is
// read-only once built.
type Circuit struct {
	wires  int
	gates  []Gate
	states []InitialState
}

// NewCircuit validates the full circuit eagerly: wire count, every gate's
// wires against the wire count, and the initial-state descriptor arity.
// A nil or empty states slice defaults to |0> on every wire.
func NewCircuit(wires int, states []InitialState, gates ...Gate) (*Circuit, error) {
	if wires < 1 {
		return nil, fmt.Errorf("%w: circuit needs at least one wire, got %d", ErrValidation, wires)
	}
	if len(states) == 0 {
		states = []InitialState{StateZero}
	}
	if _, err := wireLabels(states, wires); err != nil {
		return nil, err
	}
	for i, g := range gates {
		if _, hi := g.WireRange(); hi > wires {
			return nil, fmt.Errorf("%w: gate %d (%q) touches wire %d of a %d-wire circuit",
				ErrValidation, i, g.Name, hi, wires)
		}
	}
	return &Circuit{wires: wires, gates: gates, states: states}, nil
}

// Wires returns the circuit's wire count.
func (c *Circuit) Wires() int { return c.wires }

// Gates returns the gate sequence in program order. The slice must not be
// mutated.
func (c *Circuit) Gates() []Gate { return c.gates }
