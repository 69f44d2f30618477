package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"qtexcirq"
)

// circuitFile is the TOML schema for a circuit description.
//
//	wires = 2
//
//	[[state]]          # optional; omitted means |0> everywhere
//	ket = "0"          # or label = "\\ket{\\psi}" with arity = N
//
//	[[gate]]
//	class = "single"
//	name = "H"
//	wires = [1]
//
//	[[gate]]
//	class = "controlled"
//	name = "CX"
//	wires = [1, 2]
type circuitFile struct {
	Wires  int         `toml:"wires"`
	States []stateSpec `toml:"state"`
	Gates  []gateSpec  `toml:"gate"`
}

type stateSpec struct {
	Ket   string `toml:"ket"`
	Label string `toml:"label"`
	Arity int    `toml:"arity"`
}

type gateSpec struct {
	Class  string    `toml:"class"`
	Name   string    `toml:"name"`
	Wires  []int     `toml:"wires"`
	Params []float64 `toml:"params"`
}

// gateClasses maps circuit-file class names to their tags.
var gateClasses = map[string]qtexcirq.GateClass{
	"single":                qtexcirq.Single,
	"parametric-single":     qtexcirq.ParamSingle,
	"controlled":            qtexcirq.Controlled,
	"parametric-controlled": qtexcirq.ParamControlled,
	"two-wire":              qtexcirq.TwoWire,
	"parametric-two-wire":   qtexcirq.ParamTwoWire,
	"three-wire":            qtexcirq.ThreeWire,
	"four-wire":             qtexcirq.FourWire,
	"n-wire":                qtexcirq.MultiWire,
	"parametric-n-wire":     qtexcirq.ParamMultiWire,
}

// LoadCircuit reads a TOML circuit description and builds a validated
// circuit from it. Every record passes through the core constructors, so a
// malformed file fails the same way a malformed API call would.
func LoadCircuit(path string) (*qtexcirq.Circuit, error) {
	var cf circuitFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return buildCircuit(cf)
}

func buildCircuit(cf circuitFile) (*qtexcirq.Circuit, error) {
	var states []qtexcirq.InitialState
	for i, s := range cf.States {
		switch {
		case s.Ket != "" && s.Label == "":
			states = append(states, qtexcirq.Ket(s.Ket))
		case s.Label != "" && s.Ket == "":
			arity := s.Arity
			if arity == 0 {
				arity = 1
			}
			states = append(states, qtexcirq.ProductState(s.Label, arity))
		default:
			return nil, fmt.Errorf("state %d: exactly one of ket or label required", i)
		}
	}

	gates := make([]qtexcirq.Gate, 0, len(cf.Gates))
	for i, gs := range cf.Gates {
		class, ok := gateClasses[gs.Class]
		if !ok {
			return nil, fmt.Errorf("gate %d: unknown class %q", i, gs.Class)
		}
		g, err := qtexcirq.NewGate(class, gs.Name, gs.Wires, gs.Params...)
		if err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
		gates = append(gates, g)
	}

	return qtexcirq.NewCircuit(cf.Wires, states, gates...)
}
