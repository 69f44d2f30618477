package qtexcirq

import "fmt"

// InitialState is a per-wire starting-state descriptor. Arity 1 descriptors
// label a single wire; a product descriptor covers several wires at once and
// must be the circuit's sole descriptor.
type InitialState struct {
	Label string // display text placed inside the wire-label decoration
	Arity int    // number of wires the descriptor covers
}

// Common single-wire kets.
var (
	StateZero  = InitialState{Label: `\ket{0}`, Arity: 1}
	StateOne   = InitialState{Label: `\ket{1}`, Arity: 1}
	StatePlus  = InitialState{Label: `\ket{+}`, Arity: 1}
	StateMinus = InitialState{Label: `\ket{-}`, Arity: 1}
)

// Ket builds a single-wire descriptor for an arbitrary symbol.
func Ket(symbol string) InitialState {
	return InitialState{Label: `\ket{` + symbol + `}`, Arity: 1}
}

// ProductState builds a descriptor covering arity wires under one label,
// e.g. an entangled or symbolic starting state.
func ProductState(label string, arity int) InitialState {
	return InitialState{Label: label, Arity: arity}
}

// wireLabels resolves descriptors to one display label per wire:
// one descriptor broadcast to every wire, N positional descriptors, or a
// sole product descriptor of arity N (labeling the first wire, with the
// covered wires left blank). Anything else is an arity mismatch, reported
// before any rendering starts.
func wireLabels(states []InitialState, wires int) ([]string, error) {
	labels := make([]string, wires)
	switch {
	case len(states) == 1 && states[0].Arity == 1:
		for i := range labels {
			labels[i] = states[0].Label
		}
	case len(states) == 1 && states[0].Arity == wires:
		labels[0] = states[0].Label
	case len(states) == wires:
		for i, s := range states {
			if s.Arity != 1 {
				return nil, fmt.Errorf("%w: positional state %d has arity %d, want 1",
					ErrValidation, i, s.Arity)
			}
			labels[i] = s.Label
		}
	default:
		if len(states) == 1 {
			return nil, fmt.Errorf("%w: product state covers %d wires, circuit has %d",
				ErrValidation, states[0].Arity, wires)
		}
		return nil, fmt.Errorf("%w: %d initial states for %d wires", ErrValidation, len(states), wires)
	}
	return labels, nil
}
