// Package grover builds Grover-search circuits out of qtexcirq gates: a
// uniform-superposition layer, then alternating phase-oracle and diffusion
// blocks. The gates it emits use only kinds the sim backend implements, so a
// built circuit can be rendered and simulated as-is.
package grover

import (
	"fmt"
	"math"

	"qtexcirq"
)

// Iterations returns the optimal Grover iteration count for n wires,
// floor(pi/4 * sqrt(2^n)), never less than 1.
func Iterations(wires int) int {
	k := int(math.Floor(math.Pi / 4 * math.Sqrt(float64(int(1)<<wires))))
	if k < 1 {
		return 1
	}
	return k
}

// Circuit builds a Grover search over wires qubits for the marked bitstring
// (wire 1 leftmost, characters '0' and '1'). The iteration count defaults to
// Iterations(wires) when iterations <= 0.
func Circuit(wires int, marked string, iterations int) (*qtexcirq.Circuit, error) {
	if wires < 2 {
		return nil, fmt.Errorf("%w: grover needs at least two wires, got %d",
			qtexcirq.ErrValidation, wires)
	}
	if len(marked) != wires {
		return nil, fmt.Errorf("%w: marked string %q does not cover %d wires",
			qtexcirq.ErrValidation, marked, wires)
	}
	for _, r := range marked {
		if r != '0' && r != '1' {
			return nil, fmt.Errorf("%w: marked string %q is not binary", qtexcirq.ErrValidation, marked)
		}
	}
	if iterations <= 0 {
		iterations = Iterations(wires)
	}

	var gates []qtexcirq.Gate
	add := func(g qtexcirq.Gate, err error) error {
		if err != nil {
			return err
		}
		gates = append(gates, g)
		return nil
	}

	hLayer := func() error {
		for w := 1; w <= wires; w++ {
			if err := add(qtexcirq.NewGate(qtexcirq.Single, "H", []int{w})); err != nil {
				return err
			}
		}
		return nil
	}
	xWhere := func(pred func(w int) bool) error {
		for w := 1; w <= wires; w++ {
			if !pred(w) {
				continue
			}
			if err := add(qtexcirq.NewGate(qtexcirq.Single, "X", []int{w})); err != nil {
				return err
			}
		}
		return nil
	}

	if err := hLayer(); err != nil {
		return nil, err
	}

	zeroMarked := func(w int) bool { return marked[w-1] == '0' }
	all := func(int) bool { return true }

	for i := 0; i < iterations; i++ {
		// Oracle: flip the phase of the marked state.
		if err := xWhere(zeroMarked); err != nil {
			return nil, err
		}
		if err := add(controlledZ(wires)); err != nil {
			return nil, err
		}
		if err := xWhere(zeroMarked); err != nil {
			return nil, err
		}

		// Diffusion: reflect about the uniform superposition.
		if err := hLayer(); err != nil {
			return nil, err
		}
		if err := xWhere(all); err != nil {
			return nil, err
		}
		if err := add(controlledZ(wires)); err != nil {
			return nil, err
		}
		if err := xWhere(all); err != nil {
			return nil, err
		}
		if err := hLayer(); err != nil {
			return nil, err
		}
	}

	return qtexcirq.NewCircuit(wires, nil, gates...)
}

// controlledZ builds the widest controlled-Z the class system names for the
// given wire count. Beyond four wires there is no fixed controlled family,
// so the gate becomes a generalized n-wire operation.
func controlledZ(wires int) (qtexcirq.Gate, error) {
	ws := make([]int, wires)
	for i := range ws {
		ws[i] = i + 1
	}
	switch wires {
	case 2:
		return qtexcirq.NewGate(qtexcirq.Controlled, "CZ", ws)
	case 3:
		return qtexcirq.NewGate(qtexcirq.ThreeWire, "CCZ", ws)
	case 4:
		return qtexcirq.NewGate(qtexcirq.FourWire, "CCCZ", ws)
	}
	return qtexcirq.NewGate(qtexcirq.MultiWire, "CZ", ws)
}
