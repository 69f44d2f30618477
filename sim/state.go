// Package sim is the numerical backend behind qtexcirq: a dense state-vector
// engine that consumes the same opaque gate-kind identifiers the diagram
// renderer uses. The core layout pipeline never depends on it.
package sim

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"qtexcirq"
)

// ErrBackend is returned for gate kinds or wire counts the engine does not
// implement.
var ErrBackend = errors.New("unsupported backend operation")

// State is a dense amplitude vector over n qubits, starting in |0...0>.
type State struct {
	amps   []complex128
	qubits int
}

// New allocates an n-qubit state initialized to |0...0>.
func New(qubits int) (*State, error) {
	if qubits < 1 {
		return nil, fmt.Errorf("%w: state needs at least one qubit, got %d",
			qtexcirq.ErrValidation, qubits)
	}
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &State{amps: amps, qubits: qubits}, nil
}

// Qubits returns the qubit count.
func (s *State) Qubits() int { return s.qubits }

// Apply dispatches a gate by its kind identifier onto the given 1-based
// wires. Unknown kinds and wrong wire counts return ErrBackend; the
// identifiers are forwarded one-to-one from the circuit layer.
func (s *State) Apply(name string, wires []int, params []float64) error {
	bits := make([]int, len(wires))
	for i, w := range wires {
		if w < 1 || w > s.qubits {
			return fmt.Errorf("%w: wire %d outside 1..%d", qtexcirq.ErrValidation, w, s.qubits)
		}
		bits[i] = w - 1
	}

	theta := 0.0
	if len(params) > 0 {
		theta = params[0]
	}

	switch name {
	case "H":
		return s.one(bits, func(q int) { s.applyH(q) })
	case "X":
		return s.one(bits, func(q int) { s.applyX(q) })
	case "Y":
		return s.one(bits, func(q int) { s.applyY(q) })
	case "Z":
		return s.one(bits, func(q int) { s.applyPhase(q, -1) })
	case "S":
		return s.one(bits, func(q int) { s.applyPhase(q, 1i) })
	case "Sdg":
		return s.one(bits, func(q int) { s.applyPhase(q, -1i) })
	case "T":
		return s.one(bits, func(q int) { s.applyPhase(q, cmplx.Exp(complex(0, math.Pi/4))) })
	case "Tdg":
		return s.one(bits, func(q int) { s.applyPhase(q, cmplx.Exp(complex(0, -math.Pi/4))) })
	case "Rx":
		return s.one(bits, func(q int) { s.applyRX(q, theta) })
	case "Ry":
		return s.one(bits, func(q int) { s.applyRY(q, theta) })
	case "Rz":
		return s.one(bits, func(q int) { s.applyRZ(q, theta) })
	case "P", "U1":
		return s.one(bits, func(q int) { s.applyPhase(q, cmplx.Exp(complex(0, theta))) })
	case "CX", "CNOT", "CCX", "Toffoli", "CCCX":
		if len(bits) < 2 {
			return fmt.Errorf("%w: %s needs a control and a target", ErrBackend, name)
		}
		s.applyControlledX(bits[:len(bits)-1], bits[len(bits)-1])
		return nil
	case "CZ", "CCZ", "CCCZ":
		if len(bits) < 2 {
			return fmt.Errorf("%w: %s needs at least two wires", ErrBackend, name)
		}
		s.applyControlledPhase(bits, -1)
		return nil
	case "CP":
		if len(bits) != 2 {
			return fmt.Errorf("%w: CP needs two wires", ErrBackend)
		}
		s.applyControlledPhase(bits, cmplx.Exp(complex(0, theta)))
		return nil
	case "SWAP":
		if len(bits) != 2 {
			return fmt.Errorf("%w: SWAP needs two wires", ErrBackend)
		}
		s.applySWAP(bits[0], bits[1])
		return nil
	}
	return fmt.Errorf("%w: gate kind %q", ErrBackend, name)
}

// one guards single-qubit dispatch.
func (s *State) one(bits []int, f func(int)) error {
	if len(bits) != 1 {
		return fmt.Errorf("%w: single-qubit gate got %d wires", ErrBackend, len(bits))
	}
	f(bits[0])
	return nil
}

// Run evolves a fresh state through every gate of the circuit in program
// order and returns the final state.
func Run(c *qtexcirq.Circuit) (*State, error) {
	s, err := New(c.Wires())
	if err != nil {
		return nil, err
	}
	for i, g := range c.Gates() {
		if err := s.Apply(g.Name, g.Wires, g.Params); err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return s, nil
}

func (s *State) applyH(q int) {
	h := complex(1.0/math.Sqrt2, 0)
	bit := 1 << q
	next := make([]complex128, len(s.amps))
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			next[i] = h * (s.amps[i] + s.amps[j])
			next[j] = h * (s.amps[i] - s.amps[j])
		}
	}
	s.amps = next
}

func (s *State) applyX(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *State) applyY(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = 1i*s.amps[j], -1i*s.amps[i]
		}
	}
}

// applyPhase multiplies the |1> amplitudes of qubit q by factor.
func (s *State) applyPhase(q int, factor complex128) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= factor
		}
	}
}

func (s *State) applyRX(q int, theta float64) {
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	next := make([]complex128, len(s.amps))
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			next[i] = c*s.amps[i] + js*s.amps[j]
			next[j] = js*s.amps[i] + c*s.amps[j]
		}
	}
	s.amps = next
}

func (s *State) applyRY(q int, theta float64) {
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	next := make([]complex128, len(s.amps))
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			next[i] = c*s.amps[i] - sn*s.amps[j]
			next[j] = sn*s.amps[i] + c*s.amps[j]
		}
	}
	s.amps = next
}

func (s *State) applyRZ(q int, theta float64) {
	bit := 1 << q
	phase := cmplx.Exp(complex(0, theta/2))
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= phase
		} else {
			s.amps[i] *= cmplx.Conj(phase)
		}
	}
}

// applyControlledX flips target wherever every control bit is set.
func (s *State) applyControlledX(controls []int, target int) {
	mask := 0
	for _, c := range controls {
		mask |= 1 << c
	}
	tBit := 1 << target
	for i := range s.amps {
		if i&mask == mask && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// applyControlledPhase multiplies amplitudes where every listed bit is set.
// A controlled phase is symmetric, so controls and target share one list.
func (s *State) applyControlledPhase(bits []int, factor complex128) {
	mask := 0
	for _, b := range bits {
		mask |= 1 << b
	}
	for i := range s.amps {
		if i&mask == mask {
			s.amps[i] *= factor
		}
	}
}

func (s *State) applySWAP(a, b int) {
	bitA, bitB := 1<<a, 1<<b
	for i := range s.amps {
		if i&bitA != 0 && i&bitB == 0 {
			j := (i &^ bitA) | bitB
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// Probabilities returns the measurement probability of every basis state.
func (s *State) Probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	for i, a := range s.amps {
		probs[i] = real(a * cmplx.Conj(a))
	}
	return probs
}

// Prob1 returns the probability of measuring |1> on the 1-based wire q.
func (s *State) Prob1(q int) (float64, error) {
	if q < 1 || q > s.qubits {
		return 0, fmt.Errorf("%w: qubit %d outside 1..%d", qtexcirq.ErrValidation, q, s.qubits)
	}
	bit := 1 << (q - 1)
	p := 0.0
	for i, a := range s.amps {
		if i&bit != 0 {
			p += real(a * cmplx.Conj(a))
		}
	}
	return p, nil
}

// ExpectZ returns the Pauli-Z expectation value on the 1-based wire q.
func (s *State) ExpectZ(q int) (float64, error) {
	p1, err := s.Prob1(q)
	if err != nil {
		return 0, err
	}
	return 1 - 2*p1, nil
}

// Sample draws shot outcomes from the state's basis distribution using a
// seeded source, returning counts keyed by bitstring (wire 1 leftmost).
func (s *State) Sample(shots int, seed int64) (map[string]int, error) {
	if shots < 1 {
		return nil, fmt.Errorf("%w: shot count %d", qtexcirq.ErrValidation, shots)
	}
	probs := s.Probabilities()
	rng := rand.New(rand.NewSource(seed))
	counts := make(map[string]int)
	for i := 0; i < shots; i++ {
		r := rng.Float64()
		acc := 0.0
		idx := len(probs) - 1
		for i, p := range probs {
			acc += p
			if r < acc {
				idx = i
				break
			}
		}
		counts[s.Bitstring(idx)]++
	}
	return counts, nil
}

// Bitstring formats a basis index with wire 1 as the leftmost character.
func (s *State) Bitstring(idx int) string {
	b := make([]byte, s.qubits)
	for q := 0; q < s.qubits; q++ {
		if idx&(1<<q) != 0 {
			b[q] = '1'
		} else {
			b[q] = '0'
		}
	}
	return string(b)
}
