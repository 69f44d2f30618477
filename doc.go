// Package qtexcirq lays out quantum circuits and renders them as quantikz
// LaTeX diagrams.
//
// A Circuit is a fixed number of wires, an ordered gate sequence, and the
// initial-state labels shown at the left edge of the diagram. Rendering runs
// a pure pipeline: validate the circuit, assign every gate to a diagram
// column (one gate per column, or greedily packed), place the gate shapes on
// an N-row cell grid, and serialize the grid into quantikz markup. The same
// grid also drives a box-drawing terminal preview.
//
// Numerical evaluation of a circuit lives in the sim subpackage; the core
// never touches amplitudes.
package qtexcirq
