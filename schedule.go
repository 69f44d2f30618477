package qtexcirq

import "fmt"

// LayoutMode selects how gates map to diagram columns.
type LayoutMode int

const (
	// Serial places one gate per column, in program order.
	Serial LayoutMode = iota
	// Packed greedily shares columns between gates whose wire ranges do not
	// overlap, preserving program order.
	Packed
)

// String returns the mode name used by the CLI.
func (m LayoutMode) String() string {
	switch m {
	case Serial:
		return "serial"
	case Packed:
		return "packed"
	}
	return fmt.Sprintf("LayoutMode(%d)", int(m))
}

// ParseLayoutMode maps a mode name to its LayoutMode. Unrecognized names
// return ErrUnsupportedMode.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch s {
	case "serial":
		return Serial, nil
	case "packed":
		return Packed, nil
	}
	return 0, fmt.Errorf("%w: %q (want serial or packed)", ErrUnsupportedMode, s)
}

// Columns assigns every gate a zero-based column index and returns the
// assignment along with the diagram width in columns.
//
// Serial is trivial: gate i sits in column i. Packed walks the gates in
// program order keeping a per-wire frontier (the next free column). A gate
// lands one past the deepest frontier inside its wire range, then advances
// the frontier of every wire in that range, including intermediate wires it
// does not act on: the vertical connector between control and target crosses
// those wires, and a box packed onto one of them in the same column would
// overlap the line.
func Columns(c *Circuit, mode LayoutMode) ([]int, int, error) {
	gates := c.Gates()
	cols := make([]int, len(gates))

	switch mode {
	case Serial:
		for i := range gates {
			cols[i] = i
		}
		return cols, len(gates), nil

	case Packed:
		frontier := make([]int, c.Wires()+1) // 1-based wires
		width := 0
		for i, g := range gates {
			lo, hi := g.WireRange()
			depth := 0
			for w := lo; w <= hi; w++ {
				if frontier[w] > depth {
					depth = frontier[w]
				}
			}
			depth++
			cols[i] = depth - 1
			for w := lo; w <= hi; w++ {
				frontier[w] = depth
			}
			if depth > width {
				width = depth
			}
		}
		return cols, width, nil
	}

	return nil, 0, fmt.Errorf("%w: %d", ErrUnsupportedMode, int(mode))
}
