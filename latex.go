package qtexcirq

import (
	"fmt"
	"sort"
	"strings"
)

// Fixed quantikz literals. Downstream typesetting depends on these
// byte-for-byte.
const (
	diagramBegin = "\\begin{quantikz}\n"
	diagramEnd   = "\n\\end{quantikz}"
	rowSep       = " \\\\\n"
	cellSep      = " & "
	throughToken = `\qw`
)

// cellKind enumerates the closed set of diagram cell shapes.
type cellKind int

const (
	cellThrough cellKind = iota // plain wire continuation
	cellBox                     // single-wire or anchor box
	cellSpanBox                 // span-opening multi-wire box
	cellGhost                   // suppressed continuation of a span box
	cellCtrl                    // control dot pointing at a partner wire
	cellTarget                  // crossed-circle target (bit-flip family)
	cellDot                     // dot target (phase family)
	cellSwap                    // exchange anchor on the lower wire
	cellSwapTarget              // exchange partner on the higher wire
)

// cell is one (wire, column) position of the rendered grid.
type cell struct {
	kind   cellKind
	label  string
	span   int // wire count covered by a span box
	offset int // signed wire distance to the partner wire
}

// token serializes a cell into its quantikz form. Ghost cells serialize to
// empty content and are filtered out of the row, matching the grammar's
// suppressed-continuation rule.
func (cl cell) token() string {
	switch cl.kind {
	case cellBox:
		return `\gate{` + cl.label + `}`
	case cellSpanBox:
		return fmt.Sprintf(`\gate[%d]{%s}`, cl.span, cl.label)
	case cellGhost:
		return ""
	case cellCtrl:
		return fmt.Sprintf(`\ctrl{%d}`, cl.offset)
	case cellTarget:
		return `\targ{}`
	case cellDot:
		return `\ctrl{0}`
	case cellSwap:
		return fmt.Sprintf(`\swap{%d}`, cl.offset)
	case cellSwapTarget:
		return `\targX{}`
	}
	return throughToken
}

// buildGrid schedules the circuit and places every gate's cells on an
// N-row grid. Rows are wires (index wire-1), columns run 0..width-1, and
// unclaimed positions stay Through.
func buildGrid(c *Circuit, mode LayoutMode, label func(Gate) string) ([][]cell, []int, int, error) {
	cols, width, err := Columns(c, mode)
	if err != nil {
		return nil, nil, 0, err
	}

	grid := make([][]cell, c.Wires())
	for i := range grid {
		grid[i] = make([]cell, width)
	}

	for i, g := range c.Gates() {
		placeGate(grid, g, cols[i], label)
	}
	return grid, cols, width, nil
}

// placeGate writes one gate's cells into its assigned column.
func placeGate(grid [][]cell, g Gate, col int, label func(Gate) string) {
	at := func(w int) *cell { return &grid[w-1][col] }

	switch g.Class {
	case Single, ParamSingle:
		*at(g.Wires[0]) = cell{kind: cellBox, label: label(g)}

	case Controlled, ParamControlled:
		control, target := g.Wires[0], g.Wires[1]
		*at(control) = cell{kind: cellCtrl, offset: target - control}
		*at(target) = targetCell(g, label)

	case TwoWire, ParamTwoWire:
		if exchangeFamily[g.Name] {
			lo, hi := g.WireRange()
			*at(lo) = cell{kind: cellSwap, offset: hi - lo}
			*at(hi) = cell{kind: cellSwapTarget}
			return
		}
		placeSpanBox(grid, g, col, label)

	case ThreeWire, FourWire:
		placeControlChain(grid, g, col, label)

	case MultiWire, ParamMultiWire:
		placeSpanBox(grid, g, col, label)
	}
}

// targetCell picks the target-wire shape per the kind's family: crossed
// circle for the bit-flip family, control dot for the phase family, and a
// labeled box for everything else (parametric controlled kinds included).
func targetCell(g Gate, label func(Gate) string) cell {
	switch shapeFor(g.Name) {
	case targetCross:
		return cell{kind: cellTarget}
	case targetDot:
		return cell{kind: cellDot}
	}
	return cell{kind: cellBox, label: label(g)}
}

// placeSpanBox anchors a multi-wire box on the lowest wire of the gate's
// range and suppresses every other wire the box covers.
func placeSpanBox(grid [][]cell, g Gate, col int, label func(Gate) string) {
	lo, hi := g.WireRange()
	grid[lo-1][col] = cell{kind: cellSpanBox, label: label(g), span: hi - lo + 1}
	for w := lo + 1; w <= hi; w++ {
		grid[w-1][col] = cell{kind: cellGhost}
	}
}

// placeControlChain renders a k-controls-plus-target gate as a chain of
// control dots connected toward the target, which carries its family shape.
// Each control points at the chain's next wire in the target's direction, so
// the connector is drawn in segments regardless of where the target sits.
func placeControlChain(grid [][]cell, g Gate, col int, label func(Gate) string) {
	target := g.Target()
	chain := append([]int(nil), g.Wires...)
	sort.Ints(chain)

	pos := make(map[int]int, len(chain))
	for i, w := range chain {
		pos[w] = i
	}

	at := func(w int) *cell { return &grid[w-1][col] }
	for _, w := range g.Controls() {
		var next int
		if w < target {
			next = chain[pos[w]+1]
		} else {
			next = chain[pos[w]-1]
		}
		*at(w) = cell{kind: cellCtrl, offset: next - w}
	}
	*at(target) = targetCell(g, label)
}

// Render lays out the circuit under the given mode and serializes it as a
// quantikz block. Each row is the wire label, the column cells left to
// right with ghost cells filtered out, and a trailing wire continuation.
// Any validation failure yields no output at all.
func Render(c *Circuit, mode LayoutMode) (string, error) {
	labels, err := wireLabels(c.states, c.wires)
	if err != nil {
		return "", err
	}
	grid, _, width, err := buildGrid(c, mode, GateLabel)
	if err != nil {
		return "", err
	}

	rows := make([]string, c.wires)
	for w := 0; w < c.wires; w++ {
		tokens := make([]string, 0, width+2)
		tokens = append(tokens, `\lstick{`+labels[w]+`}`)
		for col := 0; col < width; col++ {
			if tok := grid[w][col].token(); tok != "" {
				tokens = append(tokens, tok)
			}
		}
		tokens = append(tokens, throughToken)
		rows[w] = strings.Join(tokens, cellSep)
	}
	return diagramBegin + strings.Join(rows, rowSep) + diagramEnd, nil
}
