package qtexcirq

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal layout constants.
const (
	termMinCellW = 5 // minimum column width in characters
	termLabelW   = 7 // visual width of the wire label area
)

// Styles for the terminal preview.
var (
	termWireStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff"))
	termGateStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#73daca"))
)

// termLabel is the terminal flavor of GateLabel: raw kind identifiers and a
// literal pi rune instead of LaTeX markup.
func termLabel(g Gate) string {
	if len(g.Params) == 0 {
		return g.Name
	}
	parts := make([]string, len(g.Params))
	for i, p := range g.Params {
		parts[i] = formatAngleSym(p, "π")
	}
	return fmt.Sprintf("%s(%s)", g.Name, strings.Join(parts, ","))
}

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len([]rune(s)) >= width {
		return string([]rune(s)[:width])
	}
	total := width - len([]rune(s))
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// connSpan is a vertical connector drawn between two wires of one column.
type connSpan struct{ lo, hi int }

// connectorSpans collects, per column, the wire ranges whose cells are
// joined by a vertical line (control chains and exchanges). Span boxes do
// not contribute; their body is drawn as a box instead.
func connectorSpans(c *Circuit, cols []int, width int) [][]connSpan {
	spans := make([][]connSpan, width)
	for i, g := range c.Gates() {
		switch g.Class {
		case Controlled, ParamControlled, ThreeWire, FourWire:
		case TwoWire, ParamTwoWire:
			if !exchangeFamily[g.Name] {
				continue
			}
		default:
			continue
		}
		lo, hi := g.WireRange()
		spans[cols[i]] = append(spans[cols[i]], connSpan{lo: lo, hi: hi})
	}
	return spans
}

// RenderTerm draws the scheduled circuit as a box-drawing diagram for
// terminal display: three text lines per wire, one fixed-width column per
// diagram column, gate glyphs matching the LaTeX shapes (boxes, control
// dots, crossed-circle targets, swap crosses).
func RenderTerm(c *Circuit, mode LayoutMode) (string, error) {
	grid, cols, width, err := buildGrid(c, mode, termLabel)
	if err != nil {
		return "", err
	}
	spans := connectorSpans(c, cols, width)

	// Column widths follow the widest label in each column.
	colW := make([]int, width)
	for col := 0; col < width; col++ {
		colW[col] = termMinCellW
		for w := 0; w < c.Wires(); w++ {
			cl := grid[w][col]
			if cl.kind == cellBox || cl.kind == cellSpanBox {
				if need := len([]rune(cl.label)) + 4; need > colW[col] {
					colW[col] = need
				}
			}
		}
	}

	var sb strings.Builder
	for w := 1; w <= c.Wires(); w++ {
		label := fmt.Sprintf("q[%d]", w)
		top := strings.Repeat(" ", termLabelW)
		mid := termWireStyle.Render(fmt.Sprintf("%-5s", label)) + "──"
		bot := strings.Repeat(" ", termLabelW)

		for col := 0; col < width; col++ {
			t, m, b := termCell(grid, w, col, colW[col], spans[col])
			top += t
			mid += m
			bot += b
		}

		sb.WriteString(top + "\n")
		sb.WriteString(mid + "\n")
		sb.WriteString(bot + "\n")
	}
	return sb.String(), nil
}

// termCell renders the three text lines of one (wire, column) cell.
func termCell(grid [][]cell, wire, col, cw int, spans []connSpan) (top, mid, bot string) {
	cl := grid[wire-1][col]
	half := cw / 2
	emptyRow := strings.Repeat(" ", cw)
	vertRow := strings.Repeat(" ", half) + "│" + strings.Repeat(" ", cw-half-1)
	dashL := (cw - 1) / 2
	dashR := cw - dashL - 1

	connUp, connDown, inside := false, false, false
	for _, s := range spans {
		if wire > s.lo && wire <= s.hi {
			connUp = true
		}
		if wire >= s.lo && wire < s.hi {
			connDown = true
		}
		if wire > s.lo && wire < s.hi {
			inside = true
		}
	}

	glyphCell := func(sym string) (string, string, string) {
		t, b := emptyRow, emptyRow
		if connUp {
			t = vertRow
		}
		if connDown {
			b = vertRow
		}
		m := strings.Repeat("─", dashL) + termGateStyle.Render(sym) + strings.Repeat("─", dashR)
		return t, m, b
	}

	switch cl.kind {
	case cellCtrl, cellDot:
		return glyphCell("●")
	case cellTarget:
		return glyphCell("⊕")
	case cellSwap, cellSwapTarget:
		return glyphCell("×")

	case cellBox:
		inner := cw - 4
		name := padCenter(cl.label, inner)
		top = " " + termGateStyle.Render("┌"+strings.Repeat("─", inner+2)+"┐") + " "
		mid = "─" + termGateStyle.Render("┤ "+name+" ├") + "─"
		bot = " " + termGateStyle.Render("└"+strings.Repeat("─", inner+2)+"┘") + " "
		return top, mid, bot

	case cellSpanBox:
		inner := cw - 4
		name := padCenter(cl.label, inner)
		top = " " + termGateStyle.Render("┌"+strings.Repeat("─", inner+2)+"┐") + " "
		mid = "─" + termGateStyle.Render("┤ "+name+" ├") + "─"
		if cl.span == 1 {
			bot = " " + termGateStyle.Render("└"+strings.Repeat("─", inner+2)+"┘") + " "
		} else {
			bot = " " + termGateStyle.Render("│"+strings.Repeat(" ", inner+2)+"│") + " "
		}
		return top, mid, bot

	case cellGhost:
		// Body of a span box opened above this wire.
		inner := cw - 4
		last := wire == ghostBottom(grid, wire, col)
		top = " " + termGateStyle.Render("│"+strings.Repeat(" ", inner+2)+"│") + " "
		mid = "─" + termGateStyle.Render("┤"+strings.Repeat(" ", inner+2)+"├") + "─"
		if last {
			bot = " " + termGateStyle.Render("└"+strings.Repeat("─", inner+2)+"┘") + " "
		} else {
			bot = " " + termGateStyle.Render("│"+strings.Repeat(" ", inner+2)+"│") + " "
		}
		return top, mid, bot
	}

	// Plain wire, possibly crossed by a connector.
	if inside {
		return vertRow, strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR), vertRow
	}
	top, bot = emptyRow, emptyRow
	if connUp {
		top = vertRow
	}
	if connDown {
		bot = vertRow
	}
	return top, strings.Repeat("─", cw), bot
}

// ghostBottom returns the lowest wire of the ghost run containing wire in
// the given column.
func ghostBottom(grid [][]cell, wire, col int) int {
	w := wire
	for w < len(grid) && grid[w][col].kind == cellGhost {
		w++
	}
	return w
}
