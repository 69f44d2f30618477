package qtexcirq

import (
	"errors"
	"testing"
)

func TestParseLayoutMode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want LayoutMode
	}{
		{"serial", Serial},
		{"packed", Packed},
	} {
		got, err := ParseLayoutMode(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("ParseLayoutMode(%q) = %v, %v", tc.in, got, err)
		}
	}

	for _, in := range []string{"", "dense", "SERIAL"} {
		if _, err := ParseLayoutMode(in); !errors.Is(err, ErrUnsupportedMode) {
			t.Fatalf("ParseLayoutMode(%q): expected ErrUnsupportedMode, got %v", in, err)
		}
	}
}

func TestColumnsSerial(t *testing.T) {
	c := mustCircuit(t, 3,
		mustGate(t, Single, "H", []int{1}),
		mustGate(t, Single, "X", []int{3}),
		mustGate(t, Controlled, "CX", []int{1, 2}),
	)
	cols, width, err := Columns(c, Serial)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if width != len(c.Gates()) {
		t.Fatalf("serial width = %d, want %d", width, len(c.Gates()))
	}
	for i, col := range cols {
		if col != i {
			t.Fatalf("serial cols = %v, want identity", cols)
		}
	}
}

func TestColumnsPackedSharesDisjointRanges(t *testing.T) {
	// Disjoint single-wire gates with no intervening conflict share column 0.
	c := mustCircuit(t, 3,
		mustGate(t, Single, "H", []int{1}),
		mustGate(t, Single, "X", []int{3}),
	)
	cols, width, err := Columns(c, Packed)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if cols[0] != 0 || cols[1] != 0 || width != 1 {
		t.Fatalf("cols = %v width = %d, want both in column 0", cols, width)
	}
}

func TestColumnsPackedOverlapPrecedence(t *testing.T) {
	// control(1,2) then a gate on wire 2: ranges overlap, so the later gate
	// moves to a strictly greater column.
	c := mustCircuit(t, 2,
		mustGate(t, Controlled, "CX", []int{1, 2}),
		mustGate(t, Single, "H", []int{2}),
	)
	cols, width, err := Columns(c, Packed)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if cols[1] <= cols[0] {
		t.Fatalf("cols = %v, want col(H) > col(CX)", cols)
	}
	if width != 2 {
		t.Fatalf("width = %d, want 2", width)
	}
}

func TestColumnsPackedRangeOccupancy(t *testing.T) {
	// A gate spanning wires 1..3 blocks the intermediate wire 2 even though
	// it carries no box there; the connector would cross it.
	c := mustCircuit(t, 3,
		mustGate(t, ThreeWire, "CCX", []int{1, 2, 3}),
		mustGate(t, Single, "H", []int{2}),
	)
	cols, _, err := Columns(c, Packed)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if cols[1] <= cols[0] {
		t.Fatalf("cols = %v, want col(H) > col(CCX)", cols)
	}

	// Same with a controlled gate whose range covers an untouched wire.
	c = mustCircuit(t, 3,
		mustGate(t, Controlled, "CX", []int{1, 3}),
		mustGate(t, Single, "H", []int{2}),
	)
	cols, _, err = Columns(c, Packed)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if cols[1] <= cols[0] {
		t.Fatalf("cols = %v, want col(H) > col(CX)", cols)
	}
}

func TestColumnsPackedNeverWiderThanSerial(t *testing.T) {
	c := mustCircuit(t, 4,
		mustGate(t, Single, "H", []int{1}),
		mustGate(t, Controlled, "CX", []int{1, 2}),
		mustGate(t, Single, "X", []int{4}),
		mustGate(t, TwoWire, "SWAP", []int{3, 4}),
		mustGate(t, ThreeWire, "CCX", []int{2, 3, 4}),
		mustGate(t, Single, "Z", []int{1}),
	)
	_, serialW, err := Columns(c, Serial)
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	_, packedW, err := Columns(c, Packed)
	if err != nil {
		t.Fatalf("packed: %v", err)
	}
	if packedW > serialW {
		t.Fatalf("packed width %d exceeds serial width %d", packedW, serialW)
	}
}

func TestColumnsUnsupportedMode(t *testing.T) {
	c := mustCircuit(t, 1, mustGate(t, Single, "H", []int{1}))
	if _, _, err := Columns(c, LayoutMode(7)); !errors.Is(err, ErrUnsupportedMode) {
		t.Fatalf("expected ErrUnsupportedMode, got %v", err)
	}
}
