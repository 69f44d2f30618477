package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qtexcirq"
)

func bellCircuit(t *testing.T) *qtexcirq.Circuit {
	t.Helper()
	h, err := qtexcirq.NewGate(qtexcirq.Single, "H", []int{1})
	require.NoError(t, err)
	cx, err := qtexcirq.NewGate(qtexcirq.Controlled, "CX", []int{1, 2})
	require.NoError(t, err)
	c, err := qtexcirq.NewCircuit(2, nil, h, cx)
	require.NoError(t, err)
	return c
}

func TestNewValidation(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, qtexcirq.ErrValidation)
	_, err = New(-1)
	assert.ErrorIs(t, err, qtexcirq.ErrValidation)
}

func TestRunBellState(t *testing.T) {
	st, err := Run(bellCircuit(t))
	require.NoError(t, err)

	probs := st.Probabilities()
	require.Len(t, probs, 4)
	assert.InDelta(t, 0.5, probs[0], 1e-12, "P(00)")
	assert.InDelta(t, 0.0, probs[1], 1e-12, "P(10)")
	assert.InDelta(t, 0.0, probs[2], 1e-12, "P(01)")
	assert.InDelta(t, 0.5, probs[3], 1e-12, "P(11)")

	p1, err := st.Prob1(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p1, 1e-12)
}

func TestApplyDeterministicFlip(t *testing.T) {
	st, err := New(1)
	require.NoError(t, err)
	require.NoError(t, st.Apply("X", []int{1}, nil))

	probs := st.Probabilities()
	assert.InDelta(t, 0.0, probs[0], 1e-12)
	assert.InDelta(t, 1.0, probs[1], 1e-12)

	z, err := st.ExpectZ(1)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, z, 1e-12)
}

func TestApplyRotation(t *testing.T) {
	st, err := New(1)
	require.NoError(t, err)
	require.NoError(t, st.Apply("Ry", []int{1}, []float64{math.Pi / 2}))

	probs := st.Probabilities()
	assert.InDelta(t, 0.5, probs[0], 1e-12)
	assert.InDelta(t, 0.5, probs[1], 1e-12)
}

func TestApplyToffoli(t *testing.T) {
	st, err := New(3)
	require.NoError(t, err)
	require.NoError(t, st.Apply("X", []int{1}, nil))
	require.NoError(t, st.Apply("X", []int{2}, nil))
	require.NoError(t, st.Apply("CCX", []int{1, 2, 3}, nil))

	probs := st.Probabilities()
	assert.InDelta(t, 1.0, probs[7], 1e-12, "all three wires flipped")
}

func TestApplyUnknownKind(t *testing.T) {
	st, err := New(1)
	require.NoError(t, err)
	err = st.Apply("Mystery", []int{1}, nil)
	assert.ErrorIs(t, err, ErrBackend)
}

func TestSample(t *testing.T) {
	st, err := Run(bellCircuit(t))
	require.NoError(t, err)

	counts, err := st.Sample(500, 7)
	require.NoError(t, err)

	total := 0
	for outcome, n := range counts {
		if outcome != "00" && outcome != "11" {
			t.Fatalf("impossible outcome %q sampled", outcome)
		}
		total += n
	}
	assert.Equal(t, 500, total)

	// Same seed, same counts.
	again, err := st.Sample(500, 7)
	require.NoError(t, err)
	assert.Equal(t, counts, again)
}

func TestSampleValidation(t *testing.T) {
	st, err := New(1)
	require.NoError(t, err)
	_, err = st.Sample(0, 1)
	assert.ErrorIs(t, err, qtexcirq.ErrValidation)
}

func TestQubitRangeValidation(t *testing.T) {
	st, err := New(2)
	require.NoError(t, err)
	_, err = st.Prob1(0)
	assert.ErrorIs(t, err, qtexcirq.ErrValidation)
	_, err = st.Prob1(3)
	assert.ErrorIs(t, err, qtexcirq.ErrValidation)
	_, err = st.ExpectZ(3)
	assert.ErrorIs(t, err, qtexcirq.ErrValidation)
}

func TestBitstringOrder(t *testing.T) {
	st, err := New(3)
	require.NoError(t, err)
	require.NoError(t, st.Apply("X", []int{1}, nil))

	counts, err := st.Sample(10, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"100": 10}, counts, "wire 1 is the leftmost character")
}
