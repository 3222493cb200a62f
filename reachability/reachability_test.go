// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reachability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bdd "github.com/jp-pino/VDSProject"
)

// TestToggleFSM is scenario S2: two state bits, no inputs, tau = (not s0,
// not s1), init = (false, false).
func TestToggleFSM(t *testing.T) {
	m := bdd.New()
	r, err := New(m, 2, 0)
	require.NoError(t, err)

	states := r.GetStates()
	tau := []bdd.ID{m.Neg(states[0]), m.Neg(states[1])}
	require.NoError(t, r.SetTransitionFunctions(tau))

	ctx := context.Background()
	cases := []struct {
		b    []bool
		want bool
	}{
		{[]bool{false, false}, true},
		{[]bool{false, true}, false},
		{[]bool{true, false}, false},
		{[]bool{true, true}, true},
	}
	for _, c := range cases {
		got, err := r.IsReachable(ctx, c.b)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "state %v", c.b)
	}
}

// TestCounterFSM is scenario S3: two state bits, no inputs, tau = (not s0,
// s0 xor s1), init = (false, false). Distances are 0,1,2,3 in the order
// (F,F),(T,F),(F,T),(T,T).
func TestCounterFSM(t *testing.T) {
	m := bdd.New()
	r, err := New(m, 2, 0)
	require.NoError(t, err)

	states := r.GetStates()
	tau := []bdd.ID{
		m.Neg(states[0]),
		m.Xor2(states[0], states[1]),
	}
	require.NoError(t, r.SetTransitionFunctions(tau))

	ctx := context.Background()
	cases := []struct {
		b    []bool
		want int
	}{
		{[]bool{false, false}, 0},
		{[]bool{true, false}, 1},
		{[]bool{false, true}, 2},
		{[]bool{true, true}, 3},
	}
	for _, c := range cases {
		got, err := r.StateDistance(ctx, c.b)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "state %v", c.b)
	}
}

// TestGatedCounterWithInput is scenario S4: two state bits, one input i0,
// tau0 = i0 and ite(s1, false, not s0), tau1 = i0 and s0 and not s1,
// init = (false, false).
func TestGatedCounterWithInput(t *testing.T) {
	m := bdd.New()
	r, err := New(m, 2, 1)
	require.NoError(t, err)

	states := r.GetStates()
	inputs := r.GetInputs()
	s0, s1 := states[0], states[1]
	i0 := inputs[0]

	tau0 := m.And2(i0, m.ITE(s1, m.False(), m.Neg(s0)))
	tau1 := m.And2(m.And2(i0, s0), m.Neg(s1))
	require.NoError(t, r.SetTransitionFunctions([]bdd.ID{tau0, tau1}))

	ctx := context.Background()
	reachable := map[[2]bool]bool{
		{false, false}: true,
		{true, false}:  true,
		{false, true}:  true,
		{true, true}:   false,
	}
	for b, want := range reachable {
		got, err := r.IsReachable(ctx, []bool{b[0], b[1]})
		require.NoError(t, err)
		assert.Equal(t, want, got, "state %v", b)
	}

	d, err := r.StateDistance(ctx, []bool{true, true})
	require.NoError(t, err)
	assert.Equal(t, -1, d)
}

// TestExceptionSurface is scenario S5.
func TestExceptionSurface(t *testing.T) {
	m := bdd.New()
	r, err := New(m, 2, 0)
	require.NoError(t, err)

	states := r.GetStates()
	err = r.SetTransitionFunctions([]bdd.ID{states[0], states[1], states[0]})
	assert.ErrorIs(t, err, ErrArityMismatch)

	_, err = r.IsReachable(context.Background(), []bool{false, false, false})
	assert.ErrorIs(t, err, ErrArityMismatch)
}

// TestDefaultMachine is scenario S6: a freshly constructed 1-bit
// reachability object (identity tau, all-false init).
func TestDefaultMachine(t *testing.T) {
	m := bdd.New()
	r, err := New(m, 1, 0)
	require.NoError(t, err)

	ctx := context.Background()
	got, err := r.IsReachable(ctx, []bool{false})
	require.NoError(t, err)
	assert.True(t, got)

	got, err = r.IsReachable(ctx, []bool{true})
	require.NoError(t, err)
	assert.False(t, got)
}

// TestKernelInvariantViolationSurfacesAsInternalError confirms that a
// panic raised deep inside the kernel (here, the node table exhausting
// its configured cap) is recovered at the Reachability boundary and
// reported as bdd.ErrInternal instead of crashing the caller, per the
// same contract SetTransitionFunctions and IsReachable use.
func TestKernelInvariantViolationSurfacesAsInternalError(t *testing.T) {
	m := bdd.New(bdd.WithMaxNodes(2))
	_, err := New(m, 1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, bdd.ErrInternal)
}

func TestNewRejectsZeroStateSize(t *testing.T) {
	m := bdd.New()
	_, err := New(m, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSetInitStateInvalidatesClosure(t *testing.T) {
	m := bdd.New()
	r, err := New(m, 1, 0)
	require.NoError(t, err)

	ctx := context.Background()
	got, err := r.IsReachable(ctx, []bool{false})
	require.NoError(t, err)
	assert.True(t, got)

	require.NoError(t, r.SetInitState([]bool{true}))
	got, err = r.IsReachable(ctx, []bool{false})
	require.NoError(t, err)
	assert.False(t, got)
}
