// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestITETerminalIdentities(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	c := m.CreateVar("c")

	assert.Equal(t, b, m.ITE(m.True(), b, c))
	assert.Equal(t, c, m.ITE(m.False(), b, c))
	assert.Equal(t, b, m.ITE(a, b, b))
	assert.Equal(t, a, m.ITE(a, m.True(), m.False()))
}

func TestBooleanLawsRoundTrip(t *testing.T) {
	m := New()
	x := m.CreateVar("x")
	nx := m.Neg(x)

	assert.Equal(t, x, m.Neg(nx))
	assert.Equal(t, x, m.And2(x, x))
	assert.Equal(t, x, m.Or2(x, x))
	assert.Equal(t, m.False(), m.Xor2(x, x))
	assert.Equal(t, m.False(), m.And2(x, nx))
	assert.Equal(t, m.True(), m.Or2(x, nx))
}

func TestDeMorgan(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")

	lhs := m.Neg(m.And2(a, b))
	rhs := m.Or2(m.Neg(a), m.Neg(b))
	assert.Equal(t, lhs, rhs)
}

func TestCofactorRoundTrip(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	c := m.CreateVar("c")

	f := m.And2(m.Or2(a, b), c)
	pos := m.CoFactorTrueVar(f, a)
	neg := m.CoFactorFalseVar(f, a)
	assert.Equal(t, f, m.ITE(a, pos, neg))
}

func TestCanonicityAcrossPaths(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")

	viaAnd := m.And2(a, b)
	viaITE := m.ITE(a, b, m.False())
	assert.Equal(t, viaAnd, viaITE)

	viaNand := m.Neg(m.Nand2(a, b))
	assert.Equal(t, viaAnd, viaNand)
}

func TestReductionNoNodeHasEqualChildren(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	f := m.Xor2(a, b)
	for _, id := range m.FindNodes(f) {
		n, ok := m.Lookup(id)
		require.True(t, ok)
		if !m.IsConstant(id) {
			assert.NotEqual(t, n.High, n.Low)
		}
	}
}

func TestOrderingChildrenHaveHigherTop(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	c := m.CreateVar("c")
	f := m.And2(m.Or2(a, b), c)
	for _, id := range m.FindNodes(f) {
		if m.IsConstant(id) {
			continue
		}
		n, _ := m.Lookup(id)
		if !m.IsConstant(n.High) {
			hn, _ := m.Lookup(n.High)
			assert.True(t, n.Top < hn.Top)
		}
		if !m.IsConstant(n.Low) {
			ln, _ := m.Lookup(n.Low)
			assert.True(t, n.Top < ln.Top)
		}
	}
}

// TestITEExampleGraph is scenario S1: after creating A, B, C, D in order and
// computing f = (A or B) and (C and D), verify the exact shape of f and its
// intermediate sub-functions.
func TestITEExampleGraph(t *testing.T) {
	m := New()
	a := m.CreateVar("A")
	b := m.CreateVar("B")
	c := m.CreateVar("C")
	d := m.CreateVar("D")

	aOrB := m.Or2(a, b)
	cAndD := m.And2(c, d)
	f := m.And2(aOrB, cAndD)

	fn, _ := m.Lookup(f)
	assert.Equal(t, a, fn.Top)
	assert.Equal(t, cAndD, fn.High)
	assert.Equal(t, m.And2(b, cAndD), fn.Low)

	aOrBn, _ := m.Lookup(aOrB)
	assert.Equal(t, a, aOrBn.Top)
	assert.Equal(t, m.True(), aOrBn.High)
	assert.Equal(t, b, aOrBn.Low)

	cAndDn, _ := m.Lookup(cAndD)
	assert.Equal(t, c, cAndDn.Top)
	assert.Equal(t, d, cAndDn.High)
	assert.Equal(t, m.False(), cAndDn.Low)
}

func TestApplyDispatch(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")

	assert.Equal(t, m.And2(a, b), m.Apply(a, b, OPand))
	assert.Equal(t, m.Or2(a, b), m.Apply(a, b, OPor))
	assert.Equal(t, m.Xor2(a, b), m.Apply(a, b, OPxor))
	assert.Equal(t, m.Nand2(a, b), m.Apply(a, b, OPnand))
	assert.Equal(t, m.Nor2(a, b), m.Apply(a, b, OPnor))
	assert.Equal(t, m.Xnor2(a, b), m.Apply(a, b, OPbiimp))
	assert.Equal(t, m.Imp(a, b), m.Apply(a, b, OPimp))
}
