// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerHasConstants(t *testing.T) {
	m := New()
	require.Equal(t, False, m.False())
	require.Equal(t, True, m.True())
	assert.Equal(t, 2, m.UniqueTableSize())
	assert.Equal(t, 0, m.Varnum())

	f, ok := m.Lookup(m.False())
	require.True(t, ok)
	assert.Equal(t, f.ID, f.Top)
	assert.Equal(t, f.ID, f.High)
	assert.Equal(t, f.ID, f.Low)
}

func TestCreateVarIsDenseAndOrdered(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	c := m.CreateVar("c")

	assert.Equal(t, 3, m.Varnum())
	assert.True(t, a < b)
	assert.True(t, b < c)

	na, ok := m.Lookup(a)
	require.True(t, ok)
	assert.Equal(t, a, na.Top)
	assert.Equal(t, m.True(), na.High)
	assert.Equal(t, m.False(), na.Low)
	assert.True(t, m.IsVariable(a))
	assert.False(t, m.IsConstant(a))
}

func TestCreateVarSameLabelDistinctIDs(t *testing.T) {
	m := New()
	a := m.CreateVar("x")
	b := m.CreateVar("x")
	assert.NotEqual(t, a, b)
}

func TestLookupUnknownID(t *testing.T) {
	m := New()
	_, ok := m.Lookup(ID(42))
	assert.False(t, ok)
}

func TestCheckIDPanicsOnUnknownID(t *testing.T) {
	m := New()
	assert.Panics(t, func() {
		m.And2(ID(99), m.True())
	})
}

func TestRecoverInternalTranslatesPanic(t *testing.T) {
	m := New()
	var err error
	func() {
		defer RecoverInternal("TestOp", &err)
		m.And2(ID(99), m.True())
	}()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUniqueTableDeduplicates(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	f1 := m.And2(a, b)
	f2 := m.And2(a, b)
	assert.Equal(t, f1, f2)
	before := m.UniqueTableSize()
	m.And2(a, b)
	assert.Equal(t, before, m.UniqueTableSize())
}

func TestWithMaxNodesPanicsOnceExhausted(t *testing.T) {
	// Constants alone use up both of the two slots this cap allows.
	m := New(WithMaxNodes(2))
	assert.Panics(t, func() {
		m.CreateVar("a")
	})
}

func TestWithMaxNodesRecoveredAsInternalError(t *testing.T) {
	m := New(WithMaxNodes(2))
	var err error
	func() {
		defer RecoverInternal("TestOp", &err)
		m.CreateVar("a")
	}()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestStatsReportsCounts(t *testing.T) {
	m := New()
	m.CreateVar("a")
	s := m.Stats()
	assert.Contains(t, s, "Varnum:     1")
}
