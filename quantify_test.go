// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExistEliminatesVariable(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")

	f := m.And2(a, b)
	exA := m.Exist(f, []ID{a})
	assert.Equal(t, b, exA)
	assert.False(t, m.DependsOn(exA, a))
}

func TestForAllEliminatesVariable(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")

	// forall a. (a OR b) = (true OR b) AND (false OR b) = b.
	f := m.Or2(a, b)
	allA := m.ForAll(f, []ID{a})
	assert.Equal(t, b, allA)
}

func TestExistOverBothVarsIsSatisfiable(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	c := m.CreateVar("c")

	f := m.And2(m.And2(a, b), c)
	ex := m.Exist(f, []ID{a, b})
	assert.Equal(t, c, ex)
}

func TestRestrictPinsVariables(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")

	f := m.And2(a, b)
	pinned := m.Restrict(f, Assignment{a: true})
	assert.Equal(t, b, pinned)

	pinnedFalse := m.Restrict(f, Assignment{a: false})
	assert.Equal(t, m.False(), pinnedFalse)
}

func TestReplaceRenamesVariables(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	aPrime := m.CreateVar("aPrime")
	b := m.CreateVar("b")

	f := m.And2(a, b)
	r, err := m.NewReplacer([]ID{a}, []ID{aPrime})
	assert.NoError(t, err)

	g := m.Replace(f, r)
	assert.Equal(t, m.And2(aPrime, b), g)
	assert.True(t, m.DependsOn(g, aPrime))
	assert.False(t, m.DependsOn(g, a))
}

func TestNewReplacerRejectsMismatchedArity(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	_, err := m.NewReplacer([]ID{a}, []ID{})
	assert.ErrorIs(t, err, ErrArityMismatch)
}

func TestNewReplacerRejectsDuplicate(t *testing.T) {
	m := New()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	c := m.CreateVar("c")
	_, err := m.NewReplacer([]ID{a, a}, []ID{b, c})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
