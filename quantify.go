// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Exist computes the existential quantification of f over vars: ∃x1...∃xn.
// f (spec §4.1, "quantification"). It is implemented as an iterative loop
// that cofactors out one variable per step and ORs the two cofactors
// together, rather than the teacher's single recursive descent guarded by a
// dedicated quantification cache. Each step's two cofactors share a memo
// map local to that step, and the Or2 calls are memoized by the computed
// table; nothing is cached across separate calls besides the latter.
func (m *Manager) Exist(f ID, vars []ID) ID {
	m.checkID("Exist", f)
	for _, x := range vars {
		m.checkID("Exist", x)
		top := m.nodes[x].top
		memo := make(map[ID]ID)
		pos := m.restrictVar(f, top, true, memo)
		neg := m.restrictVar(f, top, false, memo)
		f = m.Or2(pos, neg)
	}
	return f
}

// ForAll computes the universal quantification of f over vars: ∀x1...∀xn.
// f. Symmetric to Exist, using And2 to combine cofactors instead of Or2.
func (m *Manager) ForAll(f ID, vars []ID) ID {
	m.checkID("ForAll", f)
	for _, x := range vars {
		m.checkID("ForAll", x)
		top := m.nodes[x].top
		memo := make(map[ID]ID)
		pos := m.restrictVar(f, top, true, memo)
		neg := m.restrictVar(f, top, false, memo)
		f = m.And2(pos, neg)
	}
	return f
}

// Assignment maps a variable id to the Boolean value it should be fixed to.
type Assignment map[ID]bool

// Restrict substitutes the fixed values given by assignment into f for
// every variable they name, leaving every other variable of f untouched
// (spec §4.1, "restrict"). Unlike Exist/ForAll, this does not eliminate the
// variables by quantification, it pins them to a single value.
func (m *Manager) Restrict(f ID, assignment Assignment) ID {
	m.checkID("Restrict", f)
	memo := make(map[ID]ID)
	for x, value := range assignment {
		m.checkID("Restrict", x)
		memo = make(map[ID]ID)
		f = m.restrictVar(f, m.nodes[x].top, value, memo)
	}
	return f
}
