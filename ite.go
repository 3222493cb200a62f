// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// ITE computes if-then-else(i, t, e) = (i ∧ t) ∨ (¬i ∧ e), the single
// primitive every other Boolean operation in this package is built from
// (spec §4.1, "ITE"). Results are memoized in the computed table keyed on
// the exact (i, t, e) triple; terminal cases are resolved without touching
// the cache at all.
//
// ITE panics with an internal invariant violation if i, t or e is not a
// valid id in m; callers crossing a package boundary should guard the call
// with RecoverInternal.
func (m *Manager) ITE(i, t, e ID) ID {
	m.checkID("ITE", i)
	m.checkID("ITE", t)
	m.checkID("ITE", e)
	return m.ite3(i, t, e)
}

func (m *Manager) ite3(i, t, e ID) ID {
	switch {
	case i == m.trueID:
		return t
	case i == m.falseID:
		return e
	case t == e:
		return t
	case t == m.trueID && e == m.falseID:
		return i
	}

	k := iteKey{i: i, t: t, e: e}
	if id, ok := m.ite[k]; ok {
		return id
	}

	top := m.minTop(i, t, e)

	ihigh, ilow := m.restrictChildren(i, top)
	thigh, tlow := m.restrictChildren(t, top)
	ehigh, elow := m.restrictChildren(e, top)

	high := m.ite3(ihigh, thigh, ehigh)
	low := m.ite3(ilow, tlow, elow)

	var id ID
	if high == low {
		id = high
	} else {
		id = m.makeNode(top, high, low, "")
	}

	m.ite[k] = id
	return id
}

// minTop returns the smallest top variable among i, t and e, skipping
// constants (spec §4.1: "the recursion always branches on the smallest top
// variable among i, t and e"). Variable order is creation order, so "smallest"
// means smallest ID.
func (m *Manager) minTop(i, t, e ID) ID {
	best := ID(-1)
	for _, x := range [...]ID{i, t, e} {
		if x == m.trueID || x == m.falseID {
			continue
		}
		top := m.nodes[x].top
		if best == -1 || top < best {
			best = top
		}
	}
	return best
}

// restrictChildren returns the (high, low) cofactor pair of f with respect
// to top. If f's own top variable differs from top, f is independent of top
// and both cofactors equal f unchanged.
func (m *Manager) restrictChildren(f, top ID) (ID, ID) {
	if f == m.trueID || f == m.falseID {
		return f, f
	}
	n := m.nodes[f]
	if n.top != top {
		return f, f
	}
	return n.high, n.low
}

// CoFactorTrue returns the positive Shannon cofactor of f with respect to
// its own top variable: f restricted to top=1 (spec §4.1, "cofactor").
func (m *Manager) CoFactorTrue(f ID) ID {
	m.checkID("CoFactorTrue", f)
	if f == m.trueID || f == m.falseID {
		return f
	}
	return m.nodes[f].high
}

// CoFactorFalse returns the negative Shannon cofactor of f with respect to
// its own top variable: f restricted to top=0.
func (m *Manager) CoFactorFalse(f ID) ID {
	m.checkID("CoFactorFalse", f)
	if f == m.trueID || f == m.falseID {
		return f
	}
	return m.nodes[f].low
}

// CoFactorTrueVar returns f restricted to x=1, for an arbitrary variable x
// that need not be f's own top variable (spec §4.1, "cofactor... defined
// with respect to an arbitrary variable, not just the function's own top").
func (m *Manager) CoFactorTrueVar(f, x ID) ID {
	m.checkID("CoFactorTrueVar", f)
	m.checkID("CoFactorTrueVar", x)
	memo := make(map[ID]ID)
	return m.restrictVar(f, m.nodes[x].top, true, memo)
}

// CoFactorFalseVar returns f restricted to x=0.
func (m *Manager) CoFactorFalseVar(f, x ID) ID {
	m.checkID("CoFactorFalseVar", f)
	m.checkID("CoFactorFalseVar", x)
	memo := make(map[ID]ID)
	return m.restrictVar(f, m.nodes[x].top, false, memo)
}

// restrictVar substitutes value for variable top throughout f. Since
// variable order follows creation order (increasing top ids along any root
// to leaf path), a node whose own top already exceeds the target variable
// cannot have it appear anywhere below, so f is returned unchanged.
func (m *Manager) restrictVar(f, top ID, value bool, memo map[ID]ID) ID {
	if f == m.trueID || f == m.falseID {
		return f
	}
	if id, ok := memo[f]; ok {
		return id
	}
	n := m.nodes[f]
	var id ID
	switch {
	case n.top == top:
		if value {
			id = n.high
		} else {
			id = n.low
		}
	case n.top > top:
		id = f
	default:
		high := m.restrictVar(n.high, top, value, memo)
		low := m.restrictVar(n.low, top, value, memo)
		if high == low {
			id = high
		} else {
			id = m.makeNode(n.top, high, low, "")
		}
	}
	memo[f] = id
	return id
}

// Neg returns the negation of f.
func (m *Manager) Neg(f ID) ID {
	m.checkID("Neg", f)
	return m.ite3(f, m.falseID, m.trueID)
}

// And2 returns a ∧ b.
func (m *Manager) And2(a, b ID) ID {
	m.checkID("And2", a)
	m.checkID("And2", b)
	return m.ite3(a, b, m.falseID)
}

// Or2 returns a ∨ b.
func (m *Manager) Or2(a, b ID) ID {
	m.checkID("Or2", a)
	m.checkID("Or2", b)
	return m.ite3(a, m.trueID, b)
}

// Xor2 returns a ⊕ b.
func (m *Manager) Xor2(a, b ID) ID {
	m.checkID("Xor2", a)
	m.checkID("Xor2", b)
	return m.ite3(a, m.ite3(b, m.falseID, m.trueID), b)
}

// Nand2 returns ¬(a ∧ b).
func (m *Manager) Nand2(a, b ID) ID {
	m.checkID("Nand2", a)
	m.checkID("Nand2", b)
	return m.ite3(a, m.ite3(b, m.falseID, m.trueID), m.trueID)
}

// Nor2 returns ¬(a ∨ b).
func (m *Manager) Nor2(a, b ID) ID {
	m.checkID("Nor2", a)
	m.checkID("Nor2", b)
	return m.ite3(a, m.falseID, m.ite3(b, m.falseID, m.trueID))
}

// Xnor2 returns ¬(a ⊕ b), i.e. a ↔ b.
func (m *Manager) Xnor2(a, b ID) ID {
	m.checkID("Xnor2", a)
	m.checkID("Xnor2", b)
	return m.ite3(a, b, m.ite3(b, m.falseID, m.trueID))
}

// Imp returns a → b.
func (m *Manager) Imp(a, b ID) ID {
	m.checkID("Imp", a)
	m.checkID("Imp", b)
	return m.ite3(a, b, m.trueID)
}
