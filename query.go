// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// TopVar returns the top variable id of f, or false if f is a constant.
func (m *Manager) TopVar(f ID) (ID, bool) {
	m.checkID("TopVar", f)
	if f == m.trueID || f == m.falseID {
		return 0, false
	}
	return m.nodes[f].top, true
}

// IsConstant reports whether f is one of the two terminal nodes.
func (m *Manager) IsConstant(f ID) bool {
	m.checkID("IsConstant", f)
	return f == m.trueID || f == m.falseID
}

// IsVariable reports whether f is exactly a single variable node, i.e. a
// node created directly by CreateVar and never combined with anything else.
func (m *Manager) IsVariable(f ID) bool {
	m.checkID("IsVariable", f)
	if m.IsConstant(f) {
		return false
	}
	n := m.nodes[f]
	return n.top == f && n.high == m.trueID && n.low == m.falseID
}

// FindVars returns the set of top-variable ids of all internal nodes
// reachable from f, i.e. the support of the function f represents (spec
// §4.1, "findVars"). Each variable id appears at most once; the order
// follows a depth-first, high-before-low walk.
func (m *Manager) FindVars(f ID) []ID {
	m.checkID("FindVars", f)
	visited := make(map[ID]bool)
	tops := make(map[ID]bool)
	var out []ID
	var walk func(ID)
	walk = func(id ID) {
		if id == m.trueID || id == m.falseID || visited[id] {
			return
		}
		visited[id] = true
		n := m.nodes[id]
		if !tops[n.top] {
			tops[n.top] = true
			out = append(out, n.top)
		}
		walk(n.high)
		walk(n.low)
	}
	walk(f)
	return out
}

// DependsOn reports whether f's support includes variable x, by walking
// the subgraph reachable from f.
func (m *Manager) DependsOn(f, x ID) bool {
	m.checkID("DependsOn", f)
	m.checkID("DependsOn", x)
	top := m.nodes[x].top
	seen := make(map[ID]bool)
	var walk func(ID) bool
	walk = func(id ID) bool {
		if id == m.trueID || id == m.falseID {
			return false
		}
		if seen[id] {
			return false
		}
		seen[id] = true
		n := m.nodes[id]
		if n.top == top {
			return true
		}
		return walk(n.high) || walk(n.low)
	}
	return walk(f)
}

// FindNodes returns every node id reachable from f, including f itself and
// the constants it bottoms out at, in a depth-first, high-before-low order
// with each id listed exactly once.
func (m *Manager) FindNodes(f ID) []ID {
	m.checkID("FindNodes", f)
	seen := make(map[ID]bool)
	var out []ID
	var walk func(ID)
	walk = func(id ID) {
		if seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
		if id == m.trueID || id == m.falseID {
			return
		}
		n := m.nodes[id]
		walk(n.high)
		walk(n.low)
	}
	walk(f)
	return out
}

// SatCount returns the number of satisfying assignments of f over the
// manager's full set of declared variables, including ones f does not
// depend on.
func (m *Manager) SatCount(f ID) uint64 {
	m.checkID("SatCount", f)
	varIndex := make(map[ID]int, len(m.vars))
	for i, v := range m.vars {
		varIndex[m.nodes[v].top] = i
	}
	nvars := len(m.vars)

	levelOf := func(id ID) int {
		if id == m.trueID || id == m.falseID {
			return nvars
		}
		return varIndex[m.nodes[id].top]
	}

	// count(id) is the number of satisfying assignments of the variables
	// strictly below id's own level, i.e. the standard BDD satcount
	// recursion with False/True treated as sitting at a sentinel level
	// nvars past the last real variable.
	memo := make(map[ID]uint64)
	var count func(ID) uint64
	count = func(id ID) uint64 {
		if id == m.falseID {
			return 0
		}
		if id == m.trueID {
			return 1
		}
		if c, ok := memo[id]; ok {
			return c
		}
		n := m.nodes[id]
		idx := levelOf(id)
		branch := func(child ID) uint64 {
			if child == m.falseID {
				return 0
			}
			return (uint64(1) << uint(levelOf(child)-idx-1)) * count(child)
		}
		c := branch(n.high) + branch(n.low)
		memo[id] = c
		return c
	}

	return (uint64(1) << uint(levelOf(f))) * count(f)
}
