// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Replacer is the type of association lists used to simultaneously
// substitute a set of variables by other variables throughout a BDD
// (adapted from the teacher package's NewReplacer, generalized from a
// level-indexed slice to a map since this kernel's variable order is not
// necessarily a contiguous prefix of the manager's variables).
type Replacer interface {
	// Replace returns the variable top should be renamed to, and true if
	// top is in the domain of this replacement.
	Replace(top ID) (ID, bool)
}

type replacer struct {
	image map[ID]ID
}

func (r *replacer) Replace(top ID) (ID, bool) {
	to, ok := r.image[top]
	return to, ok
}

// NewReplacer returns a Replacer substituting oldvars[k] with newvars[k]
// for every k. It fails with ErrArityMismatch if the two slices do not
// have the same length, with ErrUnknownID if any id is not a node of m,
// and with ErrInvalidArgument if an id denotes a node that is not a
// variable or a variable is repeated in oldvars.
func (m *Manager) NewReplacer(oldvars, newvars []ID) (Replacer, error) {
	const op = "NewReplacer"
	if len(oldvars) != len(newvars) {
		return nil, arityMismatch(op, "oldvars has length %d, newvars has length %d", len(oldvars), len(newvars))
	}
	image := make(map[ID]ID, len(oldvars))
	for k, v := range oldvars {
		if int(v) < 0 || int(v) >= len(m.nodes) {
			return nil, unknownID(op, "oldvars[%d]=%d", k, v)
		}
		if !m.IsVariable(v) {
			return nil, invalidArgument(op, "oldvars[%d]=%d is not a variable", k, v)
		}
		if int(newvars[k]) < 0 || int(newvars[k]) >= len(m.nodes) {
			return nil, unknownID(op, "newvars[%d]=%d", k, newvars[k])
		}
		if !m.IsVariable(newvars[k]) {
			return nil, invalidArgument(op, "newvars[%d]=%d is not a variable", k, newvars[k])
		}
		if _, dup := image[v]; dup {
			return nil, invalidArgument(op, "duplicate variable (%d) in oldvars", v)
		}
		image[v] = newvars[k]
	}
	return &replacer{image: image}, nil
}

// Replace substitutes every variable named by r throughout f, preserving
// the manager's variable order in the result (the replaced BDD is rebuilt
// bottom-up and reduced exactly as any other kernel operation).
func (m *Manager) Replace(f ID, r Replacer) ID {
	m.checkID("Replace", f)
	memo := make(map[ID]ID)
	var walk func(ID) ID
	walk = func(id ID) ID {
		if id == m.trueID || id == m.falseID {
			return id
		}
		if got, ok := memo[id]; ok {
			return got
		}
		n := m.nodes[id]
		high := walk(n.high)
		low := walk(n.low)
		top := n.top
		if to, ok := r.Replace(top); ok {
			top = to
		}
		var out ID
		if high == low {
			out = high
		} else {
			out = m.ITE(m.varID(top), high, low)
		}
		memo[id] = out
		return out
	}
	return walk(f)
}

// varID returns the node id of the variable whose top is v. Since a
// variable's own id equals its top (spec §3), this is the identity; it
// exists only to make the intent at call sites self-documenting.
func (m *Manager) varID(top ID) ID {
	return top
}
