// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Handle is a thin, non-owning convenience wrapper pairing a node id with
// the Manager that produced it, so call sites can chain Boolean operations
// fluently (spec §9, "Design Notes": prefer the integer-id style in the
// core, expose a wrapper as a convenience layer implementers may offer but
// should not rely on internally). No kernel algorithm takes or returns a
// Handle; they are built and unwrapped only at the call site.
//
// A Handle's Manager reference is borrowed: its lifetime must not exceed
// the Manager's, and two Handles built from different Managers must never
// be combined.
type Handle struct {
	m  *Manager
	id ID
}

// Of wraps id, produced by m, into a Handle.
func Of(m *Manager, id ID) Handle {
	return Handle{m: m, id: id}
}

// ID returns the wrapped node id.
func (h Handle) ID() ID { return h.id }

// Manager returns the manager that owns this handle's node.
func (h Handle) Manager() *Manager { return h.m }

func (h Handle) And(other Handle) Handle  { return Handle{m: h.m, id: h.m.And2(h.id, other.id)} }
func (h Handle) Or(other Handle) Handle   { return Handle{m: h.m, id: h.m.Or2(h.id, other.id)} }
func (h Handle) Xor(other Handle) Handle  { return Handle{m: h.m, id: h.m.Xor2(h.id, other.id)} }
func (h Handle) Nand(other Handle) Handle { return Handle{m: h.m, id: h.m.Nand2(h.id, other.id)} }
func (h Handle) Nor(other Handle) Handle  { return Handle{m: h.m, id: h.m.Nor2(h.id, other.id)} }
func (h Handle) Xnor(other Handle) Handle { return Handle{m: h.m, id: h.m.Xnor2(h.id, other.id)} }
func (h Handle) Not() Handle              { return Handle{m: h.m, id: h.m.Neg(h.id)} }

// ITE returns if-then-else(h, t, e).
func (h Handle) ITE(t, e Handle) Handle { return Handle{m: h.m, id: h.m.ITE(h.id, t.id, e.id)} }

// IsConstant reports whether this handle denotes a constant node.
func (h Handle) IsConstant() bool { return h.m.IsConstant(h.id) }

// IsVariable reports whether this handle denotes a variable node.
func (h Handle) IsVariable() bool { return h.m.IsVariable(h.id) }
