// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package bdd implements a Reduced Ordered Binary Decision Diagram (ROBDD)
// engine built around a single primitive, if-then-else (ITE), backed by a
// unique table that guarantees canonicity and a computed table that
// memoizes ITE results.
//
// A Manager owns both tables and every node ever created through it; nodes
// are identified by a dense, stable, non-negative ID and are never
// reclaimed during the lifetime of a Manager (spec §1, "Non-goals":
// dynamic reordering and garbage collection are not performed).
//
// Manager is not safe for concurrent use. Independent Managers are
// independent and can be driven from different goroutines without
// coordination (spec §5).
package bdd

import "go.uber.org/zap"

// Manager owns the unique table (the set of all canonical nodes) and the
// computed table (the ITE memoization cache) of one BDD instance. The zero
// value is not usable; construct one with New.
type Manager struct {
	nodes  []node       // dense node storage, indexed by ID
	unique map[key]ID   // (top, high, low) -> id, enforces canonicity (U1)
	ite    map[iteKey]ID // memoized ITE(i,t,e) results (computed table, C1)

	vars []ID // ids of variables created so far, in creation order

	trueID  ID
	falseID ID

	maxNodes int
	logger   *zap.Logger
}

type iteKey struct {
	i, t, e ID
}

// New creates a Manager with the two constant nodes already materialized
// (spec §4.1, "Constructor"). No variables exist until CreateVar is called.
func New(opts ...Option) *Manager {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	m := &Manager{
		nodes:    make([]node, 0, cfg.nodeCap),
		unique:   make(map[key]ID, cfg.nodeCap),
		ite:      make(map[iteKey]ID, cfg.cacheCap),
		maxNodes: cfg.maxNodes,
		logger:   cfg.logger,
	}
	m.falseID = m.push(node{top: False, high: False, low: False})
	m.trueID = m.push(node{top: True, high: True, low: True})
	m.logger.Debug("bdd manager created", zap.Int("node_cap", cfg.nodeCap), zap.Int("cache_cap", cfg.cacheCap))
	return m
}

// push appends a new raw node and returns its freshly assigned id. It is the
// only place a node is ever added to m.nodes, keeping ids dense (U4).
func (m *Manager) push(n node) ID {
	if m.maxNodes > 0 && len(m.nodes) >= m.maxNodes {
		panicInvariant("node table exhausted at max capacity (%d nodes)", m.maxNodes)
	}
	id := ID(len(m.nodes))
	m.nodes = append(m.nodes, n)
	if len(m.nodes)%4096 == 0 {
		m.logger.Debug("bdd node table grown", zap.Int("size", len(m.nodes)))
	}
	return id
}

// checkID panics with an invariant violation if id does not denote a node
// created by m (spec §4.1, "Failure model": "an unknown id is an invariant
// violation (programmer error)").
func (m *Manager) checkID(op string, id ID) {
	if id < 0 || int(id) >= len(m.nodes) {
		panicInvariant("%s: id %d is not a valid node in this manager", op, id)
	}
}

// True returns the id of the constant true node.
func (m *Manager) True() ID { return m.trueID }

// False returns the id of the constant false node.
func (m *Manager) False() ID { return m.falseID }

// From returns the constant node corresponding to v.
func (m *Manager) From(v bool) ID {
	if v {
		return m.trueID
	}
	return m.falseID
}

// Varnum returns the number of variables created so far through CreateVar.
func (m *Manager) Varnum() int { return len(m.vars) }

// Vars returns the ids of every variable created so far, in creation order.
func (m *Manager) Vars() []ID {
	out := make([]ID, len(m.vars))
	copy(out, m.vars)
	return out
}

// CreateVar appends a new variable node with the next available id (spec
// §4.1, "createVar"). No deduplication is performed on label: two calls
// with the same label produce two distinct variables, ordered by creation
// order like every other variable.
func (m *Manager) CreateVar(label string) ID {
	id := ID(len(m.nodes))
	n := node{top: id, high: m.trueID, low: m.falseID, label: label}
	got := m.push(n)
	m.unique[key{top: id, high: m.trueID, low: m.falseID}] = got
	m.vars = append(m.vars, got)
	return got
}

// Lookup returns a read-only snapshot of the node denoted by id, and false
// if id is not a valid node in this manager.
func (m *Manager) Lookup(id ID) (Node, bool) {
	if id < 0 || int(id) >= len(m.nodes) {
		return Node{}, false
	}
	n := m.nodes[id]
	return Node{ID: id, Top: n.top, High: n.high, Low: n.low, Label: n.label}, true
}

// makeNode looks up (or creates) the internal node for a
// given (top, high, low) triple. Reduction (U2) is enforced by the caller
// checking high == low before ever reaching here.
func (m *Manager) makeNode(top, high, low ID, label string) ID {
	k := key{top: top, high: high, low: low}
	if id, ok := m.unique[k]; ok {
		return id
	}
	id := m.push(node{top: top, high: high, low: low, label: label})
	m.unique[k] = id
	return id
}

// UniqueTableSize returns the number of distinct node ids created so far,
// including the two constants (spec §4.1, "uniqueTableSize").
func (m *Manager) UniqueTableSize() int {
	return len(m.nodes)
}
