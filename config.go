// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "go.uber.org/zap"

// _DEFAULTCAP is the default initial capacity reserved for the
// unique-table backing slice, to amortize the common case of a few hundred
// variables worth of intermediate nodes without repeated reallocation.
const _DEFAULTCAP int = 1024

// config stores the values of the different parameters accepted by New. The
// table itself grows monotonically (spec §1, "garbage collection... is not
// performed; the unique table grows monotonically"), so, unlike the teacher
// package, there is no Minfreenodes/gc-trigger knob left to carry.
type config struct {
	nodeCap   int
	cacheCap  int
	maxNodes  int
	logger    *zap.Logger
}

func defaultConfig() *config {
	return &config{
		nodeCap:  _DEFAULTCAP,
		cacheCap: 10000,
		logger:   zap.NewNop(),
	}
}

// Option configures a Manager created with New.
type Option func(*config)

// WithNodeTableSize reserves an initial capacity for the unique table's
// backing store. The table still grows past this size as needed; this only
// avoids repeated reallocation for callers who know roughly how big their
// BDD will get.
func WithNodeTableSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.nodeCap = size
		}
	}
}

// WithCacheSize sets the initial number of entries reserved in the computed
// (ITE) table.
func WithCacheSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.cacheCap = size
		}
	}
}

// WithMaxNodes caps the total number of nodes a Manager may allocate. An
// operation that would grow the unique table past this limit panics with
// an invariant violation, the same failure mode as an unknown id (spec §7:
// "an unknown id is an invariant violation... implementers should surface
// it as a distinct InternalError and abort the operation") — callers that
// set this bound are expected to run the operation behind a deferred
// RecoverInternal, exactly as reachability and circuit do at their own
// exported boundaries. Zero (the default) means no limit.
func WithMaxNodes(max int) Option {
	return func(c *config) {
		c.maxNodes = max
	}
}

// WithLogger attaches a structured logger (spec SPEC_FULL.md §3) used to
// trace manager creation (with the initial table and cache capacities) and
// node-table growth at Debug level. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
