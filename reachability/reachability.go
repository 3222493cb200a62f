// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package reachability implements symbolic reachability analysis for
// finite-state machines on top of a bdd.Manager: characteristic functions
// over current- and next-state variables, a transition relation, image
// computation by existential quantification, and fixed-point iteration to
// compute the set of reachable states.
package reachability

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	bdd "github.com/jp-pino/VDSProject"
)

// Reachability is a stateful symbolic reachability object over k state
// bits and m input bits (spec §4.2). It is built once against a
// bdd.Manager and reconfigured in place through SetTransitionFunctions and
// SetInitState; every setter invalidates any previously computed closure.
type Reachability struct {
	m *bdd.Manager

	states     []bdd.ID
	nextStates []bdd.ID
	inputs     []bdd.ID

	tauFuncs  []bdd.ID
	initState []bool

	identity bdd.ID // E = AND_i XNOR(s_i, s_i'), fixed at construction
	tau      bdd.ID
	cs0      bdd.ID

	closure    bdd.ID
	hasClosure bool

	maxIterations int
	logger        *zap.Logger
}

// Option configures a Reachability object created with New.
type Option func(*config)

type config struct {
	maxIterations int
	logger        *zap.Logger
}

func defaultConfig() *config {
	return &config{logger: zap.NewNop()}
}

// WithLogger attaches a structured logger used to trace fixed-point
// iteration progress at Debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxIterations bounds the number of fixed-point iterations the closure
// computation behind IsReachable performs before giving up with an error,
// guarding against the unbounded recursion spec §5 warns long computations
// must be bounded externally. StateDistance runs its own iteration and is
// not bounded by this option. Zero (the default) means no bound beyond the
// 2^k iterations the closure is guaranteed to converge within (spec §8,
// invariant 8).
func WithMaxIterations(n int) Option {
	return func(c *config) {
		c.maxIterations = n
	}
}

// New creates a reachability object with stateSize state bits and
// inputSize input bits, all driven by m. It fails with ErrInvalidArgument
// if stateSize is zero (spec §4.2, "Construction"). Variables are created
// in the order the spec mandates: s0, s0', s1, s1', ..., then i0, ..., so
// that the relative variable order groups each state bit with its
// next-state counterpart.
func New(m *bdd.Manager, stateSize, inputSize int, opts ...Option) (r *Reachability, err error) {
	const op = "New"
	if stateSize <= 0 {
		return nil, invalidArgument(op, "stateSize must be >= 1, got %d", stateSize)
	}
	if inputSize < 0 {
		return nil, invalidArgument(op, "inputSize must be >= 0, got %d", inputSize)
	}
	defer func() {
		if err != nil {
			r = nil
		}
	}()
	defer bdd.RecoverInternal(op, &err)

	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	r = &Reachability{
		m:             m,
		states:        make([]bdd.ID, stateSize),
		nextStates:    make([]bdd.ID, stateSize),
		inputs:        make([]bdd.ID, inputSize),
		tauFuncs:      make([]bdd.ID, stateSize),
		initState:     make([]bool, stateSize),
		maxIterations: cfg.maxIterations,
		logger:        cfg.logger,
	}
	for i := 0; i < stateSize; i++ {
		r.states[i] = m.CreateVar(fmt.Sprintf("s%d", i))
		r.nextStates[i] = m.CreateVar(fmt.Sprintf("s%d'", i))
		r.tauFuncs[i] = r.states[i]
	}
	for j := 0; j < inputSize; j++ {
		r.inputs[j] = m.CreateVar(fmt.Sprintf("i%d", j))
	}

	r.identity = m.True()
	for i := 0; i < stateSize; i++ {
		r.identity = m.And2(r.identity, m.Xnor2(r.states[i], r.nextStates[i]))
	}

	r.rebuildTau()
	r.rebuildCS0()

	r.logger.Debug("reachability object created", zap.Int("state_size", stateSize), zap.Int("input_size", inputSize))
	return r, nil
}

// GetStates returns a copy of the current-state variable ids, s0..sk-1.
func (r *Reachability) GetStates() []bdd.ID {
	out := make([]bdd.ID, len(r.states))
	copy(out, r.states)
	return out
}

// GetInputs returns a copy of the input variable ids, i0..im-1.
func (r *Reachability) GetInputs() []bdd.ID {
	out := make([]bdd.ID, len(r.inputs))
	copy(out, r.inputs)
	return out
}

// SetTransitionFunctions replaces the transition functions τ̂ and rebuilds
// the transition relation. Fails with ErrArityMismatch if len(tauHat) does
// not match the state size, or ErrUnknownID if any element is not a node
// id produced by this object's manager.
func (r *Reachability) SetTransitionFunctions(tauHat []bdd.ID) (err error) {
	const op = "SetTransitionFunctions"
	if len(tauHat) != len(r.states) {
		return arityMismatch(op, "expected %d transition functions, got %d", len(r.states), len(tauHat))
	}
	for i, id := range tauHat {
		if _, ok := r.m.Lookup(id); !ok {
			return unknownID(op, "tauHat[%d]=%d is not a node of this manager", i, id)
		}
	}
	defer bdd.RecoverInternal(op, &err)
	copy(r.tauFuncs, tauHat)
	r.rebuildTau()
	r.invalidate()
	return nil
}

// SetInitState replaces the initial-state bit vector and rebuilds cs0.
// Fails with ErrArityMismatch if len(b) does not match the state size.
func (r *Reachability) SetInitState(b []bool) (err error) {
	const op = "SetInitState"
	if len(b) != len(r.states) {
		return arityMismatch(op, "expected %d bits, got %d", len(r.states), len(b))
	}
	defer bdd.RecoverInternal(op, &err)
	copy(r.initState, b)
	r.rebuildCS0()
	r.invalidate()
	return nil
}

func (r *Reachability) rebuildTau() {
	tau := r.m.True()
	for i, s := range r.nextStates {
		tau = r.m.And2(tau, r.m.Xnor2(s, r.tauFuncs[i]))
	}
	r.tau = tau
}

func (r *Reachability) rebuildCS0() {
	cs0 := r.m.True()
	for i, s := range r.states {
		cs0 = r.m.And2(cs0, r.m.Xnor2(s, r.m.From(r.initState[i])))
	}
	r.cs0 = cs0
}

func (r *Reachability) invalidate() {
	r.hasClosure = false
	r.closure = 0
}

// image computes the set of states reachable in one step from the
// characteristic function cr, following the two-step existential
// quantification of spec §4.2: quantify out current states and inputs to
// land on next-state variables, then rename next-state variables back to
// current-state variables by intersecting with the identity relation and
// quantifying out next_states and inputs again.
func (r *Reachability) image(cr bdd.ID) bdd.ID {
	quantOut := make([]bdd.ID, 0, len(r.states)+len(r.inputs))
	quantOut = append(quantOut, r.states...)
	quantOut = append(quantOut, r.inputs...)
	imgNext := r.m.Exist(r.m.And2(cr, r.tau), quantOut)

	quantBack := make([]bdd.ID, 0, len(r.nextStates)+len(r.inputs))
	quantBack = append(quantBack, r.nextStates...)
	quantBack = append(quantBack, r.inputs...)
	return r.m.Exist(r.m.And2(r.identity, imgNext), quantBack)
}

// computeClosure runs the fixed-point iteration of spec §4.2 starting from
// cs0, caching the result until the next setter call invalidates it.
func (r *Reachability) computeClosure(ctx context.Context) (bdd.ID, error) {
	if r.hasClosure {
		return r.closure, nil
	}
	cr := r.cs0
	for iter := 0; ; iter++ {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		if r.maxIterations > 0 && iter >= r.maxIterations {
			return 0, fmt.Errorf("reachability: fixed-point iteration exceeded %d iterations", r.maxIterations)
		}
		next := r.m.Or2(cr, r.image(cr))
		if next == cr {
			break
		}
		cr = next
		r.logger.Debug("reachability fixed-point iteration", zap.Int("iteration", iter+1))
	}
	r.closure = cr
	r.hasClosure = true
	return cr, nil
}

// IsReachable reports whether the bit vector b denotes a state in the
// reachable set, computing the closure if it is not already cached. Fails
// with ErrArityMismatch if len(b) does not match the state size.
func (r *Reachability) IsReachable(ctx context.Context, b []bool) (ok bool, err error) {
	const op = "IsReachable"
	if len(b) != len(r.states) {
		return false, arityMismatch(op, "expected %d bits, got %d", len(r.states), len(b))
	}
	defer bdd.RecoverInternal(op, &err)
	cr, err := r.computeClosure(ctx)
	if err != nil {
		return false, err
	}
	assignment := make(bdd.Assignment, len(r.states))
	for i, s := range r.states {
		assignment[s] = b[i]
	}
	return r.m.Restrict(cr, assignment) == r.m.True(), nil
}

// StateDistance returns the minimum number of transitions from any initial
// state to b, or -1 if b is unreachable. Fails with ErrArityMismatch if
// len(b) does not match the state size.
func (r *Reachability) StateDistance(ctx context.Context, b []bool) (d int, err error) {
	const op = "StateDistance"
	if len(b) != len(r.states) {
		return 0, arityMismatch(op, "expected %d bits, got %d", len(r.states), len(b))
	}
	defer bdd.RecoverInternal(op, &err)
	assignment := make(bdd.Assignment, len(r.states))
	for i, s := range r.states {
		assignment[s] = b[i]
	}

	cr := r.cs0
	for dist := 0; ; dist++ {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		if r.m.Restrict(cr, assignment) == r.m.True() {
			return dist, nil
		}
		next := r.m.Or2(cr, r.image(cr))
		if next == cr {
			return -1, nil
		}
		cr = next
	}
}
