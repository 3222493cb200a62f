// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd implements a Reduced Ordered Binary Decision Diagram (ROBDD)
engine: a canonical DAG representation of Boolean functions over a fixed
variable order, built around a single primitive, if-then-else (ITE).

Basics

A Manager owns a unique table, which guarantees that every distinct
(top, high, low) triple maps to exactly one node id, and a computed table,
which memoizes ITE results. Variables are created with CreateVar, in the
order that fixes their relative position in every BDD built afterwards;
there is no dynamic reordering. Every other node is a byproduct of ITE or
one of the Boolean operators built on top of it (And2, Or2, Xor2, Neg,
Nand2, Nor2, Xnor2).

Nodes are addressed by a dense, non-negative ID, with the convention that 0
is the constant False and 1 is the constant True. Nodes are never
reclaimed during the lifetime of a Manager: the unique table grows
monotonically, and there is no garbage collection or reference counting to
manage.

Cofactors and quantification

CoFactorTrue/CoFactorFalse compute the Shannon cofactors of a function with
respect to a variable, either its own top variable (unary form) or an
arbitrary one (binary form). Exist and ForAll perform existential and
universal quantification over a vector of variables by iterated
cofactoring, and Restrict pins a vector of variables to fixed values.

Concurrency

A Manager is not safe for concurrent use; callers needing concurrent BDD
construction should use independent Managers, which share no state and
require no coordination.
*/
package bdd
