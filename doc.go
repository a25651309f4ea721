// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package qcl defines a calculus for computing the confidence that a fault does
not propagate through a fault tree, as a closed-form function of the confidence
in each component.

Basics

Confidence is expressed with symbolic arithmetic expressions (type Expression)
over real variables identified by an index. Expressions are immutable and can
be shared, so most operations (Simplify, Derivative, Compose, ...) return new
expressions that reuse parts of their arguments. Use Copy when an isolated tree
is needed.

Judgments are sequents (type Sequent): a list of hypotheses, each a
propositional formula with a positive confidence (the probability that it is
True) and a negative confidence (the probability that it is False), and a
conclusion with two lists of candidate confidences. Several candidates may
exist because several derivations can justify the same sequent; the confidence
in the conclusion is the maximum of its candidates.

Proofs are built with the rules of a Calculus: Axiom, ConjI, DisjI, ImplI and
Acc. The combination rules for implication are derived from the truth table of
a three-valued Logic (values False, Undetermined and True) that is fixed when
the Calculus is created, with New.

Fault trees

Method FromFaultTree translates a fault tree (type FaultTree) with n wires
into a proof that the root does not propagate a fault, in a context where wire
i has positive confidence x_{2i} and negative confidence x_{2i+1}. The positive
candidates of the conclusion can then be optimized with package optimize, which
computes how to split a budget of resources between components.

Error handling

Rules never panic or exit on bad input. A Calculus records the first error
raised by a rule (see methods Errored, Error and Err); the failing rule returns
nil and nil proofs propagate through the following rules. All errors have type
*Error and wrap one of the kinds ErrInput, ErrPrecondition, ErrInvariant,
ErrStall or ErrIterations.

Use of build tags

Compile with the build tag `debug` to log every failed rule on the logger of
the Calculus.
*/
package qcl
