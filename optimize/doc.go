// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package optimize computes how to split a budget of resources between the
components of a system so as to maximize the confidence computed by a proof.

The confidence in the conclusion of a proof is the maximum of its positive
candidates. Each candidate is an expression over confidence variables; a
substitution (argument cfdRes of Repartition) gives every confidence variable
as a function of the resources allocated to each component. The function to
maximize is therefore a maximum of smooth functions of the resources, and is
not smooth itself.

Four strategies are available: gradient ascent (GA), simulated annealing (SA),
and both followed by a phase of hill climbing (GAHC and SAHC). Gradient ascent
follows the gradient with the largest norm among the candidates that reach the
maximum. Hill climbing and simulated annealing move on the hyperplane where the
total amount of resources is constant. Gradient ascent and simulated
annealing never take resources away from a component. Hill climbing only
corrects the last dimension found out of bounds, so a trial point may still
take resources away from another one.

Runs are deterministic for a given seed (see option Seed). An Optimizer is not
safe for concurrent use.
*/
package optimize
