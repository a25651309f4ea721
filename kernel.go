// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

// _DEFAULTMAXDEPTH is the default limit on the depth of the trees translated by
// a Calculus (see Maxdepth).
const _DEFAULTMAXDEPTH int = 10000

// _TRUTHVALUES is the number of truth values in our many-valued logic. Truth
// tables of operators with arity k have _TRUTHVALUES^k entries.
const _TRUTHVALUES int = 3
