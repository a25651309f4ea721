// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package document decodes the input files of the qcl command: fault trees,
confidence functions, starting points and optimisation parameters.

Documents can be written in JSON or in YAML. Trees use nodes with a "type"
field. A fault tree node is one of

	{"type": "wire", "index": 3}
	{"type": "and", "subtree1": ..., "subtree2": ...}

with types wire, and, or and pand. An expression node is one of

	{"type": "var", "index": 0, "wire_index": 0}
	{"type": "var", "index": 4, "name": "r"}
	{"type": "const", "constant": 0.5}
	{"type": "opp", "expression1": ...}
	{"type": "pow", "expression1": ..., "expression2": ...}

with types var, const, opp, log, add, sub, mul, div and pow. A variable with
a wire_index w stands for the resources allocated to wire w, and its index
must be 2w (confidence that the wire works) or 2w+1 (confidence that it
fails). Confidence functions can also be given in infix notation, such as
"1 - 0.5 ^ (x_0 + 1)", where x_k stands for the resources of wire k.

Every decoding error is a *qcl.Error of kind qcl.ErrInput.
*/
package document
