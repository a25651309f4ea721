// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

// Compose returns the expression obtained by substituting subs[i] for every
// variable of index i in e. Variables with an index outside of subs, or such
// that subs[i] is nil, are left unchanged. The substituted expressions are
// shared, not copied.
func (e *Expression) Compose(subs []*Expression) *Expression {
	return e.compose(subs, make(map[*Expression]*Expression))
}

// compose uses a table of already substituted nodes so that sharing in e is
// preserved in the result.
func (e *Expression) compose(subs []*Expression, done map[*Expression]*Expression) *Expression {
	switch e.kind {
	case ExpVar:
		if e.index < len(subs) && subs[e.index] != nil {
			return subs[e.index]
		}
		return e
	case ExpConst:
		return e
	}
	if res, ok := done[e]; ok {
		return res
	}
	res := &Expression{kind: e.kind, left: e.left.compose(subs, done)}
	if !e.unary() {
		res.right = e.right.compose(subs, done)
	}
	done[e] = res
	return res
}

// ComposeAll applies Compose to every expression in es.
func ComposeAll(es []*Expression, subs []*Expression) []*Expression {
	res := make([]*Expression, len(es))
	done := make(map[*Expression]*Expression)
	for k, e := range es {
		res[k] = e.compose(subs, done)
	}
	return res
}
