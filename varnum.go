// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

import "sort"

// Support returns the sorted list of the indices of the variables occurring in
// e.
func (e *Expression) Support() []int {
	seen := make(map[*Expression]bool)
	set := make(map[int]bool)
	var walk func(*Expression)
	walk = func(n *Expression) {
		if seen[n] {
			return
		}
		seen[n] = true
		switch n.kind {
		case ExpVar:
			set[n.index] = true
		case ExpConst:
		default:
			walk(n.left)
			if n.right != nil {
				walk(n.right)
			}
		}
	}
	walk(e)
	return sortedKeys(set)
}

// MaxVar returns the largest index of a variable occurring in e, or -1 if e has
// no variables.
func (e *Expression) MaxVar() int {
	s := e.Support()
	if len(s) == 0 {
		return -1
	}
	return s[len(s)-1]
}

// Support returns the sorted list of the indices of the propositional variables
// occurring in f.
func (f *Formula) Support() []int {
	set := make(map[int]bool)
	var walk func(*Formula)
	walk = func(n *Formula) {
		if n.kind == FmlVar {
			set[n.index] = true
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(f)
	return sortedKeys(set)
}

func sortedKeys(set map[int]bool) []int {
	res := make([]int, 0, len(set))
	for k := range set {
		res = append(res, k)
	}
	sort.Ints(res)
	return res
}
