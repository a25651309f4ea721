// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

// Cup returns the expression (a + b) - (a * b), that is the probability of the
// union of two independent events of probability a and b.
func Cup(a, b *Expression) *Expression {
	return Sub(Add(a, b), Mul(a, b))
}

func cup(x, y float64) float64 {
	return x + y - x*y
}

// MulOneMany returns the slice of products a * bs[j].
func MulOneMany(a *Expression, bs []*Expression) []*Expression {
	res := make([]*Expression, len(bs))
	for j, b := range bs {
		res[j] = Mul(a, b)
	}
	return res
}

// MulArray returns all the products as[i] * bs[j]. The result has size
// len(as)*len(bs) and the product of as[i] and bs[j] is at index
// i*len(bs) + j.
func MulArray(as, bs []*Expression) []*Expression {
	res := make([]*Expression, 0, len(as)*len(bs))
	for _, a := range as {
		res = append(res, MulOneMany(a, bs)...)
	}
	return res
}

// CupOneMany returns the slice of expressions Cup(a, bs[j]).
func CupOneMany(a *Expression, bs []*Expression) []*Expression {
	res := make([]*Expression, len(bs))
	for j, b := range bs {
		res[j] = Cup(a, b)
	}
	return res
}

// CupArray is similar to MulArray but uses Cup instead of Mul.
func CupArray(as, bs []*Expression) []*Expression {
	res := make([]*Expression, 0, len(as)*len(bs))
	for _, a := range as {
		res = append(res, CupOneMany(a, bs)...)
	}
	return res
}
