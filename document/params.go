// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package document

import (
	"github.com/dalzilio/qcl"
	"github.com/dalzilio/qcl/optimize"
)

// Params are the optimisation parameters of the splits command.
type Params struct {
	Algorithm optimize.Algorithm
	Annealing *optimize.SAParams // nil unless Algorithm is SA or SAHC
}

// Options returns the optimizer options corresponding to p.
func (p *Params) Options() []optimize.Option {
	if p.Annealing == nil {
		return nil
	}
	return []optimize.Option{optimize.Annealing(*p.Annealing)}
}

// SANode holds the simulated annealing hyper-parameters of a parameters
// document.
type SANode struct {
	MaxStep          int          `yaml:"max_step" validate:"gt=0"`
	PInit            float64      `yaml:"p_init" validate:"gt=0,lt=1"`
	K0               int          `yaml:"k0" validate:"gte=0"`
	Lambda           *float64     `yaml:"lambda" validate:"required"`
	FunctionConstant *float64     `yaml:"function_constant" validate:"required"`
	Point            []Coordinate `yaml:"point" validate:"required,dive"`
}

type paramsNode struct {
	Type string  `yaml:"type" validate:"required,oneof=ga gahc sa sahc"`
	SA   *SANode `yaml:"sa" validate:"required_if=Type sa,required_if=Type sahc"`
}

// DecodeParams parses an optimisation parameters document. Field type is one
// of ga, gahc, sa or sahc. Simulated annealing also needs an sa object with
// fields max_step, p_init, lambda, function_constant and point, plus an
// optional k0 that is accepted but not used. A missing field is an error. An
// explicit lambda of 0 selects the initial temperature -1/ln(1-p_init) instead
// of the one calibrated with lambda and function_constant. The point is the
// lower bound of the search; an empty list stands for the starting allocation.
func DecodeParams(data []byte) (*Params, error) {
	const op = "DecodeParams"
	var node paramsNode
	if err := unmarshal(op, data, &node); err != nil {
		return nil, err
	}
	if err := check(op, &node); err != nil {
		return nil, err
	}
	alg, err := optimize.ParseAlgorithm(node.Type)
	if err != nil {
		return nil, err
	}
	p := &Params{Algorithm: alg}
	if alg != optimize.SA && alg != optimize.SAHC {
		return p, nil
	}
	start, err := Dense(node.SA.Point)
	if err != nil {
		return nil, qcl.Errorf(op, qcl.ErrInput, "in sa.point: %s", err)
	}
	p.Annealing = &optimize.SAParams{
		MaxStep:          node.SA.MaxStep,
		PInit:            node.SA.PInit,
		K0:               node.SA.K0,
		Lambda:           *node.SA.Lambda,
		FunctionConstant: *node.SA.FunctionConstant,
		Start:            start,
	}
	return p, nil
}
