// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package document

import (
	"errors"
	"reflect"
	"strings"

	"github.com/dalzilio/qcl"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// MaxDepth bounds the nesting of the trees accepted by the decoders.
var MaxDepth = 10000

var validate *validator.Validate

func init() {
	validate = validator.New()
	// report fields using their name in the document
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// unmarshal decodes a JSON or YAML document into v.
func unmarshal(op string, data []byte, v interface{}) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return qcl.Errorf(op, qcl.ErrInput, "%s", yaml.FormatError(err, false, false))
	}
	return nil
}

// check validates v using its struct tags.
func check(op string, v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return qcl.Errorf(op, qcl.ErrInput, "%s", err)
	}
	fe := verrs[0]
	field := fe.Namespace()
	if k := strings.IndexByte(field, '.'); k >= 0 {
		field = field[k+1:]
	}
	switch fe.Tag() {
	case "required", "required_if", "required_without":
		return qcl.Errorf(op, qcl.ErrInput, "missing field %q", field)
	case "oneof":
		return qcl.Errorf(op, qcl.ErrInput, "field %q must be one of [%s], not %v", field, fe.Param(), fe.Value())
	case "excluded_with":
		return qcl.Errorf(op, qcl.ErrInput, "field %q cannot be used together with %q", field, strings.ToLower(fe.Param()))
	}
	if fe.Param() != "" {
		return qcl.Errorf(op, qcl.ErrInput, "invalid value %v for field %q (%s=%s)", fe.Value(), field, fe.Tag(), fe.Param())
	}
	return qcl.Errorf(op, qcl.ErrInput, "invalid value %v for field %q (%s)", fe.Value(), field, fe.Tag())
}

// Coordinate is one component of a point, as found in the point arrays of
// documents.
type Coordinate struct {
	Index int     `yaml:"index" validate:"gte=0"`
	Value float64 `yaml:"value" validate:"gte=0"`
}

// Dense returns the point described by coords. Its size is one more than the
// largest index and missing components are zero.
func Dense(coords []Coordinate) ([]float64, error) {
	n := 0
	for _, c := range coords {
		if c.Index < 0 {
			return nil, qcl.Errorf("Dense", qcl.ErrInput, "negative index in point (%d)", c.Index)
		}
		if c.Index >= n {
			n = c.Index + 1
		}
	}
	res := make([]float64, n)
	seen := make([]bool, n)
	for _, c := range coords {
		if seen[c.Index] {
			return nil, qcl.Errorf("Dense", qcl.ErrInput, "index %d appears twice in point", c.Index)
		}
		seen[c.Index] = true
		res[c.Index] = c.Value
	}
	return res, nil
}
