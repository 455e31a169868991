// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package modelhelper

import (
	"fmt"
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"github.com/rohithkrn/rocm-caffe2/pkg/support/xslices"
	"github.com/x448/float16"
)

// Param is a handle to a named model parameter registered with ModelHelper.AddParam.
//
// Its identity is its full name: the name scope active when it was added followed by the
// base name given. Params are owned by the ModelHelper that created them.
type Param struct {
	name, baseName, nameScope string

	trainable bool

	shape     []int
	initValue any
	dtype     dtypes.DType

	// initializer is the operator in ModelHelper.ParamInitNet that fills the parameter.
	// It is nil if the parameter is an external input of ModelHelper.Net.
	initializer *OperatorDef
}

// String implements fmt.Stringer, and returns the full scoped name.
func (p *Param) String() string {
	if p == nil {
		return "<nil>"
	}
	return p.name
}

// Name returns the full scoped name of the parameter, e.g.: "encoder/embeddings".
func (p *Param) Name() string { return p.name }

// BaseName returns the name given to AddParam, without the name scope.
func (p *Param) BaseName() string { return p.baseName }

// NameScope returns the name scope in which the parameter was added: "" for the root scope,
// or a prefix terminated with scope.Separator otherwise.
func (p *Param) NameScope() string { return p.nameScope }

// Trainable returns whether the parameter participates in optimization.
func (p *Param) Trainable() bool { return p.trainable }

// Shape returns the dimensions of the parameter. Don't change the returned slice.
func (p *Param) Shape() []int { return p.shape }

// Size returns the number of elements of the parameter.
func (p *Param) Size() int { return xslices.Product(p.shape) }

// InitValue returns the constant initial value given to AddParam, or nil if none was given.
func (p *Param) InitValue() any { return p.initValue }

// DType of the initial value. It is dtypes.InvalidDType if no initial value was given, or if it is a string.
func (p *Param) DType() dtypes.DType { return p.dtype }

// Initializer returns the operator that fills the parameter in ModelHelper.ParamInitNet, or nil if the
// parameter was created as an external input (ModelHelper.InitParams is false).
func (p *Param) Initializer() *OperatorDef { return p.initializer }

// initValueDType validates the constant initial value of a parameter and returns its dtype.
// Only integer, float and string values are accepted.
func initValueDType(value any) (dtypes.DType, error) {
	switch value.(type) {
	case string:
		return dtypes.InvalidDType, nil
	case float16.Float16:
		return dtypes.Float16, nil
	case int, int8, int16, int32, int64, uint8, uint16, uint32, uint64, float32, float64:
		return dtypes.FromGoType(reflect.TypeOf(value)), nil
	}
	return dtypes.InvalidDType, errors.Errorf(
		"unsupported initial value %v (type %T): only integer, float or string values are accepted", value, value)
}

// formatValue used in reports.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case float16.Float16:
		return fmt.Sprintf("%g", v.Float32())
	case string:
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("%v", value)
}
