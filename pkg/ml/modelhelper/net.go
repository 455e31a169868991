// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package modelhelper

import (
	"fmt"
	"sync"

	"github.com/rohithkrn/rocm-caffe2/pkg/support/sets"
	"github.com/rohithkrn/rocm-caffe2/pkg/support/xslices"
)

// OpConstantFill is the operator type used to initialize parameters with a constant value.
const OpConstantFill = "ConstantFill"

// OperatorDef describes one operator recorded in a Net.
type OperatorDef struct {
	Type            string
	Inputs, Outputs []string
	Args            map[string]any
}

// String implements fmt.Stringer.
func (op *OperatorDef) String() string {
	return fmt.Sprintf("%s(%v) -> %v %v", op.Type, op.Inputs, op.Outputs, op.Args)
}

// Net is an ordered list of operators and the external inputs they expect to be fed.
//
// The ModelHelper owns two of them: Net, with the model itself, and ParamInitNet, with the
// operators that initialize the parameters.
type Net struct {
	name           string
	ops            []*OperatorDef
	externalInputs []string
}

var (
	muNetNames   sync.Mutex
	usedNetNames = sets.Make[string]()
)

// nextNetName returns baseName if it hasn't been used by any other Net in the process,
// otherwise it appends the first free numeric suffix: "model_1", "model_2", ...
func nextNetName(baseName string) string {
	muNetNames.Lock()
	defer muNetNames.Unlock()
	name := baseName
	for ii := 1; !usedNetNames.InsertNew(name); ii++ {
		name = fmt.Sprintf("%s_%d", baseName, ii)
	}
	return name
}

// NewNet creates an empty Net. The name is made unique within the process.
func NewNet(name string) *Net {
	return &Net{name: nextNetName(name)}
}

// Name of the Net, unique within the process.
func (n *Net) Name() string { return n.name }

// AddOp appends an operator to the Net and returns it.
func (n *Net) AddOp(opType string, inputs, outputs []string, args map[string]any) *OperatorDef {
	op := &OperatorDef{
		Type:    opType,
		Inputs:  xslices.Copy(inputs),
		Outputs: xslices.Copy(outputs),
		Args:    args,
	}
	n.ops = append(n.ops, op)
	return op
}

// AddExternalInput declares name as an input the Net expects to be fed.
func (n *Net) AddExternalInput(name string) {
	n.externalInputs = append(n.externalInputs, name)
}

// Ops returns a copy of the list of operators, in the order they were added.
func (n *Net) Ops() []*OperatorDef { return xslices.Copy(n.ops) }

// ExternalInputs returns a copy of the list of external inputs, in the order they were added.
func (n *Net) ExternalInputs() []string { return xslices.Copy(n.externalInputs) }
