// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package modelhelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNet(t *testing.T) {
	n := NewNet("TestNet")
	assert.Equal(t, "TestNet", n.Name())
	assert.Equal(t, "TestNet_1", NewNet("TestNet").Name())
	assert.Equal(t, "TestNet_2", NewNet("TestNet").Name())

	inputs := []string{"x"}
	op := n.AddOp("Relu", inputs, []string{"y"}, nil)
	inputs[0] = "changed"
	assert.Equal(t, []string{"x"}, op.Inputs, "AddOp copies its inputs")
	n.AddExternalInput("x")

	ops := n.Ops()
	require.Len(t, ops, 1)
	assert.Same(t, op, ops[0])
	assert.Equal(t, []string{"x"}, n.ExternalInputs())
	assert.Contains(t, op.String(), "Relu")
}
