// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package seq2seq

import (
	"testing"

	"github.com/rohithkrn/rocm-caffe2/pkg/ml/modelhelper"
	"github.com/rohithkrn/rocm-caffe2/pkg/ml/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructor(t *testing.T) {
	modelName := "TestModel"
	m := New(modelhelper.WithName(modelName))

	assert.Equal(t, modelName, m.Name())
	assert.True(t, m.InitParams())
	assert.Equal(t, modelhelper.ArgScope{
		"use_gpu_engine":               true,
		"gpu_engine_exhaustive_search": false,
		"order":                        "NHWC",
	}, m.ArgScope())
}

func TestConstructorOptions(t *testing.T) {
	m := New(UseGPUEngine(false), GPUEngineExhaustiveSearch(true), WorkspaceLimit(64<<20),
		modelhelper.WithInitParams(false))
	assert.False(t, m.InitParams())
	assert.Equal(t, modelhelper.ArgScope{
		"use_gpu_engine":               false,
		"gpu_engine_exhaustive_search": true,
		"order":                        "NHWC",
		"ws_nbytes_limit":              int64(64 << 20),
	}, m.ArgScope())

	m = New(WorkspaceLimit(0))
	_, found := m.ArgScope()[modelhelper.ArgWorkspaceLimit]
	assert.False(t, found, "no workspace limit is set for 0 bytes")
}

func TestAddParam(t *testing.T) {
	m := New(modelhelper.WithNameScope(scope.New()))

	paramName := "test_param"
	param := m.AddParam(paramName, 1)
	assert.Equal(t, paramName, param.String())
}

func TestGetNonTrainableParams(t *testing.T) {
	ns := scope.New()
	m := New(modelhelper.WithNameScope(ns))

	m.AddParam("test_param1", 1, modelhelper.Trainable(true))
	p2 := m.AddParam("test_param2", 2, modelhelper.Trainable(false))

	assert.Equal(t, []*modelhelper.Param{p2}, m.NonTrainableParams())

	var p3 *modelhelper.Param
	ns.With("A", true, func() {
		p3 = m.AddParam("test_param3", 3, modelhelper.Trainable(false))
		assert.Equal(t, []*modelhelper.Param{p3}, m.NonTrainableParams())
	})
	require.NotNil(t, p3)

	assert.Equal(t, []*modelhelper.Param{p2, p3}, m.NonTrainableParams())
}

func TestGetAllParams(t *testing.T) {
	m := New(modelhelper.WithNameScope(scope.New()))

	p1 := m.AddParam("test_param1", 1, modelhelper.Trainable(true))
	p2 := m.AddParam("test_param2", 2, modelhelper.Trainable(false))

	assert.Equal(t, []*modelhelper.Param{p1, p2}, m.AllParams())
}

func TestDefaultNameScope(t *testing.T) {
	// Without WithNameScope the process wide default scope is used.
	m := New()
	var p *modelhelper.Param
	scope.Default().With("TestDefaultNameScope", true, func() {
		p = m.AddParam("w", 0.0)
	})
	assert.Equal(t, "TestDefaultNameScope/w", p.String())
	assert.Equal(t, "", scope.Default().Current())
}
