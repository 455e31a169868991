// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package seq2seq provides the model helper configured for sequence-to-sequence models.
//
// Seq2seq models use the GPU engine without exhaustive algorithm search, and the NHWC data
// layout order. Everything else is the same as modelhelper.ModelHelper.
package seq2seq

import (
	"github.com/rohithkrn/rocm-caffe2/pkg/ml/modelhelper"
)

// DefaultArgScope returns a new ArgScope with the engine arguments used by seq2seq models.
func DefaultArgScope() modelhelper.ArgScope {
	return modelhelper.ArgScope{
		modelhelper.ArgUseGPUEngine:              true,
		modelhelper.ArgGPUEngineExhaustiveSearch: false,
		modelhelper.ArgOrder:                     modelhelper.OrderNHWC,
	}
}

// New creates a modelhelper.ModelHelper for a seq2seq model. The seq2seq DefaultArgScope is applied
// first, so any of the options can override it.
func New(options ...modelhelper.Option) *modelhelper.ModelHelper {
	options = append([]modelhelper.Option{modelhelper.WithArgScope(DefaultArgScope())}, options...)
	return modelhelper.New(options...)
}

// UseGPUEngine sets whether operators use the vendor GPU engine. Default is true.
func UseGPUEngine(use bool) modelhelper.Option {
	return modelhelper.WithArg(modelhelper.ArgUseGPUEngine, use)
}

// GPUEngineExhaustiveSearch sets whether the GPU engine benchmarks all algorithms of an operator before
// choosing one. Default is false.
func GPUEngineExhaustiveSearch(exhaustive bool) modelhelper.Option {
	return modelhelper.WithArg(modelhelper.ArgGPUEngineExhaustiveSearch, exhaustive)
}

// WorkspaceLimit sets the maximum number of bytes for the GPU engine workspace.
// If bytes <= 0 no limit is set, and the returned option is nil (it is ignored by New).
func WorkspaceLimit(bytes int64) modelhelper.Option {
	if bytes <= 0 {
		return nil
	}
	return modelhelper.WithArg(modelhelper.ArgWorkspaceLimit, bytes)
}
