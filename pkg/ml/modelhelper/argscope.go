// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package modelhelper

import (
	"maps"
	"reflect"

	"k8s.io/klog/v2"
)

// ArgScope maps engine configuration options to their values. These are the default arguments
// used by the operators created for the model. Known keys are the Arg* constants.
type ArgScope map[string]any

const (
	// ArgUseGPUEngine (bool) selects the vendor GPU engine for the operators that support it.
	ArgUseGPUEngine = "use_gpu_engine"

	// ArgGPUEngineExhaustiveSearch (bool) makes the GPU engine benchmark every algorithm
	// available for an operator before choosing one.
	ArgGPUEngineExhaustiveSearch = "gpu_engine_exhaustive_search"

	// ArgOrder (string) is the data layout order of images: "NCHW" or "NHWC".
	ArgOrder = "order"

	// ArgWorkspaceLimit (int64) limits the number of bytes of the GPU engine workspace.
	ArgWorkspaceLimit = "ws_nbytes_limit"
)

// Data layout orders for ArgOrder.
const (
	OrderNCHW = "NCHW"
	OrderNHWC = "NHWC"
)

// DefaultArgScope returns a new ArgScope with the defaults used by New.
func DefaultArgScope() ArgScope {
	return ArgScope{
		ArgUseGPUEngine:              true,
		ArgGPUEngineExhaustiveSearch: false,
		ArgOrder:                     OrderNCHW,
	}
}

// Clone returns a shallow copy of the ArgScope.
func (as ArgScope) Clone() ArgScope {
	return maps.Clone(as)
}

// ArgScope returns a copy of the model's engine arguments, as configured at creation.
// Overrides set with SetArg are not included.
func (m *ModelHelper) ArgScope() ArgScope {
	return m.argScope.Clone()
}

// SetArg overrides an engine argument within the current name scope: it is visible by Arg
// in this scope and its descendants.
func (m *ModelHelper) SetArg(key string, value any) {
	m.argOverrides.Set(m.nameScope.Current(), key, value)
}

// ClearArg removes the override of key set with SetArg in the current name scope. Overrides
// in parent scopes and the model's ArgScope are not affected.
func (m *ModelHelper) ClearArg(key string) {
	m.argOverrides.Delete(m.nameScope.Current(), key)
}

// Arg returns the engine argument for key, searching the overrides from the current name scope back
// to the root scope, and finally the model's ArgScope.
func (m *ModelHelper) Arg(key string) (value any, found bool) {
	value, found = m.argOverrides.Get(m.nameScope.Current(), key)
	if found {
		return
	}
	value, found = m.argScope[key]
	return
}

// EnumerateArgOverrides calls fn for every override set with SetArg, sorted by scope and key.
func (m *ModelHelper) EnumerateArgOverrides(fn func(scope, key string, value any)) {
	m.argOverrides.Enumerate(fn)
}

// GetArg returns the engine argument from the ModelHelper cast to the given type. If
// the argument is not set, or if it cannot be cast to the given type,
// returns defaultValue instead.
//
// It's a typed wrapper to ModelHelper.Arg()
func GetArg[T any](m *ModelHelper, key string, defaultValue T) T {
	valueI, found := m.Arg(key)
	if !found || valueI == nil {
		return defaultValue
	}
	value, ok := valueI.(T)
	if ok {
		return value
	}

	// Try converting, for instance, an int could be converted to int64.
	v := reflect.ValueOf(valueI)
	var t T
	typeOfT := reflect.TypeOf(t)
	if typeOfT == nil || !v.CanConvert(typeOfT) {
		klog.Warningf("Tried to read engine argument %q as %T, but failed because it was type %s.",
			key, t, v.Type())
		return defaultValue
	}
	return v.Convert(typeOfT).Interface().(T)
}
