// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package modelhelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgOverrides(t *testing.T) {
	m, ns := newTestHelper(WithArg(ArgWorkspaceLimit, 1024))

	value, found := m.Arg(ArgOrder)
	require.True(t, found)
	assert.Equal(t, OrderNCHW, value)
	_, found = m.Arg("unknown")
	assert.False(t, found)

	ns.With("decoder", false, func() {
		m.SetArg(ArgOrder, OrderNHWC)
		assert.Equal(t, OrderNHWC, GetArg(m, ArgOrder, ""))
		ns.With("attention", false, func() {
			assert.Equal(t, OrderNHWC, GetArg(m, ArgOrder, ""), "overrides are inherited by sub-scopes")
			m.SetArg(ArgUseGPUEngine, false)
			assert.False(t, GetArg(m, ArgUseGPUEngine, true))
		})
		assert.True(t, GetArg(m, ArgUseGPUEngine, false))
	})
	assert.Equal(t, OrderNCHW, GetArg(m, ArgOrder, ""), "overrides don't leak to parent scopes")
	assert.Equal(t, OrderNCHW, m.ArgScope()[ArgOrder], "ArgScope is not changed by overrides")

	var overrides []string
	m.EnumerateArgOverrides(func(scope, key string, value any) {
		overrides = append(overrides, scope+key)
	})
	assert.Equal(t, []string{"decoder/order", "decoder/attention/use_gpu_engine"}, overrides)

	ns.With("decoder", false, func() {
		m.ClearArg(ArgOrder)
		assert.Equal(t, OrderNCHW, GetArg(m, ArgOrder, ""), "cleared override falls back to ArgScope")
		m.ClearArg(ArgUseGPUEngine) // Only set in "decoder/attention/": no-op here.
	})
	ns.With("decoder/attention", false, func() {
		assert.False(t, GetArg(m, ArgUseGPUEngine, true))
	})
}

func TestGetArgConversion(t *testing.T) {
	m, _ := newTestHelper(WithArg(ArgWorkspaceLimit, 1024))
	assert.Equal(t, int64(1024), GetArg(m, ArgWorkspaceLimit, int64(0)), "int converted to int64")
	assert.Equal(t, int64(-1), GetArg(m, "missing", int64(-1)))
	assert.False(t, GetArg(m, ArgOrder, false), "string cannot be converted to bool, default is returned")
}
