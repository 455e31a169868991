// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package modelhelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/x448/float16"
)

func TestSummary(t *testing.T) {
	m, ns := newTestHelper(WithName("TestSummary"))
	empty := m.Summary()
	assert.Contains(t, empty, "TestSummary")
	assert.NotContains(t, empty, "Trainable")

	m.AddParam("global_step", int64(0), Trainable(false))
	ns.With("encoder", false, func() {
		m.AddParam("embeddings", nil, WithShape(1000, 32), WithInitializer("XavierFill", nil))
		m.AddParam("scale", float16.Fromfloat32(0.5))
		m.SetArg(ArgOrder, OrderNHWC)
	})
	summary := m.Summary()
	for _, want := range []string{
		"global_step", "encoder/", "embeddings", "XavierFill", "ConstantFill(0.5)",
		"use_gpu_engine", "encoder/order", "32,002",
	} {
		assert.Contains(t, summary, want)
	}
	t.Log("\n" + summary)
}
