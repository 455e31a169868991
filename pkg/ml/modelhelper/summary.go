// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package modelhelper

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/rohithkrn/rocm-caffe2/pkg/support/xslices"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)

	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

// NewTable returns a lipgloss table styled like the ModelHelper summary.
func NewTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			switch {
			case row == lgtable.HeaderRow:
				return headerRowStyle
			case row%2 == 0:
				s = evenRowStyle
			default:
				s = oddRowStyle
			}
			if col == 0 {
				s = s.Align(lipgloss.Right)
			} else {
				s = s.Align(lipgloss.Left)
			}
			return
		})
}

// Summary returns a human-readable report of the model: its configuration and a table
// with all its parameters, in the order they were added.
func (m *ModelHelper) Summary() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Model %q", m.name)))
	sb.WriteString("\n")

	var numTrainable, numElements int
	for _, p := range m.params {
		if p.trainable {
			numTrainable++
		}
		numElements += p.Size()
	}
	info := NewTable().Headers("Key", "Value")
	info.Row("init_params", fmt.Sprintf("%v", m.initParams))
	argScope := m.ArgScope()
	for _, key := range xslices.SortedKeys(argScope) {
		info.Row(key, formatValue(argScope[key]))
	}
	m.EnumerateArgOverrides(func(scope, key string, value any) {
		info.Row(scope+key, formatValue(value))
	})
	info.Row("# params", humanize.Comma(int64(len(m.params))))
	info.Row("# trainable", humanize.Comma(int64(numTrainable)))
	info.Row("# elements", humanize.Comma(int64(numElements)))
	sb.WriteString(info.Render())
	sb.WriteString("\n")

	if len(m.params) == 0 {
		return sb.String()
	}
	params := NewTable().Headers("Scope", "Name", "Trainable", "Shape", "DType", "Init")
	for _, p := range m.params {
		dtype := ""
		if p.dtype != dtypes.InvalidDType {
			dtype = p.dtype.String()
		}
		params.Row(p.nameScope, p.baseName, fmt.Sprintf("%v", p.trainable),
			fmt.Sprintf("%v", p.shape), dtype, describeInit(p))
	}
	sb.WriteString(params.Render())
	sb.WriteString("\n")
	return sb.String()
}

// describeInit returns how the parameter is initialized, for reports.
func describeInit(p *Param) string {
	switch {
	case p.initializer == nil:
		return "external input"
	case p.initializer.Type == OpConstantFill:
		return fmt.Sprintf("%s(%s)", OpConstantFill, formatValue(p.initValue))
	default:
		return p.initializer.Type
	}
}
