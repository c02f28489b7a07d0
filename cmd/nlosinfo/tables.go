// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/transientlab/nlos/pkg/support/sets"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
	headerStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 2).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	failedStyle = cellStyle.Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}).Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
)

// statusTable is a lipgloss table whose failed rows are highlighted.
type statusTable struct {
	table      *lgtable.Table
	alignments []lipgloss.Position
	numRows    int
	failed     sets.Set[int]
}

// newStatusTable creates a table with the given headers. alignments are given per column, and the last
// one applies to any remaining column.
func newStatusTable(headers []string, alignments ...lipgloss.Position) *statusTable {
	t := &statusTable{alignments: alignments, failed: sets.Make[int]()}
	t.table = lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(t.style)
	return t
}

// Row appends a row, highlighted if failed.
func (t *statusTable) Row(failed bool, cells ...string) {
	if failed {
		t.failed.Insert(t.numRows)
	}
	t.table.Row(cells...)
	t.numRows++
}

// Render the table.
func (t *statusTable) Render() string {
	return t.table.Render()
}

// style of the cell at row, col. Header cells have row == lgtable.HeaderRow.
func (t *statusTable) style(row, col int) lipgloss.Style {
	if row == lgtable.HeaderRow {
		return headerStyle
	}
	s := cellStyle.Faint(row%2 == 1)
	if t.failed.Has(row) {
		s = failedStyle
	}
	return s.Align(t.alignment(col))
}

func (t *statusTable) alignment(col int) lipgloss.Position {
	switch {
	case len(t.alignments) == 0:
		return lipgloss.Left
	case col < len(t.alignments):
		return t.alignments[col]
	default:
		return t.alignments[len(t.alignments)-1]
	}
}
