// Package grid models the duck-typed cell values coming out of a spreadsheet
// decoder as a tagged variant, normalized to plain text exactly once so the
// extraction heuristics never re-check types at each use site.
package grid

import (
	"strconv"
	"strings"
)

// Kind tags the variant held by a Cell.
type Kind int

const (
	Empty Kind = iota
	Number
	Text
	NestedList
)

// Cell is one spreadsheet cell value.
type Cell struct {
	kind Kind
	num  float64
	text string
	list []string
}

// EmptyCell returns the zero-value cell.
func EmptyCell() Cell { return Cell{kind: Empty} }

// NumberCell wraps a numeric cell value.
func NumberCell(v float64) Cell { return Cell{kind: Number, num: v} }

// TextCell wraps a textual cell value. Blank text collapses to Empty.
func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{kind: Empty}
	}
	return Cell{kind: Text, text: s}
}

// ListCell wraps a nested list of values (some decoders emit arrays for
// multi-value cells).
func ListCell(items []string) Cell {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return Cell{kind: Empty}
	}
	return Cell{kind: NestedList, list: kept}
}

// Kind reports the variant held by the cell.
func (c Cell) Kind() Kind { return c.kind }

// IsEmpty reports whether the cell normalizes to no text.
func (c Cell) IsEmpty() bool { return c.kind == Empty }

// String normalizes the cell to trimmed plain text.
func (c Cell) String() string {
	switch c.kind {
	case Number:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case Text:
		return strings.TrimSpace(c.text)
	case NestedList:
		return strings.Join(c.list, ", ")
	default:
		return ""
	}
}

// Items splits the cell into a sequence of non-empty trimmed strings:
// nested lists yield their elements, anything else is split on commas.
func (c Cell) Items() []string {
	if c.kind == NestedList {
		out := make([]string, len(c.list))
		copy(out, c.list)
		return out
	}
	var out []string
	for _, part := range strings.Split(c.String(), ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Row is an ordered sequence of cells.
type Row []Cell

// IsEmpty reports whether every cell in the row is empty.
func (r Row) IsEmpty() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Cell returns the cell at index i, or an empty cell when out of range.
// Ragged rows are common in real worksheets.
func (r Row) Cell(i int) Cell {
	if i < 0 || i >= len(r) {
		return EmptyCell()
	}
	return r[i]
}

// Texts normalizes every cell in the row.
func (r Row) Texts() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.String()
	}
	return out
}

// Grid is a rectangular-ish sequence of rows as decoded from the first
// worksheet of a spreadsheet.
type Grid []Row

// FromStrings builds a grid from raw string rows (the excelize row shape).
func FromStrings(rows [][]string) Grid {
	g := make(Grid, len(rows))
	for i, row := range rows {
		r := make(Row, len(row))
		for j, v := range row {
			r[j] = TextCell(v)
		}
		g[i] = r
	}
	return g
}
