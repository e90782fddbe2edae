package model

import "strings"

// Table represents a table as an ordered header row plus data rows.
// Row width may legitimately differ from header width; Normalize squares
// the grid for writers that require it.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (t *Table) Type() CommandType { return CommandTypeTable }
func (t *Table) GetText() string {
	var sb strings.Builder
	for j, h := range t.Headers {
		sb.WriteString(h)
		if j < len(t.Headers)-1 {
			sb.WriteString("\t")
		}
	}
	sb.WriteString("\n")
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewTable creates a table from a header row and data rows.
func NewTable(headers []string, rows [][]string) *Table {
	return &Table{
		Headers: headers,
		Rows:    rows,
	}
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of header cells
func (t *Table) ColCount() int {
	return len(t.Headers)
}

// Cell returns the cell text at the given row and column (0-indexed),
// or "" when the position is out of bounds.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// IsRagged reports whether any data row's width differs from the header width.
func (t *Table) IsRagged() bool {
	for _, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return true
		}
	}
	return false
}

// Normalize squares the grid against the header width: short rows are
// padded with empty cells, overlong rows are truncated. It returns the
// number of rows padded and truncated.
func (t *Table) Normalize() (padded, truncated int) {
	width := len(t.Headers)
	for i, row := range t.Rows {
		switch {
		case len(row) < width:
			grown := make([]string, width)
			copy(grown, row)
			t.Rows[i] = grown
			padded++
		case len(row) > width:
			t.Rows[i] = row[:width]
			truncated++
		}
	}
	return padded, truncated
}

// ToMarkdown converts the table back to pipe-delimited markdown format
func (t *Table) ToMarkdown() string {
	if len(t.Headers) == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row
	for _, h := range t.Headers {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(h, "\n", " "))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")

	// Separator
	for range t.Headers {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	// Data rows
	for _, row := range t.Rows {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}
