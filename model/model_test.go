package model

import (
	"strings"
	"testing"
)

// ============================================================================
// CommandType Tests
// ============================================================================

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		name string
		ct   CommandType
		want string
	}{
		{"heading", CommandTypeHeading, "Heading"},
		{"paragraph", CommandTypeParagraph, "Paragraph"},
		{"table", CommandTypeTable, "Table"},
		{"code block", CommandTypeCodeBlock, "CodeBlock"},
		{"list item", CommandTypeListItem, "ListItem"},
		{"spacer", CommandTypeSpacer, "Spacer"},
		{"unknown", CommandTypeUnknown, "Unknown"},
		{"out of range", CommandType(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Command Variant Tests
// ============================================================================

func TestCommandTypes(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want CommandType
	}{
		{"heading", &Heading{Text: "Intro", Level: 1}, CommandTypeHeading},
		{"paragraph", &Paragraph{Text: "body"}, CommandTypeParagraph},
		{"table", &Table{Headers: []string{"A"}}, CommandTypeTable},
		{"code block", &CodeBlock{Text: "x := 1"}, CommandTypeCodeBlock},
		{"list item", &ListItem{Text: "first"}, CommandTypeListItem},
		{"spacer", &Spacer{}, CommandTypeSpacer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.Type(); got != tt.want {
				t.Errorf("Type() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  TextCommand
		want string
	}{
		{"heading", &Heading{Text: "Section Two", Level: 2}, "Section Two"},
		{"paragraph", &Paragraph{Text: "Important", Bold: true}, "Important"},
		{"code block", &CodeBlock{Text: "a\n\nb"}, "a\n\nb"},
		{"list item", &ListItem{Text: "item one", Bullet: "-"}, "item one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.GetText(); got != tt.want {
				t.Errorf("GetText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeBlockLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single line", "x := 1", []string{"x := 1"}},
		{"multi line", "a\nb\nc", []string{"a", "b", "c"}},
		{"internal blank preserved", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := &CodeBlock{Text: tt.text}
			got := cb.Lines()
			if len(got) != len(tt.want) {
				t.Fatalf("Lines() returned %d lines, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// ============================================================================
// Table Tests
// ============================================================================

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"A", "B"}, [][]string{{"1", "2"}})

	if table.ColCount() != 2 {
		t.Errorf("ColCount() = %d, want 2", table.ColCount())
	}
	if table.RowCount() != 1 {
		t.Errorf("RowCount() = %d, want 1", table.RowCount())
	}
}

func TestTableCell(t *testing.T) {
	table := NewTable([]string{"A", "B"}, [][]string{{"1", "2"}, {"3"}})

	tests := []struct {
		name     string
		row, col int
		want     string
	}{
		{"first cell", 0, 0, "1"},
		{"second cell", 0, 1, "2"},
		{"ragged row in-bounds", 1, 0, "3"},
		{"ragged row out-of-bounds col", 1, 1, ""},
		{"negative row", -1, 0, ""},
		{"row too large", 5, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Cell(tt.row, tt.col); got != tt.want {
				t.Errorf("Cell(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestTableIsRagged(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want bool
	}{
		{"square", [][]string{{"1", "2"}, {"3", "4"}}, false},
		{"short row", [][]string{{"1"}}, true},
		{"long row", [][]string{{"1", "2", "3"}}, true},
		{"no rows", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable([]string{"A", "B"}, tt.rows)
			if got := table.IsRagged(); got != tt.want {
				t.Errorf("IsRagged() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTableNormalize(t *testing.T) {
	table := NewTable([]string{"A", "B"}, [][]string{
		{"1", "2"},
		{"3"},
		{"4", "5", "6"},
	})

	padded, truncated := table.Normalize()

	if padded != 1 {
		t.Errorf("padded = %d, want 1", padded)
	}
	if truncated != 1 {
		t.Errorf("truncated = %d, want 1", truncated)
	}
	if table.IsRagged() {
		t.Error("table should be square after Normalize")
	}
	if got := table.Cell(1, 1); got != "" {
		t.Errorf("padded cell = %q, want empty", got)
	}
	if got := table.Cell(2, 1); got != "5" {
		t.Errorf("surviving cell = %q, want %q", got, "5")
	}
}

func TestTableNormalizeSquareNoop(t *testing.T) {
	table := NewTable([]string{"A", "B"}, [][]string{{"1", "2"}})

	padded, truncated := table.Normalize()
	if padded != 0 || truncated != 0 {
		t.Errorf("Normalize() = (%d, %d), want (0, 0)", padded, truncated)
	}
	if got := table.Cell(0, 1); got != "2" {
		t.Errorf("cell = %q, want %q", got, "2")
	}
}

func TestTableToMarkdown(t *testing.T) {
	table := NewTable([]string{"A", "B"}, [][]string{{"1", "2"}})

	md := table.ToMarkdown()

	lines := strings.Split(strings.TrimRight(md, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), md)
	}
	if lines[0] != "| A | B |" {
		t.Errorf("header line = %q, want %q", lines[0], "| A | B |")
	}
	if lines[1] != "|---|---|" {
		t.Errorf("separator line = %q, want %q", lines[1], "|---|---|")
	}
	if lines[2] != "| 1 | 2 |" {
		t.Errorf("data line = %q, want %q", lines[2], "| 1 | 2 |")
	}
}

func TestTableToMarkdownEmpty(t *testing.T) {
	table := &Table{}
	if got := table.ToMarkdown(); got != "" {
		t.Errorf("ToMarkdown() on empty table = %q, want empty", got)
	}
}

func TestTableGetText(t *testing.T) {
	table := NewTable([]string{"A", "B"}, [][]string{{"1", "2"}})

	got := table.GetText()
	want := "A\tB\n1\t2\n"
	if got != want {
		t.Errorf("GetText() = %q, want %q", got, want)
	}
}

// ============================================================================
// Document Tests
// ============================================================================

func TestNewDocument(t *testing.T) {
	doc := NewDocument()

	if doc == nil {
		t.Fatal("expected non-nil document")
	}
	if doc.CommandCount() != 0 {
		t.Errorf("CommandCount() = %d, want 0", doc.CommandCount())
	}
}

func TestDocumentAddCommand(t *testing.T) {
	doc := NewDocument()
	doc.AddCommand(&Heading{Text: "One", Level: 1})
	doc.AddCommand(&Paragraph{Text: "body"})

	if doc.CommandCount() != 2 {
		t.Errorf("CommandCount() = %d, want 2", doc.CommandCount())
	}

	// Order must be preserved
	if doc.Commands[0].Type() != CommandTypeHeading {
		t.Errorf("first command = %v, want Heading", doc.Commands[0].Type())
	}
	if doc.Commands[1].Type() != CommandTypeParagraph {
		t.Errorf("second command = %v, want Paragraph", doc.Commands[1].Type())
	}
}

func TestDocumentCollectors(t *testing.T) {
	doc := NewDocument()
	doc.AddCommand(&Heading{Text: "One", Level: 1})
	doc.AddCommand(&Paragraph{Text: "body"})
	doc.AddCommand(&Table{Headers: []string{"A"}, Rows: [][]string{{"1"}}})
	doc.AddCommand(&Heading{Text: "Two", Level: 2})
	doc.AddCommand(&ListItem{Text: "item", Bullet: "-"})

	headings := doc.Headings()
	if len(headings) != 2 {
		t.Fatalf("Headings() returned %d, want 2", len(headings))
	}
	if headings[0].Text != "One" || headings[1].Text != "Two" {
		t.Errorf("headings out of order: %q, %q", headings[0].Text, headings[1].Text)
	}

	if got := len(doc.Tables()); got != 1 {
		t.Errorf("Tables() returned %d, want 1", got)
	}
	if got := len(doc.ListItems()); got != 1 {
		t.Errorf("ListItems() returned %d, want 1", got)
	}
}

func TestDocumentExtractText(t *testing.T) {
	doc := NewDocument()
	doc.AddCommand(&Heading{Text: "Title", Level: 1})
	doc.AddCommand(&Paragraph{Text: "body"})
	doc.AddCommand(&Spacer{})

	text := doc.ExtractText()

	if !strings.Contains(text, "Title") {
		t.Error("expected text to contain heading text")
	}
	if !strings.Contains(text, "body") {
		t.Error("expected text to contain paragraph text")
	}
}
