// Package markdown provides single-pass line scanning of Markdown text into
// ordered content commands.
//
// The scanner classifies each source line (or contiguous group of lines for
// tables and fenced code blocks) by its leading syntax and emits one
// [model.Command] per recognized unit. Classification is deliberately
// line-oriented and lossy: inline emphasis markers are stripped as literal
// characters, not parsed. Recoverable oddities in the source surface as
// [Warning] values rather than errors; the scanner itself never fails.
package markdown

import (
	"fmt"
	"strings"

	"github.com/tsawler/quill/model"
)

// Warning describes a non-fatal oddity encountered while scanning.
type Warning struct {
	Line    int    // 1-indexed source line where the oddity begins
	Code    string // stable identifier, e.g. "table-dropped"
	Message string
}

// inlineMarkers removes literal emphasis characters from paragraph text.
// This is a crude character strip, not an inline parser: pairing is not
// checked, and text legitimately containing these characters loses them.
var inlineMarkers = strings.NewReplacer("**", "", "`", "", "_", "")

// Scanner converts a line stream into an ordered command sequence.
// The line stream is immutable once loaded; the scanner consumes it by
// position index in a single pass.
type Scanner struct {
	lines    []string
	pos      int
	warnings []Warning
}

// NewScanner creates a scanner over the given lines.
func NewScanner(lines []string) *Scanner {
	return &Scanner{lines: lines}
}

// Scan classifies every line and returns the resulting commands in source
// order, along with any warnings. Rules are evaluated in a fixed precedence
// order per line; later rules apply only when every earlier rule fails:
//
//	blank, heading 4-1, code fence, table, whole-line bold,
//	list item, horizontal rule, plain paragraph.
//
// Replaying the returned commands in order against a writer reconstructs
// the visual structure of the source document.
func (s *Scanner) Scan() ([]model.Command, []Warning) {
	commands := make([]model.Command, 0, len(s.lines))

	for s.pos < len(s.lines) {
		line := s.lines[s.pos]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			s.pos++

		case strings.HasPrefix(line, "#### "):
			commands = append(commands, &model.Heading{Text: strings.TrimSpace(line[5:]), Level: 4})
			s.pos++

		case strings.HasPrefix(line, "### "):
			commands = append(commands, &model.Heading{Text: strings.TrimSpace(line[4:]), Level: 3})
			s.pos++

		case strings.HasPrefix(line, "## "):
			commands = append(commands, &model.Heading{Text: strings.TrimSpace(line[3:]), Level: 2})
			s.pos++

		case strings.HasPrefix(line, "# "):
			commands = append(commands, &model.Heading{Text: strings.TrimSpace(line[2:]), Level: 1})
			s.pos++

		case strings.HasPrefix(line, "```"):
			commands = append(commands, s.scanCodeBlock())

		case strings.Contains(line, "|"):
			if table, ok := s.scanTable(); ok {
				commands = append(commands, table)
			}

		case isBoldLine(trimmed):
			commands = append(commands, &model.Paragraph{
				Text: trimmed[2 : len(trimmed)-2],
				Bold: true,
			})
			s.pos++

		case strings.HasPrefix(trimmed, "- "):
			commands = append(commands, &model.ListItem{
				Text:   trimmed[2:],
				Bullet: "-",
			})
			s.pos++

		case isHorizontalRule(trimmed):
			commands = append(commands, &model.Spacer{})
			s.pos++

		default:
			commands = append(commands, &model.Paragraph{
				Text: inlineMarkers.Replace(trimmed),
			})
			s.pos++
		}
	}

	return commands, s.warnings
}

// scanCodeBlock consumes an opening fence line, the verbatim interior, and
// the closing fence. An unterminated fence consumes to end of stream.
func (s *Scanner) scanCodeBlock() *model.CodeBlock {
	opening := s.pos
	s.pos++

	var interior []string
	closed := false
	for s.pos < len(s.lines) {
		if strings.HasPrefix(s.lines[s.pos], "```") {
			closed = true
			s.pos++
			break
		}
		interior = append(interior, s.lines[s.pos])
		s.pos++
	}

	if !closed {
		s.warn(opening, "fence-unterminated",
			fmt.Sprintf("code fence opened at line %d is never closed; consumed to end of input", opening+1))
	}

	return &model.CodeBlock{Text: strings.Join(interior, "\n")}
}

// scanTable consumes a header row, an optional separator row, and contiguous
// data rows. The block ends at the first line lacking a pipe, an empty line,
// or a heading line; that line is not consumed. A fragment without headers
// or without at least one surviving data row emits nothing.
func (s *Scanner) scanTable() (*model.Table, bool) {
	start := s.pos
	headers := splitRow(s.lines[s.pos])
	s.pos++

	if s.pos < len(s.lines) && strings.Contains(s.lines[s.pos], "---") {
		s.pos++
	}

	var rows [][]string
	for s.pos < len(s.lines) {
		line := s.lines[s.pos]
		trimmed := strings.TrimSpace(line)
		if !strings.Contains(line, "|") || trimmed == "" || strings.HasPrefix(trimmed, "#") {
			break
		}

		row := splitRow(line)
		if allEmpty(row) {
			s.warn(s.pos, "row-dropped-empty",
				fmt.Sprintf("table row at line %d has no cell content; dropped", s.pos+1))
			s.pos++
			continue
		}
		rows = append(rows, row)
		s.pos++
	}

	if len(headers) == 0 || len(rows) == 0 {
		s.warn(start, "table-dropped",
			fmt.Sprintf("table at line %d has no usable header and data rows; skipped", start+1))
		return nil, false
	}

	return model.NewTable(headers, rows), true
}

// warn records a warning anchored at the given 0-indexed line position.
func (s *Scanner) warn(pos int, code, message string) {
	s.warnings = append(s.warnings, Warning{
		Line:    pos + 1,
		Code:    code,
		Message: message,
	})
}

// splitRow splits a table line on pipes, dropping the first and last
// segments when empty (artifacts of a leading/trailing pipe) and trimming
// each remaining cell.
func splitRow(line string) []string {
	segments := strings.Split(strings.TrimSpace(line), "|")
	if len(segments) > 0 && segments[0] == "" {
		segments = segments[1:]
	}
	if len(segments) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	cells := make([]string, len(segments))
	for i, seg := range segments {
		cells[i] = strings.TrimSpace(seg)
	}
	return cells
}

// allEmpty reports whether every cell is empty after trimming.
func allEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

// isBoldLine reports whether the trimmed line is wholly wrapped in
// double-asterisk markers.
func isBoldLine(trimmed string) bool {
	return len(trimmed) >= 4 &&
		strings.HasPrefix(trimmed, "**") &&
		strings.HasSuffix(trimmed, "**")
}

// isHorizontalRule reports whether the trimmed line is three or more
// hyphens and nothing else.
func isHorizontalRule(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	for _, r := range trimmed {
		if r != '-' {
			return false
		}
	}
	return true
}
