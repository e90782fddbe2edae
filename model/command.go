package model

import "strings"

// CommandType represents the type of content command
type CommandType int

const (
	CommandTypeUnknown CommandType = iota
	CommandTypeHeading
	CommandTypeParagraph
	CommandTypeTable
	CommandTypeCodeBlock
	CommandTypeListItem
	CommandTypeSpacer
)

func (ct CommandType) String() string {
	switch ct {
	case CommandTypeHeading:
		return "Heading"
	case CommandTypeParagraph:
		return "Paragraph"
	case CommandTypeTable:
		return "Table"
	case CommandTypeCodeBlock:
		return "CodeBlock"
	case CommandTypeListItem:
		return "ListItem"
	case CommandTypeSpacer:
		return "Spacer"
	default:
		return "Unknown"
	}
}

// Command is the interface for all content commands
type Command interface {
	Type() CommandType
}

// TextCommand is an interface for commands carrying text
type TextCommand interface {
	Command
	GetText() string
}

// Heading represents a section heading
type Heading struct {
	Text  string
	Level int // 1-4
}

func (h *Heading) Type() CommandType { return CommandTypeHeading }
func (h *Heading) GetText() string   { return h.Text }

// Paragraph represents a paragraph of body text
type Paragraph struct {
	Text   string
	Bold   bool
	Italic bool
}

func (p *Paragraph) Type() CommandType { return CommandTypeParagraph }
func (p *Paragraph) GetText() string   { return p.Text }

// CodeBlock represents a fenced block of verbatim text. Text holds the
// interior lines joined by newlines, fence delimiters excluded, internal
// blank lines preserved.
type CodeBlock struct {
	Text string
}

func (cb *CodeBlock) Type() CommandType { return CommandTypeCodeBlock }
func (cb *CodeBlock) GetText() string   { return cb.Text }

// Lines splits the block text back into its source lines.
func (cb *CodeBlock) Lines() []string {
	return strings.Split(cb.Text, "\n")
}

// ListItem represents a single list item
type ListItem struct {
	Text   string
	Bullet string // bullet marker as written in the source, e.g. "-"
	Level  int    // indentation level (0-based)
}

func (li *ListItem) Type() CommandType { return CommandTypeListItem }
func (li *ListItem) GetText() string   { return li.Text }

// Spacer represents a blank separator, such as a horizontal rule
type Spacer struct{}

func (s *Spacer) Type() CommandType { return CommandTypeSpacer }
