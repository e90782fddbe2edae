package model

import "time"

// Document represents the complete output of one conversion: an ordered
// command sequence plus document-level metadata.
type Document struct {
	Metadata Metadata
	Commands []Command
}

// Metadata contains document-level information
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	Creator  string
	Created  time.Time
	Modified time.Time
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Commands: make([]Command, 0),
	}
}

// AddCommand appends a command to the document
func (d *Document) AddCommand(cmd Command) {
	d.Commands = append(d.Commands, cmd)
}

// CommandCount returns the total number of commands
func (d *Document) CommandCount() int {
	return len(d.Commands)
}

// ExtractText returns all text content concatenated
func (d *Document) ExtractText() string {
	var text string
	for _, cmd := range d.Commands {
		if tc, ok := cmd.(TextCommand); ok {
			text += tc.GetText() + "\n"
		}
	}
	return text
}

// Headings returns all heading commands in document order
func (d *Document) Headings() []*Heading {
	var headings []*Heading
	for _, cmd := range d.Commands {
		if h, ok := cmd.(*Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// Tables returns all table commands in document order
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, cmd := range d.Commands {
		if t, ok := cmd.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// ListItems returns all list item commands in document order
func (d *Document) ListItems() []*ListItem {
	var items []*ListItem
	for _, cmd := range d.Commands {
		if li, ok := cmd.(*ListItem); ok {
			items = append(items, li)
		}
	}
	return items
}
