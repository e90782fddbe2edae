// Package quill provides a fluent API for converting Markdown files to
// DOCX (Office Open XML) documents.
//
// Basic usage:
//
//	warnings, err := quill.Open("notes.md").Save("notes.docx")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", quill.FormatWarnings(warnings))
//	}
//
// With options:
//
//	warnings, err := quill.Open("notes.md").
//	    Title("Release Notes").
//	    Author("Docs Team").
//	    Save("notes.docx")
//
// For advanced use cases, the lower-level markdown and docx packages are
// also available.
package quill

import (
	"io"
	"strings"

	"github.com/tsawler/quill/format"
)

// Open prepares a Markdown file for conversion and returns a Converter
// for fluent configuration. The file is not read until a terminal
// operation like Save() or Commands() runs.
//
// Example:
//
//	warnings, err := quill.Open("notes.md").Save("notes.docx")
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// FromReader creates a Converter that reads Markdown from r.
// The reader is consumed by the first terminal operation.
//
// Example:
//
//	warnings, err := quill.FromReader(resp.Body).Save("notes.docx")
func FromReader(r io.Reader) *Converter {
	return &Converter{
		source:  r,
		format:  format.Markdown,
		options: defaultOptions(),
	}
}

// FromString creates a Converter that reads Markdown from an in-memory
// string. Useful for tests and generated content.
//
// Example:
//
//	cmds, warnings, err := quill.FromString("# Title").Commands()
func FromString(src string) *Converter {
	return FromReader(strings.NewReader(src))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	lines := quill.Must(markdown.ReadLines("notes.md"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustCommands is a helper that wraps a call to Commands() or Document()
// and panics if the error is non-nil. It discards warnings and returns
// just the value. It is intended for use in scripts or tests where error
// handling would be cumbersome.
//
// Example:
//
//	cmds := quill.MustCommands(quill.FromString("# Title").Commands())
func MustCommands[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
