package quill

import (
	"errors"
	"fmt"
	"io"

	"github.com/tsawler/quill/docx"
	"github.com/tsawler/quill/format"
	"github.com/tsawler/quill/markdown"
	"github.com/tsawler/quill/model"
)

// ErrNoSource is returned when a terminal operation runs on a Converter
// with neither a filename nor a reader.
var ErrNoSource = errors.New("quill: no source specified")

// Converter provides a fluent interface for converting Markdown to DOCX.
// Each configuration method returns a new Converter instance, making it
// safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source (only one will be used)
	filename string
	source   io.Reader
	format   format.Format

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Converter with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		source:   c.source,
		format:   c.format,
		options:  c.options.clone(),
		err:      c.err,
		warnings: append([]Warning(nil), c.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Title sets the document title. The title is rendered as a centered
// paragraph at the top of the output and recorded in the document
// properties.
//
// Example:
//
//	warnings, err := quill.Open("notes.md").Title("Release Notes").Save("notes.docx")
func (c *Converter) Title(title string) *Converter {
	newConv := c.clone()
	newConv.options.title = title
	return newConv
}

// Author sets the document author recorded in the document properties.
//
// Example:
//
//	warnings, err := quill.Open("notes.md").Author("Docs Team").Save("notes.docx")
func (c *Converter) Author(author string) *Converter {
	newConv := c.clone()
	newConv.options.author = author
	return newConv
}

// ============================================================================
// Terminal Operations (execute conversion and return results)
// ============================================================================

// Commands scans the source and returns the flat command stream in
// source order, one command per recognized construct.
//
// Returns the commands, any warnings encountered during scanning, and an
// error if the source could not be read. Warnings indicate non-fatal
// issues (e.g., an unterminated code fence) where scanning succeeded but
// the output may be imperfect.
//
// Example:
//
//	cmds, warnings, err := quill.Open("notes.md").Commands()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", quill.FormatWarnings(warnings))
//	}
func (c *Converter) Commands() ([]model.Command, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	return c.scan()
}

// Document scans the source and returns a model.Document carrying the
// command stream and the configured metadata. Ragged tables are
// normalized to their header width, with a warning per table adjusted.
//
// Example:
//
//	doc, warnings, err := quill.Open("notes.md").Title("Notes").Document()
func (c *Converter) Document() (*model.Document, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	cmds, warnings, err := c.scan()
	if err != nil {
		return nil, nil, err
	}

	doc := model.NewDocument()
	doc.Metadata.Title = c.options.title
	doc.Metadata.Author = c.options.author

	tableIndex := 0
	for _, cmd := range cmds {
		if tbl, ok := cmd.(*model.Table); ok {
			tableIndex++
			if tbl.IsRagged() {
				padded, truncated := tbl.Normalize()
				warnings = append(warnings, Warning{
					Code: WarnTableNormalized,
					Message: fmt.Sprintf("table %d: padded %d and truncated %d rows to fit %d columns",
						tableIndex, padded, truncated, len(tbl.Headers)),
				})
			}
		}
		doc.AddCommand(cmd)
	}

	return doc, warnings, nil
}

// Save converts the source and writes the DOCX file to path, replacing
// any existing file.
//
// Returns any warnings encountered during conversion and an error if
// reading or writing failed.
//
// Example:
//
//	warnings, err := quill.Open("notes.md").Save("notes.docx")
func (c *Converter) Save(path string) ([]Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return warnings, err
	}

	if err := docx.Save(doc, path); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// Render converts the source and writes the DOCX archive to w.
//
// Example:
//
//	var buf bytes.Buffer
//	warnings, err := quill.Open("notes.md").Render(&buf)
func (c *Converter) Render(w io.Writer) ([]Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return warnings, err
	}

	if err := docx.NewWriter(w).Write(doc); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// scan reads the source and runs the line scanner, mapping scanner
// warnings into the public warning type.
func (c *Converter) scan() ([]model.Command, []Warning, error) {
	lines, err := c.readLines()
	if err != nil {
		return nil, nil, err
	}

	cmds, scanWarnings := markdown.NewScanner(lines).Scan()

	warnings := append([]Warning(nil), c.warnings...)
	for _, w := range scanWarnings {
		warnings = append(warnings, Warning{Code: w.Code, Message: w.Message})
	}
	return cmds, warnings, nil
}

// readLines loads the source as normalized lines. Files with a
// recognized non-Markdown extension are rejected; unknown extensions are
// read as Markdown, matching the permissive handling of plain text.
func (c *Converter) readLines() ([]string, error) {
	if c.source != nil {
		return markdown.ReadLinesFrom(c.source)
	}

	if c.filename == "" {
		return nil, ErrNoSource
	}
	if c.format != format.Markdown && c.format != format.Unknown {
		return nil, fmt.Errorf("%w: %s is not a Markdown source", format.ErrUnsupported, c.format)
	}
	return markdown.ReadLines(c.filename)
}
