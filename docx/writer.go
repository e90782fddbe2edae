// Package docx provides DOCX (Office Open XML) document generation.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/tsawler/quill/model"
)

// ErrNilDocument is returned when Write is given a nil document.
var ErrNilDocument = errors.New("docx: nil document")

// defaultCreator is recorded in the document properties when the
// metadata names no author.
const defaultCreator = "quill"

// Page geometry in twips (US Letter with one inch margins).
const (
	pageWidth    = 12240
	pageHeight   = 15840
	pageMargin   = 1440
	headerMargin = 720
)

// usableWidth is the printable width shared across table columns.
const usableWidth = pageWidth - 2*pageMargin

// Writer generates a DOCX archive from a document.
type Writer struct {
	w   io.Writer
	now func() time.Time
}

// NewWriter creates a Writer that emits the archive to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, now: time.Now}
}

// Save writes doc to a new file at path, replacing any existing file.
func Save(doc *model.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := NewWriter(f).Write(doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// Write marshals doc into a complete DOCX archive. The archive holds the
// five XML parts Word requires plus their relationship and content type
// declarations, so the output opens without repair prompts.
func (wr *Writer) Write(doc *model.Document) error {
	if doc == nil {
		return ErrNilDocument
	}

	zw := zip.NewWriter(wr.w)

	parts := []struct {
		name string
		data interface{}
	}{
		{"[Content_Types].xml", contentTypes()},
		{"_rels/.rels", packageRels()},
		{"word/document.xml", buildDocument(doc)},
		{"word/styles.xml", defaultStyles()},
		{"word/numbering.xml", defaultNumbering()},
		{"word/_rels/document.xml.rels", documentRels()},
		{"docProps/core.xml", coreProperties(doc.Metadata, wr.now())},
		{"docProps/app.xml", appProperties()},
	}

	for _, part := range parts {
		if err := writePart(zw, part.name, part.data); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

// writePart encodes one XML part into the archive.
func writePart(zw *zip.Writer, name string, data interface{}) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create part %s: %w", name, err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write part %s: %w", name, err)
	}
	if err := xml.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode part %s: %w", name, err)
	}
	return nil
}

// buildDocument converts the command stream into the document body.
// A title paragraph is prepended when the metadata carries a title.
func buildDocument(doc *model.Document) *documentXML {
	body := &bodyXML{}

	if doc.Metadata.Title != "" {
		body.Content = append(body.Content, titleParagraph(doc.Metadata.Title))
	}

	for _, cmd := range doc.Commands {
		switch c := cmd.(type) {
		case *model.Heading:
			body.Content = append(body.Content, headingParagraph(c))
		case *model.Paragraph:
			body.Content = append(body.Content, textParagraph(c))
		case *model.Table:
			if tbl := buildTable(c); tbl != nil {
				body.Content = append(body.Content, tbl)
			}
		case *model.CodeBlock:
			body.Content = append(body.Content, codeParagraph(c))
		case *model.ListItem:
			body.Content = append(body.Content, listParagraph(c))
		case *model.Spacer:
			body.Content = append(body.Content, &paragraphXML{})
		}
	}

	body.SectPr = &sectPrXML{
		PgSz: pgSzXML{W: strconv.Itoa(pageWidth), H: strconv.Itoa(pageHeight)},
		PgMar: pgMarXML{
			Top:    strconv.Itoa(pageMargin),
			Right:  strconv.Itoa(pageMargin),
			Bottom: strconv.Itoa(pageMargin),
			Left:   strconv.Itoa(pageMargin),
			Header: strconv.Itoa(headerMargin),
			Footer: strconv.Itoa(headerMargin),
			Gutter: "0",
		},
	}

	return &documentXML{
		XMLNSW: nsW,
		XMLNSR: nsR,
		Body:   body,
	}
}

// titleParagraph renders the document title centered in the Title style.
func titleParagraph(text string) *paragraphXML {
	return &paragraphXML{
		Properties: &paragraphPropsXML{
			Style:         &styleRefXML{Val: styleTitle},
			Justification: &justificationXML{Val: "center"},
		},
		Runs: []runXML{textRun(text, nil)},
	}
}

// headingParagraph renders a heading. Levels outside the styled range
// are clamped so every heading resolves to a defined style.
func headingParagraph(h *model.Heading) *paragraphXML {
	level := h.Level
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}
	return &paragraphXML{
		Properties: &paragraphPropsXML{
			Style: &styleRefXML{Val: "Heading" + strconv.Itoa(level)},
		},
		Runs: []runXML{textRun(h.Text, nil)},
	}
}

// textParagraph renders a body paragraph, bold or italic when flagged.
func textParagraph(p *model.Paragraph) *paragraphXML {
	var props *runPropsXML
	if p.Bold || p.Italic {
		props = &runPropsXML{}
		if p.Bold {
			props.Bold = &emptyXML{}
		}
		if p.Italic {
			props.Italic = &emptyXML{}
		}
	}
	return &paragraphXML{Runs: []runXML{textRun(p.Text, props)}}
}

// codeParagraph renders a code block as a single Intense Quote paragraph.
// Each source line becomes its own monospaced run, with explicit line
// breaks between runs so the block stays one paragraph.
func codeParagraph(cb *model.CodeBlock) *paragraphXML {
	lines := cb.Lines()
	p := &paragraphXML{
		Properties: &paragraphPropsXML{
			Style: &styleRefXML{Val: styleIntenseQuote},
		},
	}
	for i, line := range lines {
		run := runXML{
			Properties: &runPropsXML{
				Fonts: &fontXML{ASCII: fontCode, HAnsi: fontCode, CS: fontCode},
				Size:  &sizeXML{Val: sizeCode},
			},
			Text: &textXML{Space: "preserve", Value: line},
		}
		if i < len(lines)-1 {
			run.Break = &breakXML{}
		}
		p.Runs = append(p.Runs, run)
	}
	return p
}

// listParagraph renders a bulleted list item.
func listParagraph(li *model.ListItem) *paragraphXML {
	return &paragraphXML{
		Properties: &paragraphPropsXML{
			Style: &styleRefXML{Val: styleListBullet},
			NumPr: &numberingPropsXML{
				ILvl:  ilvlXML{Val: strconv.Itoa(li.Level)},
				NumID: numIDXML{Val: bulletNumID},
			},
		},
		Runs: []runXML{textRun(li.Text, nil)},
	}
}

// buildTable renders a table with a bold header row. The header defines
// the column count; data cells are read through the bounds-safe accessor,
// so ragged rows render padded or truncated to the header width. Tables
// with no columns produce nothing.
func buildTable(t *model.Table) *tableXML {
	cols := len(t.Headers)
	if cols == 0 {
		return nil
	}
	colWidth := strconv.Itoa(usableWidth / cols)

	tbl := &tableXML{
		Properties: tablePropsXML{
			Style: &styleRefXML{Val: styleLightGrid},
			Width: &tableSizeXML{W: strconv.Itoa(usableWidth), Type: "dxa"},
			Look: &tableLookXML{
				Val:         "04A0",
				FirstRow:    "1",
				LastRow:     "0",
				FirstColumn: "1",
				LastColumn:  "0",
				NoHBand:     "0",
				NoVBand:     "1",
			},
		},
	}
	for i := 0; i < cols; i++ {
		tbl.Grid.Cols = append(tbl.Grid.Cols, gridColXML{W: colWidth})
	}

	header := tableRowXML{Properties: &rowPropsXML{Header: &emptyXML{}}}
	for _, h := range t.Headers {
		header.Cells = append(header.Cells, tableCell(h, colWidth, true))
	}
	tbl.Rows = append(tbl.Rows, header)

	for i := range t.Rows {
		row := tableRowXML{}
		for j := 0; j < cols; j++ {
			row.Cells = append(row.Cells, tableCell(t.Cell(i, j), colWidth, false))
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl
}

// tableCell builds one cell holding a single paragraph.
func tableCell(text, width string, bold bool) tableCellXML {
	var props *runPropsXML
	if bold {
		props = &runPropsXML{Bold: &emptyXML{}}
	}
	return tableCellXML{
		Properties: &cellPropsXML{
			Width: &tableSizeXML{W: width, Type: "dxa"},
		},
		Paragraphs: []paragraphXML{
			{Runs: []runXML{textRun(text, props)}},
		},
	}
}

// textRun builds a run preserving leading and trailing whitespace.
func textRun(text string, props *runPropsXML) runXML {
	return runXML{
		Properties: props,
		Text:       &textXML{Space: "preserve", Value: text},
	}
}
