package docx

import "encoding/xml"

// XML namespaces used in DOCX files
const (
	nsW       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsCT      = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRels    = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsEP      = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsCP      = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC      = "http://purl.org/dc/elements/1.1/"
	nsDCTerms = "http://purl.org/dc/terms/"
	nsXSI     = "http://www.w3.org/2001/XMLSchema-instance"
)

// Relationship type URIs used in .rels parts.
const (
	relTypeDocument  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCore      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeApp       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeNumbering = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
)

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"w:document"`
	XMLNSW  string   `xml:"xmlns:w,attr"`
	XMLNSR  string   `xml:"xmlns:r,attr"`
	Body    *bodyXML `xml:"w:body"`
}

// bodyXML represents the document body. Content holds *paragraphXML and
// *tableXML values; the encoder names each element from its own XMLName,
// so document order is preserved exactly.
type bodyXML struct {
	Content []interface{}
	SectPr  *sectPrXML `xml:"w:sectPr,omitempty"`
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	XMLName    xml.Name           `xml:"w:p"`
	Properties *paragraphPropsXML `xml:"w:pPr,omitempty"`
	Runs       []runXML           `xml:"w:r"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
// Field order follows the schema sequence for CT_PPr.
type paragraphPropsXML struct {
	Style         *styleRefXML       `xml:"w:pStyle,omitempty"`
	KeepNext      *emptyXML          `xml:"w:keepNext,omitempty"`
	NumPr         *numberingPropsXML `xml:"w:numPr,omitempty"`
	Spacing       *spacingXML        `xml:"w:spacing,omitempty"`
	Indent        *indentXML         `xml:"w:ind,omitempty"`
	Justification *justificationXML  `xml:"w:jc,omitempty"`
	OutlineLvl    *outlineLvlXML     `xml:"w:outlineLvl,omitempty"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"w:val,attr"`
}

// numberingPropsXML represents numbering properties for lists.
type numberingPropsXML struct {
	ILvl  ilvlXML  `xml:"w:ilvl"`
	NumID numIDXML `xml:"w:numId"`
}

// ilvlXML represents indentation level.
type ilvlXML struct {
	Val string `xml:"w:val,attr"`
}

// numIDXML represents numbering ID.
type numIDXML struct {
	Val string `xml:"w:val,attr"`
}

// justificationXML represents text justification.
type justificationXML struct {
	Val string `xml:"w:val,attr"` // left, center, right, both
}

// spacingXML represents paragraph spacing in twips.
type spacingXML struct {
	Before string `xml:"w:before,attr,omitempty"`
	After  string `xml:"w:after,attr,omitempty"`
	Line   string `xml:"w:line,attr,omitempty"`
}

// indentXML represents paragraph indentation in twips.
type indentXML struct {
	Left      string `xml:"w:left,attr,omitempty"`
	Right     string `xml:"w:right,attr,omitempty"`
	FirstLine string `xml:"w:firstLine,attr,omitempty"`
	Hanging   string `xml:"w:hanging,attr,omitempty"`
}

// outlineLvlXML represents outline level (0-based).
type outlineLvlXML struct {
	Val string `xml:"w:val,attr"`
}

// runXML represents a text run (<w:r>). Field order keeps run properties
// first, then text, then an optional trailing line break.
type runXML struct {
	XMLName    xml.Name     `xml:"w:r"`
	Properties *runPropsXML `xml:"w:rPr,omitempty"`
	Text       *textXML     `xml:"w:t,omitempty"`
	Break      *breakXML    `xml:"w:br,omitempty"`
}

// runPropsXML represents run properties (<w:rPr>).
// Field order follows the schema sequence for CT_RPr.
type runPropsXML struct {
	Fonts  *fontXML  `xml:"w:rFonts,omitempty"`
	Bold   *emptyXML `xml:"w:b,omitempty"`
	Italic *emptyXML `xml:"w:i,omitempty"`
	Color  *colorXML `xml:"w:color,omitempty"`
	Size   *sizeXML  `xml:"w:sz,omitempty"`
}

// emptyXML represents a valueless toggle element such as <w:b/>.
type emptyXML struct{}

// sizeXML represents font size (in half-points).
type sizeXML struct {
	Val string `xml:"w:val,attr"`
}

// fontXML represents font settings.
type fontXML struct {
	ASCII string `xml:"w:ascii,attr,omitempty"`
	HAnsi string `xml:"w:hAnsi,attr,omitempty"`
	CS    string `xml:"w:cs,attr,omitempty"`
}

// colorXML represents text color.
type colorXML struct {
	Val string `xml:"w:val,attr"` // Hex color or "auto"
}

// textXML represents text content (<w:t>).
type textXML struct {
	Space string `xml:"xml:space,attr,omitempty"` // preserve
	Value string `xml:",chardata"`
}

// breakXML represents a line break (<w:br>).
type breakXML struct{}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName    xml.Name      `xml:"w:tbl"`
	Properties tablePropsXML `xml:"w:tblPr"`
	Grid       tableGridXML  `xml:"w:tblGrid"`
	Rows       []tableRowXML `xml:"w:tr"`
}

// tablePropsXML represents table properties.
type tablePropsXML struct {
	Style   *styleRefXML     `xml:"w:tblStyle,omitempty"`
	Width   *tableSizeXML    `xml:"w:tblW,omitempty"`
	Borders *tableBordersXML `xml:"w:tblBorders,omitempty"`
	Look    *tableLookXML    `xml:"w:tblLook,omitempty"`
}

// tableSizeXML represents table/cell size.
type tableSizeXML struct {
	W    string `xml:"w:w,attr"`    // Width value
	Type string `xml:"w:type,attr"` // dxa (twips), pct, auto
}

// tableBordersXML represents table borders.
type tableBordersXML struct {
	Top     *borderXML `xml:"w:top,omitempty"`
	Left    *borderXML `xml:"w:left,omitempty"`
	Bottom  *borderXML `xml:"w:bottom,omitempty"`
	Right   *borderXML `xml:"w:right,omitempty"`
	InsideH *borderXML `xml:"w:insideH,omitempty"`
	InsideV *borderXML `xml:"w:insideV,omitempty"`
}

// borderXML represents a single border.
type borderXML struct {
	Val   string `xml:"w:val,attr"`            // Border style: single, double, etc.
	Sz    string `xml:"w:sz,attr"`             // Size in eighths of a point
	Space string `xml:"w:space,attr"`          // Space from text
	Color string `xml:"w:color,attr"`          // Hex color or "auto"
}

// tableLookXML represents table style conditional formatting flags.
type tableLookXML struct {
	Val         string `xml:"w:val,attr"`
	FirstRow    string `xml:"w:firstRow,attr"`
	LastRow     string `xml:"w:lastRow,attr"`
	FirstColumn string `xml:"w:firstColumn,attr"`
	LastColumn  string `xml:"w:lastColumn,attr"`
	NoHBand     string `xml:"w:noHBand,attr"`
	NoVBand     string `xml:"w:noVBand,attr"`
}

// tableGridXML represents table grid definition.
type tableGridXML struct {
	Cols []gridColXML `xml:"w:gridCol"`
}

// gridColXML represents a grid column.
type gridColXML struct {
	W string `xml:"w:w,attr"` // Width in twips
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	XMLName    xml.Name       `xml:"w:tr"`
	Properties *rowPropsXML   `xml:"w:trPr,omitempty"`
	Cells      []tableCellXML `xml:"w:tc"`
}

// rowPropsXML represents row properties.
type rowPropsXML struct {
	Header *emptyXML `xml:"w:tblHeader,omitempty"` // Repeat as header row on new pages
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	XMLName    xml.Name       `xml:"w:tc"`
	Properties *cellPropsXML  `xml:"w:tcPr,omitempty"`
	Paragraphs []paragraphXML `xml:"w:p"`
}

// cellPropsXML represents cell properties.
type cellPropsXML struct {
	Width *tableSizeXML `xml:"w:tcW,omitempty"`
}

// sectPrXML represents section properties (<w:sectPr>): page size and margins.
type sectPrXML struct {
	PgSz  pgSzXML  `xml:"w:pgSz"`
	PgMar pgMarXML `xml:"w:pgMar"`
}

// pgSzXML represents page size in twips.
type pgSzXML struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

// pgMarXML represents page margins in twips.
type pgMarXML struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
	Gutter string `xml:"w:gutter,attr"`
}
