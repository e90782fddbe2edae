package docx

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/quill/model"
)

// Style IDs referenced by generated paragraphs and tables.
const (
	styleNormal       = "Normal"
	styleTitle        = "Title"
	styleListBullet   = "ListBullet"
	styleIntenseQuote = "IntenseQuote"
	styleLightGrid    = "LightGrid-Accent1"
)

// bulletNumID is the numbering instance referenced by list paragraphs.
const bulletNumID = "1"

// Font sizes in half-points.
const (
	sizeBody  = "22" // 11pt
	sizeCode  = "20" // 10pt
	sizeTitle = "56" // 28pt
)

// Fonts used by generated documents.
const (
	fontBody = "Calibri"
	fontCode = "Courier New"
)

// accentColor is the hex color shared by headings and table borders.
const accentColor = "4F81BD"

// stylesXML represents word/styles.xml
type stylesXML struct {
	XMLName     xml.Name        `xml:"w:styles"`
	XMLNSW      string          `xml:"xmlns:w,attr"`
	DocDefaults *docDefaultsXML `xml:"w:docDefaults,omitempty"`
	Styles      []styleDefXML   `xml:"w:style"`
}

// docDefaultsXML represents default document formatting.
type docDefaultsXML struct {
	RPrDefault rPrDefaultXML `xml:"w:rPrDefault"`
	PPrDefault pPrDefaultXML `xml:"w:pPrDefault"`
}

type rPrDefaultXML struct {
	RPr *runPropsXML `xml:"w:rPr,omitempty"`
}

type pPrDefaultXML struct {
	PPr *paragraphPropsXML `xml:"w:pPr,omitempty"`
}

// styleDefXML represents a style definition.
type styleDefXML struct {
	Type    string             `xml:"w:type,attr"`
	StyleID string             `xml:"w:styleId,attr"`
	Default string             `xml:"w:default,attr,omitempty"`
	Name    *styleNameXML      `xml:"w:name,omitempty"`
	BasedOn *basedOnXML        `xml:"w:basedOn,omitempty"`
	Next    *nextXML           `xml:"w:next,omitempty"`
	PPr     *paragraphPropsXML `xml:"w:pPr,omitempty"`
	RPr     *runPropsXML       `xml:"w:rPr,omitempty"`
	TblPr   *tablePropsXML     `xml:"w:tblPr,omitempty"`
}

type styleNameXML struct {
	Val string `xml:"w:val,attr"`
}

type basedOnXML struct {
	Val string `xml:"w:val,attr"`
}

type nextXML struct {
	Val string `xml:"w:val,attr"`
}

// numberingXML represents word/numbering.xml
type numberingXML struct {
	XMLName      xml.Name         `xml:"w:numbering"`
	XMLNSW       string           `xml:"xmlns:w,attr"`
	AbstractNums []abstractNumXML `xml:"w:abstractNum"`
	Nums         []numXML         `xml:"w:num"`
}

// abstractNumXML represents an abstract numbering definition.
type abstractNumXML struct {
	AbstractNumID string   `xml:"w:abstractNumId,attr"`
	Levels        []lvlXML `xml:"w:lvl"`
}

// lvlXML represents a numbering level.
type lvlXML struct {
	ILvl    string             `xml:"w:ilvl,attr"`
	Start   *startXML          `xml:"w:start,omitempty"`
	NumFmt  *numFmtXML         `xml:"w:numFmt,omitempty"`
	LvlText *lvlTextXML        `xml:"w:lvlText,omitempty"`
	LvlJc   *lvlJcXML          `xml:"w:lvlJc,omitempty"`
	PPr     *paragraphPropsXML `xml:"w:pPr,omitempty"`
}

type startXML struct {
	Val string `xml:"w:val,attr"`
}

type numFmtXML struct {
	Val string `xml:"w:val,attr"` // bullet, decimal, lowerLetter, etc.
}

type lvlTextXML struct {
	Val string `xml:"w:val,attr"`
}

type lvlJcXML struct {
	Val string `xml:"w:val,attr"`
}

// numXML represents a numbering instance.
type numXML struct {
	NumID       string         `xml:"w:numId,attr"`
	AbstractNum abstractRefXML `xml:"w:abstractNumId"`
}

type abstractRefXML struct {
	Val string `xml:"w:val,attr"`
}

// relationshipsXML represents a .rels part.
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	XMLNS         string            `xml:"xmlns,attr"`
	Relationships []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// contentTypesXML represents [Content_Types].xml
type contentTypesXML struct {
	XMLName   xml.Name          `xml:"Types"`
	XMLNS     string            `xml:"xmlns,attr"`
	Defaults  []defaultTypeXML  `xml:"Default"`
	Overrides []overrideTypeXML `xml:"Override"`
}

type defaultTypeXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideTypeXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// corePropertiesXML represents docProps/core.xml
type corePropertiesXML struct {
	XMLName        xml.Name    `xml:"cp:coreProperties"`
	XMLNSCP        string      `xml:"xmlns:cp,attr"`
	XMLNSDC        string      `xml:"xmlns:dc,attr"`
	XMLNSDCTerms   string      `xml:"xmlns:dcterms,attr"`
	XMLNSXSI       string      `xml:"xmlns:xsi,attr"`
	Title          string      `xml:"dc:title,omitempty"`
	Subject        string      `xml:"dc:subject,omitempty"`
	Creator        string      `xml:"dc:creator"`
	Keywords       string      `xml:"cp:keywords,omitempty"`
	LastModifiedBy string      `xml:"cp:lastModifiedBy,omitempty"`
	Created        *dcTermsXML `xml:"dcterms:created,omitempty"`
	Modified       *dcTermsXML `xml:"dcterms:modified,omitempty"`
}

// dcTermsXML represents a W3CDTF-typed date value.
type dcTermsXML struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// appPropertiesXML represents docProps/app.xml
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	XMLNS       string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
}

// defaultStyles builds word/styles.xml: Calibri 11pt body text, four
// heading levels, a centered title, bulleted lists, an indented quote
// style for code blocks, and a bordered table style.
func defaultStyles() *stylesXML {
	return &stylesXML{
		XMLNSW: nsW,
		DocDefaults: &docDefaultsXML{
			RPrDefault: rPrDefaultXML{
				RPr: &runPropsXML{
					Fonts: &fontXML{ASCII: fontBody, HAnsi: fontBody, CS: fontBody},
					Size:  &sizeXML{Val: sizeBody},
				},
			},
			PPrDefault: pPrDefaultXML{
				PPr: &paragraphPropsXML{
					Spacing: &spacingXML{After: "160"},
				},
			},
		},
		Styles: []styleDefXML{
			{
				Type:    "paragraph",
				StyleID: styleNormal,
				Default: "1",
				Name:    &styleNameXML{Val: "Normal"},
			},
			{
				Type:    "paragraph",
				StyleID: styleTitle,
				Name:    &styleNameXML{Val: "Title"},
				BasedOn: &basedOnXML{Val: styleNormal},
				Next:    &nextXML{Val: styleNormal},
				PPr:     &paragraphPropsXML{Spacing: &spacingXML{After: "300"}},
				RPr:     &runPropsXML{Size: &sizeXML{Val: sizeTitle}},
			},
			headingStyleDef(1, "32"),
			headingStyleDef(2, "26"),
			headingStyleDef(3, "24"),
			headingStyleDef(4, "22"),
			{
				Type:    "paragraph",
				StyleID: styleListBullet,
				Name:    &styleNameXML{Val: "List Bullet"},
				BasedOn: &basedOnXML{Val: styleNormal},
				PPr: &paragraphPropsXML{
					NumPr: &numberingPropsXML{
						ILvl:  ilvlXML{Val: "0"},
						NumID: numIDXML{Val: bulletNumID},
					},
					Indent: &indentXML{Left: "720", Hanging: "360"},
				},
			},
			{
				Type:    "paragraph",
				StyleID: styleIntenseQuote,
				Name:    &styleNameXML{Val: "Intense Quote"},
				BasedOn: &basedOnXML{Val: styleNormal},
				Next:    &nextXML{Val: styleNormal},
				PPr: &paragraphPropsXML{
					Spacing: &spacingXML{Before: "120", After: "120"},
					Indent:  &indentXML{Left: "864", Right: "864"},
				},
				RPr: &runPropsXML{Color: &colorXML{Val: accentColor}},
			},
			{
				Type:    "table",
				StyleID: "TableNormal",
				Default: "1",
				Name:    &styleNameXML{Val: "Normal Table"},
			},
			{
				Type:    "table",
				StyleID: styleLightGrid,
				Name:    &styleNameXML{Val: "Light Grid Accent 1"},
				BasedOn: &basedOnXML{Val: "TableNormal"},
				TblPr: &tablePropsXML{
					Borders: &tableBordersXML{
						Top:     gridBorder(),
						Left:    gridBorder(),
						Bottom:  gridBorder(),
						Right:   gridBorder(),
						InsideH: gridBorder(),
						InsideV: gridBorder(),
					},
				},
			},
		},
	}
}

// headingStyleDef builds one heading style. Word numbers heading styles
// from 1 while outline levels count from 0.
func headingStyleDef(level int, size string) styleDefXML {
	def := styleDefXML{
		Type:    "paragraph",
		StyleID: "Heading" + strconv.Itoa(level),
		Name:    &styleNameXML{Val: "heading " + strconv.Itoa(level)},
		BasedOn: &basedOnXML{Val: styleNormal},
		Next:    &nextXML{Val: styleNormal},
		PPr: &paragraphPropsXML{
			KeepNext:   &emptyXML{},
			Spacing:    &spacingXML{Before: "240", After: "120"},
			OutlineLvl: &outlineLvlXML{Val: strconv.Itoa(level - 1)},
		},
		RPr: &runPropsXML{
			Bold:  &emptyXML{},
			Color: &colorXML{Val: accentColor},
			Size:  &sizeXML{Val: size},
		},
	}
	if level == 4 {
		def.RPr.Italic = &emptyXML{}
	}
	return def
}

// gridBorder returns the single hairline border used by the table style.
func gridBorder() *borderXML {
	return &borderXML{Val: "single", Sz: "4", Space: "0", Color: accentColor}
}

// defaultNumbering builds word/numbering.xml with a single bullet
// definition referenced by the List Bullet style.
func defaultNumbering() *numberingXML {
	return &numberingXML{
		XMLNSW: nsW,
		AbstractNums: []abstractNumXML{
			{
				AbstractNumID: "0",
				Levels: []lvlXML{
					{
						ILvl:    "0",
						Start:   &startXML{Val: "1"},
						NumFmt:  &numFmtXML{Val: "bullet"},
						LvlText: &lvlTextXML{Val: "•"},
						LvlJc:   &lvlJcXML{Val: "left"},
						PPr: &paragraphPropsXML{
							Indent: &indentXML{Left: "720", Hanging: "360"},
						},
					},
				},
			},
		},
		Nums: []numXML{
			{NumID: bulletNumID, AbstractNum: abstractRefXML{Val: "0"}},
		},
	}
}

// contentTypes builds [Content_Types].xml for the five XML parts.
func contentTypes() *contentTypesXML {
	return &contentTypesXML{
		XMLNS: nsCT,
		Defaults: []defaultTypeXML{
			{Extension: "rels", ContentType: "application/vnd.openxmlformats-package.relationships+xml"},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []overrideTypeXML{
			{PartName: "/word/document.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"},
			{PartName: "/word/styles.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"},
			{PartName: "/word/numbering.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"},
			{PartName: "/docProps/core.xml", ContentType: "application/vnd.openxmlformats-package.core-properties+xml"},
			{PartName: "/docProps/app.xml", ContentType: "application/vnd.openxmlformats-officedocument.extended-properties+xml"},
		},
	}
}

// packageRels builds _rels/.rels pointing at the document and its properties.
func packageRels() *relationshipsXML {
	return &relationshipsXML{
		XMLNS: nsRels,
		Relationships: []relationshipXML{
			{ID: "rId1", Type: relTypeDocument, Target: "word/document.xml"},
			{ID: "rId2", Type: relTypeCore, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relTypeApp, Target: "docProps/app.xml"},
		},
	}
}

// documentRels builds word/_rels/document.xml.rels.
func documentRels() *relationshipsXML {
	return &relationshipsXML{
		XMLNS: nsRels,
		Relationships: []relationshipXML{
			{ID: "rId1", Type: relTypeStyles, Target: "styles.xml"},
			{ID: "rId2", Type: relTypeNumbering, Target: "numbering.xml"},
		},
	}
}

// coreProperties builds docProps/core.xml from document metadata.
// Zero timestamps fall back to now.
func coreProperties(md model.Metadata, now time.Time) *corePropertiesXML {
	creator := md.Author
	if creator == "" {
		creator = md.Creator
	}
	if creator == "" {
		creator = defaultCreator
	}

	created := md.Created
	if created.IsZero() {
		created = now
	}
	modified := md.Modified
	if modified.IsZero() {
		modified = now
	}

	return &corePropertiesXML{
		XMLNSCP:        nsCP,
		XMLNSDC:        nsDC,
		XMLNSDCTerms:   nsDCTerms,
		XMLNSXSI:       nsXSI,
		Title:          md.Title,
		Subject:        md.Subject,
		Creator:        creator,
		Keywords:       strings.Join(md.Keywords, ", "),
		LastModifiedBy: creator,
		Created:        w3cdtf(created),
		Modified:       w3cdtf(modified),
	}
}

// w3cdtf formats a timestamp the way Word expects in core properties.
func w3cdtf(t time.Time) *dcTermsXML {
	return &dcTermsXML{
		Type:  "dcterms:W3CDTF",
		Value: t.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// appProperties builds docProps/app.xml.
func appProperties() *appPropertiesXML {
	return &appPropertiesXML{
		XMLNS:       nsEP,
		Application: defaultCreator,
	}
}
