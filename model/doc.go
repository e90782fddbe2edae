// Package model provides the intermediate representation (IR) for document
// content on its way into a generated file.
//
// This package defines the data structures that represent the semantic
// structure of a converted document. Scanning a Markdown source produces an
// ordered sequence of these types, and the writers consume them, making them
// the primary API for inspecting or assembling conversion output.
//
// # Commands
//
// One conversion produces an ordered sequence of [Command] values. Replayed
// in order against a writer, the sequence reconstructs the visual structure
// of the source document. Commands are independent of one another; no
// command refers to another command's state. The concrete types are:
//
//   - [Heading] - section headings (levels 1-4)
//   - [Paragraph] - body text, optionally bold or italic
//   - [Table] - a header row plus data rows
//   - [CodeBlock] - verbatim multi-line text
//   - [ListItem] - a single bulleted item
//   - [Spacer] - a blank separator, such as a horizontal rule
//
// # Documents
//
// The [Document] type collects a command sequence with metadata:
//
//	doc := model.NewDocument()
//	doc.Metadata.Title = "My Document"
//	doc.AddCommand(&model.Heading{Text: "Overview", Level: 1})
//
// # Tables
//
// The [Table] type permits ragged input: a data row's width may differ from
// the header width. Writers that need a rectangular grid call
// [Table.Normalize] first.
package model
