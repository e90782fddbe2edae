// Package format provides file format detection for the quill library.
package format

import (
	"archive/zip"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned when a file's format is not handled.
var ErrUnsupported = errors.New("format: unsupported file format")

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Markdown indicates a Markdown (.md) document.
	Markdown
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Markdown:
		return "Markdown"
	case DOCX:
		return "DOCX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Markdown:
		return ".md"
	case DOCX:
		return ".docx"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown", ".mdown", ".mkd":
		return Markdown
	case ".docx":
		return DOCX
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// Markdown is plain text and has no magic number, so only ZIP-based
// formats are recognizable here; returns Unknown otherwise.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// ZIP magic (DOCX is a ZIP archive): PK\x03\x04
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		// Could be DOCX or another ZIP-based format.
		// Caller should use DetectFromReader to inspect the archive.
		return Unknown
	}

	if detectMarkdownMagic(data) {
		return Markdown
	}

	return Unknown
}

// detectMarkdownMagic checks if the data opens with a common Markdown
// construct. Plain prose is indistinguishable from Markdown, so this
// only recognizes explicit markers.
func detectMarkdownMagic(data []byte) bool {
	// Trim leading whitespace
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}
	text := string(data[start:])

	for _, marker := range []string{"# ", "## ", "### ", "#### ", "- ", "```", "**", "---"} {
		if strings.HasPrefix(text, marker) {
			return true
		}
	}
	return false
}

// DetectFromReader inspects the content to determine format.
// This is more reliable than extension-based detection and can
// distinguish DOCX from other ZIP-based formats.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	// Check for ZIP-based format
	if len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		return detectZIPFormat(r, size)
	}

	if detectMarkdownMagic(magic) {
		return Markdown, nil
	}

	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive to determine if it's DOCX.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return DOCX, nil
		}
	}

	return Unknown, nil
}
