package quill

import "strings"

// Warning codes reported by terminal operations.
const (
	// WarnFenceUnterminated reports a code fence that was never closed.
	WarnFenceUnterminated = "fence-unterminated"
	// WarnTableDropped reports a table discarded for lacking headers or rows.
	WarnTableDropped = "table-dropped"
	// WarnRowDroppedEmpty reports a table row discarded because every cell was empty.
	WarnRowDroppedEmpty = "row-dropped-empty"
	// WarnTableNormalized reports table rows padded or truncated to the header width.
	WarnTableNormalized = "table-row-normalized"
)

// Warning describes a non-fatal issue encountered during conversion.
// Conversion succeeded, but the output may differ from what the source
// author intended.
type Warning struct {
	// Code identifies the warning category.
	Code string
	// Message is a human-readable description.
	Message string
}

// String returns the warning as "[code] message".
func (w Warning) String() string {
	return "[" + w.Code + "] " + w.Message
}

// FormatWarnings renders warnings as a single semicolon-separated string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
