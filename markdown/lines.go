package markdown

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadLines reads the file at path fully into memory and returns its line
// stream. The source must be UTF-8; a leading byte-order mark is tolerated
// and removed, and CRLF line endings are normalized.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	defer f.Close()

	return ReadLinesFrom(f)
}

// ReadLinesFrom reads r fully into memory and returns its line stream.
func ReadLinesFrom(r io.Reader) ([]string, error) {
	decoded := transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits source text into its line stream, trimming a trailing
// carriage return from each line.
func SplitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
