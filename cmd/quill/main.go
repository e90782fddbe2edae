// Package main is the entry point for the quill CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/quill"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the quill CLI.
var rootCmd = &cobra.Command{
	Use:   "quill <source.md> <dest.docx>",
	Short: "Convert Markdown documents to DOCX",
	Long: `quill converts a Markdown document into a styled DOCX file. Headings,
paragraphs, bullet lists, fenced code blocks, pipe tables, and horizontal
rules map onto Word paragraph and table styles.

The only configuration is the two paths: the Markdown source to read and
the DOCX destination to write. Scanner warnings (unterminated code fences,
normalized table rows) print to stderr without failing the conversion.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	warnings, err := quill.Open(args[0]).Save(args[1])
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if err != nil {
		return err
	}
	fmt.Printf("created: %s\n", args[1])
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
