// Command judgest converts court judgments into structured documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "judgest",
	Short: "judgest: structural parser for Indian court judgments",
	Long: `judgest recovers the case header, index and numbered paragraphs of a
court judgment and renders them as HTML, JSON, Markdown or PDF.

Usage:
  judgest convert <file> [flags]`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
