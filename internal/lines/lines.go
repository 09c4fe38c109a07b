// Package lines turns extracted page text into an ordered sequence of
// non-empty, trimmed lines with known page noise removed.
package lines

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Stamp repeated on every page of downloaded judgments.
	printedForRe = regexp.MustCompile(`(?im)^[ \t]*Printed\s+For\s*:.*$`)
	// Footer embedded inline by some extractors.
	pageOfInlineRe = regexp.MustCompile(`(?i)\(\s*Page\s+\d+\s+of\s+\d+\s*\)`)
	// Footer emitted as its own line.
	pageOfLineRe = regexp.MustCompile(`(?im)^[ \t]*Page\s+\d+\s+of\s+\d+[ \t]*$`)
)

// Normalize joins per-page text with a newline, removes page noise and
// returns the remaining non-empty lines, trimmed, in order.
func Normalize(pages []string) []string {
	if len(pages) == 0 {
		return nil
	}
	return Split(strings.Join(pages, "\n"))
}

// Split normalizes a single concatenated text.
func Split(text string) []string {
	text = norm.NFC.String(text)
	text = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\f", "\n").Replace(text)
	text = Clean(text)

	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Clean removes the printed-for stamp and page footers, leaving every
// other character untouched.
func Clean(text string) string {
	text = printedForRe.ReplaceAllString(text, "")
	text = pageOfInlineRe.ReplaceAllString(text, "")
	text = pageOfLineRe.ReplaceAllString(text, "")
	return text
}
