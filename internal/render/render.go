// Package render turns a parsed Judgment into a deliverable document.
package render

import (
	"fmt"
	"strings"

	"github.com/dgallion1/judgest/internal/doctree"
)

// Renderer converts a Judgment into a final output format.
type Renderer interface {
	Render(j *doctree.Judgment) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".pdf").
	Extension() string
	ContentType() string
}

// Formats lists the names accepted by ForFormat.
var Formats = []string{"html", "json", "md", "pdf"}

// ForFormat returns the renderer registered under name.
func ForFormat(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case "html", "":
		return NewHTMLRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "md", "markdown":
		return NewMarkdownRenderer(), nil
	case "pdf":
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", name)
	}
}

// Title is the display title of a judgment: the parties when known.
func Title(m doctree.Metadata) string {
	switch {
	case m.Petitioner != "" && m.Respondent != "":
		return m.Petitioner + " v. " + m.Respondent
	case m.Petitioner != "":
		return m.Petitioner
	case m.CaseNumber != "":
		return m.CaseNumber
	}
	return "Judgment"
}

// caseLine joins case number and date as "CASE | DATE".
func caseLine(m doctree.Metadata) string {
	var parts []string
	if m.CaseNumber != "" {
		parts = append(parts, m.CaseNumber)
	}
	if m.JudgmentDate != "" {
		parts = append(parts, m.JudgmentDate)
	}
	return strings.Join(parts, " | ")
}
