package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/dgallion1/judgest/internal/doctree"
)

// MarkdownRenderer renders HTML first and converts it with html-to-markdown,
// so both outputs share one layout.
type MarkdownRenderer struct {
	html *HTMLRenderer
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{html: NewHTMLRenderer()}
}

func (r *MarkdownRenderer) Render(j *doctree.Judgment) ([]byte, error) {
	page, err := r.html.Render(j)
	if err != nil {
		return nil, err
	}
	md, err := htmltomarkdown.ConvertString(string(page))
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return []byte(md), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func (r *MarkdownRenderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}
