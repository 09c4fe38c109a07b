package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/dgallion1/judgest/internal/doctree"
)

//go:embed templates/*.html
var templateFS embed.FS

var judgmentTmpl = template.Must(
	template.New("judgment.html").
		Funcs(template.FuncMap{"title": Title, "caseLine": caseLine}).
		ParseFS(templateFS, "templates/judgment.html"),
)

// HTMLRenderer renders a standalone HTML page.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render executes the judgment template.
func (r *HTMLRenderer) Render(j *doctree.Judgment) ([]byte, error) {
	var buf bytes.Buffer
	if err := judgmentTmpl.Execute(&buf, j); err != nil {
		return nil, fmt.Errorf("executing html template: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}
