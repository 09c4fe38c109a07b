package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Each top-level
// block contributes its text; the document is one page.
type MarkdownParser struct{}

func (p *MarkdownParser) Extract(r io.Reader, filename string) ([]string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if t := extractText(n, src); t != "" {
			blocks = append(blocks, t)
		}
	}
	return []string{strings.Join(blocks, "\n")}, nil
}

// extractText gets the text content of a goldmark AST node. List items
// keep their own lines so numbered points survive as separate lines.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	switch n.Kind() {
	case ast.KindList:
		list := n.(*ast.List)
		var items []string
		num := list.Start
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			t := extractText(c, src)
			if list.IsOrdered() {
				// goldmark drops the marker; paragraph numbers depend on it.
				t = strings.TrimSpace(fmt.Sprintf("%d. %s", num, t))
				num++
			}
			if t != "" {
				items = append(items, t)
			}
		}
		return strings.Join(items, "\n")
	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			if c.Type() == ast.TypeBlock && buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			// Recurse for nested inlines and blocks.
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
