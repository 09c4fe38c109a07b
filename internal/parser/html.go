package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// noiseSelector matches elements that never carry judgment text.
const noiseSelector = "script, style, noscript, nav, footer, iframe, form"

// HTMLParser handles HTML files. Block elements become lines; the whole
// document is one page.
type HTMLParser struct{}

func (p *HTMLParser) Extract(r io.Reader, filename string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	doc.Find(noiseSelector).Remove()

	root := doc.Selection
	if body := doc.Find("body"); body.Length() > 0 {
		root = body
	}

	var lines []string
	for _, n := range root.Nodes {
		lines = appendBlockLines(lines, n)
	}
	return []string{strings.Join(lines, "\n")}, nil
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "li", "td", "th", "blockquote", "pre", "dt", "dd", "caption",
		"h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// appendBlockLines walks n, emitting the text of each block element as a
// line. Loose text outside blocks is emitted as its own line.
func appendBlockLines(lines []string, n *html.Node) []string {
	switch {
	case n.Type == html.TextNode:
		if t := strings.TrimSpace(n.Data); t != "" {
			lines = append(lines, t)
		}
		return lines
	case n.Type == html.ElementNode && isBlock(n.Data):
		if t := textContent(n); t != "" {
			lines = append(lines, t)
		}
		return lines
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		lines = appendBlockLines(lines, c)
	}
	return lines
}

// textContent concatenates descendant text; <br> becomes a line break.
func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			buf.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "br":
			buf.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}
