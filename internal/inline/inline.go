// Package inline formats a paragraph's text for HTML: whitespace and
// punctuation normalization, emphasis markers for citations, statutory
// references and long quotations, and escaping of everything else.
package inline

import (
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
)

// Emphasis classes carried by the inserted span markers.
const (
	ClassCitation = "case-citation"
	ClassLawRef   = "law-ref"
	ClassQuoted   = "quoted-text"
)

// Placeholder delimiters come from the Unicode private use area and are
// stripped from input before any marker is inserted.
const (
	tokenOpen  = "\uE000"
	tokenClose = "\uE001"
)

var (
	spaceRe          = regexp.MustCompile(`\s+`)
	spaceBeforeRe    = regexp.MustCompile(`\s+([,.;:])`)
	spaceAfterRe     = regexp.MustCompile(`([,;:])([A-Za-z(“"])`)
	spaceAfterStopRe = regexp.MustCompile(`([a-z0-9)])\.([A-Z])`)

	citationRe = regexp.MustCompile(
		`MANU/[A-Z]+/\d+/\d{4}` +
			`|\(\d{4}\)\s*\d+\s*SCC\s*\((?:Cri|Civ|L&S|Tax)\)\s*\d+` +
			`|\(\d{4}\)\s*\d+\s*SCC\s*\d+` +
			`|\d{4}\s*SCC\s*OnLine\s*[A-Za-z]+\s*\d+` +
			`|AIR\s*\d{4}\s*[A-Z][A-Za-z]*\s*\d+`)
	lawRefRe = regexp.MustCompile(`(?i)\b(?:Section|Article)s?\s+\d+[A-Z]?(?:\s*\(\s*[0-9A-Za-z]+\s*\))*`)
	quotedRe = regexp.MustCompile(`"[^"]{10,}"|“[^”]{10,}”`)
	markupRe = regexp.MustCompile(`</?span[^>]*>`)

	escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// Format runs the full pipeline and returns HTML-safe text.
func Format(text string) template.HTML {
	text = Normalize(text)

	var p protector
	text = p.wrap(text, citationRe, ClassCitation)
	text = p.wrap(text, lawRefRe, ClassLawRef)
	text = escaper.Replace(text)
	text = quotedRe.ReplaceAllStringFunc(text, func(m string) string {
		return span(ClassQuoted, m)
	})
	return template.HTML(p.restore(text))
}

// Normalize collapses whitespace and fixes spacing around punctuation.
func Normalize(text string) string {
	text = strings.NewReplacer(tokenOpen, "", tokenClose, "").Replace(text)
	text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
	text = spaceBeforeRe.ReplaceAllString(text, "$1")
	text = spaceAfterRe.ReplaceAllString(text, "$1 $2")
	text = spaceAfterStopRe.ReplaceAllString(text, "$1. $2")
	return text
}

// Strip removes inserted markup and undoes escaping.
func Strip(formatted template.HTML) string {
	return html.UnescapeString(markupRe.ReplaceAllString(string(formatted), ""))
}

func span(class, inner string) string {
	return `<span class="` + class + `">` + inner + `</span>`
}

// protector swaps generated markup for opaque tokens so that later passes
// neither escape nor re-match it.
type protector struct {
	spans []string
}

func (p *protector) wrap(text string, re *regexp.Regexp, class string) string {
	return re.ReplaceAllStringFunc(text, func(m string) string {
		return p.hold(span(class, escaper.Replace(m)))
	})
}

func (p *protector) hold(markup string) string {
	p.spans = append(p.spans, markup)
	return token(len(p.spans) - 1)
}

func (p *protector) restore(text string) string {
	for i, markup := range p.spans {
		text = strings.Replace(text, token(i), markup, 1)
	}
	return text
}

func token(i int) string {
	return fmt.Sprintf("%s%d%s", tokenOpen, i, tokenClose)
}
