// Package body recovers section headers, numbered paragraphs and their
// sub-items from the normalized line stream of a judgment.
package body

import (
	"html/template"
	"regexp"
	"strings"

	"github.com/dgallion1/judgest/internal/citation"
	"github.com/dgallion1/judgest/internal/doctree"
	"github.com/dgallion1/judgest/internal/inline"
)

// Kind identifies which marker a line opens with.
type Kind int

const (
	KindNone Kind = iota
	KindRoman
	KindLetter
	KindSmallRoman
	KindNumbered
)

// Matcher recognizes one marker shape. The first submatch is the marker,
// the second the remaining text.
type Matcher struct {
	Kind Kind
	Tier doctree.Tier
	re   *regexp.Regexp
}

// Precedence is the order markers are tried on a line; first match wins.
// "i." is therefore a letter and "ii." a small roman.
var Precedence = []Matcher{
	{KindRoman, doctree.TierRoman, regexp.MustCompile(`^([IVX]+)\.\s*(.*)$`)},
	{KindLetter, doctree.TierLetter, regexp.MustCompile(`^([a-z])\.\s*(.*)$`)},
	{KindSmallRoman, doctree.TierSmallRoman, regexp.MustCompile(`^([ivx]+)\.\s*(.*)$`)},
	{KindNumbered, "", regexp.MustCompile(`^(\d+)\.\s*(.*)$`)},
}

var (
	sectionHeaderRe = regexp.MustCompile(`^[A-Z]\.\s*[A-Z]`)
	firstParaRe     = regexp.MustCompile(`^1\.`)
	anyParaRe       = regexp.MustCompile(`^\d+\.`)
)

// Match is the result of classifying one line.
type Match struct {
	Kind   Kind
	Tier   doctree.Tier
	Marker string
	Text   string
}

// Classify returns the first matcher in Precedence that accepts line.
func Classify(line string) (Match, bool) {
	for _, m := range Precedence {
		if sm := m.re.FindStringSubmatch(line); sm != nil {
			return Match{Kind: m.Kind, Tier: m.Tier, Marker: sm[1], Text: sm[2]}, true
		}
	}
	return Match{}, false
}

// IsSectionHeader reports whether line has the "A. HEADING" shape.
func IsSectionHeader(line string) bool {
	return sectionHeaderRe.MatchString(line)
}

func isMarker(line string) bool {
	_, ok := Classify(line)
	return ok
}

func isNumbered(line string) bool {
	m, ok := Classify(line)
	return ok && m.Kind == KindNumbered
}

// StartIndex returns the line where the body begins: the first "1." line,
// else the first numbered line, else 0.
func StartIndex(lines []string) int {
	for i, l := range lines {
		if firstParaRe.MatchString(l) {
			return i
		}
	}
	for i, l := range lines {
		if anyParaRe.MatchString(l) {
			return i
		}
	}
	return 0
}

// scanContinuation merges lines from pos until stop accepts one. Empty
// lines are skipped. It returns the merged text and the index of the
// first unconsumed line.
func scanContinuation(lines []string, pos int, stop func(string) bool) (string, int) {
	var parts []string
	for ; pos < len(lines); pos++ {
		l := strings.TrimSpace(lines[pos])
		if l == "" {
			continue
		}
		if stop(l) {
			break
		}
		parts = append(parts, l)
	}
	return strings.Join(parts, " "), pos
}

// Hooks supply per-text classification and formatting.
type Hooks struct {
	IsCitation func(text string) bool
	Format     func(text string) template.HTML
}

// DefaultHooks uses the default citation thresholds and the inline formatter.
func DefaultHooks() Hooks {
	return Hooks{
		IsCitation: citation.New(citation.DefaultThresholds()).IsCitation,
		Format:     inline.Format,
	}
}

func (h Hooks) withDefaults() Hooks {
	d := DefaultHooks()
	if h.IsCitation == nil {
		h.IsCitation = d.IsCitation
	}
	if h.Format == nil {
		h.Format = d.Format
	}
	return h
}

// Parse runs the paragraph state machine over lines in a single forward
// pass. Stray lines before the first marker are skipped.
func Parse(lines []string, hooks Hooks) []doctree.BodyNode {
	hooks = hooks.withDefaults()

	var nodes []doctree.BodyNode
	for i := StartIndex(lines); i < len(lines); {
		l := strings.TrimSpace(lines[i])
		if IsSectionHeader(l) {
			nodes = append(nodes, doctree.SectionHeader{Text: l})
			i++
			continue
		}
		m, ok := Classify(l)
		if !ok || m.Kind != KindNumbered {
			i++
			continue
		}
		var p *doctree.Paragraph
		p, i = parseParagraph(lines, i+1, m, hooks)
		nodes = append(nodes, p)
	}
	return nodes
}

// parseParagraph consumes the lines owned by a numbered paragraph opened
// by m and returns the paragraph with the next unconsumed index.
func parseParagraph(lines []string, pos int, m Match, hooks Hooks) (*doctree.Paragraph, int) {
	p := &doctree.Paragraph{Number: m.Marker}
	parts := nonEmpty(m.Text)

	for pos < len(lines) {
		l := strings.TrimSpace(lines[pos])
		if l == "" {
			pos++
			continue
		}
		if isNumbered(l) || closesParagraph(l) {
			break
		}
		sub, ok := Classify(l)
		if !ok {
			parts = append(parts, l)
			pos++
			continue
		}
		var rest string
		rest, pos = scanContinuation(lines, pos+1, isMarker)
		text := joinText(append(nonEmpty(sub.Text), nonEmpty(rest)...))
		p.SubItems = append(p.SubItems, doctree.SubItem{
			Tier:       sub.Tier,
			Marker:     sub.Marker,
			Text:       text,
			HTML:       hooks.Format(text),
			IsCitation: hooks.IsCitation(text),
		})
	}

	p.Text = joinText(parts)
	p.HTML = hooks.Format(p.Text)
	p.IsCitation = hooks.IsCitation(p.Text)
	return p, pos
}

// closesParagraph reports a section header that is not also a roman
// sub-item marker such as "I. First".
func closesParagraph(line string) bool {
	if !IsSectionHeader(line) {
		return false
	}
	m, ok := Classify(line)
	return !ok || m.Kind != KindRoman
}

func nonEmpty(s string) []string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return []string{s}
}

func joinText(parts []string) string {
	return strings.Join(parts, " ")
}
