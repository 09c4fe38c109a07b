// Package citation scores paragraph text for legal-citation signals and
// decides whether a paragraph is primarily a citation or reference.
package citation

import (
	"regexp"
	"unicode/utf8"
)

// Signal is one named citation pattern.
type Signal struct {
	Name string
	re   *regexp.Regexp
}

// Signals are counted at most once each, however often they match.
var Signals = []Signal{
	{"scc", regexp.MustCompile(`\(\d{4}\)\s*\d+\s*SCC\s*\d+`)},
	{"scc_bracketed", regexp.MustCompile(`\(\d{4}\)\s*\d+\s*SCC\s*\((?:Cri|Civ|L&S|Tax)\)\s*\d+`)},
	{"scc_online", regexp.MustCompile(`\d{4}\s*SCC\s*OnLine\s*[A-Za-z]+\s*\d+`)},
	{"manu", regexp.MustCompile(`MANU/[A-Z]+/\d+/\d{4}`)},
	{"air", regexp.MustCompile(`AIR\s*\d{4}\s*[A-Z][A-Za-z]*\s*\d+`)},
	{"scr", regexp.MustCompile(`\[\d{4}\]\s*\d*\s*S\.?C\.?R\.?\s*\d+`)},
	{"jt", regexp.MustCompile(`JT\s*\d{4}\s*\(\d+\)\s*SC\s*\d+`)},
	{"versus", regexp.MustCompile(`\b[A-Z][\w.&']*\s+vs\.?\s+[A-Z]`)},
	{"v", regexp.MustCompile(`\b[A-Z][\w.&']*\s+v\.\s+[A-Z]`)},
	{"supra", regexp.MustCompile(`(?i)\b(?:supra|infra|ibid)\b`)},
	{"para_ref", regexp.MustCompile(`(?i)\b(?:at\s+)?paras?(?:graphs?)?\.?\s+\d+`)},
	{"see_also", regexp.MustCompile(`(?i)\b(?:see\s+also|referred\s+to\s+in)\b`)},
}

// Thresholds decide classification from the signal count.
type Thresholds struct {
	MinSignals   int // this many distinct signals always classify as citation
	ShortSignals int // this many suffice when the text is short
	ShortLength  int // texts shorter than this (in characters) are short
}

// DefaultThresholds favours short reference-only paragraphs and long ones
// carrying several independent citation markers.
func DefaultThresholds() Thresholds {
	return Thresholds{MinSignals: 2, ShortSignals: 1, ShortLength: 200}
}

// Classifier labels text as citation-style or narrative.
type Classifier struct {
	Thresholds Thresholds
}

// New returns a Classifier using t.
func New(t Thresholds) *Classifier {
	return &Classifier{Thresholds: t}
}

// Matched returns the names of the distinct signals found in text.
func Matched(text string) []string {
	var names []string
	for _, s := range Signals {
		if s.re.MatchString(text) {
			names = append(names, s.Name)
		}
	}
	return names
}

// Count returns the number of distinct signals found in text.
func Count(text string) int {
	n := 0
	for _, s := range Signals {
		if s.re.MatchString(text) {
			n++
		}
	}
	return n
}

// IsCitation reports whether text reads as a citation paragraph.
func (c *Classifier) IsCitation(text string) bool {
	n := Count(text)
	if n == 0 {
		return false
	}
	if n >= c.Thresholds.MinSignals {
		return true
	}
	return n >= c.Thresholds.ShortSignals && utf8.RuneCountInString(text) < c.Thresholds.ShortLength
}
