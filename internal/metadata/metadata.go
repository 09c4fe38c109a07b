// Package metadata extracts the case header of a judgment from its
// normalized lines using position-windowed, first-match-wins rules.
package metadata

import (
	"regexp"
	"strings"

	"github.com/dgallion1/judgest/internal/doctree"
)

// Field names the metadata field a rule fills.
type Field string

const (
	FieldCitationNumber  Field = "citation_number"
	FieldReportable      Field = "reportable"
	FieldCourtName       Field = "court_name"
	FieldJurisdiction    Field = "jurisdiction"
	FieldCaseNumber      Field = "case_number"
	FieldParties         Field = "parties"
	FieldJudgmentDate    Field = "judgment_date"
	FieldBench           Field = "bench"
	FieldPrimaryJudge    Field = "primary_judge"
	FieldConvenienceNote Field = "convenience_note"
)

// Window bounds the lines a rule may look at. A zero Window covers all lines.
type Window struct {
	Head int // first Head lines
	Tail int // last Tail lines
}

// Head returns a window over the first n lines.
func Head(n int) Window { return Window{Head: n} }

// Tail returns a window over the last n lines.
func Tail(n int) Window { return Window{Tail: n} }

// All returns a window over every line.
func All() Window { return Window{} }

// Of returns the slice of lines inside the window.
func (w Window) Of(lines []string) []string {
	switch {
	case w.Head > 0:
		return lines[:min(w.Head, len(lines))]
	case w.Tail > 0:
		return lines[max(len(lines)-w.Tail, 0):]
	}
	return lines
}

// Rule fills one field from the lines inside its window. Apply reports
// whether anything matched; a miss leaves the field at its default.
type Rule struct {
	Field  Field
	Window Window
	Apply  func(m *doctree.Metadata, lines []string) bool
}

// Options tune extraction limits.
type Options struct {
	MaxJudges int
}

// DefaultOptions returns the standard limits.
func DefaultOptions() Options {
	return Options{MaxJudges: 3}
}

// SupremeCourt is the normalized name used when the header names the
// Supreme Court of India.
const SupremeCourt = "SUPREME COURT OF INDIA"

var (
	citationNumberRe = regexp.MustCompile(`\b\d{4}\s+INSC\s+\d+\b`)
	courtFallbackRe  = regexp.MustCompile(`(?i)\b(?:supreme|high)\s+court\b`)
	jurisdictionRe   = regexp.MustCompile(`(?i)\b(?:CIVIL|CRIMINAL)\s+APPELLATE\s+JURISDICTION\b`)
	convenienceRe    = regexp.MustCompile(`(?i)convenience\s+of\s+exposition`)
	primaryJudgeRe   = regexp.MustCompile(`^[A-Z][A-Z.'\s-]*,?\s*J\.$`)
)

// caseNumberPatterns are tried in order on each line; each requires a
// "No. ... of <year>" shape.
var caseNumberPatterns = []*regexp.Regexp{
	caseNumberRe(`(?:SPECIAL\s+LEAVE\s+PETITION|SLP)`),
	caseNumberRe(`(?:CIVIL|CRIMINAL)\s+APPEAL`),
	caseNumberRe(`WRIT\s+PETITION`),
	caseNumberRe(`TRANSFER\s+PETITION`),
}

func caseNumberRe(kind string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + kind +
		`\s*(?:\(\s*[A-Za-z.]+\s*\)\s*)?(?:\(\s*DIARY\s*\)\s*)?NO(?:S|\(S\))?\.?\s*\d[\d\s,&/\-–]*?\s+OF\s+\d{4}`)
}

// Rules returns the extraction table in evaluation order. Every rule is
// independent of the others.
func Rules(opts Options) []Rule {
	if opts.MaxJudges <= 0 {
		opts.MaxJudges = DefaultOptions().MaxJudges
	}
	return []Rule{
		{FieldCitationNumber, Head(5), func(m *doctree.Metadata, lines []string) bool {
			return firstMatch(lines, citationNumberRe, &m.CitationNumber)
		}},
		{FieldReportable, Head(10), func(m *doctree.Metadata, lines []string) bool {
			for _, l := range lines {
				if strings.Contains(strings.ToUpper(l), "REPORTABLE") {
					m.Reportable = true
					return true
				}
			}
			return false
		}},
		{FieldCourtName, Head(15), applyCourtName},
		{FieldJurisdiction, Head(20), applyJurisdiction},
		{FieldCaseNumber, Head(25), func(m *doctree.Metadata, lines []string) bool {
			for _, l := range lines {
				for _, re := range caseNumberPatterns {
					if s := re.FindString(l); s != "" {
						m.CaseNumber = collapse(s)
						return true
					}
				}
			}
			return false
		}},
		{FieldParties, All(), func(m *doctree.Metadata, lines []string) bool {
			m.Petitioner, m.Respondent = Parties(lines)
			return m.Petitioner != "" || m.Respondent != ""
		}},
		{FieldJudgmentDate, Tail(20), func(m *doctree.Metadata, lines []string) bool {
			m.JudgmentDate = FindDate(lines)
			return m.JudgmentDate != ""
		}},
		{FieldBench, All(), func(m *doctree.Metadata, lines []string) bool {
			m.Bench = Bench(lines, opts.MaxJudges)
			return len(m.Bench) > 0
		}},
		{FieldPrimaryJudge, All(), func(m *doctree.Metadata, lines []string) bool {
			for _, l := range lines {
				if len(l) < 50 && !strings.Contains(l, "HON") && primaryJudgeRe.MatchString(l) {
					m.PrimaryJudge = l
					return true
				}
			}
			return false
		}},
		{FieldConvenienceNote, All(), func(m *doctree.Metadata, lines []string) bool {
			for _, l := range lines {
				if convenienceRe.MatchString(l) {
					m.ConvenienceNote = l
					return true
				}
			}
			return false
		}},
	}
}

// Extract runs every rule over its window of lines.
func Extract(lines []string, opts Options) doctree.Metadata {
	m := doctree.NewMetadata()
	if len(lines) == 0 {
		return m
	}
	for _, r := range Rules(opts) {
		r.Apply(&m, r.Window.Of(lines))
	}
	return m
}

func applyCourtName(m *doctree.Metadata, lines []string) bool {
	for _, l := range lines {
		if strings.Contains(strings.ToUpper(l), SupremeCourt) {
			m.CourtName = SupremeCourt
			return true
		}
	}
	for _, l := range lines {
		if courtFallbackRe.MatchString(l) {
			m.CourtName = l
			return true
		}
	}
	return false
}

func applyJurisdiction(m *doctree.Metadata, lines []string) bool {
	for _, l := range lines {
		if jurisdictionRe.MatchString(l) || (len(l) < 50 && strings.Contains(strings.ToUpper(l), "JURISDICTION")) {
			m.Jurisdiction = l
			return true
		}
	}
	return false
}

func firstMatch(lines []string, re *regexp.Regexp, dst *string) bool {
	for _, l := range lines {
		if s := re.FindString(l); s != "" {
			*dst = collapse(s)
			return true
		}
	}
	return false
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
