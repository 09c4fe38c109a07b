// Package toc extracts the table of contents that some judgments print
// between the case header and the first numbered paragraph.
package toc

import (
	"regexp"
	"strings"

	"github.com/dgallion1/judgest/internal/doctree"
)

// Limits bound the index scan.
type Limits struct {
	MaxItems     int // items returned
	ScanLimit    int // items gathered before the scan stops
	HeaderMaxLen int // an INDEX header line is shorter than this
}

// DefaultLimits returns the standard index limits.
func DefaultLimits() Limits {
	return Limits{MaxItems: 25, ScanLimit: 30, HeaderMaxLen: 25}
}

// TierRule maps a leading marker shape to a tier.
type TierRule struct {
	Tier doctree.Tier
	re   *regexp.Regexp
}

// Precedence is the order in which marker shapes are tried; the first
// match wins. A single uppercase letter such as "I." is therefore main.
var Precedence = []TierRule{
	{doctree.TierMain, regexp.MustCompile(`^[A-Z]\.`)},
	{doctree.TierRoman, regexp.MustCompile(`^[IVXLC]+\.`)},
	{doctree.TierLetter, regexp.MustCompile(`^[a-z]\.`)},
	{doctree.TierSmallRoman, regexp.MustCompile(`^[ivxlc]+\.`)},
}

var (
	numberedRe  = regexp.MustCompile(`^\d+\.`)
	dotLeaderRe = regexp.MustCompile(`\s*\.{2,}\s*\d+$`)
)

const (
	minPlainLen  = 5
	plainExclude = "For the"
)

// Classify returns the tier of an index line. Lines with no marker are
// plain when long enough; ok is false for lines that are not entries.
func Classify(line string) (tier doctree.Tier, ok bool) {
	for _, r := range Precedence {
		if r.re.MatchString(line) {
			return r.Tier, true
		}
	}
	if len(line) > minPlainLen && !strings.HasPrefix(line, plainExclude) {
		return doctree.TierPlain, true
	}
	return "", false
}

// StripPageRef removes a trailing dot leader and page number.
func StripPageRef(line string) string {
	return strings.TrimSpace(dotLeaderRe.ReplaceAllString(line, ""))
}

// Extract collects index entries following a short line containing
// "INDEX". The first numbered paragraph ends the index.
func Extract(lines []string, lim Limits) []doctree.IndexItem {
	if lim.MaxItems <= 0 || lim.ScanLimit <= 0 || lim.HeaderMaxLen <= 0 {
		lim = DefaultLimits()
	}

	var items []doctree.IndexItem
	inIndex := false
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if !inIndex {
			if len(l) < lim.HeaderMaxLen && strings.Contains(strings.ToUpper(l), "INDEX") {
				inIndex = true
			}
			continue
		}
		if numberedRe.MatchString(l) {
			break
		}
		l = StripPageRef(l)
		if l == "" {
			continue
		}
		if tier, ok := Classify(l); ok {
			items = append(items, doctree.IndexItem{Text: l, Tier: tier})
		}
		if len(items) >= lim.ScanLimit {
			break
		}
	}

	if len(items) > lim.MaxItems {
		items = items[:lim.MaxItems]
	}
	return items
}
