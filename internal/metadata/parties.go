package metadata

import (
	"regexp"
	"strings"
)

// Backward walks stop at a line containing any of these.
var forbiddenKeywords = []string{
	"COURT", "JUDGMENT", "DATE", "BENCH", "CITATION", "VERSUS", "JURISDICTION", "PETITION",
}

const maxBackwardLines = 4

var (
	// Uppercase designations anywhere, or any casing after a dot leader.
	petitionerRe = regexp.MustCompile(`(?:\.{2,}|…)\s*(?i:(?:petitioner|appellant)(?:\(s\)|s)?)|\b(?:PETITIONER|APPELLANT)(?:\(S\)|S)?`)
	respondentRe = regexp.MustCompile(`(?:\.{2,}|…)\s*(?i:respondent(?:\(s\)|s)?)|\bRESPONDENT(?:\(S\)|S)?`)

	messrsRe         = regexp.MustCompile(`(?i)^m\s*/\s*s\b\.?\s*`)
	trailingMarkerRe = regexp.MustCompile(`(?i)(?:\s*(?:\.{2,}|…))*\s*(?:(?:petitioner|appellant|respondent)(?:\(s\)|s)?)?\s*$`)
	leadingLeaderRe  = regexp.MustCompile(`^(?:\.{2,}|…)+\s*`)
)

// Parties finds the petitioner and respondent names in a single forward
// pass, stopping once both are known.
func Parties(lines []string) (petitioner, respondent string) {
	var havePet, haveResp bool
	for i, l := range lines {
		if !havePet {
			if loc := petitionerRe.FindStringIndex(l); loc != nil {
				petitioner, havePet = partyAt(lines, i, loc[0]), true
			}
		}
		if !haveResp {
			if loc := respondentRe.FindStringIndex(l); loc != nil {
				respondent, haveResp = partyAt(lines, i, loc[0]), true
			}
		}
		if havePet && haveResp {
			break
		}
	}
	return petitioner, respondent
}

// partyAt builds a name from the text before the marker on line i plus up
// to four preceding lines.
func partyAt(lines []string, i, markerAt int) string {
	var parts []string
	if prefix := CleanName(lines[i][:markerAt]); prefix != "" {
		parts = append(parts, prefix)
	}
	for j := i - 1; j >= 0 && j >= i-maxBackwardLines; j-- {
		l := strings.TrimSpace(lines[j])
		if l == "" || haltsBackwardWalk(l) {
			break
		}
		parts = append([]string{l}, parts...)
	}
	return CleanName(strings.Join(parts, " "))
}

func haltsBackwardWalk(line string) bool {
	upper := strings.ToUpper(line)
	for _, kw := range forbiddenKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	// A case number line belongs to the header, never to a party name.
	for _, re := range caseNumberPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// CleanName canonicalizes a leading M/s and strips trailing designation
// remnants such as "...PETITIONER(S)".
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	name = trailingMarkerRe.ReplaceAllString(name, "")
	name = leadingLeaderRe.ReplaceAllString(name, "")
	if loc := messrsRe.FindStringIndex(name); loc != nil {
		name = "M/s. " + name[loc[1]:]
	}
	return strings.TrimSpace(name)
}
