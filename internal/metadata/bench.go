package metadata

import (
	"regexp"
	"strings"
)

var (
	honorificRe     = regexp.MustCompile(`(?i)HON['’]?BLE\s+(?:(?:MR|MS|MRS|DR)\.?\s+)?(?:THE\s+)?(?:CHIEF\s+)?JUSTICE\s+[A-Z][A-Za-z.'\s-]*?,?\s*J\.`)
	parenthesizedRe = regexp.MustCompile(`\(([A-Z][A-Z.'\s-]{2,})\)`)
)

const signatureLines = 10

// Bench collects up to maxJudges distinct honorific names. When the text
// has none, it falls back to parenthesized all-caps names in the
// signature block.
func Bench(lines []string, maxJudges int) []string {
	var out []string
	seen := map[string]bool{}
	add := func(name string) bool {
		name = collapse(name)
		if seen[name] {
			return false
		}
		seen[name] = true
		out = append(out, name)
		return len(out) >= maxJudges
	}
	for _, l := range lines {
		for _, name := range honorificRe.FindAllString(l, -1) {
			if add(name) {
				return out
			}
		}
	}
	if len(out) > 0 {
		return out
	}

	tail := strings.Join(Tail(signatureLines).Of(lines), " ")
	for _, m := range parenthesizedRe.FindAllStringSubmatch(tail, -1) {
		name := strings.TrimSpace(m[1])
		if !isSignatureName(name) {
			continue
		}
		if add("HON'BLE JUSTICE " + name) {
			break
		}
	}
	return out
}

// isSignatureName accepts parenthesized names of at least two words, which
// rules out abbreviations such as "(CRL.)".
func isSignatureName(name string) bool {
	if strings.HasSuffix(name, ".") {
		return false
	}
	return len(strings.Fields(name)) >= 2
}
