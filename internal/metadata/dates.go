package metadata

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var months = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5, "june": 6,
	"july": 7, "august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6, "jul": 7, "aug": 8,
	"sep": 9, "sept": 9, "oct": 10, "nov": 11, "dec": 12,
}

type datePattern struct {
	re               *regexp.Regexp
	day, month, year int // submatch indexes
}

var datePatterns = []datePattern{
	// 14th August, 2025
	{regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+([A-Za-z]+)\.?,?\s+(\d{4})\b`), 1, 2, 3},
	// August 14, 2025
	{regexp.MustCompile(`(?i)\b([A-Za-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`), 2, 1, 3},
}

// FindDate returns the first parseable date in lines as DD-MM-YYYY,
// scanning from the bottom where the signature date sits.
func FindDate(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		if d := ParseDate(lines[i]); d != "" {
			return d
		}
	}
	return ""
}

// ParseDate returns the first date in s as DD-MM-YYYY, or "" when no
// match carries a known month name and a valid day.
func ParseDate(s string) string {
	for _, p := range datePatterns {
		for _, m := range p.re.FindAllStringSubmatch(s, -1) {
			month, ok := months[strings.ToLower(m[p.month])]
			if !ok {
				continue
			}
			day, err := strconv.Atoi(m[p.day])
			if err != nil || day < 1 || day > 31 {
				continue
			}
			return fmt.Sprintf("%02d-%02d-%s", day, month, m[p.year])
		}
	}
	return ""
}
