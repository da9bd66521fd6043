package catalog

import (
	"regexp"
	"strings"
)

var (
	compactCodePattern  = regexp.MustCompile(`^([A-Z]{2,5})(\d{3,5})$`)
	embeddedCodePattern = regexp.MustCompile(`(?i)\b([a-z]{2,5})\s?(\d{3,5})\b`)
)

// NormalizeCode collapses shorthand course codes ("CS180", "cs 180",
// "cs18000") to the canonical "CS 18000" form. Three- and four-digit numbers
// are right-padded with zeros. Strings that do not look like a course code
// (requirement placeholders such as "Free Elective 1") come back trimmed with
// inner whitespace collapsed. Normalization is idempotent.
func NormalizeCode(raw string) string {
	trimmed := strings.Join(strings.Fields(raw), " ")
	compact := strings.ToUpper(strings.ReplaceAll(trimmed, " ", ""))
	m := compactCodePattern.FindStringSubmatch(compact)
	if m == nil {
		return trimmed
	}
	return m[1] + " " + padNumber(m[2])
}

// NormalizeCodes normalizes every entry, dropping blanks and duplicates while
// keeping first-seen order.
func NormalizeCodes(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		code := NormalizeCode(r)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}

// CodeMatch is a course code found in free text. Offset is the byte offset
// of the match.
type CodeMatch struct {
	Code   string
	Offset int
}

// FindCodes returns every course-code-like token in text, normalized, in
// order of appearance. Repeated codes are reported each time.
func FindCodes(text string) []CodeMatch {
	idx := embeddedCodePattern.FindAllStringSubmatchIndex(text, -1)
	out := make([]CodeMatch, 0, len(idx))
	for _, m := range idx {
		out = append(out, CodeMatch{
			Code:   NormalizeCode(text[m[2]:m[3]] + text[m[4]:m[5]]),
			Offset: m[0],
		})
	}
	return out
}

// ExtractCodes finds course-code-like tokens in free text and returns them
// normalized and deduplicated, in order of appearance.
func ExtractCodes(text string) []string {
	matches := FindCodes(text)
	raw := make([]string, 0, len(matches))
	for _, m := range matches {
		raw = append(raw, m.Code)
	}
	return NormalizeCodes(raw)
}

func padNumber(num string) string {
	for len(num) < 5 {
		num += "0"
	}
	return num
}
