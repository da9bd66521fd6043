package planner

import (
	"regexp"
	"sort"
	"strings"

	"github.com/boilerai/boilerplan/internal/catalog"
	"github.com/boilerai/boilerplan/internal/domain"
)

type optionHit struct {
	code   string
	offset int
}

// ResolvePendingChoices reads a student's free-text answer and maps it onto
// the pending choices. Course codes match first, then option titles. A
// "best for" keyword is used only when nothing else matched the choice and
// the keyword points at exactly one option. Each choice keeps at most
// Choose picks in order of appearance. Choices with no confident match are
// left out of the result.
func ResolvePendingChoices(text string, request domain.ChoiceRequest) domain.SelectedChoices {
	out := make(domain.SelectedChoices)
	if strings.TrimSpace(text) == "" {
		return out
	}
	lower := strings.ToLower(text)
	codes := catalog.FindCodes(text)

	for _, choice := range request.Sorted() {
		hits := codeHits(choice, codes)
		hits = append(hits, titleHits(choice, lower)...)
		if len(hits) == 0 {
			if hit, ok := keywordHit(choice, lower); ok {
				hits = append(hits, hit)
			}
		}
		if picks := firstPicks(hits, choice.Choose); len(picks) > 0 {
			out[choice.Key] = picks
		}
	}
	return out
}

func codeHits(choice domain.Choice, codes []catalog.CodeMatch) []optionHit {
	var hits []optionHit
	for _, m := range codes {
		if choice.HasOption(m.Code) {
			hits = append(hits, optionHit{code: m.Code, offset: m.Offset})
		}
	}
	return hits
}

// titleHits matches option titles as whole phrases. Titles shared by several
// options are ambiguous and never match.
func titleHits(choice domain.Choice, lower string) []optionHit {
	byTitle := make(map[string][]string)
	for _, o := range choice.Options {
		t := strings.ToLower(strings.TrimSpace(o.Title))
		if t != "" {
			byTitle[t] = append(byTitle[t], o.Code)
		}
	}

	var hits []optionHit
	for title, codes := range byTitle {
		if len(codes) != 1 {
			continue
		}
		if loc := phrasePattern(title).FindStringIndex(lower); loc != nil {
			hits = append(hits, optionHit{code: codes[0], offset: loc[0]})
		}
	}
	return hits
}

func keywordHit(choice domain.Choice, lower string) (optionHit, bool) {
	var found []optionHit
	for _, o := range choice.Options {
		best := -1
		for _, kw := range o.BestFor {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if loc := phrasePattern(kw).FindStringIndex(lower); loc != nil && (best < 0 || loc[0] < best) {
				best = loc[0]
			}
		}
		if best >= 0 {
			found = append(found, optionHit{code: o.Code, offset: best})
		}
	}
	if len(found) != 1 {
		return optionHit{}, false
	}
	return found[0], true
}

func firstPicks(hits []optionHit, limit int) []string {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].offset != hits[j].offset {
			return hits[i].offset < hits[j].offset
		}
		return hits[i].code < hits[j].code
	})
	var picks []string
	seen := make(map[string]bool)
	for _, h := range hits {
		if len(picks) >= limit {
			break
		}
		if seen[h.code] {
			continue
		}
		seen[h.code] = true
		picks = append(picks, h.code)
	}
	return picks
}

func phrasePattern(phrase string) *regexp.Regexp {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b` + strings.Join(words, `\s+`) + `\b`)
}
