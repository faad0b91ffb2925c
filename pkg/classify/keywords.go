package classify

import (
	"strings"
	"unicode"
)

// MaxKeywords caps how many tokens are taken from a text for relevance matching.
const MaxKeywords = 10

// stopWords are dropped during keyword extraction. The feeds mix Polish and
// English text, so both lists are present.
var stopWords = map[string]struct{}{
	// english
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "that": {}, "this": {},
	"what": {}, "when": {}, "where": {}, "will": {}, "have": {}, "has": {}, "been": {},
	"after": {}, "over": {}, "about": {}, "into": {}, "more": {}, "than": {}, "their": {},
	// polish
	"oraz": {}, "jest": {}, "jako": {}, "przez": {}, "tego": {}, "tym": {}, "ale": {},
	"czyli": {}, "ktory": {}, "ktora": {}, "ktore": {}, "który": {}, "która": {}, "które": {},
	"jego": {}, "jednak": {}, "może": {}, "moze": {}, "być": {}, "byc": {}, "roku": {},
	"tylko": {}, "także": {}, "takze": {}, "również": {}, "rowniez": {},
}

// Keywords extracts up to max significant tokens from the text: lowercase,
// strip everything outside letters and digits, split on whitespace, drop stop
// words and tokens of 3 runes or fewer, dedupe keeping first occurrence.
// max <= 0 means MaxKeywords.
func Keywords(text string, max int) []string {
	if max <= 0 {
		max = MaxKeywords
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	seen := map[string]struct{}{}
	tokens := make([]string, 0, max)
	for _, tok := range strings.Fields(cleaned) {
		if len([]rune(tok)) <= 3 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
		if len(tokens) >= max {
			break
		}
	}
	return tokens
}
