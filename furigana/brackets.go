package furigana

import (
	"strings"
	"unicode"
)

// parseBracketsFormat handles payloads encoding pairs as text(reading),
// with full-width parentheses accepted as well: 日本語（にほんご）.
//
// Each pair found in the raw string is located as the next unconsumed
// occurrence in the original text; the gap before the match becomes an
// unannotated token and the consumption cursor advances past it, so the
// same span is never annotated twice. The unconsumed tail of the
// original text is emitted as one final unannotated token.
func parseBracketsFormat(raw, original string) []Token {
	var tokens []Token

	pos := 0      // consumption cursor into original
	segStart := 0 // start of the current base-text segment in raw

	for segStart < len(raw) {
		rel := strings.IndexAny(raw[segStart:], "(（")
		if rel < 0 {
			break
		}
		open := segStart + rel

		closer := ")"
		openLen := 1
		if raw[open] != '(' {
			closer = "）"
			openLen = len("（")
		}

		closeRel := strings.Index(raw[open+openLen:], closer)
		if closeRel < 0 {
			// unterminated group, nothing more to match
			break
		}
		closeAt := open + openLen + closeRel

		base := lastField(raw[segStart:open])
		reading := raw[open+openLen : closeAt]
		segStart = closeAt + len(closer)

		if base == "" || reading == "" {
			continue
		}

		idx := strings.Index(original[pos:], base)
		if idx < 0 {
			// pair does not align with the original text, skip it
			continue
		}

		if idx > 0 {
			tokens = append(tokens, Token{Text: original[pos : pos+idx]})
		}
		tokens = append(tokens, Token{Text: base, Reading: reading, Annotated: true})
		pos += idx + len(base)
	}

	if pos < len(original) {
		tokens = append(tokens, Token{Text: original[pos:]})
	}

	return tokens
}

// lastField returns the run of non-space characters immediately before
// the opening parenthesis, i.e. the base text of a text(reading) pair.
func lastField(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[i+1:]
	}
	return s
}
