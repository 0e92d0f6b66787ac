package furigana

import "strings"

// parseSpacedFormat handles whitespace-separated payloads read pairwise:
// field 0 is text, field 1 its reading, field 2 the next text, and so
// on. A trailing unpaired field is emitted unannotated.
//
// The original text is not consulted — alignment is the caller's
// responsibility for this format.
func parseSpacedFormat(raw, _ string) []Token {
	fields := strings.Fields(raw)

	tokens := make([]Token, 0, (len(fields)+1)/2)
	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			tokens = append(tokens, Token{Text: fields[i], Reading: fields[i+1], Annotated: true})
		} else {
			tokens = append(tokens, Token{Text: fields[i]})
		}
	}

	return tokens
}
