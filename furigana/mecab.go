package furigana

import "strings"

// mecabReadingIndex is the position of the reading inside the
// comma-separated feature list of a tagger output line.
const mecabReadingIndex = 7

// mecabPlaceholder marks an absent feature value in tagger output.
const mecabPlaceholder = "*"

// parseMecabFormat handles newline-delimited tagger output. Each line is
// `surface<TAB>features`, the features comma-separated with the reading
// at index 7. The EOS sentinel line produces no token. A token is
// annotated only when its reading is present, not the "*" placeholder
// and different from the surface text.
func parseMecabFormat(raw, _ string) []Token {
	var tokens []Token

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.TrimSpace(line) == "EOS" {
			continue
		}

		surface, features, _ := strings.Cut(line, "\t")
		if surface == "" {
			continue
		}

		var reading string
		fields := strings.Split(features, ",")
		if len(fields) > mecabReadingIndex && fields[mecabReadingIndex] != mecabPlaceholder {
			reading = fields[mecabReadingIndex]
		}

		token := Token{Text: surface}
		if reading != "" && reading != surface {
			token.Reading = reading
			token.Annotated = true
		}
		tokens = append(tokens, token)
	}

	return tokens
}
