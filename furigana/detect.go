package furigana

import (
	"encoding/json"
	"strings"
)

// DetectFormat guesses the encoding of a raw annotation payload.
//
// It is a cheap syntactic sniff: first match wins, and false positives
// are acceptable because every downstream parser degrades gracefully
// instead of crashing. Ambiguous or empty input defaults to FormatJSON.
func DetectFormat(raw string) Format {
	trimmed := strings.TrimSpace(raw)

	// 1) JSON object mapping text to readings.
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") && json.Valid([]byte(trimmed)) {
		return FormatJSON
	}

	// 2) Inline ruby markup. Both the ruby and the reading opener must
	// be present, otherwise strings like "2 < ruby" would slip through.
	if strings.Contains(raw, "<ruby>") && strings.Contains(raw, "<rt>") {
		return FormatRuby
	}

	// 3) A parenthesized group anywhere in the payload.
	if hasParenGroup(raw) {
		return FormatBrackets
	}

	// 4) At least four whitespace-separated fields read as text/reading pairs.
	if len(strings.Fields(raw)) >= 4 {
		return FormatSpaced
	}

	// 5) Tagger output carries tab-separated surfaces with comma-separated features.
	if strings.Contains(raw, "\t") && strings.Contains(raw, ",") {
		return FormatMecab
	}

	// 6) JSON array of segmenter records.
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && json.Valid([]byte(trimmed)) {
		return FormatKuromoji
	}

	return FormatJSON
}

// hasParenGroup reports whether s contains "(...)" with at least one
// character between the parentheses.
func hasParenGroup(s string) bool {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return false
	}
	closing := strings.IndexByte(s[open+1:], ')')
	return closing > 0
}
