package furigana

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// readingPair is one text→reading entry extracted from a payload,
// in the order it was declared.
type readingPair struct {
	text    string
	reading string
}

// parseJSONFormat handles a JSON object mapping substrings of the
// original text to their readings.
//
// Entry order matters: entries are matched against the original text in
// the order they appear in the object, not in text order. If the payload
// is not a valid string→string object, a generic key:value scan over the
// raw string is used instead.
func parseJSONFormat(raw, original string) []Token {
	pairs, err := decodeOrderedObject(raw)
	if err != nil {
		log.Debug().Err(err).Msg("annotation payload is not a reading map, falling back to pair scan")
		pairs = scanKeyValuePairs(raw)
	}
	return matchPairs(pairs, original)
}

// decodeOrderedObject decodes a JSON object into pairs while preserving
// declaration order, which encoding/json maps would lose. Any value that
// is not a string rejects the whole payload.
func decodeOrderedObject(raw string) ([]readingPair, error) {
	dec := json.NewDecoder(strings.NewReader(raw))

	// opening brace; anything else is not a reading map
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("payload is not a JSON object")
	}

	var pairs []readingPair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		pairs = append(pairs, readingPair{text: key, reading: value})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return pairs, nil
}

// scanKeyValuePairs extracts key:value pairs from free-form text like
// `"日本語":"にほんご", 学ぶ:まなぶ`. Segments without a colon are skipped.
func scanKeyValuePairs(raw string) []readingPair {
	var pairs []readingPair

	segments := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	for _, seg := range segments {
		colon := strings.Index(seg, ":")
		if colon < 0 {
			continue
		}

		key := trimPairPart(seg[:colon])
		value := trimPairPart(seg[colon+1:])
		if key == "" || value == "" {
			continue
		}

		pairs = append(pairs, readingPair{text: key, reading: value})
	}

	return pairs
}

// trimPairPart strips surrounding whitespace, quotes and stray braces
// from one side of a key:value pair.
func trimPairPart(s string) string {
	return strings.Trim(strings.TrimSpace(s), "\"'{}[]")
}

// matchPairs applies the left-to-right consume-and-match algorithm:
// for each pair, find the first occurrence of its text in the
// yet-unconsumed suffix of the original string, emit the gap before it
// as an unannotated token, then the match as an annotated one. Pairs not
// found in the remaining suffix are skipped silently, and previously
// consumed spans are never rematched.
func matchPairs(pairs []readingPair, original string) []Token {
	var tokens []Token

	pos := 0
	for _, p := range pairs {
		if p.text == "" {
			continue
		}

		idx := strings.Index(original[pos:], p.text)
		if idx < 0 {
			continue
		}

		if idx > 0 {
			tokens = append(tokens, Token{Text: original[pos : pos+idx]})
		}

		tokens = append(tokens, Token{Text: p.text, Reading: p.reading, Annotated: true})
		pos += idx + len(p.text)
	}

	if pos < len(original) {
		tokens = append(tokens, Token{Text: original[pos:]})
	}

	return tokens
}
