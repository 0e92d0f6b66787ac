// Package furigana parses phonetic reading annotations in several known
// textual encodings and renders them as inline ruby markup.
//
// The package is the pure core of the application: every function is
// stateless, side-effect-free apart from best-effort debug logging, and
// safe for concurrent use. Parse failures never surface as errors —
// the worst case is the escaped original text with HasAnnotations false.
package furigana

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// parsers dispatches a format tag to its parser. Every parser shares the
// signature (raw, original) → token sequence and degrades to a partial
// or empty sequence on malformed input.
var parsers = map[Format]func(raw, original string) []Token{
	FormatJSON:     parseJSONFormat,
	FormatRuby:     parseRubyFormat,
	FormatBrackets: parseBracketsFormat,
	FormatSpaced:   parseSpacedFormat,
	FormatMecab:    parseMecabFormat,
	FormatKuromoji: parseKuromojiFormat,
}

// Parse converts a raw annotation payload into rendered ruby markup.
// An empty format defaults to FormatJSON; an unknown tag, an empty or
// whitespace-only payload and any internal failure all degrade to the
// plain-text result.
func Parse(raw, original string, format Format) Result {
	if format == "" {
		format = FormatJSON
	}

	return safely(original, func() Result {
		if strings.TrimSpace(raw) == "" {
			return plainResult(original)
		}

		parser, ok := parsers[format]
		if !ok {
			return plainResult(original)
		}

		tokens := parser(raw, original)

		return Result{
			Markup:         Render(tokens),
			PlainText:      original,
			HasAnnotations: hasAnnotations(tokens),
		}
	})
}

// ParseAuto detects the payload format and delegates to Parse.
func ParseAuto(raw, original string) Result {
	return Parse(raw, original, DetectFormat(raw))
}

// Validate reports whether the payload yields at least one usable
// annotation for the original text. It never fails.
func Validate(raw, original string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return ParseAuto(raw, original).HasAnnotations
}

// safely is the attempt-else-default combinator shared by every public
// entry point: any panic inside fn is swallowed, logged at debug level
// and replaced by the plain-text degradation of the original text.
func safely(original string, fn func() Result) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug().Interface("panic", r).Msg("annotation parse failed, degrading to plain text")
			res = plainResult(original)
		}
	}()
	return fn()
}

// plainResult is the degradation target: escaped original text, no annotations.
func plainResult(original string) Result {
	return Result{
		Markup:    escape(original),
		PlainText: original,
	}
}

func hasAnnotations(tokens []Token) bool {
	for _, t := range tokens {
		if t.Reading != "" && t.Reading != t.Text {
			return true
		}
	}
	return false
}
