package furigana

import "strings"

const (
	rubyOpen  = "<ruby>"
	rubyClose = "</ruby>"
	rtOpen    = "<rt>"
	rtClose   = "</rt>"
)

// parseRubyFormat handles a payload that is itself inline ruby markup:
// the annotated runs sit inside <ruby>base<rt>reading</rt></ruby> and
// everything between them is plain text.
//
// The scan is an index-cursor walk over the raw string rather than a
// regex, so malformed fragments are skipped instead of derailing the
// whole parse. Whitespace-only gaps between pairs are dropped.
func parseRubyFormat(raw, _ string) []Token {
	var tokens []Token

	pos := 0
	for {
		start := strings.Index(raw[pos:], rubyOpen)
		if start < 0 {
			break
		}
		start += pos

		if gap := raw[pos:start]; strings.TrimSpace(gap) != "" {
			tokens = append(tokens, Token{Text: gap})
		}

		body := raw[start+len(rubyOpen):]
		rt := strings.Index(body, rtOpen)
		rtEnd := strings.Index(body, rtClose)
		end := strings.Index(body, rubyClose)

		// A usable pair needs <rt> ... </rt> ... </ruby> in that order,
		// and the base must not contain another opener — that would mean
		// the current <ruby> never closed and a fresh pair started.
		if rt < 0 || rtEnd < rt || end < rtEnd || strings.Contains(body[:rt], rubyOpen) {
			pos = start + len(rubyOpen)
			continue
		}

		base := stripRubyBase(body[:rt])
		reading := body[rt+len(rtOpen) : rtEnd]
		if base != "" {
			tokens = append(tokens, Token{Text: base, Reading: reading, Annotated: true})
		}

		pos = start + len(rubyOpen) + end + len(rubyClose)
	}

	if tail := raw[pos:]; strings.TrimSpace(tail) != "" {
		tokens = append(tokens, Token{Text: tail})
	}

	return tokens
}

// stripRubyBase removes optional <rb> wrappers around the base text.
func stripRubyBase(s string) string {
	s = strings.ReplaceAll(s, "<rb>", "")
	s = strings.ReplaceAll(s, "</rb>", "")
	return strings.TrimSpace(s)
}
