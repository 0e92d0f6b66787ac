package furigana

import "strings"

// escaper neutralizes the characters that could break out of an HTML
// fragment. A pure replacer is used on purpose: rendering must not
// depend on any DOM or template API.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

func escape(s string) string {
	return escaper.Replace(s)
}

// Render concatenates the tokens into an inline HTML fragment. Tokens
// whose reading differs from their text become
// <ruby>text<rt>reading</rt></ruby>; everything else is emitted as
// escaped plain text.
func Render(tokens []Token) string {
	var b strings.Builder

	for _, t := range tokens {
		if t.Annotated && t.Reading != "" && t.Reading != t.Text {
			b.WriteString("<ruby>")
			b.WriteString(escape(t.Text))
			b.WriteString("<rt>")
			b.WriteString(escape(t.Reading))
			b.WriteString("</rt></ruby>")
			continue
		}
		b.WriteString(escape(t.Text))
	}

	return b.String()
}
