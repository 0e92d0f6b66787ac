package tokenize

import (
	"encoding/json"
	"strings"
)

// mecabFeatureCount is the feature layout of IPA-dictionary tagger
// output: pos1..pos4, inflection type, inflection form, base form,
// reading, pronunciation.
const mecabFeatureCount = 9

// MecabLines serializes tokens into line-oriented tagger output,
// terminated by the EOS sentinel. The reading lands at feature index 7,
// where the mecab parser of package furigana expects it.
func MecabLines(tokens []Token) string {
	var b strings.Builder

	for _, t := range tokens {
		reading := t.Reading
		if reading == "" {
			reading = "*"
		}

		features := make([]string, 0, mecabFeatureCount)
		features = append(features, splitPOS(t.POS)...)
		features = append(features, "*", "*", t.Surface, reading, reading)

		b.WriteString(t.Surface)
		b.WriteByte('\t')
		b.WriteString(strings.Join(features, ","))
		b.WriteByte('\n')
	}

	b.WriteString("EOS")
	return b.String()
}

// splitPOS expands a comma-joined part-of-speech string into exactly
// four fields, padding with the "*" placeholder.
func splitPOS(pos string) []string {
	fields := make([]string, 4)
	for i := range fields {
		fields[i] = "*"
	}
	if pos == "" {
		return fields
	}
	for i, f := range strings.Split(pos, ",") {
		if i == len(fields) {
			break
		}
		fields[i] = f
	}
	return fields
}

// ReadingMap serializes kanji-bearing tokens into an ordered key→reading
// JSON object, the FormatJSON encoding of package furigana. The object
// is built by hand because entry order is significant and encoding/json
// maps would sort the keys.
func ReadingMap(tokens []Token) string {
	var b strings.Builder
	b.WriteByte('{')

	first := true
	for _, t := range tokens {
		if !ContainsKanji(t.Surface) || t.Reading == "" {
			continue
		}
		reading := KatakanaToHiragana(t.Reading)
		if reading == t.Surface {
			continue
		}

		if !first {
			b.WriteByte(',')
		}
		first = false

		key, _ := json.Marshal(t.Surface)
		value, _ := json.Marshal(reading)
		b.Write(key)
		b.WriteByte(':')
		b.Write(value)
	}

	b.WriteByte('}')
	return b.String()
}

// SpacedPairs serializes kanji-bearing tokens into whitespace-separated
// text/reading pairs, the FormatSpaced encoding of package furigana.
func SpacedPairs(tokens []Token) string {
	var fields []string
	for _, t := range tokens {
		if !ContainsKanji(t.Surface) || t.Reading == "" {
			continue
		}
		fields = append(fields, t.Surface, KatakanaToHiragana(t.Reading))
	}
	return strings.Join(fields, " ")
}
