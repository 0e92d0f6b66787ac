package furigana

// Format identifies the encoding of a raw annotation payload,
// e.g. a JSON reading map, inline ruby markup or tagger output.
type Format string

const (
	// FormatJSON is a JSON object mapping substrings of the original
	// text to their readings: {"日本語":"にほんご"}.
	FormatJSON Format = "json"

	// FormatRuby is inline ruby markup: <ruby>日本語<rt>にほんご</rt></ruby>.
	FormatRuby Format = "ruby"

	// FormatBrackets is text with readings in parentheses: 日本語(にほんご).
	FormatBrackets Format = "brackets"

	// FormatSpaced is whitespace-separated text/reading pairs: 猫 ねこ 犬 いぬ.
	FormatSpaced Format = "spaced"

	// FormatMecab is line-oriented tagger output: surface, a tab, then
	// comma-separated features with the reading at index 7.
	FormatMecab Format = "mecab"

	// FormatKuromoji is a JSON array of segmenter records with
	// surface_form/surface and reading fields.
	FormatKuromoji Format = "kuromoji"
)

// Token represents a contiguous run of the original text, optionally
// paired with a phonetic reading.
//
// For well-formed input, concatenating the Text fields of a parsed token
// sequence in order reproduces the original text exactly. Parsers that
// cannot align their matches against the original text emit a partial or
// empty sequence instead of failing.
type Token struct {
	// Text is the base text as it appears in the original string.
	Text string `json:"text"`

	// Reading is the phonetic annotation for Text. Empty when this run
	// has no distinct reading.
	Reading string `json:"reading,omitempty"`

	// Annotated reports whether Reading should be rendered as a ruby
	// annotation above Text.
	Annotated bool `json:"annotated"`
}

// Result is the output of a parse operation.
type Result struct {
	// Markup combines escaped plain text and ruby fragments for the
	// annotated tokens. It is safe to embed as an HTML fragment.
	Markup string `json:"markup"`

	// PlainText is the original unannotated text, unchanged.
	PlainText string `json:"plain_text"`

	// HasAnnotations is true iff at least one token carries a reading
	// that differs from its text.
	//
	// NOTE: false can mean either "no annotations existed" or
	// "annotations existed but could not be parsed" — the two are
	// indistinguishable by design.
	HasAnnotations bool `json:"has_annotations"`
}
