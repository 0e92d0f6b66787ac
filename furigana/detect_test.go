package furigana

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectFormat_JSONObject(t *testing.T) {
	require.Equal(t, FormatJSON, DetectFormat(`{"日本語":"にほんご"}`))
}

func TestDetectFormat_RubyMarkup(t *testing.T) {
	require.Equal(t, FormatRuby, DetectFormat("<ruby>日本語<rt>にほんご</rt></ruby>"))
}

func TestDetectFormat_RubyWinsOverBrackets(t *testing.T) {
	// ruby markup containing a parenthesized group must still detect as
	// ruby: the decision order short-circuits before the bracket check.
	raw := "<ruby>日本語(語)<rt>にほんご</rt></ruby>"
	require.Equal(t, FormatRuby, DetectFormat(raw))
}

func TestDetectFormat_BracketPair(t *testing.T) {
	require.Equal(t, FormatBrackets, DetectFormat("日本語(にほんご)を学ぶ"))
}

func TestDetectFormat_FourSpacedFields(t *testing.T) {
	require.Equal(t, FormatSpaced, DetectFormat("日本語 にほんご 学習 がくしゅう"))
}

func TestDetectFormat_ThreeFields_NotSpaced(t *testing.T) {
	require.NotEqual(t, FormatSpaced, DetectFormat("日本語 にほんご 学習"))
}

func TestDetectFormat_TabAndComma_Mecab(t *testing.T) {
	require.Equal(t, FormatMecab, DetectFormat("犬\t名詞,一般,*,*,*,*,*,イヌ,イヌ"))
}

func TestDetectFormat_JSONArray_Kuromoji(t *testing.T) {
	require.Equal(t, FormatKuromoji, DetectFormat(`[{"surface_form":"犬","reading":"イヌ"}]`))
}

func TestDetectFormat_Empty_DefaultsToJSON(t *testing.T) {
	require.Equal(t, FormatJSON, DetectFormat(""))
	require.Equal(t, FormatJSON, DetectFormat("   "))
}

func TestDetectFormat_MalformedObject_DefaultsToJSON(t *testing.T) {
	// starts with '{' but is not valid JSON and matches nothing else
	require.Equal(t, FormatJSON, DetectFormat("{oops"))
}

func TestDetectFormat_Deterministic(t *testing.T) {
	inputs := []string{
		`{"a":"b"}`,
		"<ruby>x<rt>y</rt></ruby>",
		"a(b)",
		"a b c d",
		"a\tb,c",
		`[{"surface":"x"}]`,
		"",
	}
	for _, raw := range inputs {
		require.Equal(t, DetectFormat(raw), DetectFormat(raw), "input %q", raw)
	}
}
