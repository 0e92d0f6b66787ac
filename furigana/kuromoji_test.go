package furigana

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKuromojiFormat_SurfaceForm(t *testing.T) {
	tokens := parseKuromojiFormat(`[{"surface_form":"犬","reading":"イヌ"}]`, "")

	require.Equal(t, []Token{
		{Text: "犬", Reading: "イヌ", Annotated: true},
	}, tokens)
}

func TestParseKuromojiFormat_SurfaceFallback(t *testing.T) {
	tokens := parseKuromojiFormat(`[{"surface":"犬","reading":"イヌ"}]`, "")

	require.Equal(t, []Token{
		{Text: "犬", Reading: "イヌ", Annotated: true},
	}, tokens)
}

func TestParseKuromojiFormat_SurfaceFormTakesPrecedence(t *testing.T) {
	tokens := parseKuromojiFormat(`[{"surface_form":"犬","surface":"猫","reading":"イヌ"}]`, "")

	require.Equal(t, "犬", tokens[0].Text)
}

func TestParseKuromojiFormat_NoReading_Unannotated(t *testing.T) {
	tokens := parseKuromojiFormat(`[{"surface_form":"が"}]`, "")

	require.Equal(t, []Token{{Text: "が"}}, tokens)
}

func TestParseKuromojiFormat_ReadingEqualsSurface_Unannotated(t *testing.T) {
	tokens := parseKuromojiFormat(`[{"surface_form":"イヌ","reading":"イヌ"}]`, "")

	require.Equal(t, []Token{{Text: "イヌ"}}, tokens)
}

func TestParseKuromojiFormat_RecordWithoutSurface_Skipped(t *testing.T) {
	tokens := parseKuromojiFormat(`[{"reading":"イヌ"},{"surface_form":"犬","reading":"イヌ"}]`, "")

	require.Equal(t, []Token{
		{Text: "犬", Reading: "イヌ", Annotated: true},
	}, tokens)
}

func TestParseKuromojiFormat_InvalidJSON_NoTokens(t *testing.T) {
	require.Empty(t, parseKuromojiFormat("[broken", ""))
}
