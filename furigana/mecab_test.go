package furigana

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMecabFormat_SingleLineWithEOS(t *testing.T) {
	tokens := parseMecabFormat("犬\t名詞,一般,*,*,*,*,*,イヌ,イヌ\nEOS", "")

	require.Equal(t, []Token{
		{Text: "犬", Reading: "イヌ", Annotated: true},
	}, tokens)
}

func TestParseMecabFormat_MultipleLines_OrderPreserved(t *testing.T) {
	raw := "犬\t名詞,一般,*,*,*,*,*,イヌ,イヌ\n" +
		"が\t助詞,格助詞,一般,*,*,*,が,ガ,ガ\n" +
		"EOS"
	tokens := parseMecabFormat(raw, "")

	require.Equal(t, []Token{
		{Text: "犬", Reading: "イヌ", Annotated: true},
		{Text: "が", Reading: "ガ", Annotated: true},
	}, tokens)
}

func TestParseMecabFormat_PlaceholderReading_Unannotated(t *testing.T) {
	tokens := parseMecabFormat("犬\t名詞,一般,*,*,*,*,*,*,*", "")

	require.Equal(t, []Token{{Text: "犬"}}, tokens)
}

func TestParseMecabFormat_ShortFeatureRow_Unannotated(t *testing.T) {
	tokens := parseMecabFormat("犬\t名詞,一般", "")

	require.Equal(t, []Token{{Text: "犬"}}, tokens)
}

func TestParseMecabFormat_ReadingEqualsSurface_Unannotated(t *testing.T) {
	tokens := parseMecabFormat("ガ\t助詞,格助詞,一般,*,*,*,が,ガ,ガ", "")

	require.Equal(t, []Token{{Text: "ガ"}}, tokens)
}

func TestParseMecabFormat_LineWithoutTab_SurfaceOnly(t *testing.T) {
	tokens := parseMecabFormat("犬", "")

	require.Equal(t, []Token{{Text: "犬"}}, tokens)
}

func TestParseMecabFormat_BlankAndCRLFLines_Skipped(t *testing.T) {
	raw := "犬\t名詞,一般,*,*,*,*,*,イヌ,イヌ\r\n\r\nEOS\r\n"
	tokens := parseMecabFormat(raw, "")

	require.Equal(t, []Token{
		{Text: "犬", Reading: "イヌ", Annotated: true},
	}, tokens)
}
