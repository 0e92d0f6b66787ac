package tokenize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/um1ng/oumu.ai/furigana"
)

func TestTokenize_EmptyText_NoTokens(t *testing.T) {
	toks, err := Tokenize(context.Background(), "   ")

	require.NoError(t, err)
	require.Empty(t, toks)
}

func TestTokenize_SimpleSentence_ProducesReadings(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping: IPA dictionary load")
	}

	toks, err := Tokenize(context.Background(), "犬が好き")

	require.NoError(t, err)
	require.NotEmpty(t, toks)

	var surfaces string
	for _, tok := range toks {
		surfaces += tok.Surface
	}
	require.Equal(t, "犬が好き", surfaces)

	require.Equal(t, "犬", toks[0].Surface)
	require.Equal(t, "イヌ", toks[0].Reading)
}

func TestTokenize_MecabRoundTrip_AnnotatesKanji(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping: IPA dictionary load")
	}

	text := "日本語を学ぶ"
	toks, err := Tokenize(context.Background(), text)
	require.NoError(t, err)

	res := furigana.Parse(MecabLines(toks), text, furigana.FormatMecab)

	require.True(t, res.HasAnnotations)
	require.Contains(t, res.Markup, "<rt>")
}

func TestTokenize_CancelledContext_ReturnsError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping: IPA dictionary load")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Tokenize(ctx, "犬")
	require.ErrorIs(t, err, context.Canceled)
}
