// Package tokenize produces reading annotations from plain Japanese
// text. It is the producer side of the annotation pipeline: its emitters
// serialize segmenter tokens into the exact encodings package furigana
// consumes. The core itself stays free of linguistic analysis.
package tokenize

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Token is a single morpheme produced by the segmenter, reduced to the
// fields the annotation encoders need. Reading is katakana as emitted by
// the dictionary; display-side conversion is up to the encoders.
type Token struct {
	Surface string `json:"surface"`
	Reading string `json:"reading,omitempty"`
	POS     string `json:"pos,omitempty"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

var (
	kg     *tokenizer.Tokenizer
	kgOnce sync.Once
	kgErr  error
)

// instance lazily initializes the kagome tokenizer with the IPA
// dictionary. The dictionary load is expensive, so it happens once.
func instance() (*tokenizer.Tokenizer, error) {
	kgOnce.Do(func() {
		kg, kgErr = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	})
	return kg, kgErr
}

// Tokenize segments text into morphemes with readings. Empty or
// whitespace-only input yields no tokens and no error.
func Tokenize(ctx context.Context, text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	t, err := instance()
	if err != nil {
		return nil, fmt.Errorf("cannot initialize tokenizer: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ktoks := t.Tokenize(text)
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		reading, ok := kt.Reading()
		if !ok {
			reading = ""
		}
		out = append(out, Token{
			Surface: kt.Surface,
			Reading: reading,
			POS:     strings.Join(kt.POS(), ","),
			Start:   kt.Start,
			End:     kt.End,
		})
	}
	return out, nil
}
