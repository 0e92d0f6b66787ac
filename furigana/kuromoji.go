package furigana

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

// kuromojiRecord is one entry of a segmenter output array. Different
// producers name the surface field differently, so both spellings are
// accepted with surface_form taking precedence.
type kuromojiRecord struct {
	SurfaceForm string `json:"surface_form"`
	Surface     string `json:"surface"`
	Reading     string `json:"reading"`
}

// parseKuromojiFormat handles a JSON array of segmenter records. A token
// is annotated only when the record carries a reading different from its
// surface form.
func parseKuromojiFormat(raw, _ string) []Token {
	var records []kuromojiRecord
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &records); err != nil {
		log.Debug().Err(err).Msg("annotation payload is not a segmenter record array")
		return nil
	}

	var tokens []Token
	for _, rec := range records {
		surface := rec.SurfaceForm
		if surface == "" {
			surface = rec.Surface
		}
		if surface == "" {
			continue
		}

		token := Token{Text: surface}
		if rec.Reading != "" && rec.Reading != surface {
			token.Reading = rec.Reading
			token.Annotated = true
		}
		tokens = append(tokens, token)
	}

	return tokens
}
