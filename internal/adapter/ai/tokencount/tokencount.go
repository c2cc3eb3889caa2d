// Package tokencount estimates token usage so prompts stay inside the
// generation model's context budget.
package tokencount

import (
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// charsPerToken is the fallback estimate when no encoder is available for
// the model.
const charsPerToken = 4

var (
	encOnce sync.Once
	encoder *tiktoken.Tiktoken
)

func getEncoder(model string) *tiktoken.Tiktoken {
	encOnce.Do(func() {
		enc, err := tiktoken.EncodingForModel(model)
		if err != nil {
			slog.Debug("no tokenizer for model, using char estimate", slog.String("model", model))
			return
		}
		encoder = enc
	})
	return encoder
}

// Count returns the token count of text for model, estimating by characters
// when the model has no known encoding.
func Count(text, model string) int {
	if enc := getEncoder(model); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return (len(text) + charsPerToken - 1) / charsPerToken
}

// Truncate cuts text down to at most maxTokens tokens, preserving whole
// tokens when an encoder is available.
func Truncate(text, model string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	if enc := getEncoder(model); enc != nil {
		toks := enc.Encode(text, nil, nil)
		if len(toks) <= maxTokens {
			return text
		}
		return enc.Decode(toks[:maxTokens])
	}
	limit := maxTokens * charsPerToken
	if len(text) <= limit {
		return text
	}
	// cut on a rune boundary
	cut := limit
	for cut > 0 && text[cut]&0xC0 == 0x80 {
		cut--
	}
	return text[:cut]
}
