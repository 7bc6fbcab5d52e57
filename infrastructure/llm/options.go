package llm

import "strings"

// RequestOptions carries the per-request parameters shared across providers.
// Provider implementations translate these into their SDK's request types.
type RequestOptions struct {
	MaxTokens   int
	Model       string
	Temperature *float64
	TopP        *float64
	System      string
	Extra       map[string]any
}

// DefaultMaxTokens is used when a request does not specify max_tokens.
const DefaultMaxTokens = 1024

// ParseRequestOptions normalizes a loosely typed options map into
// RequestOptions. Unknown keys are preserved in Extra.
func ParseRequestOptions(opts map[string]any) RequestOptions {
	parsed := RequestOptions{MaxTokens: DefaultMaxTokens}
	if opts == nil {
		return parsed
	}

	for key, value := range opts {
		switch key {
		case "max_tokens":
			if n, ok := toInt(value); ok && n > 0 {
				parsed.MaxTokens = n
			}
		case "model":
			if s, ok := value.(string); ok && s != "" {
				parsed.Model = s
			}
		case "temperature":
			if f, ok := toFloat(value); ok {
				parsed.Temperature = &f
			}
		case "top_p":
			if f, ok := toFloat(value); ok {
				parsed.TopP = &f
			}
		case "system":
			if s, ok := value.(string); ok {
				parsed.System = strings.TrimSpace(s)
			}
		default:
			if parsed.Extra == nil {
				parsed.Extra = make(map[string]any)
			}
			parsed.Extra[key] = value
		}
	}
	return parsed
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	case int:
		return float64(f), true
	}
	return 0, false
}

// TokenCounter provides a fast character-based token estimate used for cost
// previews. Roughly four characters per token for English text.
type TokenCounter struct {
	charsPerToken int
}

// NewTokenCounter returns a TokenCounter with the default ratio.
func NewTokenCounter() *TokenCounter {
	return &TokenCounter{charsPerToken: 4}
}

// EstimateTokens approximates the token count of text. Never returns less
// than 1 for non-empty input.
func (t *TokenCounter) EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	estimate := len(text) / t.charsPerToken
	if estimate < 1 {
		estimate = 1
	}
	return estimate
}
