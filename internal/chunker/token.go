package chunker

import "strings"

// EstimateTokens gives a rough token count from the word count. Exact
// tokenization is not needed to keep chunks under the request limit.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	words := len(strings.Fields(text))
	// Roughly 1.33 tokens per word for English text.
	tokens := int(float64(words) * 1.33)
	if tokens < 1 && len(text) > 0 {
		tokens = 1
	}
	return tokens
}
