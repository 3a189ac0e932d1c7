package chunker

import (
	"strings"

	"github.com/dberrada/studyforge/internal/content"
)

// Split breaks source text into token-bounded chunks on paragraph and
// sentence boundaries. Chunks carry a target item count proportional to their
// word count. There is no overlap: the concatenation of chunk texts
// reconstructs the input modulo whitespace normalization, and no chunk is
// empty.
func Split(text string, tokenLimit, wordsPerItem int) []content.TextChunk {
	if tokenLimit <= 0 {
		tokenLimit = 3000
	}
	if wordsPerItem <= 0 {
		wordsPerItem = 100
	}

	var parts []string
	for _, para := range splitByParagraphs(text) {
		if EstimateTokens(para) <= tokenLimit {
			parts = append(parts, para)
			continue
		}
		// Oversized paragraph: fall back to sentence boundaries.
		parts = append(parts, splitBySentences(para, tokenLimit)...)
	}

	var chunks []content.TextChunk
	var current strings.Builder
	currentTokens := 0

	flush := func() {
		t := strings.TrimSpace(current.String())
		if t != "" {
			chunks = append(chunks, content.TextChunk{
				Text:  t,
				Index: len(chunks),
				Items: targetItems(t, wordsPerItem),
			})
		}
		current.Reset()
		currentTokens = 0
	}

	for _, part := range parts {
		partTokens := EstimateTokens(part)
		if currentTokens+partTokens > tokenLimit && currentTokens > 0 {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(part)
		currentTokens += partTokens
	}
	flush()

	return chunks
}

// targetItems is the per-chunk question/section budget: word count divided by
// wordsPerItem, never below 1.
func targetItems(text string, wordsPerItem int) int {
	n := len(strings.Fields(text)) / wordsPerItem
	if n < 1 {
		n = 1
	}
	return n
}

// splitByParagraphs splits on double-newlines.
func splitByParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// splitBySentences groups sentences under the token limit. A single sentence
// over the limit becomes its own part rather than being cut mid-sentence.
func splitBySentences(text string, tokenLimit int) []string {
	sentences := splitSentences(text)

	var result []string
	var current strings.Builder
	currentTokens := 0

	for _, sent := range sentences {
		sentTokens := EstimateTokens(sent)
		if currentTokens+sentTokens > tokenLimit && currentTokens > 0 {
			result = append(result, current.String())
			current.Reset()
			currentTokens = 0
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(sent)
		currentTokens += sentTokens
	}
	if current.Len() > 0 {
		result = append(result, current.String())
	}

	return result
}

// splitSentences does basic sentence splitting.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(text) && text[i+1] == ' ' {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}
