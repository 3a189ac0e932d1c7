package llm

import "context"

// Request describes one text-generation call.
type Request struct {
	System      string
	Prompt      string
	JSON        bool // request a JSON response body
	MaxTokens   int
	Temperature float32
}

// Client is the text-generation service boundary. Implementations classify
// failures as *TransientError or *FatalError; anything else is treated as
// fatal by callers.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}
