package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// OpenAIClient calls an OpenAI-compatible chat-completion endpoint. A shared
// rate limiter paces requests so chunk loops do not trip provider limits in
// the first place.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
}

// NewOpenAIClient builds a client for the given model. baseURL may be empty
// for the default endpoint; requestsPerSecond <= 0 disables pacing.
func NewOpenAIClient(apiKey, baseURL, model string, requestsPerSecond float64) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("generation service API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("generation model name is required")
	}

	cc := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cc.BaseURL = baseURL
	}

	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(cc),
		model:   model,
		limiter: rate.NewLimiter(limit, 1),
	}, nil
}

// Generate performs a single completion call. No retrying happens here; wrap
// the client in a Retrier for that.
func (c *OpenAIClient) Generate(ctx context.Context, req Request) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if req.JSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", &TransientError{Message: "empty choice list in response"}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", &TransientError{Message: "blank completion"}
	}
	return text, nil
}

// classify maps provider errors onto the transient/fatal taxonomy.
// Rate limits and server-side failures are transient; auth and malformed
// requests are fatal. Plain transport errors are transient.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500:
			return &TransientError{Status: apiErr.HTTPStatusCode, Message: apiErr.Message}
		default:
			return &FatalError{Status: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &TransientError{Message: err.Error()}
}
