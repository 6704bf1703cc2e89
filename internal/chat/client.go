package chat

import (
	"context"
	"strings"

	"sokratik/internal/llm"
)

// FallbackReply is shown to the user whenever the model call fails.
// The conversation continues; no error escapes the client.
const FallbackReply = "I'm having trouble understanding right now. Can you please rephrase or try again."

const (
	defaultMaxTokens   = 1024
	defaultTemperature = 0.7
)

// Client is the facade between the conversation and the LLM provider.
// It sends the system prompt plus the full history and returns text,
// degrading to FallbackReply on any provider error.
type Client struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewClient creates a Client over the given provider.
func NewClient(provider llm.Provider) *Client {
	return &Client{
		provider:    provider,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
	}
}

// Send dispatches one best-effort request: system prompt first, then the
// history in order. Any failure is converted to FallbackReply.
func (c *Client) Send(ctx context.Context, system string, history []Message) string {
	req := llm.Request{
		System:      system,
		Messages:    toLLMMessages(history),
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return FallbackReply
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return FallbackReply
	}
	return text
}

func toLLMMessages(history []Message) []llm.Message {
	out := make([]llm.Message, len(history))
	for i, m := range history {
		role := llm.RoleUser
		if m.Role == RoleAssistant {
			role = llm.RoleAssistant
		}
		out[i] = llm.Message{Role: role, Content: m.Text}
	}
	return out
}
