package assistant

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// ResponseGenerator defines the contract for any assistant backend. The
// history is ordered oldest first and the last entry is the user's turn.
type ResponseGenerator interface {
	Generate(ctx context.Context, history []Message, options ...Option) (string, error)
}
