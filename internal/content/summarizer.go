// Package content generates meeting summaries with hosted language models.
package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Providers understood by New.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
)

const maxTokens = 4096

var (
	// ErrMissingAPIKey is returned when a provider is used without an API key.
	ErrMissingAPIKey = errors.New("API key required")
	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("empty response from model")
	// ErrUnknownProvider is returned by New for unsupported provider names.
	ErrUnknownProvider = errors.New("unknown summary provider")
)

// Summarizer turns a transcript into a summary following an instruction.
type Summarizer interface {
	Summarize(ctx context.Context, transcript, instruction string) (string, error)
}

type settings struct {
	baseURL string
	model   string
}

// Option configures a provider client.
type Option func(*settings)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) Option {
	return func(s *settings) {
		s.baseURL = url
	}
}

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(s *settings) {
		s.model = model
	}
}

func applyOptions(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// New creates the summarizer for the named provider.
func New(provider, apiKey string, opts ...Option) (Summarizer, error) {
	switch strings.ToLower(provider) {
	case ProviderAnthropic:
		return NewAnthropic(apiKey, opts...), nil
	case ProviderOpenAI:
		return NewOpenAI(apiKey, opts...), nil
	case ProviderGemini:
		return NewGemini(apiKey, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}

func missingKey(envVar string) error {
	return fmt.Errorf("%w: set %s", ErrMissingAPIKey, envVar)
}
