package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic summarizes with Claude through the Messages API.
type Anthropic struct {
	apiKey string
	model  anthropic.Model
	client anthropic.Client
}

// NewAnthropic creates an Anthropic summarizer.
func NewAnthropic(apiKey string, opts ...Option) *Anthropic {
	s := applyOptions(opts)

	clientOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if s.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(s.baseURL))
	}

	model := anthropic.ModelClaudeSonnet4_5_20250929
	if s.model != "" {
		model = anthropic.Model(s.model)
	}

	return &Anthropic{
		apiKey: apiKey,
		model:  model,
		client: anthropic.NewClient(clientOpts...),
	}
}

// Summarize implements Summarizer.
func (a *Anthropic) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	if a.apiKey == "" {
		return "", missingKey("ANTHROPIC_API_KEY")
	}

	params := anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(UserPrompt(transcript, instruction))),
		},
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary via Anthropic API: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}

	return sb.String(), nil
}
