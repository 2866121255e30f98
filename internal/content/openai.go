package content

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI summarizes through the Chat Completions API.
type OpenAI struct {
	apiKey string
	model  openai.ChatModel
	client openai.Client
}

// NewOpenAI creates an OpenAI summarizer.
func NewOpenAI(apiKey string, opts ...Option) *OpenAI {
	s := applyOptions(opts)

	clientOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if s.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(s.baseURL))
	}

	model := openai.ChatModelGPT4oMini
	if s.model != "" {
		model = openai.ChatModel(s.model)
	}

	return &OpenAI{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(clientOpts...),
	}
}

// Summarize implements Summarizer.
func (o *OpenAI) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	if o.apiKey == "" {
		return "", missingKey("OPENAI_API_KEY")
	}

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(UserPrompt(transcript, instruction)),
		},
		MaxCompletionTokens: openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate summary via OpenAI API: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
