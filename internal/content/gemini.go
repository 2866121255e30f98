package content

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// Gemini summarizes through the Gemini API.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
}

// NewGemini creates a Gemini summarizer. The SDK client is built per request
// because its constructor needs a context.
func NewGemini(apiKey string, opts ...Option) *Gemini {
	s := applyOptions(opts)

	model := defaultGeminiModel
	if s.model != "" {
		model = s.model
	}

	return &Gemini{apiKey: apiKey, model: model, baseURL: s.baseURL}
}

// Summarize implements Summarizer.
func (g *Gemini) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	if g.apiKey == "" {
		return "", missingKey("GEMINI_API_KEY")
	}

	cfg := &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model,
		genai.Text(UserPrompt(transcript, instruction)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
		})
	if err != nil {
		return "", fmt.Errorf("failed to generate summary via Gemini API: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return sb.String(), nil
}
