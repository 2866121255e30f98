package content_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alkime/recap/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPrompt(t *testing.T) {
	p := content.UserPrompt("  Alice: ship Friday\n", "Action items only.")
	assert.Equal(t, "Instruction: Action items only.\n\nTranscript:\n---\nAlice: ship Friday\n---", p)

	p = content.UserPrompt("text", "   ")
	assert.Contains(t, p, content.DefaultInstruction)
}

func TestNew(t *testing.T) {
	for _, provider := range []string{"anthropic", "OpenAI", "gemini"} {
		s, err := content.New(provider, "key")
		require.NoError(t, err, provider)
		assert.NotNil(t, s)
	}

	_, err := content.New("llama", "key")
	require.ErrorIs(t, err, content.ErrUnknownProvider)
}

func TestSummarize_MissingAPIKey(t *testing.T) {
	for _, provider := range []string{"anthropic", "openai", "gemini"} {
		s, err := content.New(provider, "")
		require.NoError(t, err)

		summary, err := s.Summarize(context.Background(), "transcript", "")
		require.ErrorIs(t, err, content.ErrMissingAPIKey, provider)
		assert.Empty(t, summary)
	}
}

func captureBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	return body
}

func TestAnthropic_Summarize(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody = captureBody(t, r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-sonnet-4-5-20250929",
			"content": [{"type": "text", "text": "- Alice ships Friday"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`)
	}))
	defer srv.Close()

	s := content.NewAnthropic("test-key", content.WithBaseURL(srv.URL))
	summary, err := s.Summarize(context.Background(), "Alice: I'll ship Friday.", "Action items only.")

	require.NoError(t, err)
	assert.Equal(t, "- Alice ships Friday", summary)
	assert.Equal(t, "/v1/messages", gotPath)
	assert.Equal(t, "claude-sonnet-4-5-20250929", gotBody["model"])
}

func TestOpenAI_Summarize(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody = captureBody(t, r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "## Decisions\n- Ship Friday"},
				"finish_reason": "stop"
			}]
		}`)
	}))
	defer srv.Close()

	s := content.NewOpenAI("test-key", content.WithBaseURL(srv.URL), content.WithModel("gpt-4o"))
	summary, err := s.Summarize(context.Background(), "transcript", "Decisions.")

	require.NoError(t, err)
	assert.Equal(t, "## Decisions\n- Ship Friday", summary)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "gpt-4o", gotBody["model"])

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 2)
}

func TestOpenAI_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[]}`)
	}))
	defer srv.Close()

	s := content.NewOpenAI("test-key", content.WithBaseURL(srv.URL))
	_, err := s.Summarize(context.Background(), "transcript", "")

	require.ErrorIs(t, err, content.ErrEmptyResponse)
}
