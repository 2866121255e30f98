package mail_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alkime/recap/internal/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMessage() mail.Message {
	return mail.Message{
		To:       []string{"a@x.com", "b@y.org"},
		Subject:  "Meeting Summary",
		TextBody: "Final notes",
		Tag:      mail.Tag,
	}
}

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*mail.Message)
	}{
		{name: "no recipients", mutate: func(m *mail.Message) { m.To = nil }},
		{name: "bad recipient", mutate: func(m *mail.Message) { m.To = []string{"a@x.com", "nope"} }},
		{name: "blank subject", mutate: func(m *mail.Message) { m.Subject = " " }},
		{name: "blank body", mutate: func(m *mail.Message) { m.TextBody = "\n" }},
	}

	require.NoError(t, validMessage().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validMessage()
			tt.mutate(&msg)
			assert.ErrorIs(t, msg.Validate(), mail.ErrInvalidMessage)
		})
	}
}

func TestDevSender(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sender := mail.NewDevSender(dir)

	id, err := sender.Send(context.Background(), validMessage())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var txt, js string
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".txt":
			txt = filepath.Join(dir, e.Name())
		case ".json":
			js = filepath.Join(dir, e.Name())
		}
	}
	require.NotEmpty(t, txt)
	require.NotEmpty(t, js)
	assert.Contains(t, filepath.Base(txt), "meeting_summary")

	body, err := os.ReadFile(txt)
	require.NoError(t, err)
	assert.Equal(t, "Final notes", string(body))

	raw, err := os.ReadFile(js)
	require.NoError(t, err)

	var env map[string]any
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, id, env["message_id"])
	assert.Equal(t, []any{"a@x.com", "b@y.org"}, env["to"])
	assert.Equal(t, "Meeting Summary", env["subject"])
}

func TestDevSender_InvalidMessage(t *testing.T) {
	dir := t.TempDir()
	msg := validMessage()
	msg.To = nil

	_, err := mail.NewDevSender(dir).Send(context.Background(), msg)
	require.ErrorIs(t, err, mail.ErrInvalidMessage)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewPostmark_Config(t *testing.T) {
	_, err := mail.NewPostmark(mail.PostmarkConfig{SenderEmail: "recap@example.com"})
	require.ErrorIs(t, err, mail.ErrInvalidConfig)

	_, err = mail.NewPostmark(mail.PostmarkConfig{ServerToken: "t", SenderEmail: "not an email"})
	require.ErrorIs(t, err, mail.ErrInvalidConfig)

	_, err = mail.NewPostmark(mail.PostmarkConfig{ServerToken: "t", SenderEmail: "recap@example.com"})
	require.NoError(t, err)
}

func TestPostmark_Send(t *testing.T) {
	var gotPath, gotToken string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Postmark-Server-Token")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"To":"a@x.com,b@y.org","MessageID":"pm-123","ErrorCode":0,"Message":"OK"}`)
	}))
	defer srv.Close()

	sender, err := mail.NewPostmark(mail.PostmarkConfig{
		ServerToken: "server-token",
		SenderEmail: "recap@example.com",
		BaseURL:     srv.URL,
	})
	require.NoError(t, err)

	id, err := sender.Send(context.Background(), validMessage())
	require.NoError(t, err)

	assert.Equal(t, "pm-123", id)
	assert.Equal(t, "/email", gotPath)
	assert.Equal(t, "server-token", gotToken)
	assert.Equal(t, "recap@example.com", gotBody["From"])
	assert.Equal(t, "a@x.com,b@y.org", gotBody["To"])
	assert.Equal(t, "Final notes", gotBody["TextBody"])
}

func TestPostmark_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"ErrorCode":300,"Message":"Invalid 'To' address"}`)
	}))
	defer srv.Close()

	sender, err := mail.NewPostmark(mail.PostmarkConfig{
		ServerToken: "server-token",
		SenderEmail: "recap@example.com",
		BaseURL:     srv.URL + "/",
	})
	require.NoError(t, err)

	_, err = sender.Send(context.Background(), validMessage())
	require.ErrorIs(t, err, mail.ErrSendFailed)
	assert.True(t, strings.Contains(err.Error(), "300") || strings.Contains(err.Error(), "Invalid"))
}
