// Package gateway is the HTTP client for the summarize and send endpoints.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds every request made by the client.
	DefaultTimeout = 30 * time.Second
	// DefaultSubject is used when Send is called without a subject.
	DefaultSubject = "Meeting Summary"
	// DefaultBaseURL is used when the configured base URL is empty. It is the
	// address the bundled server listens on by default.
	DefaultBaseURL = "http://localhost:8080"

	summarizePath = "/api/summarize"
	sendPath      = "/api/send"
)

// Client calls the remote summarize and send operations.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		timeout:    DefaultTimeout,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type summarizeRequest struct {
	Transcript  string `json:"transcript"`
	Instruction string `json:"instruction"`
}

type sendRequest struct {
	To      string `json:"to"`
	Summary string `json:"summary"`
	Subject string `json:"subject"`
}

// Summarize asks the server to summarize transcript following instruction.
func (c *Client) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	body, err := c.post(ctx, summarizePath, summarizeRequest{
		Transcript:  transcript,
		Instruction: instruction,
	}, "Summarize failed")
	if err != nil {
		return "", err
	}

	summary, _ := body["summary"].(string)

	return summary, nil
}

// Send asks the server to email summary to the recipients in to. The response
// body is returned as-is.
func (c *Client) Send(ctx context.Context, to, summary, subject string) (map[string]any, error) {
	if subject == "" {
		subject = DefaultSubject
	}

	return c.post(ctx, sendPath, sendRequest{
		To:      to,
		Summary: summary,
		Subject: subject,
	}, "Email send failed")
}

// post sends payload as JSON and decodes the response. A body that is not a
// JSON object decodes to an empty map.
func (c *Client) post(ctx context.Context, path string, payload any, failurePrefix string) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, &NetworkError{Op: path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("API request failed", "path", path, "error", err)
		return nil, &NetworkError{Op: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: path, Err: err}
	}

	body := map[string]any{}
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		body = map[string]any{}
	}

	c.logger.Debug("API request complete",
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := body["error"].(string)
		if msg == "" {
			msg = fmt.Sprintf("%s (%d)", failurePrefix, resp.StatusCode)
		}

		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	return body, nil
}
