package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevSender writes each message to disk instead of sending it: the body as
// .txt and the envelope as .json, both named after a timestamp and the subject.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender creates a development sender writing into dir, created on demand.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type envelope struct {
	MessageID string   `json:"message_id"`
	Timestamp string   `json:"timestamp"`
	To        []string `json:"to"`
	Subject   string   `json:"subject"`
	Tag       string   `json:"tag,omitempty"`
}

// Send implements Sender.
func (d *DevSender) Send(_ context.Context, msg Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create directory: %w", ErrSendFailed, err)
	}

	now := d.now()
	id := uuid.NewString()
	base := fmt.Sprintf("%s_%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(msg.Subject), id[:8])

	if err := os.WriteFile(filepath.Join(d.dir, base+".txt"), []byte(msg.TextBody), 0o644); err != nil {
		return "", fmt.Errorf("%w: failed to write body: %w", ErrSendFailed, err)
	}

	data, err := json.MarshalIndent(envelope{
		MessageID: id,
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal envelope: %w", ErrSendFailed, err)
	}

	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0o644); err != nil {
		return "", fmt.Errorf("%w: failed to write envelope: %w", ErrSendFailed, err)
	}

	return id, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")

	const maxLength = 60
	if len(s) > maxLength {
		s = s[:maxLength]
	}

	if s == "" {
		s = "email"
	}

	return strings.ToLower(s)
}
