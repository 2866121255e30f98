// Package mail delivers summaries by email through Postmark, or to disk during
// development.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alkime/recap/internal/recipients"
)

var (
	// ErrInvalidConfig is returned when a sender cannot be constructed.
	ErrInvalidConfig = errors.New("invalid mail configuration")
	// ErrInvalidMessage is returned when a message fails validation.
	ErrInvalidMessage = errors.New("invalid mail message")
	// ErrSendFailed wraps every delivery failure.
	ErrSendFailed = errors.New("failed to send email")
)

// Tag labels every summary mail for provider analytics.
const Tag = "meeting-summary"

// Sender delivers a message and returns the provider's message ID.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Message is a plain-text email to one or more recipients.
type Message struct {
	To       []string
	Subject  string
	TextBody string
	Tag      string
}

// Validate checks that the message can be handed to a provider.
func (m Message) Validate() error {
	if len(m.To) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidMessage)
	}

	for _, addr := range m.To {
		if !recipients.Valid(addr) {
			return fmt.Errorf("%w: invalid recipient %q", ErrInvalidMessage, addr)
		}
	}

	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}

	if strings.TrimSpace(m.TextBody) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidMessage)
	}

	return nil
}
