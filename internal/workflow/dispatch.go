package workflow

import (
	"context"
	"strings"

	"github.com/alkime/recap/internal/recipients"
)

const (
	// DefaultSubject is the subject of every dispatched summary.
	DefaultSubject = "Meeting Summary"

	emailSentText  = "Email sent successfully!"
	sendFailedText = "Failed to send email"
)

// RecipientInput is the recipient field as typed by the user.
type RecipientInput struct {
	Raw string
}

// Parsed returns the email addresses found in Raw, in order, duplicates kept.
func (ri RecipientInput) Parsed() []string {
	return recipients.Parse(ri.Raw)
}

// SendRequest is the input of one dispatch call. To is the recipient field
// exactly as typed; the server does its own parsing.
type SendRequest struct {
	To      string
	Summary string
	Subject string
}

// Dispatcher owns the recipient field and the dispatch phase.
type Dispatcher struct {
	recipients RecipientInput
	subject    string
	phase      Phase
}

// NewDispatcher creates an idle dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{subject: DefaultSubject}
}

// SetRecipients replaces the recipient field.
func (d *Dispatcher) SetRecipients(raw string) {
	d.recipients = RecipientInput{Raw: raw}
}

// Recipients returns the recipient field.
func (d *Dispatcher) Recipients() RecipientInput {
	return d.recipients
}

// Phase returns the dispatch phase.
func (d *Dispatcher) Phase() Phase {
	return d.phase
}

// Sending reports whether a send request is outstanding.
func (d *Dispatcher) Sending() bool {
	return d.phase.InFlight()
}

// Begin validates the summary and recipients and starts a send. Checks run in
// order: summary, recipient field, parsed addresses. A validation failure leaves
// the phase untouched. While a send is already in flight it does nothing and
// reports started=false.
func (d *Dispatcher) Begin(summary string) (req SendRequest, started bool, err error) {
	if d.phase.InFlight() {
		return SendRequest{}, false, nil
	}

	switch {
	case strings.TrimSpace(summary) == "":
		return SendRequest{}, false, ErrEmptySummary
	case strings.TrimSpace(d.recipients.Raw) == "":
		return SendRequest{}, false, ErrMissingRecipients
	case len(d.recipients.Parsed()) == 0:
		return SendRequest{}, false, ErrNoValidRecipients
	}

	d.phase = inFlight()

	return SendRequest{
		To:      d.recipients.Raw,
		Summary: summary,
		Subject: d.subject,
	}, true, nil
}

// Complete applies the outcome of the send started by Begin and returns the
// flash to show.
func (d *Dispatcher) Complete(err error) Flash {
	if err != nil {
		flash := FlashFor(err, sendFailedText)
		d.phase = failed(flash.Text)

		return flash
	}

	d.phase = succeeded()

	return InfoFlash(emailSentText)
}

// Send runs a whole dispatch of summary through m.
func (d *Dispatcher) Send(ctx context.Context, m Mailer, summary string) (Flash, error) {
	req, started, err := d.Begin(summary)
	if err != nil {
		return FlashFor(err, sendFailedText), err
	}
	if !started {
		return Flash{}, nil
	}

	_, err = m.Send(ctx, req.To, req.Summary, req.Subject)

	return d.Complete(err), err
}
