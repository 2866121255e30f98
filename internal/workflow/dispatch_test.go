package workflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alkime/recap/internal/gateway"
	"github.com/alkime/recap/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_ValidationOrder(t *testing.T) {
	tests := []struct {
		name       string
		summary    string
		recipients string
		want       error
		hint       string
	}{
		{
			name:       "blank summary checked first",
			summary:    "  \n",
			recipients: "",
			want:       workflow.ErrEmptySummary,
			hint:       "Summary is empty.",
		},
		{
			name:       "blank recipients",
			summary:    "Final notes",
			recipients: "   ",
			want:       workflow.ErrMissingRecipients,
			hint:       "Add at least one recipient email.",
		},
		{
			name:       "no parsable email",
			summary:    "Final notes",
			recipients: "not-an-email",
			want:       workflow.ErrNoValidRecipients,
			hint:       "Please enter valid recipient emails (comma/space separated).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := workflow.NewDispatcher()
			d.SetRecipients(tt.recipients)
			mailer := &mockMailer{}

			flash, err := d.Send(context.Background(), mailer, tt.summary)

			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, workflow.ErrorFlash(tt.hint), flash)
			assert.Equal(t, 0, mailer.calls)
			assert.Equal(t, workflow.PhaseIdle, d.Phase().Kind)
		})
	}
}

func TestSend_Success(t *testing.T) {
	d := workflow.NewDispatcher()
	d.SetRecipients("a@x.com b@y.org")
	mailer := &mockMailer{}

	flash, err := d.Send(context.Background(), mailer, "Final notes")

	require.NoError(t, err)
	assert.Equal(t, workflow.InfoFlash("Email sent successfully!"), flash)
	assert.Equal(t, workflow.PhaseSucceeded, d.Phase().Kind)
	assert.Equal(t, "a@x.com b@y.org", mailer.to, "recipients are sent as typed")
	assert.Equal(t, "Final notes", mailer.summary)
	assert.Equal(t, "Meeting Summary", mailer.subject)
}

func TestSend_Failure(t *testing.T) {
	d := workflow.NewDispatcher()
	d.SetRecipients("a@x.com")

	flash, err := d.Send(context.Background(), &mockMailer{
		err: &gateway.APIError{StatusCode: 502, Message: "mail provider rejected the message"},
	}, "Final notes")

	require.Error(t, err)
	assert.Equal(t, workflow.ErrorFlash("mail provider rejected the message"), flash)
	assert.Equal(t, workflow.Phase{Kind: workflow.PhaseFailed, Message: "mail provider rejected the message"}, d.Phase())

	// retry is a fresh action
	flash, err = d.Send(context.Background(), &mockMailer{}, "Final notes")
	require.NoError(t, err)
	assert.Equal(t, workflow.FlashInfo, flash.Kind)
}

func TestSend_InFlightIsNoOp(t *testing.T) {
	d := workflow.NewDispatcher()
	d.SetRecipients("a@x.com")

	req, started, err := d.Begin("Final notes")
	require.NoError(t, err)
	require.True(t, started)
	assert.Equal(t, workflow.SendRequest{To: "a@x.com", Summary: "Final notes", Subject: "Meeting Summary"}, req)

	mailer := &mockMailer{}
	flash, err := d.Send(context.Background(), mailer, "Final notes")
	require.NoError(t, err)
	assert.False(t, flash.Visible())
	assert.Equal(t, 0, mailer.calls)

	assert.Equal(t, workflow.InfoFlash("Email sent successfully!"), d.Complete(nil))
	assert.False(t, d.Sending())
}

func TestRecipientInput_Parsed(t *testing.T) {
	d := workflow.NewDispatcher()
	d.SetRecipients("a@b.com, x y a@b.com")

	assert.Equal(t, "a@b.com, x y a@b.com", d.Recipients().Raw)
	assert.Equal(t, []string{"a@b.com", "a@b.com"}, d.Recipients().Parsed())
}

func TestGenerationAndDispatchAreIndependent(t *testing.T) {
	sc := workflow.NewSummaryController()
	require.NoError(t, sc.Edit("existing summary"))

	d := workflow.NewDispatcher()
	d.SetRecipients("a@x.com")

	_, started, err := sc.Begin("new transcript", "")
	require.NoError(t, err)
	require.True(t, started)

	// Sending the current summary while a new one is generated is allowed.
	_, started, err = d.Begin(sc.Text())
	require.NoError(t, err)
	require.True(t, started)

	assert.True(t, sc.Generating())
	assert.True(t, d.Sending())

	d.Complete(errors.New("smtp down"))
	assert.True(t, sc.Generating(), "dispatch outcome does not touch generation")

	sc.Complete("regenerated", nil)
	assert.Equal(t, workflow.PhaseFailed, d.Phase().Kind)
}
