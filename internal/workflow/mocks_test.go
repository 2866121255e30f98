package workflow_test

import "context"

// mockSummarizer implements workflow.Summarizer for testing.
type mockSummarizer struct {
	result      string
	err         error
	calls       int
	transcript  string
	instruction string
}

func (m *mockSummarizer) Summarize(_ context.Context, transcript, instruction string) (string, error) {
	m.calls++
	m.transcript = transcript
	m.instruction = instruction
	return m.result, m.err
}

// mockMailer implements workflow.Mailer for testing.
type mockMailer struct {
	err     error
	calls   int
	to      string
	summary string
	subject string
}

func (m *mockMailer) Send(_ context.Context, to, summary, subject string) (map[string]any, error) {
	m.calls++
	m.to = to
	m.summary = summary
	m.subject = subject
	if m.err != nil {
		return nil, m.err
	}
	return map[string]any{"ok": true}, nil
}
