package workflow

import "context"

// Summarizer produces a summary for a transcript.
type Summarizer interface {
	Summarize(ctx context.Context, transcript, instruction string) (string, error)
}

// Mailer emails a summary to the recipients listed in to.
type Mailer interface {
	Send(ctx context.Context, to, summary, subject string) (map[string]any, error)
}
