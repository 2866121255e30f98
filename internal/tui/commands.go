package tui

import (
	"context"

	"github.com/alkime/recap/internal/ingest"
	"github.com/alkime/recap/internal/workflow"
	tea "github.com/charmbracelet/bubbletea"
)

// DroppedMsg delivers files dropped into the watched folder. Only the first
// path is ingested.
type DroppedMsg struct {
	Paths []string
}

// transcriptReadMsg carries the outcome of reading a transcript source.
type transcriptReadMsg struct {
	src  ingest.TextSource
	text string
	err  error
}

// summaryGeneratedMsg carries the outcome of a summarize request.
type summaryGeneratedMsg struct {
	summary string
	err     error
}

// emailSentMsg carries the outcome of a send request.
type emailSentMsg struct {
	err error
}

// summaryCopiedMsg carries the outcome of copying the summary.
type summaryCopiedMsg struct {
	err error
}

func readTranscriptCmd(ctx context.Context, src ingest.TextSource) tea.Cmd {
	return func() tea.Msg {
		text, err := src.Read(ctx)

		return transcriptReadMsg{src: src, text: text, err: err}
	}
}

func generateCmd(ctx context.Context, s workflow.Summarizer, req workflow.GenerateRequest) tea.Cmd {
	return func() tea.Msg {
		summary, err := s.Summarize(ctx, req.Transcript, req.Instruction)

		return summaryGeneratedMsg{summary: summary, err: err}
	}
}

func sendCmd(ctx context.Context, m workflow.Mailer, req workflow.SendRequest) tea.Cmd {
	return func() tea.Msg {
		_, err := m.Send(ctx, req.To, req.Summary, req.Subject)

		return emailSentMsg{err: err}
	}
}

func copyCmd(writeAll func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return summaryCopiedMsg{err: writeAll(text)}
	}
}
