// Package tui is the terminal front end of the summarizer: one screen holding
// the instruction, transcript, summary and recipient fields.
package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alkime/recap/internal/ingest"
	"github.com/alkime/recap/internal/tui/components/labeledspinner"
	"github.com/alkime/recap/internal/workflow"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour/styles"
)

// Backend performs the two remote operations. gateway.Client satisfies it.
type Backend interface {
	workflow.Summarizer
	workflow.Mailer
}

// Config configures the shell.
type Config struct {
	Backend Backend
	// Ingestor holds the transcript. Nil creates a fresh one.
	Ingestor *ingest.Ingestor
	Logger   *slog.Logger
	// Context bounds every request started from the shell.
	Context context.Context
	// StartDir is where the file picker opens. Empty uses the working directory.
	StartDir string
	// PreviewStyle is the glamour style name of the preview. Empty uses "dark".
	PreviewStyle string
	// ClipboardRead and ClipboardWrite override the system clipboard.
	ClipboardRead  func() (string, error)
	ClipboardWrite func(string) error
}

type field int

const (
	fieldInstruction field = iota
	fieldTranscript
	fieldSummary
	fieldRecipients
	fieldCount
)

const (
	previewPlaceholder = "Nothing to preview yet."
	tooLongText        = "Too long to edit here. ctrl+x clears the field."
)

// textAreaMaxLines is the bubbles textarea line cap. Longer text is shown cut
// off and its field refuses edits, so the stored text stays whole.
const textAreaMaxLines = 10000

func fitsTextArea(s string) bool {
	return strings.Count(displayText(s), "\n") < textAreaMaxLines
}

// displayText is what a textarea shows for s. The textarea turns every "\r" into
// a line break, which would double-space CRLF text.
func displayText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.ReplaceAll(s, "\r", "\n")
}

// Model is the workflow shell. Controllers are only mutated from Update; every
// blocking call runs in a tea.Cmd.
type Model struct {
	cfg  Config
	ctx  context.Context
	keys KeyMap

	ingestor    *ingest.Ingestor
	instruction workflow.Instruction
	summary     *workflow.SummaryController
	dispatcher  *workflow.Dispatcher
	flash       workflow.Flash

	focus            field
	instructionInput textinput.Model
	transcriptArea   textarea.Model
	summaryArea      textarea.Model
	recipientsInput  textinput.Model

	picker  filepicker.Model
	picking bool

	genSpinner  labeledspinner.Model
	sendSpinner labeledspinner.Model
	markdown    *markdownRenderer

	width  int
	height int
}

// New creates the shell with the transcript field focused.
func New(cfg Config) *Model {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Ingestor == nil {
		cfg.Ingestor = ingest.NewIngestor(cfg.Logger)
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.PreviewStyle == "" {
		cfg.PreviewStyle = styles.DarkStyle
	}
	if cfg.ClipboardWrite == nil {
		cfg.ClipboardWrite = clipboard.WriteAll
	}

	m := &Model{
		cfg:         cfg,
		ctx:         cfg.Context,
		keys:        DefaultKeyMap(),
		ingestor:    cfg.Ingestor,
		summary:     workflow.NewSummaryController(),
		dispatcher:  workflow.NewDispatcher(),
		genSpinner:  labeledspinner.New(spinner.Dot, "Generating summary..."),
		sendSpinner: labeledspinner.New(spinner.Dot, "Sending email..."),
		markdown:    newMarkdownRenderer(cfg.PreviewStyle),
	}

	m.instructionInput = textinput.New()
	m.instructionInput.Placeholder = "How should the meeting be summarized? (F1-F4 for presets)"

	m.transcriptArea = newTextArea("Paste or type the transcript, ctrl+o to open a .txt file...")
	m.transcriptArea.SetValue(displayText(m.ingestor.Text()))

	m.summaryArea = newTextArea("Summary will appear here...")

	m.recipientsInput = textinput.New()
	m.recipientsInput.Placeholder = "alice@example.com, bob@example.com"

	m.resize(80, 24)
	m.focusField(fieldTranscript)

	return m
}

func newTextArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0

	return ta
}

// Init starts the cursor blinking in the focused field.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update routes messages to the controllers and the focused field.
func (m *Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.picking {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)

			return m, cmd
		}

		return m, nil

	case DroppedMsg:
		return m, readTranscriptCmd(m.ctx, ingest.DragDrop{Paths: msg.Paths})

	case transcriptReadMsg:
		m.applyTranscript(msg)

		return m, nil

	case summaryGeneratedMsg:
		m.genSpinner = m.genSpinner.Stop()
		m.flash = m.summary.Complete(msg.summary, msg.err)
		if msg.err != nil {
			m.cfg.Logger.Error("Summary generation failed", "error", msg.err)
		} else {
			m.summaryArea.SetValue(displayText(m.summary.Text()))
		}

		return m, nil

	case emailSentMsg:
		m.sendSpinner = m.sendSpinner.Stop()
		m.flash = m.dispatcher.Complete(msg.err)
		if msg.err != nil {
			m.cfg.Logger.Error("Email dispatch failed", "error", msg.err)
		}

		return m, nil

	case summaryCopiedMsg:
		if msg.err != nil {
			m.cfg.Logger.Warn("Copy to clipboard failed", "error", msg.err)
			m.flash = workflow.ErrorFlash("Could not copy to clipboard.")
		} else {
			m.flash = workflow.InfoFlash("Copied to clipboard.")
		}

		return m, nil

	case spinner.TickMsg:
		var genCmd, sendCmd tea.Cmd
		m.genSpinner, genCmd = m.genSpinner.Update(msg)
		m.sendSpinner, sendCmd = m.sendSpinner.Update(msg)

		return m, tea.Batch(genCmd, sendCmd)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.picking {
			return m, m.updatePicker(msg)
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	if m.picking {
		return m, m.updatePicker(teaMsg)
	}

	return m, m.updateFocused(teaMsg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		return m.focusField((m.focus + 1) % fieldCount), true

	case key.Matches(msg, m.keys.PrevField):
		return m.focusField((m.focus + fieldCount - 1) % fieldCount), true

	case key.Matches(msg, m.keys.Generate):
		return m.generate(), true

	case key.Matches(msg, m.keys.Send):
		return m.send(), true

	case key.Matches(msg, m.keys.Preview):
		m.summary.SetPreviewMode(!m.summary.Preview().PreviewMode)

		return nil, true

	case key.Matches(msg, m.keys.EditPreview):
		m.summary.SetEditableInPreview(!m.summary.Preview().EditableInPreview)

		return nil, true

	case key.Matches(msg, m.keys.OpenFile):
		return m.openPicker(), true

	case key.Matches(msg, m.keys.Paste):
		return readTranscriptCmd(m.ctx, ingest.Clipboard{ReadAll: m.cfg.ClipboardRead}), true

	case key.Matches(msg, m.keys.ClearField):
		m.clearFocused()

		return nil, true

	case key.Matches(msg, m.keys.Copy):
		return copyCmd(m.cfg.ClipboardWrite, m.summary.Text()), true
	}

	for i, preset := range m.keys.Presets {
		if key.Matches(msg, preset) {
			if err := m.instruction.ApplyPresetIndex(i); err == nil {
				m.instructionInput.SetValue(m.instruction.Text())
				m.instructionInput.CursorEnd()
			}

			return nil, true
		}
	}

	return nil, false
}

func (m *Model) generate() tea.Cmd {
	req, started, err := m.summary.Begin(m.ingestor.Text(), m.instruction.Text())
	if err != nil {
		m.flash = workflow.FlashFor(err, "")

		return nil
	}
	if !started {
		return nil
	}

	m.flash = workflow.Flash{}

	var spin tea.Cmd
	m.genSpinner, spin = m.genSpinner.Start()

	return tea.Batch(spin, generateCmd(m.ctx, m.cfg.Backend, req))
}

func (m *Model) send() tea.Cmd {
	req, started, err := m.dispatcher.Begin(m.summary.Text())
	if err != nil {
		m.flash = workflow.FlashFor(err, "")

		return nil
	}
	if !started {
		return nil
	}

	m.flash = workflow.Flash{}

	var spin tea.Cmd
	m.sendSpinner, spin = m.sendSpinner.Start()

	return tea.Batch(spin, sendCmd(m.ctx, m.cfg.Backend, req))
}

// applyTranscript stores a finished read. Failed reads are logged by the
// ingestor and leave the transcript as it was.
func (m *Model) applyTranscript(msg transcriptReadMsg) {
	if err := m.ingestor.Accept(msg.src, msg.text, msg.err); err != nil {
		return
	}

	m.transcriptArea.SetValue(displayText(m.ingestor.Text()))
}

func (m *Model) openPicker() tea.Cmd {
	fp := filepicker.New()
	fp.AllowedTypes = []string{ingest.TranscriptExt}
	fp.ShowHidden = false
	if m.cfg.StartDir != "" {
		fp.CurrentDirectory = m.cfg.StartDir
	}
	fp, _ = fp.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})

	m.picker = fp
	m.picking = true

	return m.picker.Init()
}

func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.ClosePicker) {
		m.picking = false

		return nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if selected, path := m.picker.DidSelectFile(msg); selected {
		m.picking = false

		// Re-selecting the current file changes nothing until the field is cleared.
		if m.ingestor.SameSelection(path) {
			return cmd
		}

		return tea.Batch(cmd, readTranscriptCmd(m.ctx, ingest.FilePicker{Path: path}))
	}

	return cmd
}

func (m *Model) focusField(f field) tea.Cmd {
	m.flash = workflow.Flash{}
	m.focus = f

	m.instructionInput.Blur()
	m.transcriptArea.Blur()
	m.summaryArea.Blur()
	m.recipientsInput.Blur()

	switch f {
	case fieldInstruction:
		return m.instructionInput.Focus()
	case fieldTranscript:
		return m.transcriptArea.Focus()
	case fieldSummary:
		return m.summaryArea.Focus()
	case fieldRecipients:
		return m.recipientsInput.Focus()
	default:
		return nil
	}
}

// summaryEditable reports whether keystrokes reach the summary text: always in
// edit mode, and in preview mode only when the preview is editable.
func (m *Model) summaryEditable() bool {
	ps := m.summary.Preview()

	return !ps.PreviewMode || ps.Editable()
}

// updateFocused hands msg to the focused input. Stored text only changes when
// the input's own value changed, so cursor blinks and navigation never replace
// a transcript or summary with the textarea's normalized copy.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch m.focus {
	case fieldInstruction:
		before := m.instructionInput.Value()
		m.instructionInput, cmd = m.instructionInput.Update(msg)
		if v := m.instructionInput.Value(); v != before {
			m.instruction.SetText(v)
			m.flash = workflow.Flash{}
		}

	case fieldTranscript:
		before := m.transcriptArea.Value()
		m.transcriptArea, cmd = m.transcriptArea.Update(msg)
		if v := m.transcriptArea.Value(); v != before {
			if !fitsTextArea(m.ingestor.Text()) {
				m.transcriptArea.SetValue(displayText(m.ingestor.Text()))
				m.flash = workflow.InfoFlash(tooLongText)

				return cmd
			}
			m.ingestor.SetManual(v)
			m.flash = workflow.Flash{}
		}

	case fieldSummary:
		if !m.summaryEditable() {
			return nil
		}

		before := m.summaryArea.Value()
		m.summaryArea, cmd = m.summaryArea.Update(msg)
		if v := m.summaryArea.Value(); v != before {
			if !fitsTextArea(m.summary.Text()) {
				m.summaryArea.SetValue(displayText(m.summary.Text()))
				m.flash = workflow.InfoFlash(tooLongText)

				return cmd
			}

			var err error
			if m.summary.Preview().PreviewMode {
				err = m.summary.PreviewEdit(v)
			} else {
				err = m.summary.Edit(v)
			}
			if err != nil {
				m.summaryArea.SetValue(displayText(m.summary.Text()))
			} else {
				m.flash = workflow.Flash{}
			}
		}

	case fieldRecipients:
		before := m.recipientsInput.Value()
		m.recipientsInput, cmd = m.recipientsInput.Update(msg)
		if v := m.recipientsInput.Value(); v != before {
			m.dispatcher.SetRecipients(v)
			m.flash = workflow.Flash{}
		}
	}

	return cmd
}

func (m *Model) clearFocused() {
	switch m.focus {
	case fieldInstruction:
		m.instruction.SetText("")
		m.instructionInput.SetValue("")

	case fieldTranscript:
		m.ingestor.Clear()
		m.transcriptArea.Reset()

	case fieldSummary:
		if err := m.summary.Clear(); err != nil {
			m.flash = workflow.FlashFor(err, "")

			return
		}
		m.summaryArea.Reset()

	case fieldRecipients:
		m.dispatcher.SetRecipients("")
		m.recipientsInput.SetValue("")
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	w := m.fieldWidth()
	m.instructionInput.Width = w
	m.recipientsInput.Width = w
	m.transcriptArea.SetWidth(w)
	m.summaryArea.SetWidth(w)

	// title, labels, single-line inputs, flash and help take roughly this much
	const chrome = 20
	avail := max(height-chrome, 6)
	transcriptHeight := max(avail*2/5, 3)
	m.transcriptArea.SetHeight(transcriptHeight)
	m.summaryArea.SetHeight(max(avail-transcriptHeight, 3))
}

// fieldWidth is the content width inside a bordered, padded field.
func (m *Model) fieldWidth() int {
	return max(m.width-4, 20)
}
