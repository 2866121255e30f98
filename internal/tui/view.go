package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/alkime/recap/internal/tui/style"
	"github.com/alkime/recap/internal/workflow"
	"github.com/charmbracelet/bubbles/key"
	"github.com/dustin/go-humanize"
)

const readOnlyBadge = "[read-only, too long to edit]"

// View renders the shell, or the file picker while one is open.
func (m *Model) View() string {
	if m.picking {
		return m.pickerView()
	}

	var sb strings.Builder

	sb.WriteString(style.Title.Render("Recap"))
	sb.WriteString(style.Subtitle.Render("  meeting transcript summarizer"))
	sb.WriteString("\n\n")

	sb.WriteString(m.label("Instruction", fieldInstruction, ""))
	sb.WriteString(m.frame(fieldInstruction, m.instructionInput.View()))
	sb.WriteString("\n")

	sb.WriteString(m.label("Transcript", fieldTranscript, m.transcriptBadges()))
	sb.WriteString(m.frame(fieldTranscript, m.transcriptArea.View()))
	sb.WriteString("\n")

	sb.WriteString(m.label("Summary", fieldSummary, m.summaryBadges()))
	sb.WriteString(m.frame(fieldSummary, m.summaryView()))
	sb.WriteString("\n")

	sb.WriteString(m.label("Recipients", fieldRecipients, m.sendSpinner.View()))
	sb.WriteString(m.frame(fieldRecipients, m.recipientsInput.View()))
	sb.WriteString("\n")

	if f := m.flashView(); f != "" {
		sb.WriteString(f)
		sb.WriteString("\n")
	}

	sb.WriteString(m.helpView())

	return sb.String()
}

func (m *Model) label(name string, f field, extra string) string {
	s := style.Label.Render(name)
	if m.focus == f {
		s = style.Key.Render(name)
	}

	if extra != "" {
		s += "  " + extra
	}

	return s + "\n"
}

func (m *Model) frame(f field, content string) string {
	if m.focus == f {
		return style.FocusedField.Width(m.fieldWidth()+2).Render(content) + "\n"
	}

	return style.Field.Width(m.fieldWidth()+2).Render(content) + "\n"
}

func (m *Model) transcriptBadges() string {
	s := charCount(m.ingestor.Document().CharCount())
	if !fitsTextArea(m.ingestor.Text()) {
		s += "  " + style.Warning.Render(readOnlyBadge)
	}

	return s
}

func (m *Model) summaryBadges() string {
	parts := []string{charCount(utf8.RuneCountInString(m.summary.Text()))}
	if !fitsTextArea(m.summary.Text()) {
		parts = append(parts, style.Warning.Render(readOnlyBadge))
	}

	ps := m.summary.Preview()
	switch {
	case ps.Editable():
		parts = append(parts, style.Warning.Render("[preview, editable]"))
	case ps.PreviewMode:
		parts = append(parts, style.Warning.Render("[preview]"))
	}

	if spin := m.genSpinner.View(); spin != "" {
		parts = append(parts, spin)
	}

	return strings.Join(parts, "  ")
}

// summaryView shows the edit box, or the rendered markdown in a read-only
// preview. An editable preview keeps the edit box so changes write back.
func (m *Model) summaryView() string {
	ps := m.summary.Preview()
	if !ps.PreviewMode || ps.Editable() {
		return m.summaryArea.View()
	}

	text := m.summary.Text()
	if strings.TrimSpace(text) == "" {
		return style.Muted.Render(previewPlaceholder)
	}

	return m.markdown.Render(text, m.fieldWidth())
}

func (m *Model) flashView() string {
	if !m.flash.Visible() {
		return ""
	}

	if m.flash.Kind == workflow.FlashError {
		return style.Error.Render("✗ " + m.flash.Text)
	}

	return style.Success.Render("✓ " + m.flash.Text)
}

func (m *Model) helpView() string {
	bindings := []key.Binding{
		m.keys.NextField, m.keys.OpenFile, m.keys.Paste, m.keys.Generate,
		m.keys.Preview, m.keys.EditPreview, m.keys.Copy, m.keys.Send,
		m.keys.ClearField, m.keys.Quit,
	}

	parts := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		parts = append(parts, renderKeyHelp(b))
	}
	parts = append(parts, style.Help.Render("[f1-f4] presets"))

	return strings.Join(parts, " ")
}

func (m *Model) pickerView() string {
	var sb strings.Builder

	sb.WriteString(style.Title.Render("Open transcript"))
	sb.WriteString(style.Subtitle.Render("  " + m.picker.CurrentDirectory))
	sb.WriteString("\n\n")
	sb.WriteString(m.picker.View())
	sb.WriteString("\n")
	sb.WriteString(renderKeyHelp(m.keys.ClosePicker, " "))
	sb.WriteString(renderKeyHelp(m.keys.Quit))

	return sb.String()
}

func renderKeyHelp(keyBinding key.Binding, suffix ...string) string {
	s := style.Help.Render("[") + style.Key.Render(keyBinding.Help().Key) +
		style.Help.Render("] ") +
		style.Help.Render(keyBinding.Help().Desc)

	return s + strings.Join(suffix, "")
}

func charCount(n int) string {
	return style.Muted.Render(humanize.Comma(int64(n)) + " chars")
}
