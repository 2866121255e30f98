package ingest

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Document is the current transcript.
type Document struct {
	Text string
}

// CharCount returns the transcript length in characters.
func (d Document) CharCount() int {
	return utf8.RuneCountInString(d.Text)
}

// Blank reports whether the transcript is empty once trimmed.
func (d Document) Blank() bool {
	return strings.TrimSpace(d.Text) == ""
}

// Ingestor owns the transcript. Every channel replaces it wholesale and the most
// recent write wins. It is not safe for concurrent use; callers mutate it from a
// single event loop.
type Ingestor struct {
	doc        Document
	pickerPath string
	logger     *slog.Logger
}

// NewIngestor creates an empty ingestor.
func NewIngestor(logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Ingestor{logger: logger}
}

// Document returns the current transcript.
func (i *Ingestor) Document() Document {
	return i.doc
}

// Text returns the current transcript text.
func (i *Ingestor) Text() string {
	return i.doc.Text
}

// PickerPath returns the file currently held by the file picker, if any.
func (i *Ingestor) PickerPath() string {
	return i.pickerPath
}

// SameSelection reports whether path is already the file picker's selection.
// Re-selecting it does not trigger a new read until Clear is called.
func (i *Ingestor) SameSelection(path string) bool {
	return path != "" && path == i.pickerPath
}

// LoadFromFile reads path as chosen through the file picker.
func (i *Ingestor) LoadFromFile(ctx context.Context, path string) (string, error) {
	if i.SameSelection(path) {
		return i.doc.Text, nil
	}

	return i.Load(ctx, FilePicker{Path: path})
}

// LoadFromDrop reads the first of the dropped files.
func (i *Ingestor) LoadFromDrop(ctx context.Context, paths []string) (string, error) {
	return i.Load(ctx, DragDrop{Paths: paths})
}

// LoadFromClipboard replaces the transcript with the clipboard contents.
func (i *Ingestor) LoadFromClipboard(ctx context.Context) (string, error) {
	return i.Load(ctx, Clipboard{})
}

// SetManual replaces the transcript with typed or pasted text.
func (i *Ingestor) SetManual(text string) {
	i.doc = Document{Text: text}
}

// Load reads src and applies the result.
func (i *Ingestor) Load(ctx context.Context, src TextSource) (string, error) {
	text, readErr := src.Read(ctx)
	if err := i.Accept(src, text, readErr); err != nil {
		return i.doc.Text, err
	}

	return i.doc.Text, nil
}

// Accept applies the outcome of reading src. A failed read leaves the transcript
// unchanged and returns the read error.
func (i *Ingestor) Accept(src TextSource, text string, readErr error) error {
	if readErr != nil {
		i.logger.Warn("Transcript read failed, keeping previous transcript",
			"source", sourceName(src),
			"error", readErr,
		)

		return readErr
	}

	if fp, ok := src.(FilePicker); ok {
		i.pickerPath = fp.Path
	}

	i.doc = Document{Text: text}
	i.logger.Debug("Transcript loaded", "source", sourceName(src), "chars", i.doc.CharCount())

	return nil
}

// Clear empties the transcript and forgets the file picker selection.
func (i *Ingestor) Clear() {
	i.doc = Document{}
	i.pickerPath = ""
}

func sourceName(src TextSource) string {
	switch src.(type) {
	case FilePicker:
		return "file"
	case DragDrop:
		return "drop"
	case ManualEntry:
		return "manual"
	case Clipboard:
		return "clipboard"
	default:
		return "unknown"
	}
}
