// Package ingest turns the transcript acquisition channels into a single text value.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

// TranscriptExt is the only file extension accepted for file-backed sources.
const TranscriptExt = ".txt"

var (
	// ErrUnsupportedFile is returned for files that are not plain-text transcripts.
	ErrUnsupportedFile = errors.New("only .txt transcripts are supported")
	// ErrNoFile is returned when a drop carries no files.
	ErrNoFile = errors.New("no file provided")
)

// TextSource is a channel a transcript can be read from.
type TextSource interface {
	Read(ctx context.Context) (string, error)
}

// FilePicker reads a transcript file chosen through the file picker.
type FilePicker struct {
	Path string
}

// Read returns the file contents.
func (fp FilePicker) Read(ctx context.Context) (string, error) {
	return readTranscriptFile(ctx, fp.Path)
}

// DragDrop reads the first of a set of dropped files; the rest are ignored.
type DragDrop struct {
	Paths []string
}

// Read returns the contents of the first dropped file.
func (dd DragDrop) Read(ctx context.Context) (string, error) {
	if len(dd.Paths) == 0 {
		return "", ErrNoFile
	}

	return readTranscriptFile(ctx, dd.Paths[0])
}

// ManualEntry is text typed or pasted directly by the user.
type ManualEntry struct {
	Text string
}

// Read returns the entered text.
func (me ManualEntry) Read(context.Context) (string, error) {
	return me.Text, nil
}

// Clipboard reads the system clipboard.
type Clipboard struct {
	// ReadAll overrides the clipboard reader; nil uses the system clipboard.
	ReadAll func() (string, error)
}

// Read returns the clipboard contents.
func (cb Clipboard) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	readAll := cb.ReadAll
	if readAll == nil {
		readAll = clipboard.ReadAll
	}

	text, err := readAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}

	return text, nil
}

// IsTranscriptFile reports whether path has the transcript extension.
func IsTranscriptFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), TranscriptExt)
}

func readTranscriptFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !IsTranscriptFile(path) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript file: %w", err)
	}

	// Decoded like a browser reads a text file: invalid bytes become U+FFFD and
	// a leading byte order mark is dropped.
	text := strings.ToValidUTF8(string(data), "\uFFFD")

	return strings.TrimPrefix(text, "\uFEFF"), nil
}
