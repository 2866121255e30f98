package ingest_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alkime/recap/internal/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	//nolint:gosec // Test file
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestIngestor_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "meeting.txt", "Team agreed on X.")

	ing := ingest.NewIngestor(nil)
	text, err := ing.LoadFromFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "Team agreed on X.", text)
	assert.Equal(t, "Team agreed on X.", ing.Text())
	assert.Equal(t, 17, ing.Document().CharCount())
	assert.Equal(t, path, ing.PickerPath())
}

func TestIngestor_LoadFromFile_RejectsNonText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "slides.pdf", "%PDF")

	ing := ingest.NewIngestor(nil)
	ing.SetManual("previous")

	_, err := ing.LoadFromFile(context.Background(), path)

	require.ErrorIs(t, err, ingest.ErrUnsupportedFile)
	assert.Equal(t, "previous", ing.Text())
	assert.Empty(t, ing.PickerPath())
}

func TestIngestor_FailedReadIsNoOp(t *testing.T) {
	ing := ingest.NewIngestor(nil)
	ing.SetManual("keep me")

	_, err := ing.LoadFromFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.Equal(t, "keep me", ing.Text())
}

func TestIngestor_LoadFromDrop_FirstFileOnly(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.txt", "first transcript")
	second := writeFile(t, dir, "second.txt", "second transcript")

	ing := ingest.NewIngestor(nil)
	text, err := ing.LoadFromDrop(context.Background(), []string{first, second})

	require.NoError(t, err)
	assert.Equal(t, "first transcript", text)
	assert.Empty(t, ing.PickerPath(), "drops do not touch the picker selection")
}

func TestIngestor_LoadFromDrop_Empty(t *testing.T) {
	ing := ingest.NewIngestor(nil)
	ing.SetManual("unchanged")

	_, err := ing.LoadFromDrop(context.Background(), nil)

	require.ErrorIs(t, err, ingest.ErrNoFile)
	assert.Equal(t, "unchanged", ing.Text())
}

func TestIngestor_LastWriteWins(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "from file")
	drop := writeFile(t, dir, "b.txt", "from drop")

	ing := ingest.NewIngestor(nil)

	_, err := ing.LoadFromFile(context.Background(), path)
	require.NoError(t, err)
	ing.SetManual("typed")
	assert.Equal(t, "typed", ing.Text())

	_, err = ing.LoadFromDrop(context.Background(), []string{drop})
	require.NoError(t, err)
	assert.Equal(t, "from drop", ing.Text())
}

func TestIngestor_ClearResetsPickerSelection(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "version one")

	ing := ingest.NewIngestor(nil)
	_, err := ing.LoadFromFile(context.Background(), path)
	require.NoError(t, err)

	// The file changes on disk, but re-selecting it is an unchanged selection.
	writeFile(t, dir, "notes.txt", "version two")
	ing.SetManual("edited by hand")

	text, err := ing.LoadFromFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "edited by hand", text)

	ing.Clear()
	assert.Empty(t, ing.Text())
	assert.Empty(t, ing.PickerPath())

	text, err = ing.LoadFromFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "version two", text)
}

func TestIngestor_Clipboard(t *testing.T) {
	ing := ingest.NewIngestor(nil)

	_, err := ing.Load(context.Background(), ingest.Clipboard{
		ReadAll: func() (string, error) { return "pasted transcript", nil },
	})
	require.NoError(t, err)
	assert.Equal(t, "pasted transcript", ing.Text())

	_, err = ing.Load(context.Background(), ingest.Clipboard{
		ReadAll: func() (string, error) { return "", errors.New("no clipboard") },
	})
	require.Error(t, err)
	assert.Equal(t, "pasted transcript", ing.Text())
}

func TestIngestor_AcceptAsyncResult(t *testing.T) {
	ing := ingest.NewIngestor(nil)

	require.NoError(t, ing.Accept(ingest.ManualEntry{}, "async text", nil))
	assert.Equal(t, "async text", ing.Text())

	readErr := errors.New("unreadable")
	assert.ErrorIs(t, ing.Accept(ingest.FilePicker{Path: "x.txt"}, "", readErr), readErr)
	assert.Equal(t, "async text", ing.Text())
	assert.Empty(t, ing.PickerPath())
}

func TestDocument(t *testing.T) {
	assert.True(t, ingest.Document{Text: " \n\t"}.Blank())
	assert.False(t, ingest.Document{Text: "x"}.Blank())
	assert.Equal(t, 5, ingest.Document{Text: "héllo"}.CharCount())
}

func TestIsTranscriptFile(t *testing.T) {
	assert.True(t, ingest.IsTranscriptFile("a.txt"))
	assert.True(t, ingest.IsTranscriptFile("/tmp/NOTES.TXT"))
	assert.False(t, ingest.IsTranscriptFile("a.md"))
	assert.False(t, ingest.IsTranscriptFile("txt"))
}

func TestIngestor_LoadFromFile_DecodesLikeTextFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bom.txt", "\ufeffAlice:\tyes\r\nBob: \xffno\r\n")

	ing := ingest.NewIngestor(nil)
	text, err := ing.LoadFromFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "Alice:\tyes\r\nBob: \ufffdno\r\n", text)
}
