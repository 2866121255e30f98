package workflow_test

import (
	"context"
	"testing"

	"github.com/alkime/recap/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readySummary(t *testing.T, text string) *workflow.SummaryController {
	t.Helper()

	sc := workflow.NewSummaryController()
	_, err := sc.Generate(context.Background(), &mockSummarizer{result: text}, "transcript", "")
	require.NoError(t, err)

	return sc
}

func TestPreview_ToggleKeepsText(t *testing.T) {
	sc := readySummary(t, "# Notes\n- item")

	sc.SetPreviewMode(true)
	sc.SetPreviewMode(false)
	sc.SetPreviewMode(true)

	assert.Equal(t, "# Notes\n- item", sc.Text())
}

func TestPreview_ToggleKeepsUnsavedEdits(t *testing.T) {
	sc := readySummary(t, "generated")
	require.NoError(t, sc.Edit("edited in the box"))

	sc.SetPreviewMode(true)
	sc.SetPreviewMode(false)

	assert.Equal(t, "edited in the box", sc.Text())
	assert.True(t, sc.Result().Edited)
}

func TestPreview_EditableOnlyInPreviewMode(t *testing.T) {
	sc := readySummary(t, "generated")

	sc.SetEditableInPreview(true)
	assert.True(t, sc.Preview().EditableInPreview, "setting is stored")
	assert.False(t, sc.Preview().Editable(), "but has no effect outside preview mode")
	assert.ErrorIs(t, sc.PreviewEdit("nope"), workflow.ErrPreviewReadOnly)
	assert.Equal(t, "generated", sc.Text())

	sc.SetPreviewMode(true)
	assert.True(t, sc.Preview().Editable())

	require.NoError(t, sc.PreviewEdit("edited in preview"))
	assert.Equal(t, workflow.SummaryResult{Text: "edited in preview", Edited: true}, sc.Result())

	sc.SetPreviewMode(false)
	sc.SetPreviewMode(true)
	assert.Equal(t, "edited in preview", sc.Text())
}

func TestPreview_ReadOnlyPreviewRejectsEdits(t *testing.T) {
	sc := readySummary(t, "generated")
	sc.SetPreviewMode(true)

	assert.ErrorIs(t, sc.PreviewEdit("x"), workflow.ErrPreviewReadOnly)
	assert.Equal(t, "generated", sc.Text())
}
