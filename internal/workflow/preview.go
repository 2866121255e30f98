package workflow

// PreviewState controls how the summary is rendered. The summary text itself
// always lives in SummaryResult.
type PreviewState struct {
	PreviewMode bool
	// EditableInPreview only has an effect while PreviewMode is on.
	EditableInPreview bool
}

// Editable reports whether the preview currently accepts edits.
func (ps PreviewState) Editable() bool {
	return ps.PreviewMode && ps.EditableInPreview
}

// Preview returns the preview state.
func (sc *SummaryController) Preview() PreviewState {
	return sc.preview
}

// SetPreviewMode switches between the edit box and the rendered preview.
func (sc *SummaryController) SetPreviewMode(on bool) {
	sc.preview.PreviewMode = on
}

// SetEditableInPreview allows or forbids edits in the rendered preview. The
// setting is kept even while preview mode is off.
func (sc *SummaryController) SetEditableInPreview(on bool) {
	sc.preview.EditableInPreview = on
}

// PreviewEdit writes text edited in the preview back into the summary.
func (sc *SummaryController) PreviewEdit(text string) error {
	if !sc.preview.Editable() {
		return ErrPreviewReadOnly
	}

	return sc.Edit(text)
}
