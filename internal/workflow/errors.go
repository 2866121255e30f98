package workflow

import "errors"

// ValidationError is a problem detected locally, before any request is made.
type ValidationError struct {
	// Reason is a short machine-oriented description.
	Reason string
	// Hint is the message shown to the user.
	Hint string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var (
	// ErrEmptyTranscript is returned when generating without a transcript.
	ErrEmptyTranscript = &ValidationError{
		Reason: "empty transcript",
		Hint:   "Please upload or paste a transcript.",
	}
	// ErrEmptySummary is returned when sending without a summary.
	ErrEmptySummary = &ValidationError{
		Reason: "empty summary",
		Hint:   "Summary is empty.",
	}
	// ErrMissingRecipients is returned when the recipient field is blank.
	ErrMissingRecipients = &ValidationError{
		Reason: "missing recipients",
		Hint:   "Add at least one recipient email.",
	}
	// ErrNoValidRecipients is returned when no email address can be found in the
	// recipient field.
	ErrNoValidRecipients = &ValidationError{
		Reason: "no valid recipient emails",
		Hint:   "Please enter valid recipient emails (comma/space separated).",
	}
)

var (
	// ErrGenerationInFlight is returned for summary edits while a new summary is
	// being generated.
	ErrGenerationInFlight = errors.New("summary generation in progress")
	// ErrPreviewReadOnly is returned for preview edits when the preview is not editable.
	ErrPreviewReadOnly = errors.New("preview is read-only")
	// ErrUnknownPreset is returned for a preset index out of range.
	ErrUnknownPreset = errors.New("unknown preset")
)

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	_, ok := asValidationError(err)
	return ok
}

func asValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}

	return nil, false
}
