package workflow

// FlashKind distinguishes error feedback from informational feedback.
type FlashKind int

const (
	// FlashNone is the zero value: nothing to show.
	FlashNone FlashKind = iota
	// FlashInfo reports a success.
	FlashInfo
	// FlashError reports a failure.
	FlashError
)

// Flash is the single transient message shown to the user.
type Flash struct {
	Kind FlashKind
	Text string
}

// Visible reports whether there is anything to show.
func (f Flash) Visible() bool {
	return f.Kind != FlashNone && f.Text != ""
}

// InfoFlash builds an informational flash.
func InfoFlash(text string) Flash {
	return Flash{Kind: FlashInfo, Text: text}
}

// ErrorFlash builds an error flash.
func ErrorFlash(text string) Flash {
	return Flash{Kind: FlashError, Text: text}
}

// FlashFor converts err into the flash the user sees. Validation errors show
// their hint; everything else shows its message, or fallback when it has none.
func FlashFor(err error, fallback string) Flash {
	if err == nil {
		return Flash{}
	}

	if verr, ok := asValidationError(err); ok {
		return ErrorFlash(verr.Hint)
	}

	if msg := err.Error(); msg != "" {
		return ErrorFlash(msg)
	}

	return ErrorFlash(fallback)
}
