package workflow

import (
	"context"
	"strings"
)

const (
	summaryGeneratedText = "Summary generated."
	generateFailedText   = "Failed to generate summary"
)

// SummaryResult is the generated summary as the user currently sees it.
type SummaryResult struct {
	Text string
	// Edited is true once the user has changed the generated text.
	Edited bool
}

// GenerateRequest is the input of one generation call.
type GenerateRequest struct {
	Transcript  string
	Instruction string
}

// SummaryController owns the summary, its preview state and the generation phase.
type SummaryController struct {
	result  SummaryResult
	preview PreviewState
	phase   Phase
}

// NewSummaryController creates an idle controller with an empty summary.
func NewSummaryController() *SummaryController {
	return &SummaryController{}
}

// Result returns the current summary.
func (sc *SummaryController) Result() SummaryResult {
	return sc.result
}

// Text returns the current summary text.
func (sc *SummaryController) Text() string {
	return sc.result.Text
}

// Phase returns the generation phase.
func (sc *SummaryController) Phase() Phase {
	return sc.phase
}

// Generating reports whether a generation request is outstanding.
func (sc *SummaryController) Generating() bool {
	return sc.phase.InFlight()
}

// Begin starts a generation. It fails with ErrEmptyTranscript, leaving the phase
// untouched, when the transcript is blank. While a generation is already in
// flight it does nothing and reports started=false.
func (sc *SummaryController) Begin(transcript, instruction string) (req GenerateRequest, started bool, err error) {
	if sc.phase.InFlight() {
		return GenerateRequest{}, false, nil
	}

	if strings.TrimSpace(transcript) == "" {
		return GenerateRequest{}, false, ErrEmptyTranscript
	}

	sc.phase = inFlight()

	return GenerateRequest{Transcript: transcript, Instruction: instruction}, true, nil
}

// Complete applies the outcome of the generation started by Begin and returns
// the flash to show.
func (sc *SummaryController) Complete(summary string, err error) Flash {
	if err != nil {
		flash := FlashFor(err, generateFailedText)
		sc.phase = failed(flash.Text)

		return flash
	}

	sc.result = SummaryResult{Text: summary}
	sc.preview = PreviewState{}
	sc.phase = succeeded()

	return InfoFlash(summaryGeneratedText)
}

// Generate runs a whole generation against s. The returned error is the
// validation or request error, if any; the flash describes the outcome either way.
// It returns an empty flash and nil when a generation is already in flight.
func (sc *SummaryController) Generate(ctx context.Context, s Summarizer, transcript, instruction string) (Flash, error) {
	req, started, err := sc.Begin(transcript, instruction)
	if err != nil {
		return FlashFor(err, generateFailedText), err
	}
	if !started {
		return Flash{}, nil
	}

	summary, err := s.Summarize(ctx, req.Transcript, req.Instruction)

	return sc.Complete(summary, err), err
}

// Edit replaces the summary text with the user's version.
func (sc *SummaryController) Edit(text string) error {
	if sc.phase.InFlight() {
		return ErrGenerationInFlight
	}

	sc.result = SummaryResult{Text: text, Edited: true}

	return nil
}

// Clear empties the summary.
func (sc *SummaryController) Clear() error {
	if sc.phase.InFlight() {
		return ErrGenerationInFlight
	}

	sc.result.Text = ""

	return nil
}
