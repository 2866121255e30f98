package workflow

import "fmt"

// Presets are the canned instructions offered as quick picks, in display order.
var Presets = []string{
	"Summarize in 5 bullet points for executives.",
	"Highlight only action items with owners and due dates.",
	"Summarize decisions taken and open risks.",
	"Create next steps with timelines.",
}

// Instruction is the optional directive sent along with the transcript.
type Instruction struct {
	text string
}

// Text returns the current instruction.
func (in *Instruction) Text() string {
	return in.text
}

// SetText replaces the instruction. Empty is allowed.
func (in *Instruction) SetText(text string) {
	in.text = text
}

// ApplyPreset overwrites the instruction with preset.
func (in *Instruction) ApplyPreset(preset string) {
	in.text = preset
}

// ApplyPresetIndex overwrites the instruction with Presets[i].
func (in *Instruction) ApplyPresetIndex(i int) error {
	if i < 0 || i >= len(Presets) {
		return fmt.Errorf("%w: %d", ErrUnknownPreset, i+1)
	}

	in.ApplyPreset(Presets[i])

	return nil
}
