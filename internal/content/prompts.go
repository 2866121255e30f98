package content

import (
	"fmt"
	"strings"
)

// DefaultInstruction is used when the caller leaves the instruction empty.
const DefaultInstruction = "Summarize the meeting clearly and concisely."

// SystemPrompt is the system prompt shared by every provider.
const SystemPrompt = `You are a meeting summarizer. Given a raw meeting transcript and an instruction, you will:
- Follow the instruction for format, length and focus
- Attribute decisions and action items to the people named in the transcript
- Keep owners and due dates exactly as stated; never invent them
- Output clean markdown (headings, bullet points) with no preamble or closing remarks
- If the transcript contains no meeting content, say so in one sentence`

// UserPrompt builds the user message sent alongside SystemPrompt.
func UserPrompt(transcript, instruction string) string {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		instruction = DefaultInstruction
	}

	return fmt.Sprintf("Instruction: %s\n\nTranscript:\n---\n%s\n---", instruction, strings.TrimSpace(transcript))
}
