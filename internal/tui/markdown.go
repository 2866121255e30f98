package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const minRenderWidth = 20

// markdownRenderer renders the summary preview. Renderers are cached per width;
// it is only used from the bubbletea event loop.
type markdownRenderer struct {
	style     string
	renderers map[int]*glamour.TermRenderer
}

func newMarkdownRenderer(style string) *markdownRenderer {
	return &markdownRenderer{
		style:     style,
		renderers: map[int]*glamour.TermRenderer{},
	}
}

// Render returns md as styled terminal text, or md unchanged when rendering fails.
func (mr *markdownRenderer) Render(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}

	width = max(width, minRenderWidth)

	r, ok := mr.renderers[width]
	if !ok {
		var err error
		// WithAutoStyle can block on terminal background queries.
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(mr.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}

		mr.renderers[width] = r
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}

	return strings.Trim(out, "\n")
}
