// Package labeledspinner shows a spinner next to a label while a request runs.
package labeledspinner

import (
	"github.com/alkime/recap/internal/tui/style"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is an inline busy indicator. It renders nothing and stops ticking while
// inactive.
type Model struct {
	Spinner spinner.Model
	Label   string
	active  bool
}

// New creates an inactive labeled spinner.
func New(s spinner.Spinner, label string) Model {
	sp := spinner.New()
	sp.Spinner = s

	return Model{
		Spinner: sp,
		Label:   label,
	}
}

// Start activates the spinner and returns the command that drives it.
func (ls Model) Start() (Model, tea.Cmd) {
	if ls.active {
		return ls, nil
	}

	ls.active = true

	return ls, ls.Spinner.Tick
}

// Stop deactivates the spinner. The pending tick is dropped on arrival.
func (ls Model) Stop() Model {
	ls.active = false

	return ls
}

// Active reports whether the spinner is running.
func (ls Model) Active() bool {
	return ls.active
}

// Update handles spinner tick messages.
func (ls Model) Update(teaMsg tea.Msg) (Model, tea.Cmd) {
	tickMsg, ok := teaMsg.(spinner.TickMsg)
	if !ok || !ls.active {
		return ls, nil
	}

	var cmd tea.Cmd
	ls.Spinner, cmd = ls.Spinner.Update(tickMsg)

	return ls, cmd
}

// View renders the spinner and its label, or nothing when inactive.
func (ls Model) View() string {
	if !ls.active {
		return ""
	}

	return ls.Spinner.View() + " " + style.Subtitle.Render(ls.Label)
}
