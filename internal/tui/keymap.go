package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the workflow shell.
type KeyMap struct {
	NextField   key.Binding
	PrevField   key.Binding
	Generate    key.Binding
	Send        key.Binding
	Preview     key.Binding
	EditPreview key.Binding
	OpenFile    key.Binding
	Paste       key.Binding
	ClearField  key.Binding
	Copy        key.Binding
	Presets     []key.Binding
	ClosePicker key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "generate"),
		),
		Send: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "preview"),
		),
		EditPreview: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "editable preview"),
		),
		OpenFile: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open .txt"),
		),
		Paste: key.NewBinding(
			key.WithKeys("alt+v"),
			key.WithHelp("alt+v", "paste transcript"),
		),
		ClearField: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear field"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy summary"),
		),
		Presets: []key.Binding{
			key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "preset 1")),
			key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "preset 2")),
			key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "preset 3")),
			key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "preset 4")),
		},
		ClosePicker: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Generate, k.Send, k.Preview, k.OpenFile, k.Quit}
}

// FullHelp returns every binding, grouped by concern.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.ClearField},
		{k.OpenFile, k.Paste},
		append([]key.Binding{}, k.Presets...),
		{k.Generate, k.Preview, k.EditPreview, k.Copy},
		{k.Send, k.Quit},
	}
}
