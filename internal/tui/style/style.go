// Package style holds the lipgloss styles shared by the shell views.
package style

import "github.com/charmbracelet/lipgloss"

const (
	pink   = lipgloss.Color("205")
	purple = lipgloss.Color("62")
	green  = lipgloss.Color("42")
	red    = lipgloss.Color("196")
	amber  = lipgloss.Color("214")
	dim    = lipgloss.Color("241")
	gray   = lipgloss.Color("245")
	border = lipgloss.Color("240")
	white  = lipgloss.Color("255")
)

var (
	// Title renders the application header.
	Title = lipgloss.NewStyle().Bold(true).Foreground(pink)

	// Subtitle renders the header tagline and the picker's directory.
	Subtitle = lipgloss.NewStyle().Foreground(dim)

	// Success and Error render info and error flashes.
	Success = lipgloss.NewStyle().Foreground(green)
	Error   = lipgloss.NewStyle().Foreground(red)

	// Warning renders mode badges such as "[preview]".
	Warning = lipgloss.NewStyle().Foreground(amber)

	// Field frames an input; FocusedField frames the one receiving keystrokes.
	Field = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	FocusedField = Field.BorderForeground(purple)

	// Help renders key hint descriptions.
	Help = lipgloss.NewStyle().Foreground(dim)

	// Key renders key names in hints and the focused field's label.
	Key = lipgloss.NewStyle().Bold(true).Foreground(pink)

	// Label renders field labels.
	Label = lipgloss.NewStyle().Bold(true).Foreground(white)

	// Muted renders counters and placeholders.
	Muted = lipgloss.NewStyle().Foreground(gray)
)
