package tui

import (
	"datepick/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	DatePlaceholder string
	TimePlaceholder string
}

// Result is what the user did with the picker.
type Result struct {
	Accepted bool
}

// Run drives s through an interactive picker until the user accepts or
// cancels. s must already be loaded.
func Run(s *picker.Synchronizer, opts Options) (Result, error) {
	m := newPickerModel(s, opts)
	out, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return Result{}, err
	}
	if pm, ok := out.(pickerModel); ok {
		return Result{Accepted: pm.accepted}, nil
	}
	return Result{}, nil
}
