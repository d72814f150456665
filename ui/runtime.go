package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(path string) error {
	selector, err := CreateSlotSelector(path)
	if err != nil {
		return errors.Wrap(err, "Start error")
	}
	if err := tea.NewProgram(selector).Start(); err != nil {
		return errors.Wrap(err, "Start error")
	}
	return nil
}
