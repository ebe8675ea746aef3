package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// ConfirmForm asks a yes/no question
type ConfirmForm struct {
	Completed bool
	Confirmed bool
	form      *huh.Form
}

// NewConfirmForm creates a confirmation prompt defaulting to "No"
func NewConfirmForm(question, description string) *ConfirmForm {
	cf := &ConfirmForm{}
	cf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&cf.Confirmed),
		),
	)
	return cf
}

// Init implements tea.Model
func (cf *ConfirmForm) Init() tea.Cmd {
	return cf.form.Init()
}

// Update implements tea.Model
func (cf *ConfirmForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			cf.Confirmed = false
			cf.Completed = true
			return cf, nil
		}
	}

	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}

	if cf.form.State == huh.StateCompleted || cf.form.State == huh.StateAborted {
		cf.Completed = true
		return cf, nil
	}

	return cf, cmd
}

// View implements tea.Model
func (cf *ConfirmForm) View() string {
	return cf.form.View()
}
