package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"workbench/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	Projects    ProjectKeys
	View        ViewKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Navigation:  newNavigationKeys(defaults, customKeys),
		Projects:    newProjectKeys(defaults, customKeys),
		View:        newViewKeys(defaults, customKeys),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Open.Binding,
		k.Navigation.SwitchPane.Binding,
		k.Navigation.Filter.Binding,
		k.View.SortColumn.Binding,
		k.View.ToggleIgnored.Binding,
		k.Projects.New.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// Tips returns every tip in key definition order
func (k KeyMap) Tips() []Tip {
	var tips []Tip
	for _, kt := range []KeyWithTip{
		k.Application.Help,
		k.Navigation.SwitchPane,
		k.Navigation.Filter,
		k.Navigation.Back,
		k.View.SortColumn,
		k.View.ToggleIgnored,
		k.View.OpenEditor,
		k.Projects.New,
		k.Projects.Delete,
	} {
		if kt.Tip != nil {
			tips = append(tips, *kt.Tip)
		}
	}
	return tips
}
