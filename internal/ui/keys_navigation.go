package ui

import (
	"workbench/internal/config"
)

// NavigationKeys defines key bindings for moving around the panes
type NavigationKeys struct {
	Back        KeyWithTip
	ClearFilter KeyWithTip
	Down        KeyWithTip
	Filter      KeyWithTip
	Open        KeyWithTip
	SwitchPane  KeyWithTip
	Up          KeyWithTip
}

func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Back:        buildBinding("back", defaults, customKeys),
		ClearFilter: buildBinding("clear_filter", defaults, customKeys),
		Down:        buildBinding("down", defaults, customKeys),
		Filter:      buildBinding("filter", defaults, customKeys),
		Open:        buildBinding("open", defaults, customKeys),
		SwitchPane:  buildBinding("switch_pane", defaults, customKeys),
		Up:          buildBinding("up", defaults, customKeys),
	}
}
