package ui

import (
	"workbench/internal/config"
)

// ProjectKeys defines key bindings for the project registry
type ProjectKeys struct {
	Delete KeyWithTip
	New    KeyWithTip
}

func newProjectKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ProjectKeys {
	return ProjectKeys{
		Delete: buildBinding("delete_project", defaults, customKeys),
		New:    buildBinding("new_project", defaults, customKeys),
	}
}

// ViewKeys defines key bindings that change what the entries table shows
type ViewKeys struct {
	OpenEditor    KeyWithTip
	Refresh       KeyWithTip
	SortColumn    KeyWithTip
	SortReverse   KeyWithTip
	ToggleIgnored KeyWithTip
}

func newViewKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ViewKeys {
	return ViewKeys{
		OpenEditor:    buildBinding("open_editor", defaults, customKeys),
		Refresh:       buildBinding("refresh", defaults, customKeys),
		SortColumn:    buildBinding("sort_column", defaults, customKeys),
		SortReverse:   buildBinding("sort_reverse", defaults, customKeys),
		ToggleIgnored: buildBinding("toggle_ignored", defaults, customKeys),
	}
}
