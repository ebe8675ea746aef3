package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings.
// Names are the keys accepted under "keys" in settings.json.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"h", "?"}, Help: "show keyboard shortcuts", TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},

	// Navigation keys
	{Name: "back", Defaults: []string{"backspace", "left"}, Help: "go to parent folder", TipFormat: "press %s to go up one folder"},
	{Name: "clear_filter", Defaults: []string{"esc"}, Help: "clear filter"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next row"},
	{Name: "filter", Defaults: []string{"/"}, Help: "filter entries by name", TipFormat: "press %s to filter entries by name"},
	{Name: "open", Defaults: []string{"enter", "right"}, Help: "open project or folder"},
	{Name: "switch_pane", Defaults: []string{"tab"}, Help: "switch pane", TipFormat: "press %s to move between the folder tree and the entries"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous row"},

	// Project keys
	{Name: "delete_project", Defaults: []string{"x"}, Help: "remove project", TipFormat: "press %s to remove a project from the registry"},
	{Name: "new_project", Defaults: []string{"n"}, Help: "add project", TipFormat: "press %s to register a working copy"},

	// View keys
	{Name: "open_editor", Defaults: []string{"e"}, Help: "open entry in editor", TipFormat: "press %s to open the selected entry in your editor"},
	{Name: "refresh", Defaults: []string{"r"}, Help: "refresh now"},
	{Name: "sort_column", Defaults: []string{"s"}, Help: "cycle sort column", TipFormat: "press %s to sort by another column"},
	{Name: "sort_reverse", Defaults: []string{"S"}, Help: "reverse sort order"},
	{Name: "toggle_ignored", Defaults: []string{"i"}, Help: "show or hide ignored entries", TipFormat: "press %s to show entries the SCM reports nothing for"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
