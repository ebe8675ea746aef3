package ui

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbench/internal/config"
)

func TestGetValidKeyNames_SortedAndComplete(t *testing.T) {
	names := GetValidKeyNames()

	assert.True(t, sort.StringsAreSorted(names))
	assert.Len(t, names, len(AllKeyDefinitions))
	for _, def := range AllKeyDefinitions {
		assert.Contains(t, names, def.Name)
	}
}

func TestKeyDefinitions_NoDuplicateDefaults(t *testing.T) {
	seen := make(map[string]string)
	for _, def := range AllKeyDefinitions {
		require.NotEmpty(t, def.Defaults, def.Name)
		for _, k := range def.Defaults {
			other, dup := seen[k]
			assert.False(t, dup, "key %q bound to %s and %s", k, other, def.Name)
			seen[k] = def.Name
		}
	}
}

func TestKeyDefinitions_DefaultsPassValidation(t *testing.T) {
	custom := config.KeyBindingsConfig{}
	for name, keys := range GetDefaultKeyBindings() {
		custom[name] = keys
	}
	assert.NoError(t, custom.Validate(GetValidKeyNames()))
}

func TestIsValidKeyName(t *testing.T) {
	assert.True(t, IsValidKeyName("toggle_ignored"))
	assert.False(t, IsValidKeyName("kill"))
}

func TestNewKeyMap_CustomOverride(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{"filter": {"f", "ctrl+f"}})

	assert.Equal(t, []string{"f", "ctrl+f"}, keys.Navigation.Filter.Binding.Keys())
	assert.Equal(t, "f/ctrl+f", keys.Navigation.Filter.Binding.Help().Key)
	require.NotNil(t, keys.Navigation.Filter.Tip)
	assert.Equal(t, "press f to filter entries by name", keys.Navigation.Filter.Tip.String())

	// Untouched bindings keep their defaults
	assert.Equal(t, []string{"q"}, keys.Application.Quit.Binding.Keys())
	assert.Nil(t, keys.Application.Quit.Tip)
}

func TestBuildBinding_UnknownNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		buildBinding("no_such_key", GetDefaultKeyBindings(), nil)
	})
}

func TestKeyMap_Tips(t *testing.T) {
	tips := NewKeyMap(nil).Tips()

	require.NotEmpty(t, tips)
	for _, tip := range tips {
		assert.Len(t, tip.Keys, 1)
		assert.NotContains(t, tip.String(), "%s")
	}
}
