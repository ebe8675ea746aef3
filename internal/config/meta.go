package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings,
// so new Settings fields show up without further changes
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"filter": "/",
			"up":     []string{"up", "k"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return DefaultMaxLogFiles
			case "refresh_interval_seconds":
				return int(DefaultRefreshInterval.Seconds())
			case "ssh_port":
				return DefaultSSHPort
			case "watch_debounce_ms":
				return int(DefaultWatchDebounce.Milliseconds())
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "editor":
			return "code"
		case "ssh_host":
			return DefaultSSHHost
		}
		return "example"
	}

	return nil
}
