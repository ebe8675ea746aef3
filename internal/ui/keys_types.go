package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"workbench/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// KeyWithTip wraps a key.Binding with an optional tip shown in the footer
type KeyWithTip struct {
	Binding key.Binding
	Tip     *Tip
}

func newTip(format string, keys ...string) *Tip {
	return &Tip{Format: format, Keys: keys}
}

// String renders the tip as plain text
func (t Tip) String() string {
	args := make([]any, len(t.Keys))
	for i, k := range t.Keys {
		args[i] = k
	}
	return fmt.Sprintf(t.Format, args...)
}

// RenderTip formats a tip with highlighted keys
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var b strings.Builder
	b.WriteString(theme.HelpDescStyle.Render("tip: "))
	for i, part := range parts {
		b.WriteString(theme.HelpDescStyle.Render(part))
		if i < len(tip.Keys) {
			b.WriteString(theme.TitleStyle.Render(tip.Keys[i]))
		}
	}
	return b.String()
}
