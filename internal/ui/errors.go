package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

type clearErrorMsg struct {
	generation int
}

// ErrorManager holds the error shown in the status line and clears it after a delay
type ErrorManager struct {
	clearDelay time.Duration
	err        error
	generation int // Bumped per error so an old clear timer does not hide a newer error
}

// NewErrorManager creates an error manager clearing errors after clearDelay
func NewErrorManager(clearDelay time.Duration) *ErrorManager {
	return &ErrorManager{clearDelay: clearDelay}
}

// SetError shows err and returns the command that clears it later
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.err = err
	em.generation++
	generation := em.generation
	if em.clearDelay <= 0 {
		return nil
	}
	return tea.Tick(em.clearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{generation: generation}
	})
}

// HandleClear clears the error if msg belongs to the latest error
func (em *ErrorManager) HandleClear(msg clearErrorMsg) {
	if msg.generation == em.generation {
		em.err = nil
	}
}

// Error returns the current error, nil when none is shown
func (em *ErrorManager) Error() error {
	return em.err
}

// formatErrorForDisplay limits an error to maxErrorLines lines of maxWidth,
// wrapping on words and ending with "..." when the message is cut.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := err.Error()
	if message == "" {
		return errorPrefix + "unknown error"
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + message
	}

	if maxWidth < 10 {
		maxWidth = 10
	}
	// The first line also carries the prefix
	lineWidth := max(maxWidth-utf8.RuneCountInString(errorPrefix), 10)

	var lines []string
	var current strings.Builder
	truncated := false
	for i, word := range words {
		currentLen := utf8.RuneCountInString(current.String())
		if currentLen > 0 && currentLen+1+utf8.RuneCountInString(word) > lineWidth {
			lines = append(lines, current.String())
			current.Reset()
			if len(lines) == maxErrorLines {
				truncated = i < len(words)
				break
			}
			lineWidth = maxWidth
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, current.String())
	}

	if truncated {
		last := []rune(lines[maxErrorLines-1])
		keep := maxWidth - utf8.RuneCountInString(truncationMark)
		if len(last) > keep && keep > 0 {
			last = last[:keep]
		}
		lines[maxErrorLines-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
