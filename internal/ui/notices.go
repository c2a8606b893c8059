package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/theme"
)

const (
	maxNoticeLines = 2
	truncationMark = "..."
)

// clearNoticeMsg carries the generation it was scheduled for so a newer
// notice is not wiped by an older timer
type clearNoticeMsg struct {
	generation int
}

// ErrorManager holds the notice shown at the bottom of the list and clears it
// after a delay
type ErrorManager struct {
	clearDelay time.Duration
	current    *domain.Notice
	generation int
}

// NewErrorManager creates a new ErrorManager with the given auto-clear delay
func NewErrorManager(clearDelay time.Duration) *ErrorManager {
	return &ErrorManager{clearDelay: clearDelay}
}

// SetError shows err as an error notice
func (em *ErrorManager) SetError(err error) {
	if err == nil {
		return
	}
	em.SetNotice(domain.ErrorNotice(err.Error()))
}

// SetNotice shows notice, replacing the current one
func (em *ErrorManager) SetNotice(notice domain.Notice) {
	em.current = &notice
	em.generation++
}

// Clear removes the current notice
func (em *ErrorManager) Clear() {
	em.current = nil
}

// Current returns the notice being shown
func (em *ErrorManager) Current() (domain.Notice, bool) {
	if em.current == nil {
		return domain.Notice{}, false
	}
	return *em.current, true
}

// HasNotice reports whether a notice is being shown
func (em *ErrorManager) HasNotice() bool {
	return em.current != nil
}

// ClearAfterDelay returns a command that clears the current notice after the configured delay
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	generation := em.generation
	return tea.Tick(em.clearDelay, func(time.Time) tea.Msg {
		return clearNoticeMsg{generation: generation}
	})
}

// handleClear clears the notice if msg belongs to it
func (em *ErrorManager) handleClear(msg clearNoticeMsg) {
	if msg.generation == em.generation {
		em.current = nil
	}
}

// View renders the current notice limited to two lines
func (em *ErrorManager) View(width int) string {
	notice, ok := em.Current()
	if !ok {
		return ""
	}
	if notice.Level == domain.NoticeError {
		return theme.ErrorStyle.Render(formatNoticeForDisplay("Error: ", notice.Message, width))
	}
	return theme.InfoStyle.Render(formatNoticeForDisplay("", notice.Message, width))
}

// formatNoticeForDisplay word-wraps message to width, accounting for prefix on
// the first line. Output is at most maxNoticeLines lines; longer text ends with "...".
func formatNoticeForDisplay(prefix, message string, maxWidth int) string {
	if message == "" {
		message = "unknown error"
	}

	firstLineWidth := max(maxWidth-utf8.RuneCountInString(prefix), 10)
	otherLineWidth := max(maxWidth, 10)

	words := strings.Fields(message)
	if len(words) == 0 {
		return prefix + message
	}

	var lines []string
	var currentLine strings.Builder
	currentLineWidth := firstLineWidth
	truncated := false

	for i, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(currentLine.String())

		if currentLen > 0 && currentLen+1+wordLen > currentLineWidth {
			lines = append(lines, currentLine.String())
			currentLine.Reset()

			if len(lines) >= maxNoticeLines {
				truncated = i < len(words)
				break
			}
			currentLineWidth = otherLineWidth
		}

		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 && len(lines) < maxNoticeLines {
		lines = append(lines, currentLine.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		limit := currentLineWidth - utf8.RuneCountInString(truncationMark)
		if limit > 0 && len(last) > limit {
			last = last[:limit]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return prefix + strings.Join(lines, "\n")
}
