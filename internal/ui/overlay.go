package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/despertar/internal/theme"
)

// dimBackground strips styling from every line, dims it and pads it to width.
// The result has at least height lines.
func dimBackground(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	for i := range lines {
		dimmed := theme.DimmedStyle.Render(stripAnsi(lines[i]))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		lines[i] = dimmed
	}
	return lines
}

// compositeOverlay renders overlay centered on top of a dimmed background
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}

	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		rightPad := max(width-startX-lipgloss.Width(line), 0)
		bgLines[y] = theme.DimmedStyle.Render(strings.Repeat(" ", startX)) + line +
			theme.DimmedStyle.Render(strings.Repeat(" ", rightPad))
	}

	return strings.Join(bgLines, "\n")
}

// bottomAnchoredOverlay renders overlay at the bottom of a dimmed background
func bottomAnchoredOverlay(background, overlay string, width, height, overlayHeight int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	startY := max(height-overlayHeight, 0)
	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgLines[y] = line
	}

	return strings.Join(bgLines, "\n")
}

// stripAnsi removes ANSI escape codes from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false

	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			// SGR and most other sequences end with a letter
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}

	return result.String()
}
