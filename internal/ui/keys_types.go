package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/despertar/internal/theme"
)

// Tip is a usage hint for one key binding
type Tip struct {
	Format string // One %s placeholder, filled with Key
	Key    string
}

// String returns the tip as plain text
func (t Tip) String() string {
	return fmt.Sprintf(t.Format, t.Key)
}

// Render formats the tip with the key highlighted and the rest in gray
func (t Tip) Render() string {
	before, after, found := strings.Cut(t.Format, "%s")

	var b strings.Builder
	b.WriteString(theme.TipTextStyle.Render("ℹ  tip: " + before))
	if found {
		b.WriteString(theme.TipKeyStyle.Render(t.Key))
		b.WriteString(theme.TipTextStyle.Render(after))
	}
	return b.String()
}

// KeyWithTip pairs a binding with the hint advertising it. Tip is nil when
// the binding has no hint or no keys.
type KeyWithTip struct {
	Binding key.Binding
	Tip     *Tip
}
