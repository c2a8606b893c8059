package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "214" // Orange - app name, titles
	ColorSecondary Color = "86"  // Cyan - subtitles
)

// Alarm state colors
const (
	ColorDisabled Color = "8"   // Gray - alarm switched off
	ColorEnabled  Color = "2"   // Green - alarm armed
	ColorFiring   Color = "226" // Yellow - alarm ringing
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorInfo      Color = "39"  // Blue - confirmations
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorDimmed          Color = "240" // Background behind overlays
	ColorHelpGroup       Color = "141" // Purple
	ColorHintKey         Color = "226" // Yellow - tip keys
	ColorPaletteSelected Color = "237" // Selected palette row
	ColorScrollIndicator Color = "244"
	ColorSpinner         Color = "205" // Pink
)
