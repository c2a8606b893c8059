package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)
)

// Alarm row styles
var (
	DaysStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(ColorDisabled)

	EnabledStyle = lipgloss.NewStyle().
			Foreground(ColorEnabled)

	NextTriggerStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	RingingStyle = lipgloss.NewStyle().
			Foreground(ColorFiring).
			Bold(true)

	TimeStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)
)

// Firing banner styles
var (
	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorFiring).
			Foreground(ColorFiring).
			Bold(true).
			Padding(0, 2)

	BannerHintStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ClockStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(20)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Notice styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)
)

// Command palette styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorSpinner)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.Border{Top: "─", Bottom: "─"}).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	PaletteDescStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	PaletteItemSelectedStyle = lipgloss.NewStyle().
					Foreground(ColorHighlight).
					Background(ColorPaletteSelected).
					Bold(true)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorScrollIndicator)
)
