package ui

import (
	"fmt"
	"time"

	"github.com/renato0307/despertar/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Rise and shine",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name, optional version info (dev mode), the
// tagline and, when given, a subtitle. A non-zero now adds the wall clock.
func renderHeader(devMode bool, subtitle string, now time.Time) string {
	appNameLine := theme.AppNameStyle.Render("Despertar")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}
	if !now.IsZero() {
		appNameLine += "  " + theme.ClockStyle.Render(now.Format("Mon 15:04:05"))
	}

	result := appNameLine + "\n"
	result += theme.TaglineStyle.Render(versionInfo.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	result += "\n"
	return result
}

// renderDialogHeader creates a header for dialogs. Only Dialog calls it.
func renderDialogHeader(devMode bool, formTitle string) string {
	return renderHeader(devMode, formTitle, time.Time{})
}
