package console

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B"))

	verboseStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6272A4"))

	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F1FA8C"))

	listHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("#50FA7B"))
)

func FormatSuccessMessage(message string) string {
	return applyStyle(successStyle, "✓ ") + message
}

func FormatInfoMessage(message string) string {
	return applyStyle(infoStyle, "ℹ ") + message
}

func FormatWarningMessage(message string) string {
	return applyStyle(warningStyle, "⚠ ") + message
}

// FormatErrorMessage formats an unlocated error for stderr
func FormatErrorMessage(message string) string {
	return applyStyle(errorStyle, "✗ ") + message
}

// FormatVerboseMessage formats output shown only with --verbose
func FormatVerboseMessage(message string) string {
	return applyStyle(verboseStyle, "🔍 ") + message
}

func FormatCountMessage(message string) string {
	return applyStyle(countStyle, "📊 ") + message
}

// FormatProgressMessage is used for watch-mode activity lines
func FormatProgressMessage(message string) string {
	return applyStyle(progressStyle, "🔨 ") + message
}

func FormatListHeader(header string) string {
	return applyStyle(listHeaderStyle, header)
}

func FormatListItem(item string) string {
	return applyStyle(sourceStyle, "  • "+item)
}
