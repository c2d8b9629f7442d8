package theme

import "github.com/charmbracelet/lipgloss"

// Color palette - dark theme inspired by Catppuccin Mocha
var (
	ColorBase     = lipgloss.Color("#1e1e2e")
	ColorSurface0 = lipgloss.Color("#313244")
	ColorSurface1 = lipgloss.Color("#45475a")
	ColorSurface2 = lipgloss.Color("#585b70")
	ColorOverlay0 = lipgloss.Color("#6c7086")
	ColorText     = lipgloss.Color("#cdd6f4")
	ColorSubtext0 = lipgloss.Color("#a6adc8")

	ColorRed      = lipgloss.Color("#f38ba8")
	ColorGreen    = lipgloss.Color("#a6e3a1")
	ColorYellow   = lipgloss.Color("#f9e2af")
	ColorBlue     = lipgloss.Color("#89b4fa")
	ColorMauve    = lipgloss.Color("#cba6f7")
	ColorTeal     = lipgloss.Color("#94e2d5")
	ColorPeach    = lipgloss.Color("#fab387")
	ColorLavender = lipgloss.Color("#b4befe")
)

// Message prefix styles for CLI output
var (
	prefixInfo    = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue).SetString("→")
	prefixSuccess = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen).SetString("✓")
	prefixWarn    = lipgloss.NewStyle().Bold(true).Foreground(ColorYellow).SetString("!")
	prefixError   = lipgloss.NewStyle().Bold(true).Foreground(ColorRed).SetString("✗")

	StyleTitle  = lipgloss.NewStyle().Bold(true).Foreground(ColorLavender)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorOverlay0)
	StyleOption = lipgloss.NewStyle().Foreground(ColorTeal)
	StyleValue  = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
)

// Info renders an informational message line.
func Info(msg string) string {
	return prefixInfo.String() + " " + msg
}

// Success renders a success message line.
func Success(msg string) string {
	return prefixSuccess.String() + " " + msg
}

// Warn renders a warning message line.
func Warn(msg string) string {
	return prefixWarn.String() + " " + msg
}

// Error renders an error message line.
func Error(msg string) string {
	return prefixError.String() + " " + msg
}
