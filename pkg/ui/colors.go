package ui

import "github.com/charmbracelet/lipgloss"

// Diagnostic lines are plain strings with ANSI colour so they survive
// clipboard export after StripANSI.
const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

var (
	ColorPrimary    = lipgloss.Color("212")
	ColorSecondary  = lipgloss.Color("240")
	ColorSuccess    = lipgloss.Color("82")
	ColorWarning    = lipgloss.Color("214")
	ColorMuted      = lipgloss.Color("245")
	ColorDim        = lipgloss.Color("238")
	ColorBackground = lipgloss.Color("235")
	ColorForeground = lipgloss.Color("252")
)

func LogError(msg string) string   { return ansiRed + msg + ansiReset }
func LogSuccess(msg string) string { return ansiGreen + msg + ansiReset }
func LogWarning(msg string) string { return ansiYellow + msg + ansiReset }
