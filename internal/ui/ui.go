// Package ui holds the shared lipgloss styles and text hygiene helpers
// for the terminal client.
package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// The palette leans on the adaptive ANSI range so it reads on both
// light and dark terminals.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "63", Dark: "117"})

	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "246"})

	CipherStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "244"})

	InputStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "16", Dark: "231"})

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})

	CursorStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)

	ConflictStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})

	StatusStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})

	SolvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})

	ClaimCodeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			Foreground(lipgloss.AdaptiveColor{Light: "63", Dark: "117"})

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "240"})
)

// SanitizeString strips control and escape runes from server-supplied
// text before it reaches the terminal. Everything printable, including
// non-ASCII, passes through.
func SanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
