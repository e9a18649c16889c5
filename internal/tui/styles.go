// Package tui provides the full-screen interactive task picker.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette - matches the CLI colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F3F4F6") // Light gray
	ColorBgAlt     = lipgloss.Color("#374151") // Dark gray
)

// Styles contains all the lipgloss styles used in the picker.
type Styles struct {
	Header lipgloss.Style
	Footer lipgloss.Style

	SourceTitle lipgloss.Style
	SourceDir   lipgloss.Style

	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemDesc     lipgloss.Style

	FilterPrompt lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() *Styles {
	s := &Styles{}

	s.Header = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBgAlt).
		Padding(0, 1).
		Bold(true)

	s.Footer = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)

	s.SourceTitle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginTop(1)

	s.SourceDir = lipgloss.NewStyle().
		Foreground(ColorMuted)

	s.Item = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 2)

	s.ItemSelected = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	s.ItemDesc = lipgloss.NewStyle().
		Foreground(ColorMuted)

	s.FilterPrompt = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	s.HelpDesc = lipgloss.NewStyle().
		Foreground(ColorMuted)

	return s
}
