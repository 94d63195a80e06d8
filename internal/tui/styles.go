package tui

import "github.com/charmbracelet/lipgloss"

// Wizard theme. Kept intentionally small: a handful of reusable styles.

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	mutedStyle    = lipgloss.NewStyle().Foreground(cMuted)
	goodStyle     = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	badStyle      = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	capStyle      = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	panelStyle    = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(cMuted).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(cMuted).Italic(true)
)
