package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/headway/internal/advisor"
)

// Palette shared by the views.
const (
	ColorHeader    = lipgloss.Color("99")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorHighlight = lipgloss.Color("203")
)

// regimeColor picks the color a regime is rendered in.
func regimeColor(r advisor.Regime) lipgloss.Color {
	switch r {
	case advisor.RegimeBelowMinimum:
		return ColorMuted
	case advisor.RegimeAboveMaximum:
		return ColorHighlight
	default:
		return ColorOK
	}
}
