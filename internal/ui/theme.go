package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Johannes-Berggren/GitBuilding/internal/config"
)

// styles holds every lipgloss style the views use, derived from one Theme.
type styles struct {
	title    lipgloss.Style
	meta     lipgloss.Style
	active   lipgloss.Style
	divider  lipgloss.Style
	help     lipgloss.Style
	errText  lipgloss.Style
	subtitle lipgloss.Style
	dim      lipgloss.Style

	tile       lipgloss.Style
	tileActive lipgloss.Style
	tileCursor lipgloss.Style

	roomTitle lipgloss.Style
	poster    lipgloss.Style
	hash      lipgloss.Style
	file      lipgloss.Style
	dir       lipgloss.Style
}

func newStyles(t config.Theme) styles {
	tileBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFg).
		Foreground(t.TextFg).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center)

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.TitleFg).
			MarginRight(2),
		meta:    lipgloss.NewStyle().Foreground(t.DimFg),
		active:  lipgloss.NewStyle().Foreground(t.ActiveFg).Bold(true),
		divider: lipgloss.NewStyle().Foreground(t.BorderFg),
		help:    lipgloss.NewStyle().Foreground(t.DimFg),
		errText: lipgloss.NewStyle().Foreground(t.ErrorFg).Bold(true),
		subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.AccentFg).
			MarginTop(1),
		dim: lipgloss.NewStyle().Foreground(t.DimFg).Italic(true),

		tile: tileBase,
		tileActive: tileBase.
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.ActiveFg).
			Background(t.ActiveBg).
			Foreground(t.ActiveFg).
			Bold(true),
		tileCursor: tileBase.
			BorderForeground(t.CursorFg),

		roomTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.AccentFg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.AccentFg).
			Padding(0, 2).
			MarginBottom(1),
		poster: lipgloss.NewStyle().
			Background(t.PosterBg).
			Foreground(t.TextFg).
			Border(lipgloss.Border{Left: "┃"}, false, false, false, true).
			BorderForeground(t.PosterEdgeFg).
			Padding(0, 1),
		hash: lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
		file: lipgloss.NewStyle().Foreground(t.TextFg),
		dir:  lipgloss.NewStyle().Foreground(t.AccentFg),
	}
}
