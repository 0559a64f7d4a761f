package tui

import (
	"github.com/charmbracelet/lipgloss"

	"kino-cli/store"
)

type styles struct {
	title        lipgloss.Style
	accent       lipgloss.Style
	success      lipgloss.Style
	failure      lipgloss.Style
	chip         lipgloss.Style
	activeChip   lipgloss.Style
	seatFree     lipgloss.Style
	seatBooked   lipgloss.Style
	seatSelected lipgloss.Style
	cursor       lipgloss.Style
	screen       lipgloss.Style
	screenBorder lipgloss.Style
	label        lipgloss.Style
	focused      lipgloss.Style
}

func newStyles(theme string) styles {
	fg, bg, accent, muted := lipgloss.Color("252"), lipgloss.Color("236"), lipgloss.Color("214"), lipgloss.Color("240")
	if theme == store.ThemeLight {
		fg, bg, accent, muted = lipgloss.Color("235"), lipgloss.Color("254"), lipgloss.Color("166"), lipgloss.Color("250")
	}
	return styles{
		title:        lipgloss.NewStyle().Bold(true).Foreground(accent),
		accent:       lipgloss.NewStyle().Foreground(accent),
		success:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		failure:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		chip:         lipgloss.NewStyle().Foreground(fg).Background(muted).Padding(0, 1),
		activeChip:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(accent).Padding(0, 1),
		seatFree:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		seatBooked:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		seatSelected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		cursor:       lipgloss.NewStyle().Reverse(true),
		screen:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(accent),
		screenBorder: lipgloss.NewStyle().Foreground(accent).Background(bg),
		label:        lipgloss.NewStyle().Faint(true),
		focused:      lipgloss.NewStyle().Bold(true).Foreground(accent),
	}
}
