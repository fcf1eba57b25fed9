package main

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used by the demo surfaces.
const (
	colorAccent    = "86"  // cyan/green - titles, highlights
	colorHighlight = "205" // magenta - selected items
	colorMuted     = "241" // gray - dimmed text, hints
	colorText      = "252" // light gray - normal text
)

var styles = struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Status   lipgloss.Style
	MenuPane lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorAccent)),
	MenuPane: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(lipgloss.Color(colorMuted)),
}

// newMenuDelegate returns a compact list delegate with shared styles.
func newMenuDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = styles.Selected
	d.Styles.NormalTitle = styles.Muted
	return d
}
