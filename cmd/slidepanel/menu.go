package main

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"slidepanel/internal/ui"
)

// menuEntrySelectedMsg is sent when the user picks a menu entry.
type menuEntrySelectedMsg struct {
	Title string
	Body  string
}

// menuEntry is one row in the slide-out menu.
type menuEntry struct {
	title string
	body  string
}

func (e menuEntry) Title() string       { return e.title }
func (e menuEntry) Description() string { return "" }
func (e menuEntry) FilterValue() string { return e.title }

// menuView is the drawer's menu surface: a compact list of sections.
type menuView struct {
	list list.Model
}

func newMenuView(entries []menuEntry) *menuView {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	l := list.New(items, newMenuDelegate(), 0, 0)
	l.Title = "Menu"
	l.Styles.Title = styles.Title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return &menuView{list: l}
}

func (m *menuView) Init() tea.Cmd { return nil }

func (m *menuView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if e, ok := m.list.SelectedItem().(menuEntry); ok {
				return m, func() tea.Msg {
					return menuEntrySelectedMsg{Title: e.title, Body: e.body}
				}
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *menuView) View() string {
	return m.list.View()
}
