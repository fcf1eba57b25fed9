package main

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"slidepanel/internal/ui"
)

// bodyView is the drawer's body surface: a scrollable page of text.
type bodyView struct {
	title string
	vp    viewport.Model
	ready bool
}

func newBodyView(title, content string) *bodyView {
	b := &bodyView{title: title}
	b.vp = viewport.New(0, 0)
	b.vp.SetContent(content)
	return b
}

func (b *bodyView) Init() tea.Cmd { return nil }

func (b *bodyView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.vp.Width = msg.Width
		b.vp.Height = msg.Height - 1 // title row
		b.ready = true
		return b, nil
	case menuEntrySelectedMsg:
		b.title = msg.Title
		b.vp.SetContent(msg.Body)
		b.vp.GotoTop()
		return b, nil
	}
	var cmd tea.Cmd
	b.vp, cmd = b.vp.Update(msg)
	return b, cmd
}

func (b *bodyView) View() string {
	if !b.ready {
		return ""
	}
	return styles.Title.Render(b.title) + "\n" + b.vp.View()
}
