package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"slidepanel/internal/config"
	"slidepanel/internal/drawer"
	"slidepanel/internal/logging"
	"slidepanel/internal/trace"
)

const aboutBody = `This is the slidepanel demo.

The menu on the left edge is revealed by sliding this body surface to
the right. Three ways to get there:

  - drag: press the left mouse button inside the left edge zone and
    pull right; release fast enough and the drawer snaps open even
    before the midpoint
  - keyboard: press m to toggle the drawer
  - programmatic: the same controller the m key uses is available to
    any host code

Once open, drag anywhere or tap the dimmed area to close. Pick a menu
entry with enter to load it here.`

const gesturesBody = `Gesture rules:

  - an opening drag must start inside the edge zone; a closing drag
    can start anywhere
  - releasing at 365 columns/second or faster snaps in the direction
    of travel, wherever the drawer currently sits
  - slower releases snap by position: past the midpoint opens,
    at or before it closes`

const configBody = `Configuration is read from
$XDG_CONFIG_HOME/slidepanel/config.toml, with SLIDEPANEL_* environment
overrides. Settings: slide_width_fraction, drag_start_edge,
animation_ms, shadow_color, shadow_opacity, direction (ltr/rtl), and
log.file for debug logging.

Set OTEL_EXPORTER_OTLP_ENDPOINT to export interaction traces.`

// appModel is the root Bubble Tea model: the drawer plus a status row.
type appModel struct {
	drawer *drawer.Drawer
	ctrl   *drawer.Controller
	open   bool
	width  int
}

func newAppModel(d *drawer.Drawer, ctrl *drawer.Controller) *appModel {
	m := &appModel{drawer: d, ctrl: ctrl}
	ctrl.AddListener(func(open bool) { m.open = open })
	return m
}

func (m *appModel) Init() tea.Cmd { return m.drawer.Init() }

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "m":
			return m, m.ctrl.Toggle()
		case "esc":
			if m.open {
				return m, m.ctrl.Close()
			}
		}
	case menuEntrySelectedMsg:
		return m, tea.Batch(m.drawer.UpdateBody(msg), m.ctrl.Close())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		// Reserve the bottom row for the status line.
		msg.Height--
		v, cmd := m.drawer.Update(msg)
		m.drawer = v.(*drawer.Drawer)
		return m, cmd
	}
	v, cmd := m.drawer.Update(msg)
	m.drawer = v.(*drawer.Drawer)
	return m, cmd
}

func (m *appModel) View() string {
	return m.drawer.View() + "\n" + m.statusLine()
}

func (m *appModel) statusLine() string {
	state := "closed"
	if m.open {
		state = "open"
	}
	return styles.Status.Render(" "+state) +
		styles.Muted.Render("  •  m toggle  •  drag from edge  •  enter select  •  q quit")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cleanup, err := logging.Setup(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	dcfg, err := cfg.DrawerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "drawer config: %v\n", err)
		os.Exit(1)
	}

	menu := newMenuView([]menuEntry{
		{title: "About", body: aboutBody},
		{title: "Gestures", body: gesturesBody},
		{title: "Configuration", body: configBody},
	})
	body := newBodyView("About", aboutBody)

	ctrl := drawer.NewController()
	defer ctrl.Dispose()

	d, err := drawer.New(menu, body, dcfg, ctrl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "drawer: %v\n", err)
		os.Exit(1)
	}
	rec := trace.NewRecorder(10)
	d.SetRecorder(rec)

	p := tea.NewProgram(newAppModel(d, ctrl), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	d.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rec.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "trace shutdown: %v\n", err)
	}
}
