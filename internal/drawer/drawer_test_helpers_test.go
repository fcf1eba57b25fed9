package drawer

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"slidepanel/internal/ui"
)

// stubSurface is an inert surface for tests.
type stubSurface struct {
	frame string
}

func (s stubSurface) Init() tea.Cmd                      { return nil }
func (s stubSurface) Update(tea.Msg) (ui.View, tea.Cmd) { return s, nil }
func (s stubSurface) View() string                       { return s.frame }

// testClock hands out strictly increasing fake times.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestDrawer builds a drawer on a 200x50 screen with a fake clock.
// At the default 0.75 fraction the slide width is 150 columns.
func newTestDrawer(t *testing.T, cfg Config) (*Drawer, *testClock) {
	t.Helper()
	d, err := New(stubSurface{frame: "menu"}, stubSurface{frame: "body"}, cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	clock := newTestClock()
	d.now = clock.Now
	d.width, d.height = 200, 50
	return d, clock
}

// settle runs any in-flight animation to completion by feeding frames
// past the configured duration.
func settle(d *Drawer) {
	for i := 0; d.anim.active && i < 1000; i++ {
		d.advance(FrameMsg{
			Seq: d.anim.seq,
			At:  d.anim.start.Add(d.cfg.AnimationDuration + time.Millisecond),
		})
	}
}
