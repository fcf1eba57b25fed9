package drawer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"slidepanel/internal/trace"
	"slidepanel/internal/ui"
)

// Panel IDs the drawer publishes.
const (
	PanelMenu = "menu"
	PanelBody = "body"
)

// Drawer is the flat-slide panel: a menu surface fixed on one screen
// edge and a body surface that slides horizontally to reveal it.
// Gestures and the programmatic controller drive the same openness
// model, so the two control paths stay consistent. At most one motion,
// timed or direct, is active at any instant; the previous one is
// cancelled first.
type Drawer struct {
	cfg   Config
	model *openness
	anim  animation
	sess  *session

	ctrl *Controller
	owns Ownership

	menu  ui.View
	body  ui.View
	focus *ui.FocusManager

	rec      *trace.Recorder
	traceID  string
	rootSpan string
	dragSpan string
	animSpan string

	width, height int
	now           func() time.Time
}

// New constructs a drawer hosting the two surfaces. A nil controller
// makes the drawer create and own one; a caller-supplied controller is
// borrowed, shared across drawer lifetimes, and never disposed here.
func New(menu, body ui.View, cfg Config, ctrl *Controller) (*Drawer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	owns := Borrowed
	if ctrl == nil {
		ctrl = NewController()
		owns = Owned
	}
	d := &Drawer{
		cfg:   cfg,
		model: &openness{},
		ctrl:  ctrl,
		owns:  owns,
		menu:  menu,
		body:  body,
		now:   time.Now,
	}
	d.focus = &ui.FocusManager{
		Current: PanelBody,
		Order:   []string{PanelBody, PanelMenu},
	}
	d.model.onFlip = func(open bool) {
		d.ctrl.notify(open)
		d.syncFocus(open)
	}
	ctrl.bind(d.Open, d.Close, d.Toggle)
	return d, nil
}

// Open slides the drawer fully open.
func (d *Drawer) Open() tea.Cmd { return d.AnimateTo(1) }

// Close slides the drawer fully closed.
func (d *Drawer) Close() tea.Cmd { return d.AnimateTo(0) }

// Toggle opens only from rest at exactly zero; any other state,
// including mid-animation or a partial drag, drives toward closed.
// The exact-zero check (rather than the thresholded open state) is
// deliberate and matches the documented behavior.
func (d *Drawer) Toggle() tea.Cmd {
	if d.model.value == 0 {
		return d.AnimateTo(1)
	}
	return d.AnimateTo(0)
}

// Value returns the current openness in [0, 1].
func (d *Drawer) Value() float64 { return d.model.value }

// Status returns which subsystem currently owns the value.
func (d *Drawer) Status() Status { return d.model.status }

// IsOpen reports whether the drawer is past the midpoint.
func (d *Drawer) IsOpen() bool { return d.model.IsOpen() }

// Controller returns the bound controller.
func (d *Drawer) Controller() *Controller { return d.ctrl }

// Focus returns the ID of the surface currently receiving keyboard
// input.
func (d *Drawer) Focus() string { return d.focus.Current }

// Shutdown unbinds the controller and stops any motion. An Owned
// controller is disposed; a Borrowed one is left intact for its caller,
// avoiding a double release.
func (d *Drawer) Shutdown() {
	d.anim.cancel()
	d.sess = nil
	if d.owns == Owned {
		d.ctrl.Dispose()
	} else {
		d.ctrl.unbind()
	}
}

// Panels publishes the two surfaces with their current bounds.
func (d *Drawer) Panels() []ui.Panel {
	return []ui.Panel{
		{ID: PanelMenu, View: d.menu, Bounds: d.menuBounds},
		{ID: PanelBody, View: d.body, Bounds: d.bodyBounds},
	}
}

func (d *Drawer) menuBounds(w, h int) (int, int, int, int) {
	sw := d.cfg.slideWidth(w)
	if d.cfg.Direction == RightToLeft {
		return w - sw, 0, sw, h
	}
	return 0, 0, sw, h
}

func (d *Drawer) bodyBounds(w, h int) (int, int, int, int) {
	offset := d.cfg.SlideOffset(d.model.value, w)
	if d.cfg.Direction == RightToLeft {
		return -offset, 0, w, h
	}
	return offset, 0, w, h
}

// syncFocus routes keyboard input to the menu while open and back to
// the body once closed.
func (d *Drawer) syncFocus(open bool) {
	if open {
		d.focus.SetFocus(PanelMenu)
	} else {
		d.focus.SetFocus(PanelBody)
	}
}

// Init implements ui.View.
func (d *Drawer) Init() tea.Cmd {
	return tea.Batch(d.menu.Init(), d.body.Init())
}

// Update implements ui.View. Window sizes fan out to both surfaces,
// mouse input feeds the gesture tracker, frames feed the animation,
// and everything else goes to the focused surface.
func (d *Drawer) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
		var cmds []tea.Cmd
		sw := d.cfg.slideWidth(d.width)
		d.menu, cmds = updateSurface(d.menu, tea.WindowSizeMsg{Width: sw, Height: d.height}, cmds)
		d.body, cmds = updateSurface(d.body, msg, cmds)
		return d, tea.Batch(cmds...)
	case FrameMsg:
		return d, d.advance(msg)
	case tea.MouseMsg:
		return d, d.handleMouse(msg)
	}
	return d, d.forward(msg)
}

// View implements ui.View: the composed slid frame.
func (d *Drawer) View() string {
	return Compose(d.menu.View(), d.body.View(), d.model.value, d.width, d.height, d.cfg)
}

// handleMouse converts raw mouse input into gesture tracking. The
// edge gate is evaluated synchronously on press, before any motion for
// that gesture is seen; uncaptured input falls through to the surfaces.
func (d *Drawer) handleMouse(m tea.MouseMsg) tea.Cmd {
	x := float64(m.X)
	switch {
	case m.Button == tea.MouseButtonLeft && m.Action == tea.MouseActionPress:
		if d.sess == nil && d.StartDrag(x) {
			return nil
		}
		// The scrim intercepts presses anywhere on the covered body
		// whenever the drawer is open at all.
		if d.model.value > 0 && d.cfg.OverlayHit(d.model.value, m.X, d.width) {
			return d.Close()
		}

	case m.Button == tea.MouseButtonLeft && m.Action == tea.MouseActionMotion:
		if d.sess != nil {
			d.DragUpdate(x - d.sess.lastX)
			return nil
		}

	case m.Action == tea.MouseActionRelease:
		if d.sess != nil {
			// A stationary press-release on the scrim is a tap: close,
			// regardless of where the midpoint rule would snap.
			if !d.sess.moved && d.model.value > 0 &&
				d.cfg.OverlayHit(d.model.value, int(d.sess.startX), d.width) {
				d.emitEnd(eventDragEnd, d.dragSpan, map[string]string{"tap": "true"})
				d.dragSpan = ""
				d.sess = nil
				return d.Close()
			}
			return d.DragEnd(d.releaseVelocity())
		}
	}
	return d.forward(m)
}

// UpdateMenu delivers a message directly to the menu surface,
// regardless of focus.
func (d *Drawer) UpdateMenu(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return cmd
}

// UpdateBody delivers a message directly to the body surface,
// regardless of focus.
func (d *Drawer) UpdateBody(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.body, cmd = d.body.Update(msg)
	return cmd
}

// forward delivers a message to whichever surface holds focus.
func (d *Drawer) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if d.focus.Current == PanelMenu {
		d.menu, cmd = d.menu.Update(msg)
		return cmd
	}
	d.body, cmd = d.body.Update(msg)
	return cmd
}

func updateSurface(v ui.View, msg tea.Msg, cmds []tea.Cmd) (ui.View, []tea.Cmd) {
	nv, cmd := v.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return nv, cmds
}
