package drawer

import tea "github.com/charmbracelet/bubbletea"

// Ownership records who is responsible for disposing a Controller.
// Only the Owned case triggers teardown when the drawer shuts down; a
// Borrowed controller outlives the drawer and its caller disposes it.
type Ownership int

const (
	Owned Ownership = iota
	Borrowed
)

// Controller is the programmatic facade over a drawer: open, close,
// toggle, and a subscription on the thresholded open/closed state.
// Gestures and controller commands drive the same underlying model, so
// the two control paths cannot diverge.
//
// A Controller starts unbound. The drawer binds it for its lifetime
// and unbinds it on shutdown; an unbound or disposed controller
// accepts every call as a safe no-op, tolerating late asynchronous
// callers.
type Controller struct {
	openFn   func() tea.Cmd
	closeFn  func() tea.Cmd
	toggleFn func() tea.Cmd

	listeners map[int]func(open bool)
	nextID    int
	disposed  bool
}

// NewController creates an unbound controller. Callers who construct
// one themselves own its disposal.
func NewController() *Controller {
	return &Controller{listeners: make(map[int]func(bool))}
}

// Open slides the drawer fully open.
func (c *Controller) Open() tea.Cmd {
	if c.disposed || c.openFn == nil {
		return nil
	}
	return c.openFn()
}

// Close slides the drawer fully closed.
func (c *Controller) Close() tea.Cmd {
	if c.disposed || c.closeFn == nil {
		return nil
	}
	return c.closeFn()
}

// Toggle opens the drawer only when it is at rest fully closed
// (openness exactly 0); in any other state, including mid-animation or
// a partially dragged position, it drives toward closed.
func (c *Controller) Toggle() tea.Cmd {
	if c.disposed || c.toggleFn == nil {
		return nil
	}
	return c.toggleFn()
}

// AddListener subscribes fn to open/closed flips. It fires exactly
// once per flip across the 0.5 threshold, never on same-side value
// changes. The returned id unsubscribes via RemoveListener; -1 means
// the controller is disposed and nothing was registered.
func (c *Controller) AddListener(fn func(open bool)) int {
	if c.disposed || fn == nil {
		return -1
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return id
}

// RemoveListener unsubscribes a listener registered with AddListener.
// Unknown ids are ignored.
func (c *Controller) RemoveListener(id int) {
	if c.disposed {
		return
	}
	delete(c.listeners, id)
}

// notify pushes a flip to every listener.
func (c *Controller) notify(open bool) {
	if c.disposed {
		return
	}
	for _, fn := range c.listeners {
		fn(open)
	}
}

// bind wires the controller to a drawer's animation driver.
func (c *Controller) bind(open, close, toggle func() tea.Cmd) {
	if c.disposed {
		return
	}
	c.openFn, c.closeFn, c.toggleFn = open, close, toggle
}

// unbind clears the command callbacks, leaving the controller inert
// but reusable by a future drawer. Listeners are kept; a Borrowed
// controller's subscriptions belong to its caller.
func (c *Controller) unbind() {
	c.openFn, c.closeFn, c.toggleFn = nil, nil, nil
}

// Dispose releases the listener set. Every command or subscription
// call after Dispose is a no-op. Dispose is idempotent, but the drawer
// never calls it on a controller it did not create.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.unbind()
	c.listeners = nil
}
