package ui

// BoundsFunc returns a panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds within a layout. The drawer
// publishes its menu and body surfaces as panels so hosts can reason
// about hit regions without knowing slide internals.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}
