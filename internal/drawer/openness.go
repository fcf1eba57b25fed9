package drawer

// Status identifies which subsystem currently owns the openness value.
// Any transition first forces the prior owner to relinquish: starting a
// drag or an animation cancels whatever motion was running.
type Status int

const (
	Idle Status = iota
	Animating
	Dragging
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Animating:
		return "Animating"
	case Dragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// openness holds the normalized drawer position: 0 is fully closed, 1
// fully open. It is the single source of truth; the boolean open state
// is derived, never stored independently of the last-notified cache.
type openness struct {
	value  float64
	status Status

	// lastOpen caches the previously notified thresholded state so the
	// subscription fires exactly once per flip, never on same-side
	// value changes.
	lastOpen bool
	onFlip   func(open bool)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IsOpen reports whether the drawer is past the midpoint.
func (o *openness) IsOpen() bool { return o.value > 0.5 }

// set clamps and writes the value. Every mutation, animated or direct,
// goes through here so the flip notification path is shared.
func (o *openness) set(v float64, s Status) {
	o.value = clamp01(v)
	o.status = s
	open := o.IsOpen()
	if open != o.lastOpen {
		o.lastOpen = open
		if o.onFlip != nil {
			o.onFlip(open)
		}
	}
}
