package drawer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flickVelocity is the release speed, in columns per second, above
// which the direction of travel decides the snap target regardless of
// position. Below it the midpoint decides.
const flickVelocity = 365.0

// velocityWindow bounds how far back motion samples count toward the
// release velocity estimate.
const velocityWindow = 100 * time.Millisecond

// sample is one observed drag position.
type sample struct {
	x  float64
	at time.Time
}

// session is the transient state of a single in-progress drag. It is
// created only when the edge gate accepts the start and destroyed at
// drag end.
type session struct {
	startX       float64
	valueAtStart float64
	lastX        float64
	moved        bool
	samples      []sample
}

// record appends a motion sample, discarding ones older than the
// velocity window.
func (s *session) record(x float64, at time.Time) {
	s.samples = append(s.samples, sample{x: x, at: at})
	cutoff := at.Add(-velocityWindow)
	i := 0
	for i < len(s.samples)-1 && s.samples[i].at.Before(cutoff) {
		i++
	}
	s.samples = s.samples[i:]
}

// velocity estimates the horizontal release speed in columns per
// second from the retained samples. Positive is rightward.
func (s *session) velocity() float64 {
	if len(s.samples) < 2 {
		return 0
	}
	first, last := s.samples[0], s.samples[len(s.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.x - first.x) / dt
}

// CanStartDrag reports whether a horizontal drag starting at column x
// may begin. A drawer past the midpoint accepts closing swipes from
// anywhere; otherwise opening swipes are restricted to the edge zone.
func (d *Drawer) CanStartDrag(x float64) bool {
	if d.model.IsOpen() {
		return true
	}
	if d.cfg.Direction == RightToLeft {
		x = float64(d.width-1) - x
	}
	return x < d.cfg.DragStartEdge
}

// StartDrag begins a gesture session at column x. A rejected start
// creates no session and mutates nothing.
func (d *Drawer) StartDrag(x float64) bool {
	if !d.CanStartDrag(x) {
		return false
	}
	at := d.now()
	d.anim.cancel()
	d.beginInteraction()
	d.sess = &session{
		startX:       x,
		valueAtStart: d.model.value,
		lastX:        x,
		samples:      []sample{{x: x, at: at}},
	}
	d.model.set(d.model.value, Dragging)
	d.dragSpan = d.emitStart(eventDragStart, "drag", map[string]string{
		"start_x": formatValue(x),
		"value":   formatValue(d.model.value),
	})
	return true
}

// Dragging reports whether a gesture session is active.
func (d *Drawer) Dragging() bool { return d.sess != nil }

// SetImmediate clamps and writes the openness value directly with
// Dragging status, bypassing timed interpolation. Any running
// animation is cancelled first.
func (d *Drawer) SetImmediate(v float64) {
	d.anim.cancel()
	d.model.set(v, Dragging)
}

// DragUpdate converts a horizontal column delta into a fractional
// openness delta and applies it. Requires an active session.
func (d *Drawer) DragUpdate(deltaX float64) {
	if d.sess == nil {
		return
	}
	if deltaX != 0 {
		d.sess.moved = true
	}
	d.sess.lastX += deltaX
	d.sess.record(d.sess.lastX, d.now())
	sw := d.cfg.slideWidth(d.width)
	if sw <= 0 {
		return
	}
	frac := deltaX / float64(sw)
	if d.cfg.Direction == RightToLeft {
		frac = -frac
	}
	d.SetImmediate(d.model.value + frac)
}

// DragEnd classifies the release into a snap decision. Velocity is in
// columns per second, positive toward open. At an exact terminal the
// release is ignored, so trailing or duplicate release events cannot
// restart motion.
func (d *Drawer) DragEnd(velocity float64) tea.Cmd {
	d.sess = nil
	d.emitEnd(eventDragEnd, d.dragSpan, map[string]string{
		"velocity": formatValue(velocity),
		"value":    formatValue(d.model.value),
	})
	d.dragSpan = ""
	if d.model.value == 0 || d.model.value == 1 {
		if d.model.status != Idle {
			d.model.set(d.model.value, Idle)
			d.endInteraction()
		}
		return nil
	}
	// A fast flick wins over position; otherwise the midpoint decides,
	// with exact 0.5 snapping closed.
	switch {
	case velocity >= flickVelocity:
		return d.AnimateTo(1)
	case velocity <= -flickVelocity:
		return d.AnimateTo(0)
	case d.model.value > 0.5:
		return d.AnimateTo(1)
	default:
		return d.AnimateTo(0)
	}
}

// releaseVelocity reads the session's velocity estimate oriented so
// positive always means "toward open".
func (d *Drawer) releaseVelocity() float64 {
	if d.sess == nil {
		return 0
	}
	v := d.sess.velocity()
	if d.cfg.Direction == RightToLeft {
		v = -v
	}
	return v
}
