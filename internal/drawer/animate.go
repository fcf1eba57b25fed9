package drawer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is the animation tick cadence (~60fps).
const frameInterval = time.Second / 60

// FrameMsg advances a running open/close animation. It carries the
// animation sequence number so frames scheduled by a cancelled
// animation are dropped instead of fighting the current writer.
type FrameMsg struct {
	Seq int
	At  time.Time
}

// animation interpolates the openness value linearly toward a terminal
// target over the configured duration.
type animation struct {
	seq    int // generation counter; bumping it cancels in-flight frames
	from   float64
	target float64
	start  time.Time
	active bool
}

// cancel invalidates any outstanding frame messages.
func (a *animation) cancel() {
	a.seq++
	a.active = false
}

// AnimateTo cancels any in-flight motion and starts a timed slide
// toward target (0 or 1). The returned command schedules the first
// frame; each frame reschedules the next until the target is reached.
func (d *Drawer) AnimateTo(target float64) tea.Cmd {
	d.anim.cancel()
	d.sess = nil
	target = clamp01(target)
	d.beginInteraction()
	d.anim = animation{
		seq:    d.anim.seq,
		from:   d.model.value,
		target: target,
		start:  d.now(),
		active: true,
	}
	d.model.set(d.model.value, Animating)
	d.animSpan = d.emitStart(eventAnimationStart, "animate", map[string]string{
		"target": formatValue(target),
		"from":   formatValue(d.anim.from),
	})
	return d.frameCmd(d.anim.seq)
}

func (d *Drawer) frameCmd(seq int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Seq: seq, At: t}
	})
}

// advance applies one animation frame and returns the command for the
// next one, or nil once the target is reached or the frame is stale.
func (d *Drawer) advance(msg FrameMsg) tea.Cmd {
	if !d.anim.active || msg.Seq != d.anim.seq {
		return nil
	}
	p := 1.0
	if d.cfg.AnimationDuration > 0 {
		p = float64(msg.At.Sub(d.anim.start)) / float64(d.cfg.AnimationDuration)
	}
	if p >= 1 {
		d.anim.active = false
		d.model.set(d.anim.target, Idle)
		d.emitEnd(eventAnimationEnd, d.animSpan, map[string]string{
			"target": formatValue(d.anim.target),
		})
		d.animSpan = ""
		d.endInteraction()
		return nil
	}
	d.model.set(d.anim.from+(d.anim.target-d.anim.from)*p, Animating)
	return d.frameCmd(msg.Seq)
}
