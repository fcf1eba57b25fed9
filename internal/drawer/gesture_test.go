package drawer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDragEnd_VelocityOverridesPosition(t *testing.T) {
	d, _ := newTestDrawer(t, DefaultConfig())

	// Below the midpoint but flicked fast toward open.
	d.SetImmediate(0.3)
	cmd := d.DragEnd(400)
	require.NotNil(t, cmd)
	settle(d)
	require.Equal(t, 1.0, d.Value(), "fast flick wins over position")

	// Above the midpoint but flicked fast toward closed.
	d.SetImmediate(0.8)
	d.DragEnd(-400)
	settle(d)
	require.Equal(t, 0.0, d.Value())
}

func TestDragEnd_ThresholdIsInclusive(t *testing.T) {
	d, _ := newTestDrawer(t, DefaultConfig())

	d.SetImmediate(0.3)
	d.DragEnd(365)
	settle(d)
	require.Equal(t, 1.0, d.Value(), "exactly 365 counts as a flick")

	d.SetImmediate(0.7)
	d.DragEnd(-365)
	settle(d)
	require.Equal(t, 0.0, d.Value())
}

func TestDragEnd_MidpointFallback(t *testing.T) {
	d, _ := newTestDrawer(t, DefaultConfig())

	d.SetImmediate(0.6)
	d.DragEnd(100)
	settle(d)
	require.Equal(t, 1.0, d.Value(), "past midpoint with slow release opens")

	d.SetImmediate(0.4)
	d.DragEnd(100)
	settle(d)
	require.Equal(t, 0.0, d.Value(), "before midpoint with slow release closes")
}

func TestDragEnd_ExactMidpointCloses(t *testing.T) {
	d, _ := newTestDrawer(t, DefaultConfig())

	d.SetImmediate(0.5)
	d.DragEnd(100)
	settle(d)
	require.Equal(t, 0.0, d.Value(), "exactly 0.5 snaps closed")
}

func TestDragEnd_IdempotentAtTerminals(t *testing.T) {
	d, _ := newTestDrawer(t, DefaultConfig())

	count := 0
	d.Controller().AddListener(func(bool) { count++ })

	// At rest closed: releases are ignored.
	require.Nil(t, d.DragEnd(0))
	require.Nil(t, d.DragEnd(0))
	require.False(t, d.anim.active)
	require.Equal(t, 0.0, d.Value())
	require.Equal(t, 0, count)

	// Dragged all the way open, then released twice.
	d.SetImmediate(1)
	require.Equal(t, 1, count)
	require.Nil(t, d.DragEnd(500))
	require.Equal(t, Idle, d.Status(), "release at a terminal settles to Idle")
	require.Nil(t, d.DragEnd(500))
	require.False(t, d.anim.active, "no second animation")
	require.Equal(t, 1, count, "no duplicate notification")
}

func TestEdgeGate_ClosedRestrictsToEdgeZone(t *testing.T) {
	d, _ := newTestDrawer(t, DefaultConfig()) // edge zone 60 columns

	require.False(t, d.StartDrag(80), "x=80 outside the edge zone")
	require.Nil(t, d.sess, "no session on rejection")
	require.Equal(t, 0.0, d.Value(), "no mutation on rejection")

	require.True(t, d.StartDrag(40), "x=40 inside the edge zone")
	require.NotNil(t, d.sess)
	require.Equal(t, Dragging, d.Status())
}

func TestEdgeGate_OpenAcceptsAnywhere(t *testing.T) {
	d, _ := newTestDrawer(t, DefaultConfig())

	d.SetImmediate(0.8)
	require.True(t, d.CanStartDrag(190), "an open drawer accepts closing swipes from anywhere")

	// At exactly the midpoint the drawer is not open, so the gate
	// still applies.
	d.SetImmediate(0.5)
	require.False(t, d.CanStartDrag(190))
}

func TestEdgeGate_RightToLeftMirrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Direction = RightToLeft
	d, _ := newTestDrawer(t, cfg)

	require.True(t, d.StartDrag(180), "near the right edge of a 200-column screen")
	d.sess = nil
	require.False(t, d.StartDrag(100), "middle of the screen is outside the mirrored zone")
}

func TestDragUpdate_ColumnsToFraction(t *testing.T) {
	d, _ := newTestDrawer(t, DefaultConfig()) // slide width 150 at width 200

	require.True(t, d.StartDrag(10))
	d.DragUpdate(75)
	require.InDelta(t, 0.5, d.Value(), 1e-9)
	d.DragUpdate(-30)
	require.InDelta(t, 0.3, d.Value(), 1e-9)
}

func TestDragUpdate_RightToLeftNegates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Direction = RightToLeft
	d, _ := newTestDrawer(t, cfg)

	require.True(t, d.StartDrag(195))
	d.DragUpdate(-75) // leftward drag opens an RTL drawer
	require.InDelta(t, 0.5, d.Value(), 1e-9)
}

func TestDragUpdate_RequiresSession(t *testing.T) {
	d, _ := newTestDrawer(t, DefaultConfig())

	d.DragUpdate(75)
	require.Equal(t, 0.0, d.Value(), "no session, no mutation")
}

func TestStartDrag_CancelsRunningAnimation(t *testing.T) {
	d, clock := newTestDrawer(t, DefaultConfig())

	d.AnimateTo(1)
	seq := d.anim.seq
	clock.Advance(50 * time.Millisecond)
	d.advance(FrameMsg{Seq: seq, At: clock.Now()})
	require.Equal(t, Animating, d.Status())

	require.True(t, d.StartDrag(10))
	require.False(t, d.anim.active, "drag start cancels the animation")
	require.Equal(t, Dragging, d.Status())

	// The cancelled animation's frames are stale now.
	before := d.Value()
	d.advance(FrameMsg{Seq: seq, At: clock.Now().Add(time.Second)})
	require.Equal(t, before, d.Value())
}

func TestSessionVelocity_FromMotionSamples(t *testing.T) {
	d, clock := newTestDrawer(t, DefaultConfig())

	require.True(t, d.StartDrag(10))
	// 60 columns in 100ms = 600 columns/second.
	for i := 0; i < 10; i++ {
		clock.Advance(10 * time.Millisecond)
		d.DragUpdate(6)
	}
	v := d.releaseVelocity()
	require.InDelta(t, 600, v, 100)
}

func TestSessionVelocity_OldSamplesExpire(t *testing.T) {
	d, clock := newTestDrawer(t, DefaultConfig())

	require.True(t, d.StartDrag(10))
	// A fast burst, then the pointer holds still well past the window.
	clock.Advance(10 * time.Millisecond)
	d.DragUpdate(50)
	clock.Advance(500 * time.Millisecond)
	d.DragUpdate(0)
	clock.Advance(10 * time.Millisecond)
	d.DragUpdate(0)
	require.InDelta(t, 0, d.releaseVelocity(), 1, "stale burst does not count as a flick")
}
