package drawer

import (
	"strconv"

	"slidepanel/internal/trace"
)

// Short aliases for the event types the drawer emits.
const (
	eventDragStart      = trace.EventDragStart
	eventDragEnd        = trace.EventDragEnd
	eventAnimationStart = trace.EventAnimationStart
	eventAnimationEnd   = trace.EventAnimationEnd
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SetRecorder attaches an interaction recorder. A nil recorder (the
// default) makes every emission a no-op.
func (d *Drawer) SetRecorder(r *trace.Recorder) { d.rec = r }

// beginInteraction opens the interaction trace when the drawer leaves
// rest. Calls while motion is already underway reuse the open trace, so
// a drag and the settle animation it triggers share one interaction.
func (d *Drawer) beginInteraction() {
	if d.rec == nil || d.traceID != "" {
		return
	}
	d.traceID = trace.NewTraceID()
	d.rootSpan = trace.NewSpanID()
	d.rec.HandleEvent(trace.Event{
		TraceID:   d.traceID,
		SpanID:    d.rootSpan,
		Type:      trace.EventInteractionStart,
		Name:      "interaction",
		Timestamp: d.now(),
		Attributes: map[string]string{
			"direction": d.cfg.Direction.String(),
		},
	})
}

// endInteraction closes the interaction trace once the drawer is back
// at rest.
func (d *Drawer) endInteraction() {
	if d.rec == nil || d.traceID == "" {
		return
	}
	d.rec.HandleEvent(trace.Event{
		TraceID:   d.traceID,
		SpanID:    d.rootSpan,
		Type:      trace.EventInteractionEnd,
		Timestamp: d.now(),
		Attributes: map[string]string{
			"value": formatValue(d.model.value),
		},
	})
	d.traceID, d.rootSpan = "", ""
}

// emitStart opens a child span under the current interaction and
// returns its id, or "" when tracing is off.
func (d *Drawer) emitStart(t trace.EventType, name string, attrs map[string]string) string {
	if d.rec == nil || d.traceID == "" {
		return ""
	}
	id := trace.NewSpanID()
	d.rec.HandleEvent(trace.Event{
		TraceID:    d.traceID,
		SpanID:     id,
		ParentID:   d.rootSpan,
		Type:       t,
		Name:       name,
		Timestamp:  d.now(),
		Attributes: attrs,
	})
	return id
}

// emitEnd closes a child span opened by emitStart.
func (d *Drawer) emitEnd(t trace.EventType, spanID string, attrs map[string]string) {
	if d.rec == nil || spanID == "" {
		return
	}
	d.rec.HandleEvent(trace.Event{
		TraceID:    d.traceID,
		SpanID:     spanID,
		Type:       t,
		Timestamp:  d.now(),
		Attributes: attrs,
	})
}
