package trace

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// EventType identifies the kind of interaction event.
type EventType string

const (
	EventInteractionStart EventType = "interaction_start" // drawer leaves rest
	EventInteractionEnd   EventType = "interaction_end"   // drawer back at rest
	EventDragStart        EventType = "drag_start"        // edge gate accepted a drag
	EventDragEnd          EventType = "drag_end"          // drag released (or tapped)
	EventAnimationStart   EventType = "animation_start"   // timed slide begins
	EventAnimationEnd     EventType = "animation_end"     // timed slide reached target
)

// Event is a single start or end marker in a drawer interaction.
// Start events open a span; matching end events (same SpanID) close
// it and carry its outcome attributes.
type Event struct {
	TraceID    string            `json:"trace_id"`   // one ID per interaction
	SpanID     string            `json:"span_id"`    // unique per span
	ParentID   string            `json:"parent_id"`  // parent span (empty for root)
	Type       EventType         `json:"type"`
	Name       string            `json:"name"`
	Timestamp  time.Time         `json:"timestamp"`
	Attributes map[string]string `json:"attributes"`
}

// IsStart reports whether the event opens a span.
func (t EventType) IsStart() bool {
	switch t {
	case EventInteractionStart, EventDragStart, EventAnimationStart:
		return true
	}
	return false
}

// IsEnd reports whether the event closes a span.
func (t EventType) IsEnd() bool {
	switch t {
	case EventInteractionEnd, EventDragEnd, EventAnimationEnd:
		return true
	}
	return false
}

// NewTraceID generates a random 16-byte trace ID as a 32-char hex string.
func NewTraceID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// NewSpanID generates a random 8-byte span ID as a 16-char hex string.
func NewSpanID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
