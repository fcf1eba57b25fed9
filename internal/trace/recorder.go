package trace

import (
	"context"
	"sync"
	"time"
)

// Span is a completed (or in-progress, Duration 0) phase of an
// interaction: the interaction itself, a drag, or a settle animation.
type Span struct {
	TraceID    string
	SpanID     string
	ParentID   string
	Name       string
	StartTime  time.Time
	Duration   time.Duration
	Attributes map[string]string
	Children   []*Span
}

// Interaction is one complete drawer interaction: from the moment the
// drawer leaves rest until it settles at a terminal again.
type Interaction struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	RootSpan  *Span
	Status    string // "running" or "completed"
}

// Recorder pairs start/end events into interaction span trees, keeps a
// bounded ring of recent interactions, and exports completed ones over
// OTLP when an endpoint is configured.
type Recorder struct {
	mu           sync.RWMutex
	interactions map[string]*Interaction
	pending      map[string]*Event // spanID -> start event awaiting its end
	recentIDs    []string
	max          int
	onChange     func()
	exporter     *OTLPExporter
}

// NewRecorder creates a recorder keeping at most max recent
// interactions (default 10 when max <= 0).
func NewRecorder(max int) *Recorder {
	if max <= 0 {
		max = 10
	}
	exporter, _ := NewOTLPExporter(context.Background())
	return &Recorder{
		interactions: make(map[string]*Interaction),
		pending:      make(map[string]*Event),
		recentIDs:    make([]string, 0, max),
		max:          max,
		exporter:     exporter,
	}
}

// HandleEvent processes one interaction event. Start events create a
// span immediately (Duration 0, in progress); end events find the
// matching span and stamp its duration. Returns the affected
// interaction so observers can refresh.
func (r *Recorder) HandleEvent(ev Event) *Interaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case ev.Type.IsStart():
		return r.handleStart(ev)
	case ev.Type.IsEnd():
		return r.handleEnd(ev)
	}
	return nil
}

// handleStart creates a span for a start event. Must hold r.mu.
func (r *Recorder) handleStart(ev Event) *Interaction {
	r.pending[ev.SpanID] = &ev

	span := &Span{
		TraceID:    ev.TraceID,
		SpanID:     ev.SpanID,
		ParentID:   ev.ParentID,
		Name:       ev.Name,
		StartTime:  ev.Timestamp,
		Attributes: cloneAttrs(ev.Attributes),
	}

	in := r.interactions[ev.TraceID]
	if ev.Type == EventInteractionStart || in == nil {
		if in == nil {
			in = &Interaction{ID: ev.TraceID, StartTime: ev.Timestamp, Status: "running"}
			r.interactions[ev.TraceID] = in
			r.remember(ev.TraceID)
		}
		if ev.Type == EventInteractionStart {
			in.RootSpan = span
			r.fireOnChange()
			return in
		}
	}

	// Drag/animation spans attach under the interaction root. The
	// drawer always emits the root first, so a missing parent only
	// happens for events recorded out of band; those become the root.
	if in.RootSpan != nil && ev.ParentID != "" {
		if parent := findSpan(in.RootSpan, ev.ParentID); parent != nil {
			parent.Children = append(parent.Children, span)
		} else {
			in.RootSpan.Children = append(in.RootSpan.Children, span)
		}
	} else if in.RootSpan == nil {
		in.RootSpan = span
	}
	r.fireOnChange()
	return in
}

// handleEnd closes the span opened by the matching start event. Must
// hold r.mu.
func (r *Recorder) handleEnd(ev Event) *Interaction {
	start, ok := r.pending[ev.SpanID]
	if !ok {
		return nil
	}
	delete(r.pending, ev.SpanID)

	in := r.interactions[ev.TraceID]
	if in != nil && in.RootSpan != nil {
		if span := findSpan(in.RootSpan, ev.SpanID); span != nil {
			span.Duration = ev.Timestamp.Sub(start.Timestamp)
			for k, v := range ev.Attributes {
				if span.Attributes == nil {
					span.Attributes = make(map[string]string)
				}
				span.Attributes[k] = v
			}
		}
	}

	if ev.Type == EventInteractionEnd && in != nil {
		in.EndTime = ev.Timestamp
		in.Status = "completed"
		// Export synchronously; the interaction is finished and the
		// process may exit before a background flush would run.
		if r.exporter != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			_ = r.exporter.ExportInteraction(ctx, in)
			cancel()
		}
	}
	r.fireOnChange()
	return in
}

// Get returns an interaction by ID.
func (r *Recorder) Get(id string) *Interaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.interactions[id]
}

// Active returns the currently running interaction, if any.
func (r *Recorder) Active() *Interaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, in := range r.interactions {
		if in.Status == "running" {
			return in
		}
	}
	return nil
}

// Recent returns recent interactions, newest first.
func (r *Recorder) Recent() []*Interaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Interaction, 0, len(r.recentIDs))
	for i := len(r.recentIDs) - 1; i >= 0; i-- {
		if in, ok := r.interactions[r.recentIDs[i]]; ok {
			out = append(out, in)
		}
	}
	return out
}

// SetOnChange registers a callback fired after every state change.
func (r *Recorder) SetOnChange(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// Shutdown flushes pending exports. Call before process exit.
func (r *Recorder) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	exporter := r.exporter
	r.mu.Unlock()
	if exporter != nil {
		return exporter.Shutdown(ctx)
	}
	return nil
}

// remember appends an interaction ID, evicting the oldest past max.
// Must hold r.mu.
func (r *Recorder) remember(id string) {
	r.recentIDs = append(r.recentIDs, id)
	if len(r.recentIDs) > r.max {
		oldest := r.recentIDs[0]
		r.recentIDs = r.recentIDs[1:]
		delete(r.interactions, oldest)
	}
}

// fireOnChange must be called with r.mu held.
func (r *Recorder) fireOnChange() {
	if r.onChange != nil {
		r.onChange()
	}
}

func findSpan(root *Span, spanID string) *Span {
	if root == nil {
		return nil
	}
	if root.SpanID == spanID {
		return root
	}
	for _, child := range root.Children {
		if found := findSpan(child, spanID); found != nil {
			return found
		}
	}
	return nil
}

func cloneAttrs(attrs map[string]string) map[string]string {
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
