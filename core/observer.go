// SPDX-License-Identifier: MIT
// File: observer.go
// Role: Change notification and progress reporting surfaces.
//
// The store never calls into a renderer. Interested parties register an
// Observer (or drain a ChannelObserver) and react to Events; long-running
// analytics report through Progress.

package core

import "sync/atomic"

// EventKind classifies a graph mutation.
type EventKind int

const (
	EventVertexAdded EventKind = iota + 1
	EventVertexRemoved
	EventVertexToggled
	EventEdgeAdded
	EventEdgeRemoved
	EventEdgeToggled
	EventEdgeWeight
	EventRelationAdded
	EventRelationChanged
)

var eventKindNames = map[EventKind]string{
	EventVertexAdded:     "vertex_added",
	EventVertexRemoved:   "vertex_removed",
	EventVertexToggled:   "vertex_toggled",
	EventEdgeAdded:       "edge_added",
	EventEdgeRemoved:     "edge_removed",
	EventEdgeToggled:     "edge_toggled",
	EventEdgeWeight:      "edge_weight",
	EventRelationAdded:   "relation_added",
	EventRelationChanged: "relation_changed",
}

// String implements fmt.Stringer.
func (k EventKind) String() string {
	if s, ok := eventKindNames[k]; ok {
		return s
	}

	return "unknown"
}

// Event describes one applied mutation. Fields irrelevant to Kind are zero.
type Event struct {
	Kind     EventKind
	Vertex   int
	From     int
	To       int
	Relation int
	Weight   float64
	Enabled  bool
	Mode     Reciprocity
	Version  uint64 // graph version after the mutation
}

// Observer receives graph mutations. Calls happen synchronously on the
// mutating goroutine after the graph lock is released, so an observer may
// read the graph but must not block for long.
type Observer interface {
	OnGraphEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// OnGraphEvent implements Observer.
func (f ObserverFunc) OnGraphEvent(ev Event) { f(ev) }

// ChannelObserver queues events into a buffered channel. When the buffer is
// full the event is dropped and counted; consumers that need every event
// must size the buffer.
type ChannelObserver struct {
	C       chan Event
	dropped atomic.Int64
}

// NewChannelObserver allocates a ChannelObserver with the given buffer.
func NewChannelObserver(buffer int) *ChannelObserver {
	if buffer < 0 {
		buffer = 0
	}

	return &ChannelObserver{C: make(chan Event, buffer)}
}

// OnGraphEvent implements Observer.
func (c *ChannelObserver) OnGraphEvent(ev Event) {
	select {
	case c.C <- ev:
	default:
		c.dropped.Add(1)
	}
}

// Dropped returns how many events did not fit in the buffer.
func (c *ChannelObserver) Dropped() int64 { return c.dropped.Load() }

// Subscribe registers an observer after construction.
func (g *Graph) Subscribe(o Observer) {
	if o == nil {
		return
	}
	g.obsMu.Lock()
	g.observers = append(g.observers, o)
	g.obsMu.Unlock()
}

// notify fans ev out to every observer; caller must not hold g.mu.
func (g *Graph) notify(ev Event) {
	g.obsMu.RLock()
	obs := g.observers
	g.obsMu.RUnlock()
	for _, o := range obs {
		o.OnGraphEvent(ev)
	}
}

// Progress receives ticks and status lines from long-running analytics.
// Implementations must be safe for concurrent use: parallel passes tick
// from several goroutines.
type Progress interface {
	OnProgress(count int)
	OnStatus(message string)
}

// NopProgress discards everything.
type NopProgress struct{}

// OnProgress implements Progress.
func (NopProgress) OnProgress(int) {}

// OnStatus implements Progress.
func (NopProgress) OnStatus(string) {}
