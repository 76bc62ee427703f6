package engine

import (
	"github.com/lixenwraith/gogo-ame/event"
)

// EventHandler receives drained events of the types it declares
// Audio, recorders and loggers implement it; simulation systems never read events
type EventHandler interface {
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)
}

// EventRouter fans drained events out to registered handlers in registration order
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	all      []EventHandler
	queue    *event.EventQueue
}

func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler; a nil EventTypes result subscribes to every type
func (r *EventRouter) Register(h EventHandler) {
	types := h.EventTypes()
	if types == nil {
		r.all = append(r.all, h)
		return
	}
	for _, t := range types {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// DispatchAll drains the queue and routes every event, returning the count
func (r *EventRouter) DispatchAll() int {
	return r.queue.Drain(func(ev event.GameEvent) {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
		for _, h := range r.all {
			h.HandleEvent(ev)
		}
	})
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t]) + len(r.all)
}
