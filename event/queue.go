package event

import (
	"sync/atomic"

	"github.com/lixenwraith/gogo-ame/parameter"
)

// EventQueue is a lock-free MPSC ring buffer for game events
// Systems push while stepping; the loop drains once per frame for audio, logging and recording
//
// Overflow: oldest events are overwritten and counted in Dropped
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
	dropped   atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event; safe for concurrent producers
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		tail := eq.tail.Load()
		if !eq.tail.CompareAndSwap(tail, tail+1) {
			continue
		}
		idx := tail & parameter.EventBufferMask
		eq.events[idx] = ev
		eq.published[idx].Store(true) // MUST be after write

		head := eq.head.Load()
		if tail+1-head > parameter.EventQueueSize {
			if eq.head.CompareAndSwap(head, tail+1-parameter.EventQueueSize) {
				eq.dropped.Add(tail + 1 - parameter.EventQueueSize - head)
			}
		}
		return
	}
}

// Consume returns pending events in FIFO order; single consumer
func (eq *EventQueue) Consume() []GameEvent {
	var out []GameEvent
	eq.Drain(func(ev GameEvent) { out = append(out, ev) })
	return out
}

// Drain passes pending events to fn in FIFO order and returns the count
// Stops early at a slot whose writer has not published yet
func (eq *EventQueue) Drain(fn func(GameEvent)) int {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return 0
		}

		avail := tail - head
		if avail > parameter.EventQueueSize {
			avail = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		var n uint64
		for ; n < avail; n++ {
			idx := (head + n) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break
			}
			eq.published[idx].Store(false)
			fn(eq.events[idx])
		}

		if eq.head.CompareAndSwap(head, head+n) {
			return int(n)
		}
	}
}

// Len returns approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return diff
}

// Dropped returns the number of events lost to overflow
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
