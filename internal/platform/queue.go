package platform

import (
	"errors"
	"sync"
)

// ErrClosed is returned once the event source has been torn down.
var ErrClosed = errors.New("platform: event source closed")

// Queue is the native event source. Backends push events from their own
// goroutine; a single consumer drains them with Wait or Poll.
type Queue struct {
	mu     sync.Mutex
	events []Event
	notify chan struct{}
	closed bool
}

func NewQueue() *Queue {
	return &Queue{notify: make(chan struct{}, 1)}
}

// Push appends an event. It reports false if the queue is closed.
func (q *Queue) Push(ev Event) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.events = append(q.events, ev)
	q.mu.Unlock()
	q.signal()
	return true
}

func (q *Queue) signal() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Wait blocks until an event is available and returns it. It returns
// ErrClosed once the queue is closed and empty.
func (q *Queue) Wait() (Event, error) {
	for {
		q.mu.Lock()
		if len(q.events) > 0 {
			ev := q.events[0]
			q.events = q.events[1:]
			q.mu.Unlock()
			return ev, nil
		}
		if q.closed {
			q.mu.Unlock()
			return Event{}, ErrClosed
		}
		q.mu.Unlock()
		<-q.notify
	}
}

// Poll returns every queued event without blocking.
func (q *Queue) Poll() ([]Event, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	if len(events) == 0 && q.closed {
		return nil, ErrClosed
	}
	return events, nil
}

// Close tears the queue down and releases any blocked Wait.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.signal()
}

// Proxy returns a handle other goroutines can use to wake the consumer.
func (q *Queue) Proxy() *Proxy {
	return &Proxy{q: q}
}

// Proxy posts wake notifications into a Queue.
type Proxy struct {
	q *Queue
}

// Wakeup posts one EventAwakened.
func (p *Proxy) Wakeup() error {
	if !p.q.Push(Event{Type: EventAwakened}) {
		return ErrClosed
	}
	return nil
}
