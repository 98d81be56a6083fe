package events

import "sync"

// Queue is an unbounded FIFO event queue with a termination flag.
// Send never blocks; Next blocks until an event arrives or the queue
// is closed. Events come out in arrival order.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	events []*Event
	closed bool
}

// NewQueue returns an initialized queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Send adds an event to the end of the queue. Events sent after Close
// are dropped.
func (q *Queue) Send(ev *Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.events = append(q.events, ev)
	q.cond.Signal()
}

// Next removes and returns the next event. It blocks while the queue is
// empty and open. After Close, remaining events are still drained; once
// the queue is empty and closed, Next returns (nil, false).
func (q *Queue) Next() (*Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.events) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev, true
}

// Close sets the termination flag and wakes all blocked receivers.
// It is safe to call more than once.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
