package tui

import (
	"sync"

	"github.com/handiism/musica-packotron/internal/assemble"
)

// eventQueue hands progress events from the pipeline goroutine to Update.
// It never blocks the sender and never drops an event.
type eventQueue struct {
	mu     sync.Mutex
	events []assemble.ProgressEvent
}

func (q *eventQueue) push(e assemble.ProgressEvent) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// drain returns the queued events in order and empties the queue.
func (q *eventQueue) drain() []assemble.ProgressEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}
