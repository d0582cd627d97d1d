package locpack

import "sync"

// Level is the severity of a progress event.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Event is one progress notification for the host UI.
type Event struct {
	Message string `json:"message"`
	Type    Level  `json:"type"`
}

// Reporter receives progress events during an export run. Delivery is best
// effort: a Report error never aborts the run.
type Reporter interface {
	Report(Event) error
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Event) error

// Report calls f.
func (f ReporterFunc) Report(e Event) error { return f(e) }

// NopReporter discards all events.
var NopReporter Reporter = ReporterFunc(func(Event) error { return nil })

// QueueReporter decouples event delivery from the pipeline through a bounded
// queue drained by a background goroutine. Report never blocks; events that
// do not fit, arrive after Close, or fail delivery are counted as dropped.
type QueueReporter struct {
	next Reporter
	ch   chan Event
	done chan struct{}

	mu      sync.Mutex
	closed  bool
	dropped int
}

// NewQueueReporter starts a QueueReporter draining into next.
func NewQueueReporter(next Reporter, capacity int) *QueueReporter {
	q := &QueueReporter{
		next: next,
		ch:   make(chan Event, capacity),
		done: make(chan struct{}),
	}
	go q.drain()
	return q
}

func (q *QueueReporter) drain() {
	defer close(q.done)
	for e := range q.ch {
		if err := q.next.Report(e); err != nil {
			q.drop()
		}
	}
}

// Report enqueues the event without blocking.
func (q *QueueReporter) Report(e Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.dropped++
		return nil
	}
	select {
	case q.ch <- e:
	default:
		q.dropped++
	}
	return nil
}

// Close stops the reporter after flushing queued events.
func (q *QueueReporter) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.ch)
	}
	q.mu.Unlock()
	<-q.done
}

// Dropped reports how many events were not delivered.
func (q *QueueReporter) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

func (q *QueueReporter) drop() {
	q.mu.Lock()
	q.dropped++
	q.mu.Unlock()
}
