package notify

import (
	"log"
	"sync"
)

// Message is an email notification: a (to, subject, body) triple. Body is a
// multi-line text block produced by the template builders.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Notifier dispatches email notifications. Send is fire-and-forget: callers
// never observe delivery failures, so a failed send must not make a
// successful mutation look failed.
type Notifier interface {
	Send(msg Message)
}

// Deliverer performs the actual out-of-band delivery of a message.
type Deliverer interface {
	Deliver(msg Message) error
}

// Queue is an asynchronous Notifier backed by a buffered channel and a single
// worker goroutine. Enqueueing never blocks the caller's response path; if
// the buffer is full the message is dropped and logged.
type Queue struct {
	messages  chan Message
	deliverer Deliverer

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// NewQueue starts the delivery worker and returns the queue.
func NewQueue(deliverer Deliverer, buffer int) *Queue {
	if buffer < 1 {
		buffer = 64
	}
	q := &Queue{
		messages:  make(chan Message, buffer),
		deliverer: deliverer,
		done:      make(chan struct{}),
	}
	go q.run()
	return q
}

// Send enqueues a message for out-of-band delivery. Sending on a closed
// queue drops the message; it must never panic during shutdown.
func (q *Queue) Send(msg Message) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		log.Printf("notify: queue closed, dropping notification to=%s subject=%q", msg.To, msg.Subject)
		return
	}

	select {
	case q.messages <- msg:
	default:
		log.Printf("notify: queue full, dropping notification to=%s subject=%q", msg.To, msg.Subject)
	}
}

// Close stops accepting messages, drains the buffer and waits for the worker.
// Safe to call more than once.
func (q *Queue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.messages)
	}
	q.mu.Unlock()
	<-q.done
}

func (q *Queue) run() {
	defer close(q.done)
	for msg := range q.messages {
		if err := q.deliverer.Deliver(msg); err != nil {
			// Delivery is best-effort; never retried synchronously.
			log.Printf("notify: failed to deliver notification to=%s subject=%q: %v", msg.To, msg.Subject, err)
			continue
		}
		log.Printf("notify: sent notification to=%s subject=%q", msg.To, msg.Subject)
	}
}
