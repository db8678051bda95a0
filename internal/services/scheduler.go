// Package services holds the stores and orchestration over the entity
// collections: bank accounts, loans with EMI payment, and the ledger of
// transactions, budgets and reminders.
package services

import "sync"

// Scheduler defers work to a later cycle of a run loop. The reminder add
// path goes through a Scheduler so callers must not assume the mutation
// is visible before the scheduler has run it.
type Scheduler interface {
	Schedule(fn func())
}

// ImmediateScheduler runs work synchronously in the calling goroutine.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Schedule(fn func()) {
	fn()
}

// SerialQueue runs scheduled work one job at a time on a single
// goroutine, in submission order.
type SerialQueue struct {
	jobs chan func()
	once sync.Once
	done chan struct{}
}

func NewSerialQueue(buffer int) *SerialQueue {
	q := &SerialQueue{
		jobs: make(chan func(), buffer),
		done: make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *SerialQueue) run() {
	defer close(q.done)
	for fn := range q.jobs {
		fn()
	}
}

// Schedule enqueues fn for a later cycle. It never runs fn inline.
func (q *SerialQueue) Schedule(fn func()) {
	q.jobs <- fn
}

// Drain blocks until every job scheduled before the call has run.
func (q *SerialQueue) Drain() {
	ran := make(chan struct{})
	q.jobs <- func() { close(ran) }
	<-ran
}

// Close stops the queue after the pending jobs finish.
func (q *SerialQueue) Close() {
	q.once.Do(func() { close(q.jobs) })
	<-q.done
}
