// Package ingest implements the four-stage concurrent ingest pipeline (C6):
// walker -> filter -> loader -> committer, connected by bounded channels
// ("couriers"). Each stage registers as a sender or receiver on the
// couriers it touches; a courier closes its underlying channel once its
// last sender unregisters, so downstream stages see end-of-stream after
// draining rather than blocking forever.
package ingest

import "sync"

// courier is a bounded channel with registered sender/receiver lifetimes,
// modeling the source pipeline's hand-rolled mailboxes in terms of a Go
// channel plus a sender WaitGroup: the last sender to finish closes the
// channel, giving every receiver a clean end-of-stream signal after the
// channel drains.
type courier[T any] struct {
	ch      chan T
	senders sync.WaitGroup
	once    sync.Once
}

// newCourier creates a courier with the given channel capacity.
func newCourier[T any](capacity int) *courier[T] {
	return &courier[T]{ch: make(chan T, capacity)}
}

// addSender registers n additional senders that must each call done
// before the courier closes.
func (c *courier[T]) addSender(n int) {
	c.senders.Add(n)
}

// send delivers v to the courier. Call done when the sending goroutine
// has no more values to send.
func (c *courier[T]) send(v T) {
	c.ch <- v
}

// done unregisters one sender; once every registered sender has called
// done, the courier's channel is closed.
func (c *courier[T]) done() {
	c.senders.Done()
}

// closeWhenDrained spawns the goroutine that closes the channel once all
// registered senders have called done. Must be invoked exactly once,
// after every addSender call for this courier has already happened.
func (c *courier[T]) closeWhenDrained() {
	c.once.Do(func() {
		go func() {
			c.senders.Wait()
			close(c.ch)
		}()
	})
}

// receive returns the next value and true, or the zero value and false
// once the courier is closed and drained (end of stream).
func (c *courier[T]) receive() (T, bool) {
	v, ok := <-c.ch
	return v, ok
}

// out exposes the receive side as a plain channel for range loops.
func (c *courier[T]) out() <-chan T {
	return c.ch
}
