// Package debounce provides a cancellable quiet-interval timer: each trigger
// restarts the interval and only the last triggered function fires once the
// interval elapses without a newer trigger.
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers into a single invocation. The zero value
// is not usable; use New.
type Debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

// New returns a debouncer with the given quiet interval.
func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules fn to run after the quiet interval. A trigger before the
// interval elapses cancels the pending invocation and restarts the interval
// with the newer fn (last write wins, no queuing).
func (d *Debouncer) Trigger(fn func()) {
	if d == nil || fn == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

// Flush runs the pending invocation immediately, if any, and cancels the
// timer.
func (d *Debouncer) Flush() {
	if d == nil {
		return
	}
	d.fire()
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}
