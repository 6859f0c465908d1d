// Package viewport models region visibility as an explicit subscription:
// callers register interest in named page regions and receive enter/exit
// events, keeping observer lifecycles out of the code that reacts to them.
package viewport

import "sync"

// Event reports a region entering or leaving the viewport.
type Event struct {
	Region   string
	Entering bool
}

// Callback receives events for a subscribed region.
type Callback func(Event)

// Notifier dispatches region events to subscribers. The zero value is ready
// to use.
type Notifier struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]Callback
}

// Observe subscribes cb to events for region. The returned cancel func
// removes the subscription; calling it more than once is safe.
func (n *Notifier) Observe(region string, cb Callback) (cancel func()) {
	if n == nil || cb == nil {
		return func() {}
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = map[string]map[int]Callback{}
	}
	if n.subs[region] == nil {
		n.subs[region] = map[int]Callback{}
	}
	n.nextID++
	id := n.nextID
	n.subs[region][id] = cb

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs[region], id)
		})
	}
}

// Notify dispatches an enter or exit event for region to its subscribers.
// Regions with no subscribers are ignored.
func (n *Notifier) Notify(region string, entering bool) {
	if n == nil {
		return
	}
	n.mu.RLock()
	callbacks := make([]Callback, 0, len(n.subs[region]))
	for _, cb := range n.subs[region] {
		callbacks = append(callbacks, cb)
	}
	n.mu.RUnlock()

	event := Event{Region: region, Entering: entering}
	for _, cb := range callbacks {
		cb(event)
	}
}
