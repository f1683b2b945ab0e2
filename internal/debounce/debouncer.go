// Package debounce delays work until input has been quiet for a fixed interval.
package debounce

import (
	"sort"
	"sync"
	"time"
)

// DefaultDelay is the search-box settle time used by the dashboards.
const DefaultDelay = 300 * time.Millisecond

type pending struct {
	timer *time.Timer
	fn    func()
	seq   uint64
}

// Debouncer holds at most one pending task per key. Triggering a key again cancels the
// previous task and restarts the delay, so only the last task within a quiet window runs.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	seq     uint64
	pending map[string]*pending
	stopped bool
}

func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{
		delay:   delay,
		pending: make(map[string]*pending),
	}
}

func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger schedules fn for key after the delay, replacing anything already pending.
// Calls after Stop are ignored.
func (d *Debouncer) Trigger(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.pending[key] = &pending{
		fn:    fn,
		seq:   seq,
		timer: time.AfterFunc(d.delay, func() { d.fire(key, seq) }),
	}
}

// fire runs the task for key unless it was replaced after this timer was armed.
func (d *Debouncer) fire(key string, seq uint64) {
	d.mu.Lock()
	p, ok := d.pending[key]
	if !ok || p.seq != seq {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.mu.Unlock()

	p.fn()
}

// Cancel drops the pending task for key. It reports whether one was pending.
func (d *Debouncer) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.pending[key]
	if !ok {
		return false
	}
	p.timer.Stop()
	delete(d.pending, key)
	return true
}

// Pending reports whether key has a task waiting.
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

// Flush runs every pending task now, in key order, on the caller's goroutine.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	keys := make([]string, 0, len(d.pending))
	for key := range d.pending {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tasks := make([]func(), 0, len(keys))
	for _, key := range keys {
		p := d.pending[key]
		p.timer.Stop()
		tasks = append(tasks, p.fn)
		delete(d.pending, key)
	}
	d.mu.Unlock()

	for _, fn := range tasks {
		fn()
	}
}

// Stop cancels everything pending and rejects further triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, key)
	}
	d.stopped = true
}
