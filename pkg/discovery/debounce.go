package discovery

import (
	"sync"
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
)

// Debouncer suppresses repeated emissions of the same identity inside a
// window. It is safe for concurrent use; OS scan callbacks may arrive on
// several goroutines.
//
// Entries are never pruned, so memory grows with the number of distinct
// identities seen during a session.
type Debouncer struct {
	window time.Duration
	now    func() time.Time

	mu   sync.Mutex
	last map[beacon.Identity]time.Time
}

// NewDebouncer creates a Debouncer. A nil clock means time.Now.
func NewDebouncer(window time.Duration, clock func() time.Time) *Debouncer {
	if clock == nil {
		clock = time.Now
	}
	return &Debouncer{
		window: window,
		now:    clock,
		last:   make(map[beacon.Identity]time.Time),
	}
}

// Allow reports whether id may be emitted now, and records the emission
// when it may. The window is measured from the last allowed emission.
func (d *Debouncer) Allow(id beacon.Identity) bool {
	now := d.now()

	d.mu.Lock()
	defer d.mu.Unlock()

	if last, ok := d.last[id]; ok && now.Sub(last) < d.window {
		return false
	}
	d.last[id] = now
	return true
}

// Len returns the number of tracked identities.
func (d *Debouncer) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.last)
}
