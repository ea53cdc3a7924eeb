package discovery

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/matterscan/matterscan-go/pkg/beacon"
)

// AggregatorConfig configures an Aggregator.
type AggregatorConfig struct {
	// Logger is the optional logger for operational output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// Aggregator merges the beacons of several producers into one de-duplicated,
// insertion-ordered collection keyed by beacon.Identity.
//
// Run is the single writer in normal operation. Snapshot, Get, Len, Filter
// and Subscribe may be called from any goroutine.
type Aggregator struct {
	config AggregatorConfig

	mu      sync.RWMutex
	order   []beacon.Identity
	entries map[beacon.Identity]beacon.Beacon

	subMu   sync.Mutex
	subs    map[int]chan []beacon.Beacon
	nextSub int
	closed  bool
}

// NewAggregator creates an empty aggregator.
func NewAggregator(config AggregatorConfig) *Aggregator {
	return &Aggregator{
		config:  config,
		entries: make(map[beacon.Identity]beacon.Beacon),
		subs:    make(map[int]chan []beacon.Beacon),
	}
}

// Run subscribes to every producer and folds their beacons into the
// collection until ctx is cancelled. It returns ctx.Err() once every
// producer channel has closed. Subscriber channels are closed on return.
func (a *Aggregator) Run(ctx context.Context, producers ...Producer) error {
	defer a.closeSubscribers()

	merged := make(chan beacon.Beacon)
	var wg sync.WaitGroup
	for _, p := range producers {
		ch := p.Beacons(ctx)
		a.debugLog("producer subscribed", "transport", p.Transport().String())

		wg.Add(1)
		go func() {
			defer wg.Done()
			// Drain until the producer closes so it never blocks on send.
			for b := range ch {
				select {
				case merged <- b:
				case <-ctx.Done():
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(merged)
	}()

	for b := range merged {
		a.Upsert(b)
	}

	if len(producers) == 0 {
		<-ctx.Done()
	}
	a.debugLog("aggregator stopped", "beacons", a.Len())
	return ctx.Err()
}

// Upsert folds b into the collection and reports whether the collection
// changed.
//
// A lost DNS-SD sentinel flips a known identity to inactive while keeping its
// last-known fields. For an unknown identity any inactive record is ignored.
func (a *Aggregator) Upsert(b beacon.Beacon) bool {
	id := b.Identity()

	a.mu.Lock()
	defer a.mu.Unlock()

	prev, known := a.entries[id]
	if !b.Active() {
		if !known {
			a.debugLog("ignoring lost record for unknown beacon", "identity", id.String())
			return false
		}
		if b.IsLostSentinel() {
			b = markInactive(prev, b)
		}
	}
	if !known {
		a.order = append(a.order, id)
		a.debugLog("beacon added", "identity", id.String())
	} else {
		a.debugLog("beacon updated", "identity", id.String(), "active", b.Active())
	}
	a.entries[id] = b

	// Publishing under mu keeps subscribers in mutation order.
	a.publish(a.snapshotLocked())
	return true
}

// markInactive returns prev with its service flagged inactive and SeenAt
// taken from the lost record.
func markInactive(prev, lost beacon.Beacon) beacon.Beacon {
	svc, ok := prev.Transport.(beacon.LocalNetworkService)
	if !ok {
		return prev
	}
	svc.Active = false
	prev.Transport = svc
	prev.SeenAt = lost.SeenAt
	return prev
}

// Snapshot returns an insertion-ordered copy of the collection.
func (a *Aggregator) Snapshot() []beacon.Beacon {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshotLocked()
}

func (a *Aggregator) snapshotLocked() []beacon.Beacon {
	out := make([]beacon.Beacon, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.entries[id])
	}
	return out
}

// Filter returns the snapshot restricted to the given transports.
// With no kinds it returns the full snapshot.
func (a *Aggregator) Filter(kinds ...beacon.TransportKind) []beacon.Beacon {
	all := a.Snapshot()
	if len(kinds) == 0 {
		return all
	}
	return slices.DeleteFunc(all, func(b beacon.Beacon) bool {
		return !slices.Contains(kinds, b.Identity().Kind)
	})
}

// Get returns the current beacon for id.
func (a *Aggregator) Get(id beacon.Identity) (beacon.Beacon, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	b, ok := a.entries[id]
	return b, ok
}

// Len returns the number of distinct identities.
func (a *Aggregator) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.order)
}

// Reset clears the collection.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.order = nil
	clear(a.entries)
	a.debugLog("collection cleared")
	a.publish([]beacon.Beacon{})
}

// Subscribe returns a feed of snapshots and a function that ends the
// subscription. The feed holds at most one pending snapshot; a slow reader
// only sees the latest. The current snapshot is delivered immediately.
func (a *Aggregator) Subscribe() (<-chan []beacon.Beacon, func()) {
	ch := make(chan []beacon.Beacon, 1)

	// mu before subMu, the same order Upsert and Reset publish in.
	a.mu.RLock()
	a.subMu.Lock()
	defer a.mu.RUnlock()
	defer a.subMu.Unlock()

	if a.closed {
		close(ch)
		return ch, func() {}
	}
	id := a.nextSub
	a.nextSub++
	a.subs[id] = ch
	ch <- a.snapshotLocked()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			a.subMu.Lock()
			defer a.subMu.Unlock()
			if _, ok := a.subs[id]; ok {
				delete(a.subs, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// publish replaces any pending snapshot of every subscriber with snapshot.
// Callers hold mu.
func (a *Aggregator) publish(snapshot []beacon.Beacon) {
	a.subMu.Lock()
	defer a.subMu.Unlock()
	for _, ch := range a.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

func (a *Aggregator) closeSubscribers() {
	a.subMu.Lock()
	defer a.subMu.Unlock()
	a.closed = true
	for id, ch := range a.subs {
		delete(a.subs, id)
		close(ch)
	}
}

func (a *Aggregator) debugLog(msg string, args ...any) {
	if a.config.Logger != nil {
		a.config.Logger.Debug(msg, args...)
	}
}
