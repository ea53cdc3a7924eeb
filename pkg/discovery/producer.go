package discovery

import (
	"context"
	"log/slog"
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
	scanlog "github.com/matterscan/matterscan-go/pkg/log"
)

// ProducerOptions holds the settings every producer shares.
type ProducerOptions struct {
	// Logger is the optional logger for operational output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// EventLogger receives beacon events. If nil, events are discarded.
	EventLogger scanlog.Logger

	// SessionID tags every event with the scan session.
	SessionID string

	// Clock returns the current time. If nil, time.Now is used.
	Clock func() time.Time
}

// producerBase carries the logging plumbing shared by the producers.
type producerBase struct {
	kind    beacon.TransportKind
	logger  *slog.Logger
	events  scanlog.Logger
	session string
	clock   func() time.Time
}

func newProducerBase(kind beacon.TransportKind, opts ProducerOptions) producerBase {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Logger
	if logger != nil {
		logger = logger.With("transport", kind.String())
	}
	return producerBase{
		kind:    kind,
		logger:  logger,
		events:  scanlog.OrNoop(opts.EventLogger),
		session: opts.SessionID,
		clock:   clock,
	}
}

func (p *producerBase) debugLog(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *producerBase) infoLog(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *producerBase) warnLog(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

func (p *producerBase) state(oldState, newState, reason string) {
	p.events.Log(scanlog.StateChanged(p.session, p.kind, scanlog.StateEntityProducer, oldState, newState, reason))
}

// scannerState records a transition of the OS scanner behind the producer.
func (p *producerBase) scannerState(oldState, newState, reason string) {
	p.events.Log(scanlog.StateChanged(p.session, p.kind, scanlog.StateEntityScanner, oldState, newState, reason))
}

func (p *producerBase) emitted(b beacon.Beacon) {
	p.events.Log(scanlog.BeaconEmitted(p.session, b))
}

// idle blocks until ctx is cancelled. Used when the transport is unavailable:
// the subscription stays open but never emits.
func (p *producerBase) idle(ctx context.Context, cause error) {
	p.warnLog("transport unavailable, producer idle", "error", cause)
	p.events.Log(scanlog.Errored(p.session, p.kind, "start", cause))
	p.state("starting", "idle", cause.Error())
	<-ctx.Done()
	p.state("idle", "stopped", "")
}

// send delivers b to out unless ctx is cancelled first.
func send(ctx context.Context, out chan<- beacon.Beacon, b beacon.Beacon) bool {
	select {
	case out <- b:
		return true
	case <-ctx.Done():
		return false
	}
}
