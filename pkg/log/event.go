package log

import (
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
)

// MaxPayloadCapture is the largest raw payload kept in a DropEvent.
const MaxPayloadCapture = 64

// Event represents a beacon discovery event captured from any transport.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the scan session (UUID), one per process run.
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Transport the event relates to (zero for session-wide events).
	Transport beacon.TransportKind `cbor:"4,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Beacon      *BeaconEvent      `cbor:"5,keyasint,omitempty"` // Emitted, Lost
	Drop        *DropEvent        `cbor:"6,keyasint,omitempty"` // Dropped
	StateChange *StateChangeEvent `cbor:"7,keyasint,omitempty"` // State
	Error       *ErrorEventData   `cbor:"8,keyasint,omitempty"` // Error
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryEmitted indicates a producer emitted a beacon.
	CategoryEmitted Category = 0
	// CategoryLost indicates a DNS-SD service was reported lost.
	CategoryLost Category = 1
	// CategoryDropped indicates an advertisement was discarded.
	CategoryDropped Category = 2
	// CategoryState indicates a state change.
	CategoryState Category = 3
	// CategoryError indicates an error event.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryEmitted:
		return "EMITTED"
	case CategoryLost:
		return "LOST"
	case CategoryDropped:
		return "DROPPED"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// BeaconEvent captures an emitted beacon.
type BeaconEvent struct {
	Name          string `cbor:"1,keyasint"`
	VendorID      uint16 `cbor:"2,keyasint"`
	ProductID     uint16 `cbor:"3,keyasint"`
	Discriminator uint16 `cbor:"4,keyasint"`

	// Address is the BLE address, the resolved IP, or the SSID.
	Address string `cbor:"5,keyasint,omitempty"`
	Port    uint16 `cbor:"6,keyasint,omitempty"`
	Active  bool   `cbor:"7,keyasint"`
}

// DropEvent captures an advertisement that did not produce a beacon.
type DropEvent struct {
	// Source identifies the advertiser (address, instance name or SSID).
	Source string `cbor:"1,keyasint"`

	// Reason is the decode error.
	Reason string `cbor:"2,keyasint"`

	// Payload is the raw advertisement (may be truncated).
	Payload []byte `cbor:"3,keyasint,omitempty"`

	// Truncated indicates if Payload was truncated.
	Truncated bool `cbor:"4,keyasint,omitempty"`
}

// StateChangeEvent captures producer and scanner lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityProducer indicates a transport producer state change.
	StateEntityProducer StateEntity = 0
	// StateEntityScanner indicates an OS scanner state change.
	StateEntityScanner StateEntity = 1
	// StateEntitySession indicates a scan session state change.
	StateEntitySession StateEntity = 2
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityProducer:
		return "PRODUCER"
	case StateEntityScanner:
		return "SCANNER"
	case StateEntitySession:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures a non-fatal transport error.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}

// BeaconEmitted builds an Emitted or Lost event for b.
func BeaconEmitted(sessionID string, b beacon.Beacon) Event {
	ev := &BeaconEvent{
		Name:          b.Name,
		VendorID:      b.VendorID,
		ProductID:     b.ProductID,
		Discriminator: b.Discriminator,
		Active:        b.Active(),
	}
	switch t := b.Transport.(type) {
	case beacon.ShortRangeRadio:
		ev.Address = t.Address
	case beacon.LocalNetworkService:
		ev.Address = t.Address
		ev.Port = t.Port
	case beacon.Hotspot:
		ev.Address = t.SSID
	}

	category := CategoryEmitted
	if !ev.Active {
		category = CategoryLost
	}

	ts := b.SeenAt
	if ts.IsZero() {
		ts = time.Now()
	}
	return Event{
		Timestamp: ts,
		SessionID: sessionID,
		Category:  category,
		Transport: b.Identity().Kind,
		Beacon:    ev,
	}
}

// Dropped builds a Dropped event. The payload is truncated to
// MaxPayloadCapture bytes.
func Dropped(sessionID string, transport beacon.TransportKind, source string, payload []byte, reason error) Event {
	drop := &DropEvent{Source: source}
	if reason != nil {
		drop.Reason = reason.Error()
	}
	if len(payload) > MaxPayloadCapture {
		drop.Payload = append([]byte(nil), payload[:MaxPayloadCapture]...)
		drop.Truncated = true
	} else if len(payload) > 0 {
		drop.Payload = append([]byte(nil), payload...)
	}
	return Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Category:  CategoryDropped,
		Transport: transport,
		Drop:      drop,
	}
}

// StateChanged builds a State event.
func StateChanged(sessionID string, transport beacon.TransportKind, entity StateEntity, oldState, newState, reason string) Event {
	return Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Category:  CategoryState,
		Transport: transport,
		StateChange: &StateChangeEvent{
			Entity:   entity,
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
		},
	}
}

// Errored builds an Error event.
func Errored(sessionID string, transport beacon.TransportKind, context string, err error) Event {
	data := &ErrorEventData{Context: context}
	if err != nil {
		data.Message = err.Error()
	}
	return Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Category:  CategoryError,
		Transport: transport,
		Error:     data,
	}
}
