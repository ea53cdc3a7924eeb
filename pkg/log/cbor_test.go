package log

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
)

func encodeEvent(t *testing.T, event Event) ([]byte, error) {
	t.Helper()
	var buf bytes.Buffer
	err := NewEncoder(&buf).Encode(event)
	return buf.Bytes(), err
}

func decodeEvent(data []byte) (Event, error) {
	var event Event
	err := NewDecoder(bytes.NewReader(data)).Decode(&event)
	return event, err
}

func TestEncodeDecodeBeaconEvent(t *testing.T) {
	ts := time.Date(2026, 5, 6, 7, 8, 9, 123456789, time.UTC)
	event := Event{
		Timestamp: ts,
		SessionID: "session-1",
		Category:  CategoryEmitted,
		Transport: beacon.TransportMDNS,
		Beacon: &BeaconEvent{
			Name:          "3C4A1B2C3D4E5F60",
			VendorID:      0xFFF1,
			ProductID:     0x8001,
			Discriminator: 3840,
			Address:       "192.168.1.20",
			Port:          5540,
			Active:        true,
		},
	}

	data, err := encodeEvent(t, event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := decodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(ts) {
		t.Errorf("Timestamp: got %v, want %v (nanoseconds must survive)", decoded.Timestamp, ts)
	}
	if decoded.Transport != beacon.TransportMDNS {
		t.Errorf("Transport: got %v", decoded.Transport)
	}
	if decoded.Beacon == nil || *decoded.Beacon != *event.Beacon {
		t.Errorf("Beacon: got %+v, want %+v", decoded.Beacon, event.Beacon)
	}
	if decoded.Drop != nil || decoded.StateChange != nil || decoded.Error != nil {
		t.Error("unset payloads should decode as nil")
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	event := StateChanged("s", beacon.TransportHotspot, StateEntityProducer, "idle", "polling", "")
	a, err := encodeEvent(t, event)
	if err != nil {
		t.Fatal(err)
	}
	b, err := encodeEvent(t, event)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same event encoded to different bytes")
	}
}

func TestEncoderDecoderStream(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	events := []Event{
		StateChanged("s", beacon.TransportBLE, StateEntityScanner, "", "scanning", ""),
		Dropped("s", beacon.TransportBLE, "AA", []byte{0x02, 0x01}, errors.New("short")),
		Errored("s", beacon.TransportMDNS, "resolve", errors.New("timeout")),
	}
	for _, ev := range events {
		if err := enc.Encode(ev); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	for i, want := range events {
		var got Event
		if err := dec.Decode(&got); err != nil {
			t.Fatalf("Decode %d failed: %v", i, err)
		}
		if got.Category != want.Category {
			t.Errorf("event %d: Category got %v, want %v", i, got.Category, want.Category)
		}
	}

	var extra Event
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after last event, got %v", err)
	}
}
