package log

import (
	"errors"
	"testing"
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
)

func TestBeaconEmittedRadio(t *testing.T) {
	seen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ev := BeaconEmitted("s1", beacon.Beacon{
		Name:          "AA:BB:CC:DD:EE:FF",
		VendorID:      0xFFF1,
		ProductID:     0x8000,
		Discriminator: 0xF00,
		Transport:     beacon.ShortRangeRadio{Address: "AA:BB:CC:DD:EE:FF"},
		SeenAt:        seen,
	})

	if ev.Category != CategoryEmitted {
		t.Errorf("Category: got %v, want %v", ev.Category, CategoryEmitted)
	}
	if ev.Transport != beacon.TransportBLE {
		t.Errorf("Transport: got %v, want ble", ev.Transport)
	}
	if !ev.Timestamp.Equal(seen) {
		t.Errorf("Timestamp: got %v, want %v", ev.Timestamp, seen)
	}
	if ev.Beacon == nil {
		t.Fatal("Beacon payload is nil")
	}
	if ev.Beacon.Address != "AA:BB:CC:DD:EE:FF" || !ev.Beacon.Active {
		t.Errorf("unexpected beacon payload: %+v", ev.Beacon)
	}
}

func TestBeaconEmittedLostService(t *testing.T) {
	ev := BeaconEmitted("s1", beacon.LostService("inst", time.Time{}))

	if ev.Category != CategoryLost {
		t.Errorf("Category: got %v, want %v", ev.Category, CategoryLost)
	}
	if ev.Timestamp.IsZero() {
		t.Error("zero SeenAt should fall back to now")
	}
	if ev.Beacon.Active {
		t.Error("lost service must be inactive")
	}
	if ev.Beacon.Address != beacon.LostAddress || ev.Beacon.Port != 0 {
		t.Errorf("unexpected sentinel location %s:%d", ev.Beacon.Address, ev.Beacon.Port)
	}
}

func TestBeaconEmittedHotspotUsesSSID(t *testing.T) {
	ev := BeaconEmitted("s1", beacon.Beacon{
		Name:      "MATTER-123-FFF1-8000",
		Transport: beacon.Hotspot{SSID: "MATTER-123-FFF1-8000"},
	})
	if ev.Beacon.Address != "MATTER-123-FFF1-8000" {
		t.Errorf("Address: got %q", ev.Beacon.Address)
	}
}

func TestDroppedTruncatesPayload(t *testing.T) {
	payload := make([]byte, MaxPayloadCapture+10)
	ev := Dropped("s1", beacon.TransportBLE, "AA:BB", payload, errors.New("too short"))

	if ev.Category != CategoryDropped {
		t.Errorf("Category: got %v", ev.Category)
	}
	if len(ev.Drop.Payload) != MaxPayloadCapture {
		t.Errorf("Payload len: got %d, want %d", len(ev.Drop.Payload), MaxPayloadCapture)
	}
	if !ev.Drop.Truncated {
		t.Error("Truncated should be set")
	}
	if ev.Drop.Reason != "too short" {
		t.Errorf("Reason: got %q", ev.Drop.Reason)
	}

	small := Dropped("s1", beacon.TransportBLE, "AA:BB", []byte{1, 2}, nil)
	if small.Drop.Truncated || len(small.Drop.Payload) != 2 || small.Drop.Reason != "" {
		t.Errorf("unexpected drop: %+v", small.Drop)
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryEmitted, "EMITTED"},
		{CategoryLost, "LOST"},
		{CategoryDropped, "DROPPED"},
		{CategoryState, "STATE"},
		{CategoryError, "ERROR"},
		{Category(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestStateEntityString(t *testing.T) {
	if StateEntityProducer.String() != "PRODUCER" ||
		StateEntityScanner.String() != "SCANNER" ||
		StateEntitySession.String() != "SESSION" ||
		StateEntity(9).String() != "UNKNOWN" {
		t.Error("unexpected StateEntity names")
	}
}
