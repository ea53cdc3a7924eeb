package discovery_test

import (
	"encoding/binary"
	"sync"
	"testing"
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
	"github.com/matterscan/matterscan-go/pkg/discovery"
	scanlog "github.com/matterscan/matterscan-go/pkg/log"
)

const waitTimeout = 2 * time.Second

// recv reads one beacon or fails the test.
func recv(t *testing.T, ch <-chan beacon.Beacon) beacon.Beacon {
	t.Helper()
	select {
	case b, ok := <-ch:
		if !ok {
			t.Fatal("channel closed, expected a beacon")
		}
		return b
	case <-time.After(waitTimeout):
		t.Fatal("timeout waiting for beacon")
	}
	return beacon.Beacon{}
}

// expectQuiet fails if a beacon arrives within d.
func expectQuiet(t *testing.T, ch <-chan beacon.Beacon, d time.Duration) {
	t.Helper()
	select {
	case b, ok := <-ch:
		if ok {
			t.Fatalf("unexpected beacon %s", b)
		}
		t.Fatal("channel closed unexpectedly")
	case <-time.After(d):
	}
}

// drainClosed waits for ch to close, discarding beacons.
func drainClosed(t *testing.T, ch <-chan beacon.Beacon) {
	t.Helper()
	timeout := time.After(waitTimeout)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("timeout waiting for channel to close")
		}
	}
}

// recordingLogger collects events.
type recordingLogger struct {
	mu     sync.Mutex
	events []scanlog.Event
}

func (r *recordingLogger) Log(e scanlog.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recordingLogger) byCategory(c scanlog.Category) []scanlog.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []scanlog.Event
	for _, e := range r.events {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// encodeServiceData builds Matter BLE service data as a device would
// advertise it, with the version nibble at zero.
func encodeServiceData(data discovery.AdvertisementData) []byte {
	sd := []byte{0x00}
	sd = binary.LittleEndian.AppendUint16(sd, data.Discriminator&beacon.MaxDiscriminator)
	sd = binary.LittleEndian.AppendUint16(sd, data.VendorID)
	sd = binary.LittleEndian.AppendUint16(sd, data.ProductID)
	return append(sd, 0x00)
}
