package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
	"github.com/matterscan/matterscan-go/pkg/log"
)

var testTime = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.cbor")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// sampleEvents covers every category across all transports.
func sampleEvents() []log.Event {
	lamp := beacon.Beacon{
		Name: "Lamp", VendorID: 0xFFF1, ProductID: 0x8001, Discriminator: 3840,
		Transport: beacon.ShortRangeRadio{Address: "AA:BB:CC:DD:EE:FF"},
		SeenAt:    testTime,
	}
	plug := beacon.Beacon{
		Name: "DD200C20D25AE5F7", VendorID: 0x1234, ProductID: 0x0001, Discriminator: 100,
		Transport: beacon.LocalNetworkService{Address: "192.168.1.20", Port: 5540, Active: true},
		SeenAt:    testTime.Add(time.Second),
	}
	ap := beacon.Beacon{
		Name: "MATTER-F00-FFF1-8001", VendorID: 0xFFF1, ProductID: 0x8001, Discriminator: 0xF00,
		Transport: beacon.Hotspot{SSID: "MATTER-F00-FFF1-8001"},
		SeenAt:    testTime.Add(2 * time.Second),
	}

	events := []log.Event{
		log.BeaconEmitted("session-aaaa-bbbb", lamp),
		log.BeaconEmitted("session-aaaa-bbbb", plug),
		log.BeaconEmitted("session-aaaa-bbbb", ap),
		log.BeaconEmitted("session-aaaa-bbbb", beacon.LostService(plug.Name, testTime.Add(3*time.Second))),
		log.Dropped("session-aaaa-bbbb", beacon.TransportBLE, "11:22:33:44:55:66", []byte{0x02, 0x01}, errTest("payload too short")),
		log.StateChanged("session-aaaa-bbbb", beacon.TransportHotspot, log.StateEntityProducer, "starting", "idle", "no wireless device"),
		log.Errored("session-aaaa-bbbb", beacon.TransportMDNS, "resolve x", errTest("timeout")),
	}
	for i := 4; i < len(events); i++ {
		events[i].Timestamp = testTime.Add(time.Duration(i) * time.Second)
	}
	return events
}

type errTest string

func (e errTest) Error() string { return string(e) }
