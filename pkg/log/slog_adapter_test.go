package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/matterscan/matterscan-go/pkg/beacon"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output %q: %v", buf.String(), err)
	}
	return entry
}

func TestSlogAdapterLogsBeaconEvent(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	adapter.Log(BeaconEmitted("s1", beacon.Beacon{
		Name:          "inst",
		VendorID:      0xFFF1,
		Discriminator: 840,
		Transport:     beacon.LocalNetworkService{Address: "10.0.0.7", Port: 5540, Active: true},
	}))

	entry := decodeLine(t, &buf)
	if entry["msg"] != "beacon" {
		t.Errorf("msg: got %v", entry["msg"])
	}
	if entry["category"] != "EMITTED" {
		t.Errorf("category: got %v", entry["category"])
	}
	if entry["transport"] != "mdns" {
		t.Errorf("transport: got %v", entry["transport"])
	}
	if entry["vendor_id"] != float64(0xFFF1) {
		t.Errorf("vendor_id: got %v", entry["vendor_id"])
	}
	if entry["port"] != float64(5540) {
		t.Errorf("port: got %v", entry["port"])
	}
}

func TestSlogAdapterLogsDropAndError(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	adapter.Log(Dropped("s1", beacon.TransportBLE, "AA:BB", []byte{1, 2, 3}, errors.New("payload too short")))
	entry := decodeLine(t, &buf)
	if entry["reason"] != "payload too short" || entry["payload_size"] != float64(3) {
		t.Errorf("unexpected drop entry: %v", entry)
	}

	buf.Reset()
	adapter.Log(Errored("s1", beacon.TransportMDNS, "resolve", errors.New("no address")))
	entry = decodeLine(t, &buf)
	if entry["error_msg"] != "no address" || entry["error_context"] != "resolve" {
		t.Errorf("unexpected error entry: %v", entry)
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	slogger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	NewSlogAdapter(slogger).Log(StateChanged("s", 0, StateEntitySession, "", "started", ""))
	if buf.Len() != 0 {
		t.Error("debug-level adapter should be filtered by an info handler")
	}

	NewSlogAdapter(slogger).WithLevel(slog.LevelInfo).Log(StateChanged("s", 0, StateEntitySession, "", "started", ""))
	if buf.Len() == 0 {
		t.Error("info-level adapter should pass an info handler")
	}
}
