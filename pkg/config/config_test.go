package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.BLE.Debounce != time.Second {
		t.Errorf("BLE.Debounce = %v, want 1s", cfg.BLE.Debounce)
	}
	if cfg.WiFi.PollInterval != 30*time.Second {
		t.Errorf("WiFi.PollInterval = %v, want 30s", cfg.WiFi.PollInterval)
	}
	if cfg.MDNS.ServiceType != "_matterc._udp" || cfg.MDNS.Domain != "local" {
		t.Errorf("MDNS = %+v", cfg.MDNS)
	}
	if cfg.BLE.Adapter != "hci0" {
		t.Errorf("BLE.Adapter = %q", cfg.BLE.Adapter)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
ble:
  enabled: false
mdns:
  interface: eth0
wifi:
  poll_interval: 10s
log:
  level: debug
  format: json
  event_log: /tmp/scan.cbor
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.BLE.Enabled {
		t.Error("BLE should be disabled")
	}
	if cfg.BLE.Debounce != time.Second {
		t.Errorf("unset BLE.Debounce should keep default, got %v", cfg.BLE.Debounce)
	}
	if !cfg.MDNS.Enabled || cfg.MDNS.Interface != "eth0" {
		t.Errorf("MDNS = %+v", cfg.MDNS)
	}
	if cfg.WiFi.PollInterval != 10*time.Second {
		t.Errorf("WiFi.PollInterval = %v", cfg.WiFi.PollInterval)
	}
	if cfg.Log.EventLog != "/tmp/scan.cbor" || cfg.Log.Format != FormatJSON {
		t.Errorf("Log = %+v", cfg.Log)
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, %v", level, err)
	}

	want := []beacon.TransportKind{beacon.TransportMDNS, beacon.TransportHotspot}
	got := cfg.EnabledTransports()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("EnabledTransports = %v, want %v", got, want)
	}
}

func TestParseEmptyYieldsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.EnabledTransports()) != 3 {
		t.Errorf("EnabledTransports = %v", cfg.EnabledTransports())
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("ble: [unterminated"))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
	if le.Cause == nil {
		t.Error("LoadError should carry the YAML error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{"no transports", func(c *Config) {
			c.BLE.Enabled, c.MDNS.Enabled, c.WiFi.Enabled = false, false, false
		}, []string{"transports"}},
		{"zero debounce", func(c *Config) { c.BLE.Debounce = 0 }, []string{"ble.debounce"}},
		{"zero debounce ignored when disabled", func(c *Config) {
			c.BLE.Enabled = false
			c.BLE.Debounce = 0
		}, nil},
		{"empty adapter", func(c *Config) { c.BLE.Adapter = "" }, []string{"ble.adapter"}},
		{"bad service type", func(c *Config) { c.MDNS.ServiceType = "matterc" }, []string{"mdns.service_type"}},
		{"bad protocol", func(c *Config) { c.MDNS.ServiceType = "_matterc._sctp" }, []string{"mdns.service_type"}},
		{"empty domain", func(c *Config) { c.MDNS.Domain = "" }, []string{"mdns.domain"}},
		{"negative poll", func(c *Config) { c.WiFi.PollInterval = -time.Second }, []string{"wifi.poll_interval"}},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, []string{"log.level"}},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, []string{"log.format"}},
		{"several", func(c *Config) {
			c.Log.Format = "xml"
			c.WiFi.PollInterval = 0
		}, []string{"wifi.poll_interval", "log.format"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()

			if len(tt.fields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}

			joined, ok := err.(interface{ Unwrap() []error })
			if !ok {
				t.Fatalf("error %T does not unwrap to a list", err)
			}
			var got []string
			for _, e := range joined.Unwrap() {
				var ve *ValidationError
				if !errors.As(e, &ve) {
					t.Fatalf("error %v is not a *ValidationError", e)
				}
				got = append(got, ve.Field)
			}
			if len(got) != len(tt.fields) {
				t.Fatalf("fields = %v, want %v", got, tt.fields)
			}
			for i := range got {
				if got[i] != tt.fields[i] {
					t.Errorf("fields = %v, want %v", got, tt.fields)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matterscan.yaml")
	if err := os.WriteFile(path, []byte("wifi:\n  enabled: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WiFi.Enabled {
		t.Error("WiFi should be disabled")
	}
}

func TestLoadErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(missing)
	var le *LoadError
	if !errors.As(err, &le) || le.File != missing {
		t.Fatalf("error = %v, want *LoadError for %s", err, missing)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("LoadError should unwrap to os.ErrNotExist")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("log:\n  format: xml\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "log.format" {
		t.Fatalf("error = %v, want ValidationError for log.format", err)
	}
}
