// Package config loads scanner settings from YAML.
//
// Defaults are applied first and file values override them. The CLI then
// overrides file values with explicit flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/matterscan/matterscan-go/pkg/beacon"
	"github.com/matterscan/matterscan-go/pkg/discovery"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the scanner configuration.
type Config struct {
	BLE  BLEConfig  `yaml:"ble"`
	MDNS MDNSConfig `yaml:"mdns"`
	WiFi WiFiConfig `yaml:"wifi"`
	Log  LogConfig  `yaml:"log"`
}

// BLEConfig configures the BLE transport.
type BLEConfig struct {
	Enabled bool `yaml:"enabled"`

	// Adapter is the BlueZ adapter name, e.g. "hci0".
	Adapter string `yaml:"adapter"`

	// Debounce is the per-device suppression window.
	Debounce time.Duration `yaml:"debounce"`
}

// MDNSConfig configures the DNS-SD transport.
type MDNSConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceType string `yaml:"service_type"`
	Domain      string `yaml:"domain"`

	// Interface restricts browsing to one interface. Empty means all.
	Interface string `yaml:"interface"`
}

// WiFiConfig configures the soft-AP transport.
type WiFiConfig struct {
	Enabled      bool          `yaml:"enabled"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`

	// EventLog is the path of the CBOR event log. Empty disables it.
	EventLog string `yaml:"event_log"`
}

// Default returns the built-in configuration: all transports enabled.
func Default() *Config {
	return &Config{
		BLE: BLEConfig{
			Enabled:  true,
			Adapter:  discovery.DefaultAdapterID,
			Debounce: discovery.DefaultDebounce,
		},
		MDNS: MDNSConfig{
			Enabled:     true,
			ServiceType: discovery.ServiceTypeCommissionable,
			Domain:      discovery.Domain,
		},
		WiFi: WiFiConfig{
			Enabled:      true,
			PollInterval: discovery.DefaultPollInterval,
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
	}
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and returns all problems joined.
// Each problem is a *ValidationError.
func (c *Config) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if !c.BLE.Enabled && !c.MDNS.Enabled && !c.WiFi.Enabled {
		add("transports", "at least one transport must be enabled")
	}

	if c.BLE.Enabled {
		if c.BLE.Debounce <= 0 {
			add("ble.debounce", "must be positive, got %s", c.BLE.Debounce)
		}
		if c.BLE.Adapter == "" {
			add("ble.adapter", "must not be empty")
		}
	}

	if c.MDNS.Enabled {
		if !validServiceType(c.MDNS.ServiceType) {
			add("mdns.service_type", "%q is not of the form _name._udp or _name._tcp", c.MDNS.ServiceType)
		}
		if c.MDNS.Domain == "" {
			add("mdns.domain", "must not be empty")
		}
	}

	if c.WiFi.Enabled && c.WiFi.PollInterval <= 0 {
		add("wifi.poll_interval", "must be positive, got %s", c.WiFi.PollInterval)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		add("log.level", "%v", err)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		add("log.format", "must be %q or %q, got %q", FormatText, FormatJSON, c.Log.Format)
	}

	return errors.Join(errs...)
}

// EnabledTransports lists the enabled transports in display order.
func (c *Config) EnabledTransports() []beacon.TransportKind {
	var kinds []beacon.TransportKind
	if c.BLE.Enabled {
		kinds = append(kinds, beacon.TransportBLE)
	}
	if c.MDNS.Enabled {
		kinds = append(kinds, beacon.TransportMDNS)
	}
	if c.WiFi.Enabled {
		kinds = append(kinds, beacon.TransportHotspot)
	}
	return kinds
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("unknown level %q", l.Level)
	}
	return level, nil
}

func validServiceType(s string) bool {
	name, proto, ok := strings.Cut(s, ".")
	if !ok || len(name) < 2 || name[0] != '_' {
		return false
	}
	return proto == "_udp" || proto == "_tcp"
}

// LoadError reports a config file that could not be read or decoded.
type LoadError struct {
	// File is the path of the config file (empty for Parse).
	File string

	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidationError reports one invalid setting.
type ValidationError struct {
	// Field is the dotted YAML key, e.g. "ble.debounce".
	Field string

	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
