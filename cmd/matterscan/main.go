// Command matterscan discovers commissionable Matter devices.
//
// It scans BLE advertisements, DNS-SD services and Wi-Fi soft-APs in
// parallel and keeps one de-duplicated list of beacons.
//
// Usage:
//
//	matterscan [flags]
//
// Flags:
//
//	-c, --config string      Configuration file path (YAML)
//	    --ble                Enable BLE scanning (default true)
//	    --mdns               Enable DNS-SD browsing (default true)
//	    --wifi               Enable Wi-Fi soft-AP polling (default true)
//	    --json               Print snapshots as JSON lines
//	    --event-log string   Write a CBOR event log to this file
//	-i, --interactive        Start the interactive console
//	-d, --duration duration  Scan for a fixed time, then print the list
//	    --log-level string   Log level: debug, info, warn, error
//	    --log-format string  Log format: text, json
//	    --version            Print the build version and exit
//
// Examples:
//
//	# Scan all transports until interrupted
//	matterscan
//
//	# Scan DNS-SD only for 10 seconds and print JSON
//	matterscan --ble=false --wifi=false --duration 10s --json
//
//	# Interactive console with an event log
//	matterscan -i --event-log scan.cbor
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/matterscan/matterscan-go/cmd/matterscan/interactive"
	"github.com/matterscan/matterscan-go/pkg/beacon"
	"github.com/matterscan/matterscan-go/pkg/config"
	"github.com/matterscan/matterscan-go/pkg/discovery"
	scanlog "github.com/matterscan/matterscan-go/pkg/log"
	"github.com/matterscan/matterscan-go/pkg/version"
)

// Options holds the command-line flags.
type Options struct {
	ConfigFile    string
	BLE           bool
	MDNS          bool
	WiFi          bool
	BLEAdapter    string
	MDNSInterface string
	JSON          bool
	EventLog      string
	Interactive   bool
	Duration      time.Duration
	LogLevel      string
	LogFormat     string
	Version       bool
}

func main() {
	var opts Options
	fs := newFlagSet(&opts)
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if opts.Version {
		fmt.Println("matterscan", version.Get())
		return
	}

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newFlagSet(opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("matterscan", pflag.ContinueOnError)
	fs.StringVarP(&opts.ConfigFile, "config", "c", "", "Configuration file path (YAML)")
	fs.BoolVar(&opts.BLE, "ble", true, "Enable BLE scanning")
	fs.BoolVar(&opts.MDNS, "mdns", true, "Enable DNS-SD browsing")
	fs.BoolVar(&opts.WiFi, "wifi", true, "Enable Wi-Fi soft-AP polling")
	fs.StringVar(&opts.BLEAdapter, "ble-adapter", "", "BlueZ adapter name (e.g. hci0)")
	fs.StringVar(&opts.MDNSInterface, "mdns-interface", "", "Network interface for DNS-SD")
	fs.BoolVar(&opts.JSON, "json", false, "Print snapshots as JSON lines")
	fs.StringVar(&opts.EventLog, "event-log", "", "Write a CBOR event log to this file")
	fs.BoolVarP(&opts.Interactive, "interactive", "i", false, "Start the interactive console")
	fs.DurationVarP(&opts.Duration, "duration", "d", 0, "Scan for a fixed time, then print the list")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&opts.LogFormat, "log-format", "", "Log format: text, json")
	fs.BoolVar(&opts.Version, "version", false, "Print the build version and exit")
	return fs
}

// loadConfig reads the config file (or defaults) and applies the flags the
// user set explicitly.
func loadConfig(fs *pflag.FlagSet, opts Options) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if fs.Changed("ble") {
		cfg.BLE.Enabled = opts.BLE
	}
	if fs.Changed("mdns") {
		cfg.MDNS.Enabled = opts.MDNS
	}
	if fs.Changed("wifi") {
		cfg.WiFi.Enabled = opts.WiFi
	}
	if opts.BLEAdapter != "" {
		cfg.BLE.Adapter = opts.BLEAdapter
	}
	if opts.MDNSInterface != "" {
		cfg.MDNS.Interface = opts.MDNSInterface
	}
	if opts.EventLog != "" {
		cfg.Log.EventLog = opts.EventLog
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the operational logger from the log settings.
func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == config.FormatJSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler), nil
}

func run(cfg *config.Config, opts Options) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if opts.Duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, opts.Duration)
		defer cancel()
	}

	var console *interactive.Console
	logOut := io.Writer(os.Stderr)
	if opts.Interactive {
		c, err := interactive.New()
		if err != nil {
			return err
		}
		console = c
		logOut = console.Stderr()
	}

	logger, err := newLogger(cfg.Log, logOut)
	if err != nil {
		return err
	}

	agg := discovery.NewAggregator(discovery.AggregatorConfig{Logger: logger})
	if console != nil {
		console.Attach(agg)
	}

	sessionID := uuid.NewString()
	events, closeEvents, err := newEventLogger(cfg.Log.EventLog, logger)
	if err != nil {
		return err
	}
	defer closeEvents()

	producerOpts := discovery.ProducerOptions{
		Logger:      logger,
		EventLogger: events,
		SessionID:   sessionID,
	}
	producers := buildProducers(cfg, producerOpts, logger)

	logger.Info("scan started",
		"version", version.Version,
		"session", sessionID,
		"transports", fmt.Sprint(cfg.EnabledTransports()))
	events.Log(scanlog.StateChanged(sessionID, 0, scanlog.StateEntitySession, "", "scanning", ""))

	done := make(chan error, 1)
	go func() { done <- agg.Run(ctx, producers...) }()

	switch {
	case console != nil:
		console.Run(ctx, cancel)
	case opts.JSON:
		feed, unsubscribe := agg.Subscribe()
		defer unsubscribe()
		if err := writeJSON(os.Stdout, feed); err != nil {
			logger.Warn("json output failed", "error", err)
			cancel()
		}
	default:
		feed, unsubscribe := agg.Subscribe()
		defer unsubscribe()
		watch(os.Stdout, feed)
	}

	err = <-done
	events.Log(scanlog.StateChanged(sessionID, 0, scanlog.StateEntitySession, "scanning", "stopped", ""))

	if !opts.Interactive && !opts.JSON {
		fmt.Fprintln(os.Stdout)
		interactive.FormatList(os.Stdout, agg.Snapshot())
	}
	logger.Info("scan stopped", "beacons", agg.Len())

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// newEventLogger assembles the event sink: the debug-level slog adapter plus
// the CBOR file when path is set.
func newEventLogger(path string, logger *slog.Logger) (scanlog.Logger, func(), error) {
	adapter := scanlog.NewSlogAdapter(logger)
	if path == "" {
		return adapter, func() {}, nil
	}

	file, err := scanlog.NewFileLogger(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open event log: %w", err)
	}
	logger.Info("event log enabled", "path", path)

	closeFn := func() {
		if err := file.Close(); err != nil {
			logger.Warn("failed to close event log", "error", err)
		}
	}
	return scanlog.Combine(file, adapter), closeFn, nil
}

// buildProducers creates one producer per enabled transport.
func buildProducers(cfg *config.Config, opts discovery.ProducerOptions, logger *slog.Logger) []discovery.Producer {
	var producers []discovery.Producer

	if cfg.BLE.Enabled {
		producers = append(producers, discovery.NewBLEProducer(discovery.BLEConfig{
			ProducerOptions: opts,
			Radio:           discovery.NewTinyGoRadio(cfg.BLE.Adapter, logger),
			Debounce:        cfg.BLE.Debounce,
		}))
	}

	if cfg.MDNS.Enabled {
		producers = append(producers, discovery.NewMDNSProducer(discovery.MDNSConfig{
			ProducerOptions: opts,
			Browser: discovery.NewZeroconfBrowser(discovery.ZeroconfBrowserConfig{
				Interface: cfg.MDNS.Interface,
				Logger:    logger,
			}),
			ServiceType: cfg.MDNS.ServiceType,
			Domain:      cfg.MDNS.Domain,
		}))
	}

	if cfg.WiFi.Enabled {
		producers = append(producers, discovery.NewHotspotProducer(discovery.HotspotConfig{
			ProducerOptions: opts,
			Scanner:         discovery.NewNetworkManagerScanner(logger),
			PollInterval:    cfg.WiFi.PollInterval,
		}))
	}

	return producers
}

// watch prints one line per beacon that appeared or changed, until feed
// closes.
func watch(w io.Writer, feed <-chan []beacon.Beacon) {
	seen := make(map[beacon.Identity]beacon.Beacon)
	for snapshot := range feed {
		current := make(map[beacon.Identity]struct{}, len(snapshot))
		for _, b := range snapshot {
			id := b.Identity()
			current[id] = struct{}{}

			prev, ok := seen[id]
			switch {
			case !ok:
				fmt.Fprintf(w, "+ %s\n", b)
			case !sameContent(prev, b):
				fmt.Fprintf(w, "~ %s\n", b)
			default:
				continue
			}
			seen[id] = b
		}
		// The collection was cleared.
		for id := range seen {
			if _, ok := current[id]; !ok {
				delete(seen, id)
			}
		}
	}
}

// sameContent compares beacons ignoring SeenAt.
func sameContent(a, b beacon.Beacon) bool {
	a.SeenAt, b.SeenAt = time.Time{}, time.Time{}
	return a == b
}

// snapshotJSON is one line of --json output.
type snapshotJSON struct {
	Time    time.Time                `json:"time"`
	Beacons []interactive.BeaconJSON `json:"beacons"`
}

// writeJSON writes one JSON line per snapshot until feed closes.
func writeJSON(w io.Writer, feed <-chan []beacon.Beacon) error {
	enc := json.NewEncoder(w)
	for snapshot := range feed {
		line := snapshotJSON{
			Time:    time.Now().UTC(),
			Beacons: make([]interactive.BeaconJSON, 0, len(snapshot)),
		}
		for _, b := range snapshot {
			line.Beacons = append(line.Beacons, interactive.ToJSON(b))
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}
	return nil
}
