// Package log provides structured beacon event logging for matterscan.
//
// This package defines the Logger interface and Event types for capturing
// discovery-level events from every transport (BLE, DNS-SD, Wi-Fi). It is
// separate from operational logging (slog): the event log is a complete,
// machine-readable trace of what each producer emitted, dropped, or lost.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For analysis: write to a binary file
//	cfg.EventLogger, _ = log.NewFileLogger("/tmp/scan.blog")
//
//	// Both: combine them
//	cfg.EventLogger = log.Combine(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Categories
//
//   - Emitted: a producer emitted a beacon (BeaconEvent)
//   - Lost: a DNS-SD service disappeared (BeaconEvent with Active=false)
//   - Dropped: a payload or name did not decode (DropEvent)
//   - State: a producer or scanner changed state (StateChangeEvent)
//   - Error: a non-fatal transport error (ErrorEventData)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys, usually
// with a .blog extension. The matterscan-log tool views, filters and
// exports them.
package log
