package discovery

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/godbus/dbus/v5"
	"tinygo.org/x/bluetooth"
)

// DefaultAdapterID is the BlueZ adapter probed for its power state.
const DefaultAdapterID = "hci0"

// TinyGoRadio implements RadioScanner with tinygo.org/x/bluetooth.
//
// The power state is read from BlueZ over the system bus when available so
// that an adapter switched off while scanning is detected.
type TinyGoRadio struct {
	adapter   *bluetooth.Adapter
	adapterID string
	logger    *slog.Logger

	mu       sync.Mutex
	enabled  bool
	scanning bool
	done     chan struct{}
}

// NewTinyGoRadio wraps the default bluetooth adapter. adapterID names the
// BlueZ adapter used for the power probe; empty means DefaultAdapterID.
func NewTinyGoRadio(adapterID string, logger *slog.Logger) *TinyGoRadio {
	if adapterID == "" {
		adapterID = DefaultAdapterID
	}
	return &TinyGoRadio{
		adapter:   bluetooth.DefaultAdapter,
		adapterID: adapterID,
		logger:    logger,
	}
}

// Enable implements RadioScanner.
func (r *TinyGoRadio) Enable() error {
	if err := r.adapter.Enable(); err != nil {
		return fmt.Errorf("enable bluetooth adapter: %w", err)
	}
	r.mu.Lock()
	r.enabled = true
	r.mu.Unlock()
	return nil
}

// Enabled implements RadioScanner.
func (r *TinyGoRadio) Enabled() bool {
	powered, err := bluezPowered(r.adapterID)
	if err == nil {
		return powered
	}
	r.debugLog("power probe unavailable", "adapter", r.adapterID, "error", err)

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// StartScan implements RadioScanner. Scanning runs on its own goroutine
// until StopScan.
func (r *TinyGoRadio) StartScan(serviceUUID uint16, handler func(Advertisement)) error {
	r.mu.Lock()
	if !r.enabled {
		r.mu.Unlock()
		return ErrAdapterDisabled
	}
	if r.scanning {
		r.mu.Unlock()
		return fmt.Errorf("scan already running")
	}
	r.scanning = true
	done := make(chan struct{})
	r.done = done
	r.mu.Unlock()

	target := bluetooth.New16BitUUID(serviceUUID)
	go func() {
		defer close(done)
		err := r.adapter.Scan(func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
			for _, sd := range result.ServiceData() {
				if sd.UUID != target {
					continue
				}
				handler(Advertisement{
					Address:   result.Address.String(),
					LocalName: result.LocalName(),
					RSSI:      result.RSSI,
					Payload:   BuildAdvertisement(serviceUUID, sd.Data),
				})
				return
			}
		})
		if err != nil {
			r.warnLog("BLE scan ended with error", "error", err)
		}
		r.mu.Lock()
		r.scanning = false
		r.mu.Unlock()
	}()
	return nil
}

// StopScan implements RadioScanner and waits for the scan goroutine to end.
func (r *TinyGoRadio) StopScan() error {
	r.mu.Lock()
	done := r.done
	scanning := r.scanning
	r.mu.Unlock()
	if !scanning || done == nil {
		return ErrScannerNotStarted
	}

	if err := r.adapter.StopScan(); err != nil {
		return fmt.Errorf("stop scan: %w", err)
	}
	<-done
	return nil
}

// bluezPowered reads org.bluez.Adapter1.Powered for adapterID.
func bluezPowered(adapterID string) (bool, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return false, err
	}
	obj := conn.Object("org.bluez", dbus.ObjectPath("/org/bluez/"+adapterID))
	v, err := obj.GetProperty("org.bluez.Adapter1.Powered")
	if err != nil {
		return false, err
	}
	powered, ok := v.Value().(bool)
	if !ok {
		return false, fmt.Errorf("unexpected Powered type %T", v.Value())
	}
	return powered, nil
}

func (r *TinyGoRadio) debugLog(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}

func (r *TinyGoRadio) warnLog(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}

// Compile-time interface satisfaction check.
var _ RadioScanner = (*TinyGoRadio)(nil)
