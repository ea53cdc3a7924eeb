package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/godbus/dbus/v5"
)

// NetworkManager D-Bus names.
const (
	nmService          = "org.freedesktop.NetworkManager"
	nmPath             = dbus.ObjectPath("/org/freedesktop/NetworkManager")
	nmDeviceIface      = nmService + ".Device"
	nmWirelessIface    = nmService + ".Device.Wireless"
	nmAccessPointIface = nmService + ".AccessPoint"

	nmDeviceTypeWifi uint32 = 2
)

// NetworkManagerScanner implements AccessPointScanner over the
// NetworkManager D-Bus API.
type NetworkManagerScanner struct {
	logger *slog.Logger

	mu   sync.Mutex
	conn *dbus.Conn
}

// NewNetworkManagerScanner creates a scanner. The system bus is connected
// lazily.
func NewNetworkManagerScanner(logger *slog.Logger) *NetworkManagerScanner {
	return &NetworkManagerScanner{logger: logger}
}

// Available implements AccessPointScanner.
func (s *NetworkManagerScanner) Available(ctx context.Context) error {
	_, err := s.wirelessDevices(ctx)
	return err
}

// RequestScan implements AccessPointScanner. Every wireless device is asked
// to rescan.
func (s *NetworkManagerScanner) RequestScan(ctx context.Context) error {
	conn, devices, err := s.devices(ctx)
	if err != nil {
		return err
	}
	var errs []error
	for _, dev := range devices {
		call := conn.Object(nmService, dev).CallWithContext(ctx, nmWirelessIface+".RequestScan", 0, map[string]dbus.Variant{})
		if call.Err != nil {
			errs = append(errs, fmt.Errorf("request scan on %s: %w", dev, call.Err))
		}
	}
	return errors.Join(errs...)
}

// AccessPoints implements AccessPointScanner.
func (s *NetworkManagerScanner) AccessPoints(ctx context.Context) ([]AccessPoint, error) {
	conn, devices, err := s.devices(ctx)
	if err != nil {
		return nil, err
	}

	var result []AccessPoint
	for _, dev := range devices {
		var paths []dbus.ObjectPath
		err := conn.Object(nmService, dev).
			CallWithContext(ctx, nmWirelessIface+".GetAllAccessPoints", 0).
			Store(&paths)
		if err != nil {
			return result, fmt.Errorf("list access points on %s: %w", dev, err)
		}
		for _, path := range paths {
			ap, err := readAccessPoint(conn.Object(nmService, path))
			if err != nil {
				s.debugLog("skipping access point", "path", path, "error", err)
				continue
			}
			result = append(result, ap)
		}
	}
	return result, nil
}

func readAccessPoint(obj dbus.BusObject) (AccessPoint, error) {
	var ap AccessPoint

	v, err := obj.GetProperty(nmAccessPointIface + ".Ssid")
	if err != nil {
		return ap, err
	}
	ssid, ok := v.Value().([]byte)
	if !ok {
		return ap, fmt.Errorf("unexpected Ssid type %T", v.Value())
	}
	ap.SSID = string(ssid)

	if v, err := obj.GetProperty(nmAccessPointIface + ".HwAddress"); err == nil {
		ap.BSSID, _ = v.Value().(string)
	}
	if v, err := obj.GetProperty(nmAccessPointIface + ".Strength"); err == nil {
		ap.Strength, _ = v.Value().(uint8)
	}
	return ap, nil
}

func (s *NetworkManagerScanner) devices(ctx context.Context) (*dbus.Conn, []dbus.ObjectPath, error) {
	devices, err := s.wirelessDevices(ctx)
	if err != nil {
		return nil, nil, err
	}
	conn, err := s.bus()
	return conn, devices, err
}

// wirelessDevices lists the device paths of type Wi-Fi.
func (s *NetworkManagerScanner) wirelessDevices(ctx context.Context) ([]dbus.ObjectPath, error) {
	conn, err := s.bus()
	if err != nil {
		return nil, err
	}

	var all []dbus.ObjectPath
	err = conn.Object(nmService, nmPath).CallWithContext(ctx, nmService+".GetDevices", 0).Store(&all)
	if err != nil {
		return nil, fmt.Errorf("list network devices: %w", err)
	}

	var wifi []dbus.ObjectPath
	for _, dev := range all {
		v, err := conn.Object(nmService, dev).GetProperty(nmDeviceIface + ".DeviceType")
		if err != nil {
			continue
		}
		if t, ok := v.Value().(uint32); ok && t == nmDeviceTypeWifi {
			wifi = append(wifi, dev)
		}
	}
	if len(wifi) == 0 {
		return nil, ErrNoWirelessDevice
	}
	return wifi, nil
}

// bus returns the shared system bus connection.
func (s *NetworkManagerScanner) bus() (*dbus.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return s.conn, nil
	}
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("connect system bus: %w", err)
	}
	s.conn = conn
	return conn, nil
}

func (s *NetworkManagerScanner) debugLog(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

// Compile-time interface satisfaction check.
var _ AccessPointScanner = (*NetworkManagerScanner)(nil)
