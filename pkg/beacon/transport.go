package beacon

import (
	"errors"
	"fmt"
	"strings"
)

// TransportKind identifies the discovery transport a beacon came from.
type TransportKind uint8

const (
	// TransportBLE is a Bluetooth Low Energy advertisement.
	TransportBLE TransportKind = iota + 1

	// TransportMDNS is a DNS-SD commissionable service on the local network.
	TransportMDNS

	// TransportHotspot is a Wi-Fi soft-AP advertised by the device.
	TransportHotspot
)

// ErrInvalidTransport is returned when a transport name cannot be parsed.
var ErrInvalidTransport = errors.New("invalid transport")

// String returns the short transport name.
func (k TransportKind) String() string {
	switch k {
	case TransportBLE:
		return "ble"
	case TransportMDNS:
		return "mdns"
	case TransportHotspot:
		return "wifi"
	default:
		return "unknown"
	}
}

// ParseTransportKind parses a transport name. Accepts the short names
// returned by String and a few common aliases.
func ParseTransportKind(s string) (TransportKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ble", "bluetooth":
		return TransportBLE, nil
	case "mdns", "dnssd", "dns-sd", "nsd":
		return TransportMDNS, nil
	case "wifi", "hotspot", "softap":
		return TransportHotspot, nil
	default:
		return 0, fmt.Errorf("%w: %q (use: ble, mdns, wifi)", ErrInvalidTransport, s)
	}
}

// AllTransports lists every transport kind in display order.
func AllTransports() []TransportKind {
	return []TransportKind{TransportBLE, TransportMDNS, TransportHotspot}
}

// Transport is the transport-specific part of a beacon.
// Implementations are ShortRangeRadio, LocalNetworkService and Hotspot.
type Transport interface {
	Kind() TransportKind
	String() string

	isTransport()
}

// ShortRangeRadio is a beacon observed as a BLE advertisement.
type ShortRangeRadio struct {
	// Address is the advertiser's Bluetooth device address.
	Address string
}

// Kind implements Transport.
func (ShortRangeRadio) Kind() TransportKind { return TransportBLE }

func (t ShortRangeRadio) String() string { return "ble " + t.Address }

func (ShortRangeRadio) isTransport() {}

// LocalNetworkService is a beacon resolved from DNS-SD.
type LocalNetworkService struct {
	// Address is the resolved IP address (or host name when no address resolved).
	Address string

	// Port is the service port.
	Port uint16

	// Active is false once the service has been reported lost.
	Active bool
}

// Kind implements Transport.
func (LocalNetworkService) Kind() TransportKind { return TransportMDNS }

func (t LocalNetworkService) String() string {
	state := "active"
	if !t.Active {
		state = "lost"
	}
	return fmt.Sprintf("mdns %s:%d (%s)", t.Address, t.Port, state)
}

func (LocalNetworkService) isTransport() {}

// Hotspot is a beacon observed as a Wi-Fi access point.
type Hotspot struct {
	// SSID is the advertised network name with surrounding quotes removed.
	SSID string
}

// Kind implements Transport.
func (Hotspot) Kind() TransportKind { return TransportHotspot }

func (t Hotspot) String() string { return "wifi " + t.SSID }

func (Hotspot) isTransport() {}

// Compile-time interface satisfaction checks.
var (
	_ Transport = ShortRangeRadio{}
	_ Transport = LocalNetworkService{}
	_ Transport = Hotspot{}
)
