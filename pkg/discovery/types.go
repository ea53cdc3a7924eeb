package discovery

import (
	"context"
	"errors"
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
)

// BLE constants.
const (
	// MatterServiceUUID is the 16-bit service UUID Matter devices advertise.
	MatterServiceUUID uint16 = 0xFFF6

	// DefaultDebounce is the minimum interval between two emissions of the
	// same BLE identity.
	DefaultDebounce = 1000 * time.Millisecond
)

// DNS-SD constants.
const (
	// ServiceTypeCommissionable is the service type of devices in
	// commissioning mode.
	ServiceTypeCommissionable = "_matterc._udp"

	// Domain is the mDNS domain.
	Domain = "local"

	// TXTKeyDiscriminator holds the long discriminator in decimal.
	TXTKeyDiscriminator = "D"

	// TXTKeyVendorProduct holds "<vendor>+<product>" in decimal.
	TXTKeyVendorProduct = "VP"
)

// Wi-Fi constants.
const (
	// DefaultPollInterval is how often the hotspot producer reads scan results.
	DefaultPollInterval = 30 * time.Second
)

// Discovery errors.
var (
	ErrPayloadTooShort   = errors.New("advertisement payload too short")
	ErrDeclaredLength    = errors.New("advertisement declared length too small")
	ErrNotMatterSSID     = errors.New("ssid does not match MATTER-ddd-vvvv-pppp")
	ErrUnresolved        = errors.New("service could not be resolved")
	ErrNoWirelessDevice  = errors.New("no wireless device available")
	ErrAdapterDisabled   = errors.New("radio adapter disabled")
	ErrScannerNotStarted = errors.New("scan not started")
)

// Producer emits beacons from one transport.
type Producer interface {
	// Transport returns the kind of beacons this producer emits.
	Transport() beacon.TransportKind

	// Beacons starts a new subscription. The returned channel never closes
	// on its own; it is closed after ctx is cancelled and the subscription
	// has released its OS resources.
	Beacons(ctx context.Context) <-chan beacon.Beacon
}

// Advertisement is a raw BLE advertisement as delivered by the OS.
type Advertisement struct {
	// Address is the advertiser's device address.
	Address string

	// LocalName is the advertised local name, if any.
	LocalName string

	// RSSI is the received signal strength in dBm.
	RSSI int16

	// Payload is the advertising record: a sequence of length-prefixed AD
	// structures.
	Payload []byte
}

// RadioScanner is the OS BLE scanning facility.
type RadioScanner interface {
	// Enable powers up the adapter. It fails when no adapter is present.
	Enable() error

	// Enabled reports whether the adapter is currently powered.
	Enabled() bool

	// StartScan starts delivering advertisements that carry serviceUUID to
	// handler. handler may be called from any goroutine.
	StartScan(serviceUUID uint16, handler func(Advertisement)) error

	// StopScan stops a scan started by StartScan.
	StopScan() error
}

// ServiceEventType distinguishes DNS-SD notifications.
type ServiceEventType uint8

const (
	// ServiceFound reports a newly seen service instance.
	ServiceFound ServiceEventType = iota + 1

	// ServiceLost reports that a service instance went away.
	ServiceLost
)

// String returns the event type name.
func (t ServiceEventType) String() string {
	switch t {
	case ServiceFound:
		return "FOUND"
	case ServiceLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}

// ServiceEvent is a DNS-SD browse notification.
type ServiceEvent struct {
	Type ServiceEventType

	// Instance is the service instance name.
	Instance string

	// Service is the service type, e.g. "_matterc._udp".
	Service string

	Domain string
}

// ResolvedService is a DNS-SD instance with its location and TXT records.
type ResolvedService struct {
	Instance string
	Host     string
	Port     uint16

	// Addresses holds resolved IPs, IPv4 first.
	Addresses []string

	// Text holds the raw "key=value" TXT strings.
	Text []string
}

// ServiceBrowser is the OS DNS-SD facility.
type ServiceBrowser interface {
	// Browse delivers found/lost notifications for serviceType to events
	// until ctx is cancelled. It returns early with an error when browsing
	// cannot start.
	Browse(ctx context.Context, serviceType, domain string, events chan<- ServiceEvent) error

	// Resolve looks up the location and TXT records of a found service.
	Resolve(ctx context.Context, svc ServiceEvent) (*ResolvedService, error)
}

// AccessPoint is a Wi-Fi scan result.
type AccessPoint struct {
	SSID  string
	BSSID string

	// Strength is the signal quality in percent.
	Strength uint8
}

// AccessPointScanner is the OS Wi-Fi scanning facility.
type AccessPointScanner interface {
	// Available returns an error when no wireless device can be scanned.
	Available(ctx context.Context) error

	// RequestScan asks the OS to refresh its scan results.
	RequestScan(ctx context.Context) error

	// AccessPoints returns the current scan results.
	AccessPoints(ctx context.Context) ([]AccessPoint, error)
}
