package beacon

import (
	"fmt"
	"time"
)

// MaxDiscriminator is the largest 12-bit discriminator value.
const MaxDiscriminator = 0x0FFF

// LostAddress is the address carried by the lost-service sentinel.
const LostAddress = "0.0.0.0"

// Identity is the key beacons are de-duplicated on.
type Identity struct {
	Name string
	Kind TransportKind
}

func (id Identity) String() string {
	return id.Name + "/" + id.Kind.String()
}

// Beacon is a single observation of a commissionable Matter device.
type Beacon struct {
	// Name identifies the advertiser within its transport.
	Name string

	VendorID  uint16
	ProductID uint16

	// Discriminator is the 12-bit commissioning discriminator.
	Discriminator uint16

	Transport Transport

	// SeenAt is when the producer emitted this record.
	SeenAt time.Time
}

// Identity returns the de-duplication key of the beacon.
// A beacon with no transport has a zero Kind.
func (b Beacon) Identity() Identity {
	id := Identity{Name: b.Name}
	if b.Transport != nil {
		id.Kind = b.Transport.Kind()
	}
	return id
}

// Active reports whether the beacon is currently advertised.
// Only a lost LocalNetworkService is inactive.
func (b Beacon) Active() bool {
	if svc, ok := b.Transport.(LocalNetworkService); ok {
		return svc.Active
	}
	return true
}

// IsLostSentinel reports whether b is the record emitted when a DNS-SD
// service disappears.
func (b Beacon) IsLostSentinel() bool {
	svc, ok := b.Transport.(LocalNetworkService)
	if !ok || svc.Active {
		return false
	}
	return b.VendorID == 0 && b.ProductID == 0 && b.Discriminator == 0 &&
		svc.Address == LostAddress && svc.Port == 0
}

// LostService builds the sentinel for a DNS-SD service that went away.
func LostService(name string, at time.Time) Beacon {
	return Beacon{
		Name: name,
		Transport: LocalNetworkService{
			Address: LostAddress,
			Port:    0,
			Active:  false,
		},
		SeenAt: at,
	}
}

func (b Beacon) String() string {
	transport := "none"
	if b.Transport != nil {
		transport = b.Transport.String()
	}
	return fmt.Sprintf("%s [%s] D=0x%03X VID=0x%04X PID=0x%04X %s",
		b.Name, b.Identity().Kind, b.Discriminator, b.VendorID, b.ProductID, transport)
}
