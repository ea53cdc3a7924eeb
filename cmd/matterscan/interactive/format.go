package interactive

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
)

// BeaconJSON is the JSON rendering of a beacon.
type BeaconJSON struct {
	Name          string    `json:"name"`
	Transport     string    `json:"transport"`
	Discriminator uint16    `json:"discriminator"`
	VendorID      uint16    `json:"vendor_id"`
	ProductID     uint16    `json:"product_id"`
	Address       string    `json:"address,omitempty"`
	Port          uint16    `json:"port,omitempty"`
	Active        bool      `json:"active"`
	SeenAt        time.Time `json:"seen_at"`
}

// ToJSON converts b for JSON output.
func ToJSON(b beacon.Beacon) BeaconJSON {
	out := BeaconJSON{
		Name:          b.Name,
		Transport:     b.Identity().Kind.String(),
		Discriminator: b.Discriminator,
		VendorID:      b.VendorID,
		ProductID:     b.ProductID,
		Address:       Address(b),
		Active:        b.Active(),
		SeenAt:        b.SeenAt,
	}
	if svc, ok := b.Transport.(beacon.LocalNetworkService); ok {
		out.Port = svc.Port
	}
	return out
}

// Address returns the transport-specific location of b.
func Address(b beacon.Beacon) string {
	switch t := b.Transport.(type) {
	case beacon.ShortRangeRadio:
		return t.Address
	case beacon.LocalNetworkService:
		if t.Port == 0 {
			return t.Address
		}
		return fmt.Sprintf("%s:%d", t.Address, t.Port)
	case beacon.Hotspot:
		return t.SSID
	default:
		return ""
	}
}

// FormatList writes beacons as an aligned table.
func FormatList(w io.Writer, beacons []beacon.Beacon) {
	if len(beacons) == 0 {
		fmt.Fprintln(w, "No beacons discovered yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tTRANSPORT\tD\tVID\tPID\tADDRESS\tSTATE\tSEEN")
	for i, b := range beacons {
		state := "active"
		if !b.Active() {
			state = "lost"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t0x%04X\t0x%04X\t%s\t%s\t%s\n",
			i+1, b.Name, b.Identity().Kind, b.Discriminator, b.VendorID, b.ProductID,
			Address(b), state, b.SeenAt.Format("15:04:05"))
	}
	tw.Flush()
}
