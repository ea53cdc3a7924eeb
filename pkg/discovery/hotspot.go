package discovery

import (
	"regexp"
	"strconv"
	"strings"
)

// hotspotPattern matches MATTER-<discriminator:3>-<vendor:4>-<product:4>.
var hotspotPattern = regexp.MustCompile(`^MATTER-([0-9A-Fa-f]{3})-([0-9A-Fa-f]{4})-([0-9A-Fa-f]{4})$`)

// HotspotData is the Matter identity encoded in a soft-AP SSID.
type HotspotData struct {
	SSID          string
	Discriminator uint16
	VendorID      uint16
	ProductID     uint16
}

// TrimSSID removes the double quotes some platforms wrap SSIDs in.
func TrimSSID(ssid string) string {
	return strings.Trim(ssid, `"`)
}

// ParseHotspotSSID decodes a Matter soft-AP name. Surrounding quotes are
// stripped first.
func ParseHotspotSSID(ssid string) (HotspotData, error) {
	name := TrimSSID(ssid)
	m := hotspotPattern.FindStringSubmatch(name)
	if m == nil {
		return HotspotData{}, ErrNotMatterSSID
	}

	// Each group is at most 4 hex digits, so parsing cannot overflow.
	d, _ := strconv.ParseUint(m[1], 16, 16)
	v, _ := strconv.ParseUint(m[2], 16, 16)
	p, _ := strconv.ParseUint(m[3], 16, 16)

	return HotspotData{
		SSID:          name,
		Discriminator: uint16(d),
		VendorID:      uint16(v),
		ProductID:     uint16(p),
	}, nil
}
