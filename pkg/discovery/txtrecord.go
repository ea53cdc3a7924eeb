package discovery

import (
	"strconv"
	"strings"

	"github.com/matterscan/matterscan-go/pkg/beacon"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// StringsToTXTRecords converts "key=value" strings to a TXTRecordMap.
// Entries without '=' are stored with an empty value.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap, len(strs))
	for _, s := range strs {
		k, v, _ := strings.Cut(s, "=")
		if k == "" {
			continue
		}
		txt[k] = v
	}
	return txt
}

// CommissionableTXT is what the commissionable TXT keys decode to.
// A field is zero when its key is absent or malformed.
type CommissionableTXT struct {
	Discriminator uint16
	VendorID      uint16
	ProductID     uint16

	HasDiscriminator bool
	HasVendorProduct bool
}

// DecodeCommissionableTXT reads the D and VP keys. Malformed values are
// treated as absent rather than failing the whole record.
func DecodeCommissionableTXT(txt TXTRecordMap) CommissionableTXT {
	var info CommissionableTXT

	if d, ok := parseDiscriminator(txt[TXTKeyDiscriminator]); ok {
		info.Discriminator = d
		info.HasDiscriminator = true
	}

	if vp, ok := txt[TXTKeyVendorProduct]; ok {
		if vendor, product, ok := parseVendorProduct(vp); ok {
			info.VendorID = vendor
			info.ProductID = product
			info.HasVendorProduct = true
		}
	}

	return info
}

// parseDiscriminator accepts 1 to 4 decimal digits holding a 12-bit value.
func parseDiscriminator(s string) (uint16, bool) {
	if len(s) == 0 || len(s) > 4 || !isDigits(s) {
		return 0, false
	}
	d, err := strconv.ParseUint(s, 10, 16)
	if err != nil || d > beacon.MaxDiscriminator {
		return 0, false
	}
	return uint16(d), true
}

// parseVendorProduct splits "vendor+product". Either part may be missing,
// in which case it decodes to 0.
func parseVendorProduct(s string) (vendor, product uint16, ok bool) {
	parts := strings.Split(s, "+")
	if len(parts) > 2 {
		return 0, 0, false
	}

	values := make([]uint16, 2)
	for i, p := range parts {
		if p == "" {
			continue
		}
		v, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return 0, 0, false
		}
		values[i] = uint16(v)
	}
	return values[0], values[1], true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
