package discovery

import (
	"encoding/binary"
	"fmt"

	"github.com/matterscan/matterscan-go/pkg/beacon"
)

// Advertising record layout. The record starts with a 3-byte flags AD
// structure followed by the 16-bit service data AD structure for 0xFFF6:
//
//	0..2   flags AD (02 01 06)
//	3      service data AD length
//	4      AD type (0x16)
//	5..6   service UUID, little-endian
//	7      Matter opcode
//	8..9   discriminator (low 12 bits) and advertisement version
//	10..11 vendor ID
//	12..13 product ID
const (
	minAdvertisementLen  = 14
	minDeclaredLength    = 10
	offsetDeclaredLength = 3
	offsetDiscriminator  = 8
	offsetVendorID       = 10
	offsetProductID      = 12

	adTypeFlags       = 0x01
	adTypeServiceData = 0x16
	adFlagsGeneral    = 0x06
)

// AdvertisementData is the Matter identity carried by a BLE advertisement.
type AdvertisementData struct {
	Discriminator uint16
	VendorID      uint16
	ProductID     uint16
}

// ParseAdvertisement decodes a raw advertising record.
func ParseAdvertisement(payload []byte) (AdvertisementData, error) {
	if len(payload) < minAdvertisementLen {
		return AdvertisementData{}, fmt.Errorf("%w: %d bytes, need %d", ErrPayloadTooShort, len(payload), minAdvertisementLen)
	}
	if declared := payload[offsetDeclaredLength]; declared < minDeclaredLength {
		return AdvertisementData{}, fmt.Errorf("%w: %d, need %d", ErrDeclaredLength, declared, minDeclaredLength)
	}

	return AdvertisementData{
		Discriminator: binary.LittleEndian.Uint16(payload[offsetDiscriminator:]) & beacon.MaxDiscriminator,
		VendorID:      binary.LittleEndian.Uint16(payload[offsetVendorID:]),
		ProductID:     binary.LittleEndian.Uint16(payload[offsetProductID:]),
	}, nil
}

// BuildAdvertisement assembles an advertising record from the service data
// the OS reported for serviceUUID. Platforms that hand out parsed service
// data instead of the raw record use this to recover the wire layout.
func BuildAdvertisement(serviceUUID uint16, serviceData []byte) []byte {
	record := make([]byte, 0, 7+len(serviceData))
	record = append(record, 0x02, adTypeFlags, adFlagsGeneral)
	record = append(record, byte(3+len(serviceData)), adTypeServiceData)
	record = binary.LittleEndian.AppendUint16(record, serviceUUID)
	return append(record, serviceData...)
}
