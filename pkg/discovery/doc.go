// Package discovery finds commissionable Matter devices over three
// independent transports and merges them into one list.
//
// # Producers
//
// Each transport has a Producer whose Beacons method starts a fresh
// subscription and returns a channel of beacon.Beacon values. The channel is
// closed only after the subscription's context is cancelled and every OS
// registration it made has been released.
//
//   - BLEProducer scans for advertisements carrying the Matter service UUID
//     (0xFFF6), decodes the fixed-layout service data and debounces repeated
//     sightings of the same device for one second.
//   - MDNSProducer browses _matterc._udp, resolves each instance and reads the
//     D (discriminator) and VP (vendor+product) TXT keys. A lost instance is
//     reported as an inactive sentinel record.
//   - HotspotProducer polls Wi-Fi scan results every 30 seconds for soft-APs
//     named MATTER-ddd-vvvv-pppp and requests a fresh scan after each poll.
//
// A producer whose transport is unavailable logs the problem and stays idle
// until cancelled. Decode failures are logged and dropped. Nothing is
// retried: scanning is continuous.
//
// # Aggregation
//
// Aggregator merges producer channels into an identity-keyed collection
// (name plus transport kind) kept in first-seen order. Re-emissions replace
// the previous record. BLE and Wi-Fi entries are never evicted; DNS-SD
// entries go inactive when their service is lost.
//
// # OS collaborators
//
// Producers talk to the platform through RadioScanner, ServiceBrowser and
// AccessPointScanner. Production implementations are TinyGoRadio
// (tinygo.org/x/bluetooth with a BlueZ power probe), ZeroconfBrowser
// (github.com/enbility/zeroconf/v3) and NetworkManagerScanner
// (NetworkManager over D-Bus). Mocks live in the mocks subpackage.
package discovery
