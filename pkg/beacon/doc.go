// Package beacon defines the normalized record produced by every Matter
// discovery transport.
//
// A Beacon is identified by its name and transport kind. Three transport
// variants exist:
//
//   - ShortRangeRadio: a BLE advertisement carrying Matter service data.
//   - LocalNetworkService: a resolved _matterc._udp DNS-SD instance.
//   - Hotspot: a soft-AP whose SSID follows MATTER-ddd-vvvv-pppp.
//
// Beacons are values. Producers re-emit a new Beacon on every observation
// instead of updating one in place. The only field that legitimately changes
// between two emissions for the same identity is the Active flag of a
// LocalNetworkService, which goes false when the service is lost.
package beacon
