package discovery

import (
	"context"
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
	scanlog "github.com/matterscan/matterscan-go/pkg/log"
)

// BLEConfig configures a BLEProducer.
type BLEConfig struct {
	ProducerOptions

	// Radio is the OS scanner. Required.
	Radio RadioScanner

	// ServiceUUID filters advertisements. Default: MatterServiceUUID.
	ServiceUUID uint16

	// Debounce is the per-identity suppression window. Default: 1s.
	Debounce time.Duration
}

// BLEProducer emits beacons for Matter BLE advertisements.
type BLEProducer struct {
	producerBase
	config BLEConfig
}

// NewBLEProducer creates a BLE producer.
func NewBLEProducer(config BLEConfig) *BLEProducer {
	if config.ServiceUUID == 0 {
		config.ServiceUUID = MatterServiceUUID
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	return &BLEProducer{
		producerBase: newProducerBase(beacon.TransportBLE, config.ProducerOptions),
		config:       config,
	}
}

// Transport implements Producer.
func (p *BLEProducer) Transport() beacon.TransportKind { return beacon.TransportBLE }

// Beacons implements Producer.
func (p *BLEProducer) Beacons(ctx context.Context) <-chan beacon.Beacon {
	out := make(chan beacon.Beacon)
	go p.run(ctx, out)
	return out
}

func (p *BLEProducer) run(ctx context.Context, out chan<- beacon.Beacon) {
	defer close(out)

	radio := p.config.Radio
	if err := radio.Enable(); err != nil {
		p.idle(ctx, err)
		return
	}

	// Each subscription gets its own debounce state.
	debouncer := NewDebouncer(p.config.Debounce, p.clock)
	found := make(chan beacon.Beacon, 16)

	handler := func(ad Advertisement) {
		b, ok := p.decode(ad)
		if !ok || !debouncer.Allow(b.Identity()) {
			return
		}
		select {
		case found <- b:
		case <-ctx.Done():
		}
	}

	if err := radio.StartScan(p.config.ServiceUUID, handler); err != nil {
		p.idle(ctx, err)
		return
	}
	p.scannerState("", "scanning", "")
	p.state("starting", "scanning", "")
	p.infoLog("BLE scan started", "service_uuid", p.config.ServiceUUID)

	defer p.stopScan(debouncer)

	for {
		select {
		case <-ctx.Done():
			return
		case b := <-found:
			p.emitted(b)
			if !send(ctx, out, b) {
				return
			}
		}
	}
}

// stopScan stops the OS scan, unless the adapter was switched off while
// scanning, in which case there is nothing left to stop.
func (p *BLEProducer) stopScan(debouncer *Debouncer) {
	defer p.infoLog("BLE scan stopped", "identities", debouncer.Len())

	if !p.config.Radio.Enabled() {
		p.infoLog("adapter already off, skipping stop scan")
		p.scannerState("scanning", "off", "adapter disabled")
		p.state("scanning", "stopped", "adapter disabled")
		return
	}
	if err := p.config.Radio.StopScan(); err != nil {
		p.warnLog("failed to stop BLE scan", "error", err)
		p.events.Log(scanlog.Errored(p.session, beacon.TransportBLE, "stop scan", err))
	}
	p.scannerState("scanning", "stopped", "")
	p.state("scanning", "stopped", "")
}

// decode turns an advertisement into a beacon. Malformed payloads are
// logged and dropped.
func (p *BLEProducer) decode(ad Advertisement) (beacon.Beacon, bool) {
	data, err := ParseAdvertisement(ad.Payload)
	if err != nil {
		p.debugLog("dropping malformed advertisement", "address", ad.Address, "error", err)
		p.events.Log(scanlog.Dropped(p.session, beacon.TransportBLE, ad.Address, ad.Payload, err))
		return beacon.Beacon{}, false
	}

	name := ad.LocalName
	if name == "" {
		name = ad.Address
	}
	return beacon.Beacon{
		Name:          name,
		VendorID:      data.VendorID,
		ProductID:     data.ProductID,
		Discriminator: data.Discriminator,
		Transport:     beacon.ShortRangeRadio{Address: ad.Address},
		SeenAt:        p.clock(),
	}, true
}

// Compile-time interface satisfaction check.
var _ Producer = (*BLEProducer)(nil)
