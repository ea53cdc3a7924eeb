package discovery

import (
	"context"
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
	scanlog "github.com/matterscan/matterscan-go/pkg/log"
)

// HotspotConfig configures a HotspotProducer.
type HotspotConfig struct {
	ProducerOptions

	// Scanner is the OS Wi-Fi facility. Required.
	Scanner AccessPointScanner

	// PollInterval is the time between two reads of the scan results.
	// Default: 30s.
	PollInterval time.Duration
}

// HotspotProducer emits beacons for Matter soft-APs.
type HotspotProducer struct {
	producerBase
	config HotspotConfig
}

// NewHotspotProducer creates a Wi-Fi producer.
func NewHotspotProducer(config HotspotConfig) *HotspotProducer {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}
	return &HotspotProducer{
		producerBase: newProducerBase(beacon.TransportHotspot, config.ProducerOptions),
		config:       config,
	}
}

// Transport implements Producer.
func (p *HotspotProducer) Transport() beacon.TransportKind { return beacon.TransportHotspot }

// Beacons implements Producer.
func (p *HotspotProducer) Beacons(ctx context.Context) <-chan beacon.Beacon {
	out := make(chan beacon.Beacon)
	go p.run(ctx, out)
	return out
}

func (p *HotspotProducer) run(ctx context.Context, out chan<- beacon.Beacon) {
	defer close(out)

	if err := p.config.Scanner.Available(ctx); err != nil {
		if ctx.Err() == nil {
			p.idle(ctx, err)
		}
		return
	}
	p.state("starting", "polling", "")
	p.infoLog("Wi-Fi polling started", "interval", p.config.PollInterval)

	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	for {
		if !p.poll(ctx, out) {
			p.state("polling", "stopped", "")
			return
		}
		select {
		case <-ctx.Done():
			p.state("polling", "stopped", "")
			return
		case <-ticker.C:
		}
	}
}

// poll reads the current scan results, emits every Matter soft-AP and then
// asks for a fresh scan so the next poll sees new results. It returns false
// once ctx is cancelled.
func (p *HotspotProducer) poll(ctx context.Context, out chan<- beacon.Beacon) bool {
	aps, err := p.config.Scanner.AccessPoints(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.warnLog("failed to read scan results", "error", err)
		p.events.Log(scanlog.Errored(p.session, beacon.TransportHotspot, "scan results", err))
	}

	for _, ap := range aps {
		data, err := ParseHotspotSSID(ap.SSID)
		if err != nil {
			continue
		}
		b := beacon.Beacon{
			Name:          data.SSID,
			VendorID:      data.VendorID,
			ProductID:     data.ProductID,
			Discriminator: data.Discriminator,
			Transport:     beacon.Hotspot{SSID: data.SSID},
			SeenAt:        p.clock(),
		}
		p.emitted(b)
		if !send(ctx, out, b) {
			return false
		}
	}

	if err := p.config.Scanner.RequestScan(ctx); err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.debugLog("scan request failed", "error", err)
	}
	return ctx.Err() == nil
}

// Compile-time interface satisfaction check.
var _ Producer = (*HotspotProducer)(nil)
