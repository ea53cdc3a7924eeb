package discovery

import (
	"context"
	"strings"
	"sync"

	"github.com/matterscan/matterscan-go/pkg/beacon"
	scanlog "github.com/matterscan/matterscan-go/pkg/log"
)

// MDNSConfig configures an MDNSProducer.
type MDNSConfig struct {
	ProducerOptions

	// Browser is the OS DNS-SD facility. Required.
	Browser ServiceBrowser

	// ServiceType to browse. Default: ServiceTypeCommissionable.
	ServiceType string

	// Domain to browse. Default: Domain.
	Domain string
}

// MDNSProducer emits beacons for commissionable DNS-SD services.
type MDNSProducer struct {
	producerBase
	config MDNSConfig
}

// NewMDNSProducer creates a DNS-SD producer.
func NewMDNSProducer(config MDNSConfig) *MDNSProducer {
	if config.ServiceType == "" {
		config.ServiceType = ServiceTypeCommissionable
	}
	if config.Domain == "" {
		config.Domain = Domain
	}
	return &MDNSProducer{
		producerBase: newProducerBase(beacon.TransportMDNS, config.ProducerOptions),
		config:       config,
	}
}

// Transport implements Producer.
func (p *MDNSProducer) Transport() beacon.TransportKind { return beacon.TransportMDNS }

// Beacons implements Producer.
func (p *MDNSProducer) Beacons(ctx context.Context) <-chan beacon.Beacon {
	out := make(chan beacon.Beacon)
	go p.run(ctx, out)
	return out
}

func (p *MDNSProducer) run(ctx context.Context, out chan<- beacon.Beacon) {
	defer close(out)

	// Resolves run concurrently and must all have returned before out is
	// closed. Every exit below happens after ctx is done, so they will.
	var resolves sync.WaitGroup
	defer resolves.Wait()

	events := make(chan ServiceEvent, 16)
	browseErr := make(chan error, 1)
	go func() {
		browseErr <- p.config.Browser.Browse(ctx, p.config.ServiceType, p.config.Domain, events)
	}()
	p.state("starting", "browsing", "")
	p.infoLog("DNS-SD browse started", "service", p.config.ServiceType, "domain", p.config.Domain)

	resolved := make(chan beacon.Beacon)

	for {
		select {
		case <-ctx.Done():
			p.state("browsing", "stopped", "")
			return

		case err := <-browseErr:
			if err != nil && ctx.Err() == nil {
				p.idle(ctx, err)
				return
			}
			// Browse returned without error: notifications keep arriving
			// until ctx is cancelled.
			browseErr = nil

		case ev := <-events:
			switch ev.Type {
			case ServiceFound:
				if !p.matchesServiceType(ev.Service) {
					p.debugLog("ignoring service of other type", "instance", ev.Instance, "service", ev.Service)
					continue
				}
				resolves.Add(1)
				go func() {
					defer resolves.Done()
					p.resolve(ctx, ev, resolved)
				}()

			case ServiceLost:
				b := beacon.LostService(ev.Instance, p.clock())
				p.debugLog("service lost", "instance", ev.Instance)
				p.emitted(b)
				if !send(ctx, out, b) {
					return
				}
			}

		case b := <-resolved:
			if !send(ctx, out, b) {
				return
			}
		}
	}
}

// resolve looks up one found service and hands the beacon to the run loop.
// A failed resolve drops this attempt only.
func (p *MDNSProducer) resolve(ctx context.Context, ev ServiceEvent, resolved chan<- beacon.Beacon) {
	svc, err := p.config.Browser.Resolve(ctx, ev)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.warnLog("resolve failed", "instance", ev.Instance, "error", err)
		p.events.Log(scanlog.Errored(p.session, beacon.TransportMDNS, "resolve "+ev.Instance, err))
		return
	}

	b := p.toBeacon(ev, svc)
	p.emitted(b)
	select {
	case resolved <- b:
	case <-ctx.Done():
	}
}

func (p *MDNSProducer) toBeacon(ev ServiceEvent, svc *ResolvedService) beacon.Beacon {
	info := DecodeCommissionableTXT(StringsToTXTRecords(svc.Text))

	name := svc.Instance
	if name == "" {
		name = ev.Instance
	}

	address := svc.Host
	if len(svc.Addresses) > 0 {
		address = svc.Addresses[0]
	}

	return beacon.Beacon{
		Name:          name,
		VendorID:      info.VendorID,
		ProductID:     info.ProductID,
		Discriminator: info.Discriminator,
		Transport: beacon.LocalNetworkService{
			Address: address,
			Port:    svc.Port,
			Active:  true,
		},
		SeenAt: p.clock(),
	}
}

// matchesServiceType compares service types ignoring a trailing domain.
// An empty service is assumed to be the browsed type.
func (p *MDNSProducer) matchesServiceType(service string) bool {
	if service == "" {
		return true
	}
	normalize := func(s string) string {
		s = strings.TrimSuffix(s, ".")
		s = strings.TrimSuffix(s, "."+strings.TrimSuffix(p.config.Domain, "."))
		return strings.ToLower(s)
	}
	return normalize(service) == normalize(p.config.ServiceType)
}

// Compile-time interface satisfaction check.
var _ Producer = (*MDNSProducer)(nil)
