package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/enbility/zeroconf/v3"
)

// ZeroconfBrowserConfig configures a ZeroconfBrowser.
type ZeroconfBrowserConfig struct {
	// Interface restricts browsing to one network interface (empty = all).
	Interface string

	// Logger is the optional logger for operational output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// ZeroconfBrowser implements ServiceBrowser with zeroconf.
//
// zeroconf reports services already resolved, so Resolve answers from the
// entries seen by Browse.
type ZeroconfBrowser struct {
	config ZeroconfBrowserConfig

	mu      sync.Mutex
	entries map[string]*zeroconf.ServiceEntry // keyed by instance
}

// NewZeroconfBrowser creates a browser.
func NewZeroconfBrowser(config ZeroconfBrowserConfig) *ZeroconfBrowser {
	return &ZeroconfBrowser{
		config:  config,
		entries: make(map[string]*zeroconf.ServiceEntry),
	}
}

// Browse implements ServiceBrowser.
func (b *ZeroconfBrowser) Browse(ctx context.Context, serviceType, domain string, events chan<- ServiceEvent) error {
	opts, err := b.browserOptions()
	if err != nil {
		return err
	}

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)
	browseErr := make(chan error, 1)
	go func() {
		browseErr <- zeroconf.Browse(ctx, serviceType, domain, entries, removed, opts...)
	}()

	notify := func(ev ServiceEvent) bool {
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-browseErr:
			if err != nil && ctx.Err() == nil {
				return fmt.Errorf("browse %s.%s: %w", serviceType, domain, err)
			}
			browseErr = nil

		case entry, ok := <-entries:
			if !ok {
				entries = nil
				continue
			}
			b.mu.Lock()
			b.entries[entry.Instance] = entry
			b.mu.Unlock()
			b.debugLog("service entry", "instance", entry.Instance, "host", entry.HostName, "port", entry.Port)
			if !notify(ServiceEvent{Type: ServiceFound, Instance: entry.Instance, Service: serviceType, Domain: domain}) {
				return nil
			}

		case entry, ok := <-removed:
			if !ok {
				removed = nil
				continue
			}
			b.mu.Lock()
			delete(b.entries, entry.Instance)
			b.mu.Unlock()
			b.debugLog("service removed", "instance", entry.Instance)
			if !notify(ServiceEvent{Type: ServiceLost, Instance: entry.Instance, Service: serviceType, Domain: domain}) {
				return nil
			}
		}
	}
}

// Resolve implements ServiceBrowser.
func (b *ZeroconfBrowser) Resolve(_ context.Context, svc ServiceEvent) (*ResolvedService, error) {
	b.mu.Lock()
	entry, ok := b.entries[svc.Instance]
	b.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", svc.Instance, ErrUnresolved)
	}
	return resolvedFromEntry(entry)
}

// resolvedFromEntry converts a zeroconf entry. An entry with neither an
// address nor a host name cannot be reached and is reported unresolved.
func resolvedFromEntry(entry *zeroconf.ServiceEntry) (*ResolvedService, error) {
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}
	if len(addrs) == 0 && entry.HostName == "" {
		return nil, fmt.Errorf("%s: %w", entry.Instance, ErrUnresolved)
	}

	return &ResolvedService{
		Instance:  entry.Instance,
		Host:      entry.HostName,
		Port:      uint16(entry.Port),
		Addresses: addrs,
		Text:      entry.Text,
	}, nil
}

// browserOptions returns zeroconf client options based on config.
func (b *ZeroconfBrowser) browserOptions() ([]zeroconf.ClientOption, error) {
	var opts []zeroconf.ClientOption
	if b.config.Interface != "" {
		iface, err := net.InterfaceByName(b.config.Interface)
		if err != nil {
			return nil, fmt.Errorf("interface %q: %w", b.config.Interface, err)
		}
		opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
	}
	return opts, nil
}

func (b *ZeroconfBrowser) debugLog(msg string, args ...any) {
	if b.config.Logger != nil {
		b.config.Logger.Debug(msg, args...)
	}
}

// Compile-time interface satisfaction check.
var _ ServiceBrowser = (*ZeroconfBrowser)(nil)
