package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes beacon events to an slog.Logger.
// Useful for development when you want to see discovery events in console.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given
// slog.Logger at Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of the adapter logging at level.
func (a *SlogAdapter) WithLevel(level slog.Level) *SlogAdapter {
	return &SlogAdapter{logger: a.logger, level: level}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("category", event.Category.String()),
	}
	if event.Transport != 0 {
		attrs = append(attrs, slog.String("transport", event.Transport.String()))
	}

	switch {
	case event.Beacon != nil:
		attrs = append(attrs,
			slog.String("name", event.Beacon.Name),
			slog.Uint64("vendor_id", uint64(event.Beacon.VendorID)),
			slog.Uint64("product_id", uint64(event.Beacon.ProductID)),
			slog.Uint64("discriminator", uint64(event.Beacon.Discriminator)),
			slog.Bool("active", event.Beacon.Active),
		)
		if event.Beacon.Address != "" {
			attrs = append(attrs, slog.String("address", event.Beacon.Address))
		}
		if event.Beacon.Port != 0 {
			attrs = append(attrs, slog.Uint64("port", uint64(event.Beacon.Port)))
		}
	case event.Drop != nil:
		attrs = append(attrs,
			slog.String("source", event.Drop.Source),
			slog.String("reason", event.Drop.Reason),
			slog.Int("payload_size", len(event.Drop.Payload)),
		)
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), a.level, "beacon", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
