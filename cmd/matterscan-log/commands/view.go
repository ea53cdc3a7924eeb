// Package commands implements the matterscan-log CLI commands.
package commands

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/matterscan/matterscan-go/pkg/log"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// RunView prints the events of path matching filter in human-readable form.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := openLog(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes one event: a header line and indented details.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format(timestampLayout)
	transport := "-"
	if event.Transport != 0 {
		transport = event.Transport.String()
	}
	fmt.Fprintf(w, "%s [session:%s] %-4s %s\n", ts, shortenID(event.SessionID), transport, event.Category.String())

	switch {
	case event.Beacon != nil:
		formatBeaconDetails(w, event.Beacon)
	case event.Drop != nil:
		formatDropDetails(w, event.Drop)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatBeaconDetails(w io.Writer, b *log.BeaconEvent) {
	fmt.Fprintf(w, "  Name: %s\n", b.Name)
	fmt.Fprintf(w, "  Discriminator: %d  VID: 0x%04X  PID: 0x%04X\n", b.Discriminator, b.VendorID, b.ProductID)
	if b.Address != "" {
		if b.Port != 0 {
			fmt.Fprintf(w, "  Address: %s:%d\n", b.Address, b.Port)
		} else {
			fmt.Fprintf(w, "  Address: %s\n", b.Address)
		}
	}
	if !b.Active {
		fmt.Fprintln(w, "  Active: false")
	}
}

func formatDropDetails(w io.Writer, d *log.DropEvent) {
	fmt.Fprintf(w, "  Source: %s\n", d.Source)
	fmt.Fprintf(w, "  Reason: %s\n", d.Reason)
	if len(d.Payload) > 0 {
		fmt.Fprintf(w, "  Payload: %s", hex.EncodeToString(d.Payload))
		if d.Truncated {
			fmt.Fprint(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s: %s -> %s\n", sc.Entity.String(), sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  %s: %s\n", sc.Entity.String(), sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	fmt.Fprintf(w, "  Error: %s\n", e.Message)
	if e.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", e.Context)
	}
}
