package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
	"github.com/matterscan/matterscan-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents        int
	EventsByTransport  map[beacon.TransportKind]int
	EventsByCategory   map[log.Category]int
	BeaconsByTransport map[beacon.TransportKind]map[string]int
	Sessions           map[string]int
	Drops              int
	Errors             int
	TimeRange          struct {
		Start time.Time
		End   time.Time
	}
}

// CollectStats reads every event matching filter.
func CollectStats(path string, filter log.Filter) (*Stats, error) {
	reader, err := openLog(path, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByTransport:  make(map[beacon.TransportKind]int),
		EventsByCategory:   make(map[log.Category]int),
		BeaconsByTransport: make(map[beacon.TransportKind]map[string]int),
		Sessions:           make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++
		if event.Transport != 0 {
			stats.EventsByTransport[event.Transport]++
		}
		if event.SessionID != "" {
			stats.Sessions[event.SessionID]++
		}

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		if event.Beacon != nil && event.Category == log.CategoryEmitted {
			names, ok := stats.BeaconsByTransport[event.Transport]
			if !ok {
				names = make(map[string]int)
				stats.BeaconsByTransport[event.Transport] = names
			}
			names[event.Beacon.Name]++
		}
		if event.Drop != nil {
			stats.Drops++
		}
		if event.Error != nil {
			stats.Errors++
		}
	}

	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, filter log.Filter, w io.Writer) error {
	stats, err := CollectStats(path, filter)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Matter Beacon Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Sessions:     %d\n", len(stats.Sessions))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Transport:")
	for _, kind := range beacon.AllTransports() {
		if count := stats.EventsByTransport[kind]; count > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryEmitted, log.CategoryLost, log.CategoryDropped, log.CategoryState, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Distinct Beacons:")
	for _, kind := range beacon.AllTransports() {
		names := stats.BeaconsByTransport[kind]
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s: %d\n", kind.String(), len(names))

		sorted := make([]string, 0, len(names))
		for name := range names {
			sorted = append(sorted, name)
		}
		sort.Strings(sorted)
		for _, name := range sorted {
			fmt.Fprintf(w, "    %-32s %d sightings\n", name, names[name])
		}
	}

	if stats.Drops > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Dropped advertisements: %d\n", stats.Drops)
	}
	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
