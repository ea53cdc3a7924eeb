package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matterscan/matterscan-go/pkg/log"
)

// RunExport exports matching events of path to format ("json" or "csv").
// An empty output writes to stdout.
func RunExport(path, format, output string, filter log.Filter) error {
	reader, err := openLog(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return Export(reader, format, w)
}

// Export writes every event of reader to w.
func Export(reader *log.Reader, format string, w io.Writer) error {
	switch format {
	case "json", "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: json, csv)", format)
	}
}

// jsonEvent is the JSON rendering of an event with readable enums.
type jsonEvent struct {
	Timestamp   string                `json:"timestamp"`
	SessionID   string                `json:"session_id,omitempty"`
	Category    string                `json:"category"`
	Transport   string                `json:"transport,omitempty"`
	Beacon      *log.BeaconEvent      `json:"beacon,omitempty"`
	Drop        *log.DropEvent        `json:"drop,omitempty"`
	StateChange *log.StateChangeEvent `json:"state_change,omitempty"`
	Error       *log.ErrorEventData   `json:"error,omitempty"`
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		out := jsonEvent{
			Timestamp:   event.Timestamp.UTC().Format(timestampLayout),
			SessionID:   event.SessionID,
			Category:    event.Category.String(),
			Beacon:      event.Beacon,
			Drop:        event.Drop,
			StateChange: event.StateChange,
			Error:       event.Error,
		}
		if event.Transport != 0 {
			out.Transport = event.Transport.String()
		}
		if err := encoder.Encode(out); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "category", "transport", "name", "discriminator", "vendor_id", "product_id", "address", "port", "active", "detail"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := make([]string, len(header))
		row[0] = event.Timestamp.UTC().Format(timestampLayout)
		row[1] = event.SessionID
		row[2] = event.Category.String()
		if event.Transport != 0 {
			row[3] = event.Transport.String()
		}

		switch {
		case event.Beacon != nil:
			b := event.Beacon
			row[4] = b.Name
			row[5] = strconv.Itoa(int(b.Discriminator))
			row[6] = fmt.Sprintf("0x%04X", b.VendorID)
			row[7] = fmt.Sprintf("0x%04X", b.ProductID)
			row[8] = b.Address
			if b.Port != 0 {
				row[9] = strconv.Itoa(int(b.Port))
			}
			row[10] = strconv.FormatBool(b.Active)
		case event.Drop != nil:
			row[4] = event.Drop.Source
			row[11] = event.Drop.Reason
		case event.StateChange != nil:
			row[11] = event.StateChange.OldState + "->" + event.StateChange.NewState
		case event.Error != nil:
			row[11] = event.Error.Message
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return cw.Error()
}
