package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/matterscan/matterscan-go/pkg/beacon"
	"github.com/matterscan/matterscan-go/pkg/log"
)

// FilterOptions holds the raw filter flag values shared by all commands.
type FilterOptions struct {
	SessionID string
	Transport string
	Category  string
	Name      string
	TimeStart string
	TimeEnd   string
}

// BuildFilter converts flag values into a log.Filter.
func BuildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{
		SessionID: opts.SessionID,
		Name:      opts.Name,
	}

	if opts.Transport != "" {
		k, err := beacon.ParseTransportKind(opts.Transport)
		if err != nil {
			return filter, err
		}
		filter.Transport = &k
	}

	if opts.Category != "" {
		c, err := ParseCategoryFlag(opts.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}

// ParseCategoryFlag parses a category name (emitted, lost, dropped, state, error).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "emitted", "beacon":
		return log.CategoryEmitted, nil
	case "lost":
		return log.CategoryLost, nil
	case "dropped", "drop":
		return log.CategoryDropped, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("unknown category: %s (expected emitted, lost, dropped, state, error)", s)
	}
}

// RunFilter writes the events of path matching filter to output.
func RunFilter(path, output string, filter log.Filter, w io.Writer) error {
	reader, err := openLog(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
	}

	fmt.Fprintf(w, "Filtered %d events to %s\n", logger.Count(), output)
	return nil
}
