// Command matterscan-log views and analyzes matterscan event logs.
//
// Event logs are written by matterscan when run with --event-log.
//
// Usage:
//
//	matterscan-log <command> [flags] <file.cbor>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON lines or CSV
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	matterscan-log view scan.cbor
//
//	# View only BLE beacons
//	matterscan-log view --transport ble --category emitted scan.cbor
//
//	# Export to CSV
//	matterscan-log export --format csv -o scan.csv scan.cbor
//
//	# Show statistics
//	matterscan-log stats scan.cbor
//
//	# Read a log from stdin
//	cat scan.cbor | matterscan-log view -
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/matterscan/matterscan-go/cmd/matterscan-log/commands"
	"github.com/matterscan/matterscan-go/pkg/log"
	"github.com/matterscan/matterscan-go/pkg/version"
)

const usage = `matterscan-log - Matter beacon event log analyzer

Usage:
  matterscan-log <command> [flags] <file.cbor>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON lines or CSV
  filter   Filter log file and write to new file
  stats    Show statistics about the log file
  version  Print the build version

Use "-" as the file to read the log from stdin.
Use "matterscan-log <command> --help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "version", "--version":
		fmt.Println("matterscan-log", version.Get())
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newFlagSet creates a flag set for cmd with the shared filter flags.
func newFlagSet(cmd, summary, synopsis string, opts *commands.FilterOptions) *pflag.FlagSet {
	fs := pflag.NewFlagSet(cmd, pflag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "matterscan-log %s - %s\n\nUsage:\n  %s\n\nFlags:\n", cmd, summary, synopsis)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.SessionID, "session", "", "Filter by scan session ID")
	fs.StringVar(&opts.Transport, "transport", "", "Filter by transport (ble, mdns, wifi)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (emitted, lost, dropped, state, error)")
	fs.StringVar(&opts.Name, "name", "", "Filter by beacon name")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	return fs
}

// parseArgs parses args and returns the log path and the filter.
func parseArgs(fs *pflag.FlagSet, args []string, opts *commands.FilterOptions) (string, log.Filter) {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter, err := commands.BuildFilter(*opts)
	if err != nil {
		fail(err)
	}
	return fs.Arg(0), filter
}

func runView(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("view", "View log file in human-readable format",
		"matterscan-log view [flags] <file.cbor>", &opts)

	path, filter := parseArgs(fs, args, &opts)
	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("export", "Export log file to JSON lines or CSV",
		"matterscan-log export [flags] <file.cbor>", &opts)
	format := fs.String("format", "json", "Output format (json, csv)")
	output := fs.StringP("output", "o", "", "Output file (default: stdout)")

	path, filter := parseArgs(fs, args, &opts)
	if err := commands.RunExport(path, *format, *output, filter); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("filter", "Filter log file and write to new file",
		"matterscan-log filter [flags] -o <out.cbor> <file.cbor>", &opts)
	output := fs.StringP("output", "o", "", "Output file (required)")

	path, filter := parseArgs(fs, args, &opts)
	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}
	if err := commands.RunFilter(path, *output, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("stats", "Show statistics about the log file",
		"matterscan-log stats [flags] <file.cbor>", &opts)

	path, filter := parseArgs(fs, args, &opts)
	if err := commands.RunStats(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
