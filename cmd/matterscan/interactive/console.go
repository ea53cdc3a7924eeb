// Package interactive provides the interactive console of matterscan.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/matterscan/matterscan-go/pkg/beacon"
)

// Collection is the live beacon collection the console reads.
type Collection interface {
	Snapshot() []beacon.Beacon
	Filter(kinds ...beacon.TransportKind) []beacon.Beacon
	Len() int
	Reset()
}

// Console handles the interactive command loop.
type Console struct {
	beacons Collection
	rl      *readline.Instance
	out     io.Writer
}

// New creates a console backed by readline. The collection is bound with
// Attach before Run.
func New() (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "matterscan> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	c := newConsole(nil, rl.Stdout())
	c.rl = rl
	return c, nil
}

// Attach sets the collection the commands operate on.
func (c *Console) Attach(beacons Collection) {
	c.beacons = beacons
}

func newConsole(beacons Collection, out io.Writer) *Console {
	return &Console{beacons: beacons, out: out}
}

func completer() *readline.PrefixCompleter {
	transports := make([]readline.PrefixCompleterInterface, 0, 3)
	for _, k := range beacon.AllTransports() {
		transports = append(transports, readline.PcItem(k.String()))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("list", transports...),
		readline.PcItem("count"),
		readline.PcItem("clear"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Stdout returns a writer that coordinates with the readline prompt.
// Use this for log output so it does not corrupt the input line.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Stderr returns a writer that coordinates with the readline prompt.
func (c *Console) Stderr() io.Writer {
	return c.rl.Stderr()
}

// Run reads commands until quit, EOF or ctx cancellation. cancel is called
// when the user quits.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	var once sync.Once
	closeReadline := func() { once.Do(func() { c.rl.Close() }) }
	defer closeReadline()

	// Unblock Readline when the scan ends for another reason.
	stop := context.AfterFunc(ctx, closeReadline)
	defer stop()

	c.printHelp()

	for {
		if ctx.Err() != nil {
			return
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}

		if c.execute(line) {
			cancel()
			return
		}
	}
}

// execute runs one command line and reports whether the user asked to quit.
func (c *Console) execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()

	case "list", "ls", "l":
		c.cmdList(args)

	case "count", "c":
		c.cmdCount()

	case "clear":
		c.beacons.Reset()
		fmt.Fprintln(c.out, "Beacon list cleared.")

	case "quit", "exit", "q":
		fmt.Fprintln(c.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (c *Console) cmdList(args []string) {
	if len(args) == 0 {
		FormatList(c.out, c.beacons.Snapshot())
		return
	}

	kinds := make([]beacon.TransportKind, 0, len(args))
	for _, arg := range args {
		k, err := beacon.ParseTransportKind(arg)
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			return
		}
		kinds = append(kinds, k)
	}
	FormatList(c.out, c.beacons.Filter(kinds...))
}

func (c *Console) cmdCount() {
	snapshot := c.beacons.Snapshot()
	counts := make(map[beacon.TransportKind]int)
	lost := 0
	for _, b := range snapshot {
		counts[b.Identity().Kind]++
		if !b.Active() {
			lost++
		}
	}

	fmt.Fprintf(c.out, "Total: %d", len(snapshot))
	for _, k := range beacon.AllTransports() {
		fmt.Fprintf(c.out, "  %s: %d", k, counts[k])
	}
	if lost > 0 {
		fmt.Fprintf(c.out, "  (lost: %d)", lost)
	}
	fmt.Fprintln(c.out)
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
Matter Scanner Commands:
  list [ble|mdns|wifi]  - List discovered beacons (optionally by transport)
  count                 - Show beacon counts per transport
  clear                 - Clear the beacon list
  help                  - Show this help
  quit                  - Stop scanning and exit`)
}
