package commands

import (
	"bufio"
	"io"
	"os"

	"github.com/matterscan/matterscan-go/pkg/log"
)

// StdinPath reads the event log from standard input, so a live scan can be
// piped straight into the tool.
const StdinPath = "-"

var stdin io.Reader = os.Stdin

func openLog(path string, filter log.Filter) (*log.Reader, error) {
	if path == StdinPath {
		return log.NewStreamReader(bufio.NewReader(stdin), filter), nil
	}
	return log.NewFilteredReader(path, filter)
}
