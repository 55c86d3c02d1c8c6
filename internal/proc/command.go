package proc

import (
	"errors"
	"strings"
)

// ErrNoCommand is returned when a configured command line is blank.
var ErrNoCommand = errors.New("no command configured")

// SplitCommand splits a configured command line such as "code --wait" into
// argv. Quoting is not interpreted.
func SplitCommand(line string) ([]string, error) {
	argv := strings.Fields(line)
	if len(argv) == 0 {
		return nil, ErrNoCommand
	}
	return argv, nil
}
