package proc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Selector offers candidate lines to an fzf-like program on stdin and reads
// the chosen line from its stdout.
type Selector struct {
	Argv   []string
	Stderr io.Writer
}

// NewSelector returns a Selector for the given command line.
func NewSelector(line string) (*Selector, error) {
	argv, err := SplitCommand(line)
	if err != nil {
		return nil, fmt.Errorf("selector: %w", err)
	}
	return &Selector{Argv: argv, Stderr: os.Stderr}, nil
}

// Select blocks until the selector exits. Any non-zero exit (no match,
// interrupted, escape) or an empty answer is reported as no selection;
// only failing to run the program or read its output is an error.
func (s *Selector) Select(candidates []string) (string, bool, error) {
	if len(s.Argv) == 0 {
		return "", false, ErrNoCommand
	}
	command := exec.Command(s.Argv[0], s.Argv[1:]...) //nolint:gosec,noctx // selector is user-configured
	command.Stdin = strings.NewReader(strings.Join(candidates, "\n") + "\n")
	command.Stderr = s.Stderr

	var out bytes.Buffer
	command.Stdout = &out

	if err := command.Start(); err != nil {
		return "", false, fmt.Errorf("failed to run %s: %w", s.Argv[0], err)
	}
	if err := waitError(s.Argv[0], command.Wait()); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return "", false, nil
		}
		return "", false, err
	}

	choice := strings.TrimRight(out.String(), "\r\n")
	if i := strings.IndexByte(choice, '\n'); i >= 0 {
		choice = choice[:i]
	}
	if choice == "" {
		return "", false, nil
	}
	return choice, true, nil
}
