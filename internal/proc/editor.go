package proc

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Editor opens files in an interactive text editor and waits for it to exit.
type Editor struct {
	Argv   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewEditor returns an Editor for the given command line, attached to the
// process's terminal.
func NewEditor(line string) (*Editor, error) {
	argv, err := SplitCommand(line)
	if err != nil {
		return nil, fmt.Errorf("editor: %w", err)
	}
	return &Editor{
		Argv:   argv,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}, nil
}

// Name returns the editor program name.
func (e *Editor) Name() string {
	if len(e.Argv) == 0 {
		return ""
	}
	return e.Argv[0]
}

// Edit runs the editor on path and blocks until it exits.
// A non-zero exit status is reported as an *ExitError.
func (e *Editor) Edit(path string) error {
	if len(e.Argv) == 0 {
		return ErrNoCommand
	}
	args := append(append([]string{}, e.Argv[1:]...), path)
	command := exec.Command(e.Argv[0], args...) //nolint:gosec,noctx // editor is user-configured
	command.Stdin = e.Stdin
	command.Stdout = e.Stdout
	command.Stderr = e.Stderr

	if err := command.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", e.Argv[0], err)
	}
	return waitError(e.Argv[0], command.Wait())
}
