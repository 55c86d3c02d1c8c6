// Package proc runs the external programs parrot delegates to: the text
// editor used for interactive capture and the fuzzy selector used to pick a
// tag for replay.
package proc

import (
	"errors"
	"fmt"
	"os/exec"
	"syscall"
)

// ExitError reports a child program that ran but did not exit cleanly.
type ExitError struct {
	Program string
	Code    int
	Err     error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Program, e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the shell-style status of the child.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitCodeFromError maps the error from exec.Cmd.Wait to a shell-style
// status: 0 for nil, the exit status for a normal exit, 128+signal for a
// killed child and -1 when err does not come from a finished child.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return -1
	}

	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	switch {
	case ok && ws.Signaled():
		return 128 + int(ws.Signal())
	case ok:
		return ws.ExitStatus()
	case exitErr.ExitCode() >= 0:
		return exitErr.ExitCode()
	default:
		return 1
	}
}

func waitError(program string, err error) error {
	if err == nil {
		return nil
	}
	code := ExitCodeFromError(err)
	if code < 0 {
		return fmt.Errorf("failed waiting for %s: %w", program, err)
	}
	return &ExitError{Program: program, Code: code, Err: err}
}
