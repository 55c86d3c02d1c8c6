package session

import (
	"errors"
	"fmt"
)

// EditorSpawnError reports that the external editor could not be run to
// completion. ExitCode is the editor's exit status, or -1 when it never ran.
type EditorSpawnError struct {
	Editor   string
	ExitCode int
	Err      error
}

func newEditorSpawnError(editor string, err error) *EditorSpawnError {
	code := -1
	var exited interface{ ExitCode() int }
	if errors.As(err, &exited) {
		code = exited.ExitCode()
	}
	return &EditorSpawnError{Editor: editor, ExitCode: code, Err: err}
}

func (e *EditorSpawnError) Error() string {
	return fmt.Sprintf("editor %s: %v", e.Editor, e.Err)
}

func (e *EditorSpawnError) Unwrap() error {
	return e.Err
}

// TempBufferError reports that the scoped edit buffer could not be created,
// written or read back.
type TempBufferError struct {
	Op   string
	Path string
	Err  error
}

func (e *TempBufferError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("temp buffer %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("temp buffer %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TempBufferError) Unwrap() error {
	return e.Err
}
