package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// TextEditor edits a file in place and blocks until the user is done.
type TextEditor interface {
	Edit(path string) error
}

const bufferHeader = `# Recording commands for tag %q.
# Enter one command per line. Blank lines and lines starting with '#' are ignored.
# Save and quit to store the recording; leave it empty to record nothing.
`

// Interactive records tag from commands the user types into a temporary
// buffer opened in ed. The active start/stop session, if any, is left alone.
// It returns the number of commands stored.
func (s *Session) Interactive(tag string, ed TextEditor) (int, error) {
	f, err := os.CreateTemp("", "parrot-*.sh")
	if err != nil {
		return 0, &TempBufferError{Op: "create", Err: err}
	}
	path := f.Name()
	defer os.Remove(path) //nolint:errcheck // best-effort cleanup

	if _, err := fmt.Fprintf(f, bufferHeader, tag); err != nil {
		_ = f.Close()
		return 0, &TempBufferError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return 0, &TempBufferError{Op: "write", Path: path, Err: err}
	}

	s.notices.Tracef("interactive", "tag", tag, "buffer", path)
	if err := ed.Edit(path); err != nil {
		return 0, newEditorSpawnError(editorName(ed), err)
	}

	commands, err := readBuffer(path)
	if err != nil {
		return 0, &TempBufferError{Op: "read", Path: path, Err: err}
	}

	if len(commands) == 0 {
		s.notices.Warnf("no commands recorded for tag %q", tag)
		return 0, nil
	}

	s.store.Put(tag, commands)
	s.notices.Successf("recorded %d commands for tag %q", len(commands), tag)
	s.notices.Tracef("interactive", "tag", tag, "commands", len(commands))
	return len(commands), nil
}

// readBuffer returns the non-blank, non-comment lines of the file at path.
func readBuffer(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is our own temp file
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only file close

	return ParseBuffer(f)
}

// ParseBuffer extracts commands from edited buffer contents, one per
// non-blank line whose first non-space character is not '#', in order.
// Kept lines are stored as written, minus a CRLF line ending.
func ParseBuffer(r io.Reader) ([]string, error) {
	var commands []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		commands = append(commands, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return commands, nil
}

func editorName(ed TextEditor) string {
	if n, ok := ed.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", ed)
}
