package session

import (
	"errors"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/parrot-cli/parrot/internal/proc"
	"github.com/parrot-cli/parrot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuffer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "commands in order",
			input: "git pull\nmake\nmake install\n",
			want:  []string{"git pull", "make", "make install"},
		},
		{
			name:  "comments and blanks skipped",
			input: "# header\n\n   \nls\n  # indented comment\necho '#not a comment'\n",
			want:  []string{"ls", "echo '#not a comment'"},
		},
		{
			name:  "indentation and trailing spaces kept",
			input: "\t  kubectl get pods  \n  echo 'a  b'\n",
			want:  []string{"\t  kubectl get pods  ", "  echo 'a  b'"},
		},
		{
			name:  "CRLF line endings dropped",
			input: "make\r\nmake test\r\n",
			want:  []string{"make", "make test"},
		},
		{
			name:  "whitespace-only line is blank",
			input: "ls\n \t \r\npwd\n",
			want:  []string{"ls", "pwd"},
		},
		{
			name:  "only comments",
			input: "# a\n# b\n",
			want:  nil,
		},
		{
			name:  "no trailing newline",
			input: "last",
			want:  []string{"last"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBuffer(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_Interactive(t *testing.T) {
	s, st, buf := newSession(t)
	ed := &testutil.FakeEditor{Content: "docker build .\n\n# skip me\ndocker push\n"}

	n, err := s.Interactive("deploy", ed)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"docker build .", "docker push"}, st.Recordings["deploy"])
	assert.Contains(t, buf.String(), `recorded 2 commands for tag "deploy"`)

	require.Len(t, ed.Seen, 1)
	assert.Contains(t, ed.Seen[0], `tag "deploy"`)

	// Buffer is removed afterwards.
	require.Len(t, ed.Calls, 1)
	assert.NoFileExists(t, ed.Calls[0])
}

func TestSession_Interactive_Empty(t *testing.T) {
	s, st, buf := newSession(t)
	st.Put("deploy", []string{"previous"})

	n, err := s.Interactive("deploy", &testutil.FakeEditor{})
	require.NoError(t, err)

	assert.Zero(t, n)
	assert.Equal(t, []string{"previous"}, st.Recordings["deploy"])
	assert.Contains(t, buf.String(), "no commands recorded")
}

func TestSession_Interactive_Overwrites(t *testing.T) {
	s, st, _ := newSession(t)
	st.Put("deploy", []string{"a", "b", "c"})

	_, err := s.Interactive("deploy", &testutil.FakeEditor{Content: "z\n"})
	require.NoError(t, err)

	assert.Equal(t, []string{"z"}, st.Recordings["deploy"])
}

func TestSession_Interactive_LeavesActiveSessionAlone(t *testing.T) {
	s, st, _ := newSession(t)
	s.Start("wip")
	s.Add("pending")

	_, err := s.Interactive("other", &testutil.FakeEditor{Content: "x\n"})
	require.NoError(t, err)

	require.NotNil(t, st.CurrentRecording)
	assert.Equal(t, "wip", st.CurrentRecording.Tag)
	assert.Equal(t, []string{"pending"}, st.CurrentRecording.Commands)
}

func TestSession_Interactive_EditorFails(t *testing.T) {
	s, st, _ := newSession(t)
	ed := &testutil.FakeEditor{EditFunc: func(string) error {
		return errors.New("exec: \"vim\": executable file not found in $PATH")
	}}

	_, err := s.Interactive("deploy", ed)
	require.Error(t, err)

	var spawnErr *EditorSpawnError
	require.True(t, errors.As(err, &spawnErr))
	assert.Equal(t, "fake-editor", spawnErr.Editor)
	assert.Equal(t, -1, spawnErr.ExitCode)
	assert.Empty(t, st.Recordings)
}

func TestSession_Interactive_EditorExitStatus(t *testing.T) {
	s, st, _ := newSession(t)
	ed := &testutil.FakeEditor{EditFunc: func(string) error {
		return &proc.ExitError{Program: "vim", Code: 1, Err: errors.New("exit status 1")}
	}}

	_, err := s.Interactive("deploy", ed)

	var spawnErr *EditorSpawnError
	require.True(t, errors.As(err, &spawnErr))
	assert.Equal(t, 1, spawnErr.ExitCode)
	assert.Contains(t, err.Error(), "vim exited with status 1")
	assert.Empty(t, st.Recordings)
}

func TestSession_Interactive_BufferRemoved(t *testing.T) {
	s, st, _ := newSession(t)
	ed := &testutil.FakeEditor{EditFunc: os.Remove}

	_, err := s.Interactive("deploy", ed)
	require.Error(t, err)

	var bufErr *TempBufferError
	require.True(t, errors.As(err, &bufErr))
	assert.Equal(t, "read", bufErr.Op)
	assert.Equal(t, map[string][]string{}, st.Recordings)
}

func TestSession_Interactive_TempDirUnavailable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Unix-specific test")
	}
	t.Setenv("TMPDIR", "/nonexistent/parrot-tmp")
	s, _, _ := newSession(t)
	ed := &testutil.FakeEditor{}

	_, err := s.Interactive("deploy", ed)
	require.Error(t, err)

	var bufErr *TempBufferError
	require.True(t, errors.As(err, &bufErr))
	assert.Equal(t, "create", bufErr.Op)
	assert.Empty(t, ed.Calls)
}
