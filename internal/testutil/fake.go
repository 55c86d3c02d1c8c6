// Package testutil provides test doubles for parrot's external process
// collaborators.
package testutil

import (
	"fmt"
	"os"
)

// FakeEditor is a configurable test double for session.TextEditor.
// Test authors set EditFunc or Content to control behavior per test case.
type FakeEditor struct {
	// EditFunc overrides Edit. If nil, Content is appended to the buffer.
	EditFunc func(path string) error

	// Content is appended to the buffer when EditFunc is nil.
	Content string

	// Seen holds the buffer contents the editor was opened on.
	Seen []string

	// Calls tracks the paths Edit was invoked with.
	Calls []string
}

// Name returns a fixed editor name.
func (f *FakeEditor) Name() string {
	return "fake-editor"
}

// Edit records the call and then runs EditFunc or appends Content.
func (f *FakeEditor) Edit(path string) error {
	f.Calls = append(f.Calls, path)
	if data, err := os.ReadFile(path); err == nil { //nolint:gosec // test helper
		f.Seen = append(f.Seen, string(data))
	}
	if f.EditFunc != nil {
		return f.EditFunc(path)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0600) //nolint:gosec // test helper
	if err != nil {
		return fmt.Errorf("fake editor: %w", err)
	}
	defer file.Close() //nolint:errcheck // test helper
	_, err = file.WriteString(f.Content)
	return err
}

// FakeSelector is a configurable test double for replay.LineSelector.
type FakeSelector struct {
	// SelectFunc overrides Select. If nil, Choice and OK are returned.
	SelectFunc func(candidates []string) (string, bool, error)

	Choice string
	OK     bool

	// Calls tracks the candidate lists Select was invoked with.
	Calls [][]string
}

// Select records the call and returns the configured answer.
func (f *FakeSelector) Select(candidates []string) (string, bool, error) {
	f.Calls = append(f.Calls, append([]string(nil), candidates...))
	if f.SelectFunc != nil {
		return f.SelectFunc(candidates)
	}
	return f.Choice, f.OK, nil
}
