// Package session implements the recording state machine: start, add, stop
// and abort of a capture session, plus editor-driven interactive capture.
package session

import (
	"github.com/parrot-cli/parrot/internal/notice"
	"github.com/parrot-cli/parrot/internal/store"
)

// State is the recording state of a Store.
type State int

const (
	Idle State = iota
	Recording
)

func (s State) String() string {
	if s == Recording {
		return "recording"
	}
	return "idle"
}

// Session applies recording operations to a Store.
type Session struct {
	store   *store.Store
	notices *notice.Printer
}

// New returns a Session operating on st. A nil printer discards notices.
func New(st *store.Store, p *notice.Printer) *Session {
	if p == nil {
		p = notice.Discard()
	}
	return &Session{store: st, notices: p}
}

// State returns the current recording state.
func (s *Session) State() State {
	if s.store.Recording() {
		return Recording
	}
	return Idle
}

// Start begins a recording under tag. It returns false and leaves the
// active recording untouched if one is already in progress.
func (s *Session) Start(tag string) bool {
	if cur := s.store.CurrentRecording; cur != nil {
		s.notices.Warnf("a recording is already in progress for tag %q; stop or abort it first", cur.Tag)
		s.notices.Tracef("start", "tag", tag, "result", "refused")
		return false
	}

	s.store.CurrentRecording = &store.RecordingEntry{
		Tag:      tag,
		Commands: []string{},
	}
	s.notices.Successf("started recording for tag %q", tag)
	s.notices.Tracef("start", "tag", tag)
	return true
}

// Add appends command to the active recording verbatim.
// It returns false when no recording is active.
func (s *Session) Add(command string) bool {
	cur := s.store.CurrentRecording
	if cur == nil {
		s.notices.Warnf("no active recording; command not recorded")
		s.notices.Tracef("add", "result", "idle")
		return false
	}

	cur.Commands = append(cur.Commands, command)
	s.notices.Infof("recorded command %s", command)
	s.notices.Tracef("add", "tag", cur.Tag, "commands", len(cur.Commands))
	return true
}

// Stop commits the active recording under its tag, replacing any sequence
// previously stored there. It returns false when nothing was recording.
func (s *Session) Stop() bool {
	cur := s.store.CurrentRecording
	if cur == nil {
		s.notices.Warnf("no active recording to stop")
		s.notices.Tracef("stop", "result", "idle")
		return false
	}

	s.store.Put(cur.Tag, cur.Commands)
	s.store.CurrentRecording = nil
	s.notices.Successf("stopped recording for tag %q (%d commands)", cur.Tag, len(cur.Commands))
	s.notices.Tracef("stop", "tag", cur.Tag, "commands", len(cur.Commands))
	return true
}

// Abort discards the active recording, if any.
func (s *Session) Abort() {
	cur := s.store.CurrentRecording
	s.store.CurrentRecording = nil
	if cur == nil {
		s.notices.Infof("no active recording to abort")
		s.notices.Tracef("abort", "result", "idle")
		return
	}
	s.notices.Infof("aborted recording for tag %q", cur.Tag)
	s.notices.Tracef("abort", "tag", cur.Tag, "discarded", len(cur.Commands))
}

// Status describes the active recording.
type Status struct {
	State    State
	Tag      string
	Commands int
}

// Status reports the recording state without changing it.
func (s *Session) Status() Status {
	cur := s.store.CurrentRecording
	if cur == nil {
		return Status{State: Idle}
	}
	return Status{State: Recording, Tag: cur.Tag, Commands: len(cur.Commands)}
}
