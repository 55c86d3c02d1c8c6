// Package store holds the parrot data model and the gateway that persists it
// to the JSON backing file.
package store

import "sort"

// RecordingEntry is an in-progress capture. It only exists between a
// successful start and the next stop or abort.
type RecordingEntry struct {
	Tag      string   `json:"tag"`
	Commands []string `json:"data"`
}

// Store is the whole persisted state of parrot.
type Store struct {
	CurrentRecording *RecordingEntry     `json:"current_recording"`
	Recordings       map[string][]string `json:"recordings"`
}

// New returns an empty Store with no active recording.
func New() *Store {
	return &Store{
		Recordings: map[string][]string{},
	}
}

// Recording returns true if a recording session is active.
func (s *Store) Recording() bool {
	return s.CurrentRecording != nil
}

// Lookup returns the command sequence stored under tag.
func (s *Store) Lookup(tag string) ([]string, bool) {
	commands, ok := s.Recordings[tag]
	return commands, ok
}

// Put stores commands under tag, replacing any previous sequence.
func (s *Store) Put(tag string, commands []string) {
	if s.Recordings == nil {
		s.Recordings = map[string][]string{}
	}
	s.Recordings[tag] = commands
}

// Tags returns every stored tag in lexicographic order.
func (s *Store) Tags() []string {
	tags := make([]string, 0, len(s.Recordings))
	for tag := range s.Recordings {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
