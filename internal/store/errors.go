package store

import "fmt"

// StorageIOError reports that the backing file could not be created, opened,
// read or written.
type StorageIOError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageIOError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageIOError) Unwrap() error {
	return e.Err
}

// SerializationError reports that the Store could not be encoded.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to encode store: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
