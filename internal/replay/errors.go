package replay

import "fmt"

// SelectionError reports that the fuzzy selector could not be run or its
// answer could not be read.
type SelectionError struct {
	Err error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("tag selection failed: %v", e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}
