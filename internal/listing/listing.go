// Package listing prints every stored recording.
package listing

import (
	"fmt"
	"io"

	"github.com/parrot-cli/parrot/internal/notice"
	"github.com/parrot-cli/parrot/internal/store"
)

// List writes each tag, in lexicographic order, followed by its commands
// numbered from 1. color enables highlighting of tag headers.
func List(w io.Writer, st *store.Store, color bool) error {
	for _, tag := range st.Tags() {
		if _, err := fmt.Fprintf(w, "Tag: %s\n", notice.Bold(tag, color)); err != nil {
			return err
		}
		for i, c := range st.Recordings[tag] {
			if _, err := fmt.Fprintf(w, "  %d: %s\n", i+1, c); err != nil {
				return err
			}
		}
	}
	return nil
}
