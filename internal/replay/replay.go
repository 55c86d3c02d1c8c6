// Package replay resolves a tag to its recorded commands and writes their
// text. It never executes them.
package replay

import (
	"fmt"
	"io"
	"strings"

	"github.com/parrot-cli/parrot/internal/notice"
	"github.com/parrot-cli/parrot/internal/store"
	"github.com/sahilm/fuzzy"
)

// LineSelector lets the user pick one of candidates. ok is false when the
// user made no selection.
type LineSelector interface {
	Select(candidates []string) (choice string, ok bool, err error)
}

// maxSuggestions is the number of similar tags offered for an unknown tag.
const maxSuggestions = 3

// Replayer writes recorded command sequences to out.
type Replayer struct {
	store    *store.Store
	out      io.Writer
	notices  *notice.Printer
	selector LineSelector
}

// New returns a Replayer. selector may be nil when only Tag is used.
func New(st *store.Store, out io.Writer, p *notice.Printer, selector LineSelector) *Replayer {
	if p == nil {
		p = notice.Discard()
	}
	return &Replayer{store: st, out: out, notices: p, selector: selector}
}

// Tag writes the commands recorded under tag, one per line. An unknown tag
// is reported as a notice, not an error.
func (r *Replayer) Tag(tag string) error {
	commands, ok := r.store.Lookup(tag)
	if !ok {
		r.notices.Warnf("no recording found with tag %q", tag)
		if similar := r.suggest(tag); len(similar) > 0 {
			r.notices.Infof("did you mean: %s", strings.Join(similar, ", "))
		}
		r.notices.Tracef("replay", "tag", tag, "result", "not-found")
		return nil
	}

	for _, c := range commands {
		if _, err := fmt.Fprintln(r.out, c); err != nil {
			return fmt.Errorf("failed to write command: %w", err)
		}
	}
	r.notices.Tracef("replay", "tag", tag, "commands", len(commands))
	return nil
}

// Pick asks the selector for a tag and replays it. Tags are offered in
// lexicographic order.
func (r *Replayer) Pick() error {
	tags := r.store.Tags()
	if len(tags) == 0 {
		r.notices.Warnf("no recordings available")
		return nil
	}
	if r.selector == nil {
		return &SelectionError{Err: fmt.Errorf("no selector configured")}
	}

	choice, ok, err := r.selector.Select(tags)
	if err != nil {
		return &SelectionError{Err: err}
	}
	if !ok {
		r.notices.Infof("no tag selected")
		r.notices.Tracef("replay", "result", "no-selection")
		return nil
	}
	return r.Tag(choice)
}

// suggest returns up to maxSuggestions stored tags fuzzily matching tag.
func (r *Replayer) suggest(tag string) []string {
	if tag == "" {
		return nil
	}
	matches := fuzzy.Find(tag, r.store.Tags())
	var out []string
	for i, m := range matches {
		if i == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
