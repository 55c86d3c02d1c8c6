package notice

import (
	"fmt"
	"io"
	"os"
)

const prefix = "parrot: "

// Printer writes status notices. Notices never go to the stream that carries
// replayed commands.
type Printer struct {
	w     io.Writer
	color bool
	trace io.Writer
}

// New returns a Printer writing to w with color resolved from mode.
func New(w io.Writer, mode ColorMode) *Printer {
	color := mode.Resolve(w)
	if color && mode == ColorOn {
		forceANSI()
	}
	return &Printer{w: w, color: color}
}

// Stderr returns a Printer on os.Stderr.
func Stderr(mode ColorMode) *Printer {
	return New(os.Stderr, mode)
}

// Discard returns a Printer that drops everything.
func Discard() *Printer {
	return &Printer{w: io.Discard}
}

// WithTrace enables trace output to w. A nil w disables it.
func (p *Printer) WithTrace(w io.Writer) *Printer {
	p.trace = w
	return p
}

// Infof writes a plain notice.
func (p *Printer) Infof(format string, args ...any) {
	p.write(fmt.Sprintf(format, args...))
}

// Successf writes a notice for a completed state change.
func (p *Printer) Successf(format string, args ...any) {
	p.write(Style(fmt.Sprintf(format, args...), okStyle, p.color))
}

// Warnf writes a notice for a request that was refused or had nothing to do.
func (p *Printer) Warnf(format string, args ...any) {
	p.write(Style(fmt.Sprintf(format, args...), warnStyle, p.color))
}

// Errorf writes an error line. It is used by main for unrecovered errors.
func (p *Printer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, Style("Error: "+fmt.Sprintf(format, args...), errStyle, p.color))
}

func (p *Printer) write(msg string) {
	_, _ = fmt.Fprintln(p.w, Faint(prefix, p.color)+msg)
}
