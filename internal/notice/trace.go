package notice

import (
	"fmt"
	"strings"
)

// TraceEnvVar is the environment variable name for enabling trace mode.
const TraceEnvVar = "PARROT_TRACE"

// Tracef writes one trace line for op with key/value pairs.
// It is a no-op unless trace output was enabled with WithTrace.
func (p *Printer) Tracef(op string, kv ...any) {
	if p.trace == nil {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "[parrot] op=%s", op)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", kv[i], kv[i+1])
	}
	_, _ = fmt.Fprintln(p.trace, sb.String())
}

// IsTraceEnabled returns true if the value enables trace mode.
func IsTraceEnabled(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
