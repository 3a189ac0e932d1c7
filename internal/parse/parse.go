// Package parse converts raw model output into typed intermediate
// representations. Model output carries no structure guarantees, so every
// entry point tolerates malformed input: bad rows are skipped, bad JSON units
// degrade to placeholders, and only a payload that is unusable as a whole
// returns a SchemaError.
package parse

import (
	"fmt"
	"regexp"
	"strings"
)

// SchemaError indicates structured model output whose top-level shape is
// unusable. Unit-level problems never produce a SchemaError; they degrade the
// affected unit to a placeholder instead.
type SchemaError struct {
	Msg string
	Err error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schema error: %s: %v", e.Msg, e.Err)
	}
	return "schema error: " + e.Msg
}

func (e *SchemaError) Unwrap() error { return e.Err }

var codeFenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// StripCodeFence removes a Markdown code-fence wrapper that models often add
// around JSON payloads despite instructions.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if m := codeFenceRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
