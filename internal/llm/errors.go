package llm

import (
	"errors"
	"fmt"
)

// TransientError indicates a rate-limit or network condition worth retrying.
type TransientError struct {
	Status  int
	Message string
}

func (e *TransientError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transient generation error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("transient generation error: %s", e.Message)
}

// FatalError indicates an authentication or malformed-request condition.
// It is never retried and aborts the current artifact.
type FatalError struct {
	Status  int
	Message string
}

func (e *FatalError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fatal generation error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("fatal generation error: %s", e.Message)
}

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
