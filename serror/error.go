package serror

import "fmt"

// StrikeError is the error type used for all domain errors in strikepod.
type StrikeError struct {
	Err string
}

// New creates a StrikeError from a format string and arguments.
func New(format string, args ...any) *StrikeError {
	return &StrikeError{Err: fmt.Sprintf(format, args...)}
}

func (e *StrikeError) Error() string {
	return e.Err
}
