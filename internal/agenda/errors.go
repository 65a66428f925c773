package agenda

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid modal transition")
	ErrReadOnly          = errors.New("booking fields are read-only")
)

// MutationError is returned by failed Store mutations. Message is what the
// server said, or a generic text when it said nothing usable.
type MutationError struct {
	Op      string
	Message string
	Err     error
}

func (e *MutationError) Error() string { return e.Message }
func (e *MutationError) Unwrap() error { return e.Err }
