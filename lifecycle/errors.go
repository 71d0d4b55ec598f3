package lifecycle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned for any illegal lifecycle move.
	ErrInvalidTransition = errors.New("invalid session transition")

	// ErrPaymentInvalid is returned when a payment fails the validity rules.
	ErrPaymentInvalid = errors.New("invalid payment")
)

// TransitionError reports an illegal state-machine move with the state the
// session was actually in.
type TransitionError struct {
	Op    string // attempted operation: "start", "complete", "cancel", "pay"
	State string // current display status of the session
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s session in state %q", e.Op, e.State)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ValidationError represents a single violated field constraint.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects all violations found by Validate. It is
// informational: an empty list means the session is submittable.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	if len(e) == 1 {
		return fmt.Sprintf("validation failed: %s - %s", e[0].Field, e[0].Message)
	}
	return fmt.Sprintf("validation failed: %d errors", len(e))
}

func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}

func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}
