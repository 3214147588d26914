package services

import "fmt"

// ValidationError reports malformed or out-of-bound input. Field names the
// offending input, Reason is safe to show to the end user.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthorizationError reports an actor trying to modify a resource they do
// not own.
type AuthorizationError struct {
	Action string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not authorized to %s", e.Action)
}

// NotFoundError reports a missing list, term or user.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// InsufficientTermsError is returned when a quiz is requested on a pool of
// fewer than MinQuizTerms eligible terms.
type InsufficientTermsError struct {
	Available int
}

func (e *InsufficientTermsError) Error() string {
	return fmt.Sprintf("not enough terms for a quiz: need at least %d, have %d", MinQuizTerms, e.Available)
}
