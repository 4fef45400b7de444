// Package validation holds request-level input checks. All failures are
// *validation.Error values so handlers can map them to 400 responses with
// errors.As.
package validation

// Error is a user-correctable input problem.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(message string) *Error {
	return &Error{Message: message}
}
