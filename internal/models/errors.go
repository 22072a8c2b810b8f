package models

// Error is a sentinel error shared by the simulation packages
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidConfiguration Error = "invalid configuration"
	ErrInvalidArgument      Error = "invalid argument"
	ErrInvariantViolation   Error = "invariant violation"
)
