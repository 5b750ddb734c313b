package protocol

import "fmt"

// strError is a simple string-based error type that implements the error interface.
// It allows declaring sentinel errors as constants.
type strError string

// Error implements the error interface by returning the string value of the error.
func (e strError) Error() string {
	return string(e)
}

const (
	// ErrMalformedCommand is returned when a known command is missing required arguments.
	ErrMalformedCommand = strError("malformed command")

	// ErrInvalidRefSpec is returned when a push refspec is not of the form [+]<src>:<dst>.
	ErrInvalidRefSpec = strError("invalid refspec")

	// ErrInvalidRefName is returned when a ref name does not satisfy git's naming rules.
	ErrInvalidRefName = strError("invalid ref name")
)

// InvalidRefNameError provides the rejected name and the rule it broke.
// It supports errors.Is for the underlying ErrInvalidRefName.
type InvalidRefNameError struct {
	Name   string
	Reason string
}

func (e *InvalidRefNameError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidRefName, e.Name, e.Reason)
}

func (e *InvalidRefNameError) Unwrap() error {
	return ErrInvalidRefName
}

// NewInvalidRefNameError creates a new InvalidRefNameError.
func NewInvalidRefNameError(name, reason string) *InvalidRefNameError {
	return &InvalidRefNameError{Name: name, Reason: reason}
}

// MalformedCommandError provides the offending input line.
type MalformedCommandError struct {
	Line string
	Err  error
}

func (e *MalformedCommandError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Line)
}

func (e *MalformedCommandError) Unwrap() error {
	return e.Err
}

func newMalformedCommandError(line string, err error) *MalformedCommandError {
	return &MalformedCommandError{Line: line, Err: err}
}
