package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrGamerTagTaken  = errors.New("gamer tag is already taken")

	// ErrInvalidArgument is matched by every InvalidArgumentError
	ErrInvalidArgument = errors.New("invalid argument")
)

// Messages carried by InvalidArgumentError
const (
	MsgInvalidNameFormat = "The name format is not correct!"
)

// InvalidArgumentError reports input that an operation cannot accept.
// Error returns the message verbatim so callers can surface it unchanged.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrInvalidArgument) hold
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgumentError creates an InvalidArgumentError
func NewInvalidArgumentError(message string) error {
	return &InvalidArgumentError{Message: message}
}
