package wizard

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrUnexpectedEvent = errors.New("event not accepted at this step")
	ErrImmutableField  = errors.New("field cannot be changed once answered")
	ErrUnknownField    = errors.New("unknown field")
	ErrSessionClosed   = errors.New("session closed")
	ErrSessionNotFound = errors.New("session not found")
)
