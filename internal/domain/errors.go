package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPlayType = errors.New("unknown play type")
	ErrPlayNotFound    = errors.New("play not found")
)

// UnknownPlayTypeError is returned when a play's type has no pricing rule.
type UnknownPlayTypeError struct {
	Type PlayType
}

func (e *UnknownPlayTypeError) Error() string {
	return fmt.Sprintf("unknown type: %s", e.Type)
}

func (e *UnknownPlayTypeError) Unwrap() error { return ErrUnknownPlayType }

// PlayNotFoundError is returned when a performance references a play ID
// missing from the supplied plays.
type PlayNotFoundError struct {
	PlayID string
}

func (e *PlayNotFoundError) Error() string {
	return fmt.Sprintf("play not found: %s", e.PlayID)
}

func (e *PlayNotFoundError) Unwrap() error { return ErrPlayNotFound }
