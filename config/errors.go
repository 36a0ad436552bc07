package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOption is returned by Set for a key no field answers to.
	// Merge drops such keys instead.
	ErrUnknownOption = errors.New("unknown option")
	ErrInvalidType   = errors.New("unsupported value type")
	ErrNoServer      = errors.New("no server configured")
)

// CoercionError reports a value that could not be converted to the type of
// the field it was assigned to.
type CoercionError struct {
	Key   string
	Value any
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: cannot use %v (%T): %v", e.Key, e.Value, e.Value, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}
