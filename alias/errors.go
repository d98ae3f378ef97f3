package alias

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidOperation is matched by InvalidOperationError.
	ErrInvalidOperation = errors.New("alias: invalid operation")

	// ErrCircularReference is matched by CircularReferenceError.
	ErrCircularReference = errors.New("alias: circular reference")

	// ErrInvalidConfig is returned when an alias config cannot be decoded or
	// contains incomplete entries.
	ErrInvalidConfig = errors.New("alias: invalid config")
)

// InvalidOperationError is returned when a name is aliased to itself.
type InvalidOperationError struct{ Name string }

// Error implements the error interface.
func (e InvalidOperationError) Error() string {
	// Example: alias: "Logger" is aliased to itself
	return "alias: " + strconv.Quote(e.Name) + " is aliased to itself"
}

// Is reports whether target is ErrInvalidOperation.
func (e InvalidOperationError) Is(target error) bool { return target == ErrInvalidOperation }

// CircularReferenceError is returned by Resolve when an alias chain revisits
// a name. Name is the name at which the cycle was detected.
type CircularReferenceError struct{ Name string }

// Error implements the error interface.
func (e CircularReferenceError) Error() string {
	// Example: alias: circular alias reference detected for "a"
	return "alias: circular alias reference detected for " + strconv.Quote(e.Name)
}

// Is reports whether target is ErrCircularReference.
func (e CircularReferenceError) Is(target error) bool { return target == ErrCircularReference }
