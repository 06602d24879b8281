package assets

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any NotFoundError through errors.Is.
var ErrNotFound = errors.New("asset not found")

// ErrTypeMismatch matches any TypeMismatchError through errors.Is.
var ErrTypeMismatch = errors.New("asset type mismatch")

// NotFoundError reports an id with no loaded resource.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("asset with id %q does not exist", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// TypeMismatchError reports an id that resolved to a different kind than requested.
type TypeMismatchError struct {
	ID   string
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("asset %q is a %s, not a %s", e.ID, e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// LoadError wraps a failure to decode a file into a resource.
type LoadError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
