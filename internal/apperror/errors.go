// Package apperror holds the error types shared by repositories, services and controllers.
package apperror

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any *NotFoundError through errors.Is.
var ErrNotFound = errors.New("resource not found")

// NotFoundError reports a lookup that matched nothing in the backing store.
// Key names the field ID was matched on and defaults to "id".
type NotFoundError struct {
	Resource string
	Key      string
	ID       any
	Cause    error
}

func (e *NotFoundError) Error() string {
	if e.ID == nil || e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	key := e.Key
	if key == "" {
		key = "id"
	}
	return fmt.Sprintf("%s not found with %s %v", e.Resource, key, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NotFound(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// NotFoundBy reports a lookup on a field other than the id, such as a username.
func NotFoundBy(resource, key string, value any) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key, ID: value}
}

// WrapNotFound is NotFound with the store error kept for logging.
func WrapNotFound(resource string, id any, cause error) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id, Cause: cause}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ErrConflict matches any *ConflictError through errors.Is.
var ErrConflict = errors.New("resource already exists")

// ConflictError reports a write rejected because the resource already exists.
type ConflictError struct {
	Resource string
	Key      string
	Value    any
	Cause    error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists with %s %v", e.Resource, e.Key, e.Value)
}

func (e *ConflictError) Unwrap() error {
	return e.Cause
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func WrapConflict(resource, key string, value any, cause error) *ConflictError {
	return &ConflictError{Resource: resource, Key: key, Value: value, Cause: cause}
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
