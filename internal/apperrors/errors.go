package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPermission indicates that the backing store refused the operation.
var ErrPermission = errors.New("permission denied by store")

// ErrRender indicates that the document renderer failed to produce a file.
var ErrRender = errors.New("document rendering failed")

// ErrInvalidTransition indicates a status change that the state machine does not allow.
var ErrInvalidTransition = errors.New("invalid status transition")

// CollectionError ties a store failure to the collection it happened on,
// so that permission problems can name what was refused.
type CollectionError struct {
	Collection string
	Err        error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Collection, e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// NewCollectionError wraps err with the collection name.
func NewCollectionError(collection string, err error) error {
	return &CollectionError{Collection: collection, Err: err}
}

// CollectionOf returns the collection named by the first CollectionError in err's chain.
func CollectionOf(err error) (string, bool) {
	var ce *CollectionError
	if errors.As(err, &ce) {
		return ce.Collection, true
	}
	return "", false
}
