package domain

import (
	"errors"
	"fmt"
)

var (
	ErrFetchFailure          = errors.New("fetch failure")
	ErrResourceNotFound      = errors.New("resource not found")
	ErrRoadmapNotFound       = errors.New("roadmap not found")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidPageTransition = errors.New("invalid page transition")
)

// FetchError is the single failure kind of a remote list or lookup call.
// It matches ErrFetchFailure with errors.Is and unwraps to the backend cause.
type FetchError struct {
	Collection string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Collection, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetchFailure }

// NewFetchError wraps err as a FetchError for collection. A nil err stays nil.
func NewFetchError(collection string, err error) error {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return err
	}
	return &FetchError{Collection: collection, Err: err}
}
