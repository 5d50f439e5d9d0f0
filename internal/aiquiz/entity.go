package aiquiz

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration     = errors.New("quiz generation is not configured")
	ErrRemoteCall        = errors.New("remote generation call failed")
	ErrMalformedResponse = errors.New("malformed generation response")
)

// GenerationError is returned for every failed generation attempt. Kind is
// one of ErrConfiguration, ErrRemoteCall or ErrMalformedResponse.
type GenerationError struct {
	Kind error
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newGenerationError(kind, err error) *GenerationError {
	return &GenerationError{Kind: kind, Err: err}
}
