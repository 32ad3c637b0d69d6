package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput signals a request that cannot be scored as given.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSimilarityUnavailable signals the similarity service could not answer.
	ErrSimilarityUnavailable = errors.New("similarity service unavailable")
	// ErrMalformedResponse signals a similarity response that failed validation.
	ErrMalformedResponse = errors.New("malformed similarity response")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrNotImplemented signals an unimplemented feature.
	ErrNotImplemented = errors.New("not implemented")
)

// SimilarityError carries the upstream status of a failed similarity call.
type SimilarityError struct {
	Status int // 0 when no response arrived
	Err    error
}

func (e *SimilarityError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %v", ErrSimilarityUnavailable.Error(), e.Err)
	}
	return fmt.Sprintf("%s: status %d: %v", ErrSimilarityUnavailable.Error(), e.Status, e.Err)
}

// Unwrap exposes both the sentinel and the cause to errors.Is.
func (e *SimilarityError) Unwrap() []error {
	return []error{ErrSimilarityUnavailable, e.Err}
}

// NewSimilarityError wraps err with the upstream HTTP status.
func NewSimilarityError(status int, err error) error {
	return &SimilarityError{Status: status, Err: err}
}
