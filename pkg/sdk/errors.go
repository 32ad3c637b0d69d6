package skillmatch

import "github.com/kailas-cloud/skillmatch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidInput           = domain.ErrInvalidInput
	ErrSimilarityUnavailable  = domain.ErrSimilarityUnavailable
	ErrMalformedResponse      = domain.ErrMalformedResponse
	ErrEmbeddingProviderError = domain.ErrEmbeddingProviderError
)
