package matching

import (
	"context"

	"github.com/kailas-cloud/skillmatch/internal/domain"
	"github.com/kailas-cloud/skillmatch/internal/domain/match"
)

// Matcher scores a user's skills against required skills. A matcher that
// cannot answer declines by returning false, and the engine moves on.
type Matcher interface {
	Name() string
	Match(ctx context.Context, user, required []string) (match.Outcome, bool)
}

// SimilarityClient calls the external semantic similarity service.
type SimilarityClient interface {
	EnhancedMatch(ctx context.Context, user, required []string, threshold float64) (match.Outcome, error)
}

// Embedder vectorizes skill names.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
