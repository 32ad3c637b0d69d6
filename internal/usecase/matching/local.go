package matching

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	"github.com/kailas-cloud/skillmatch/internal/domain/skill"
)

// LocalSimilarity answers enhanced match requests in process: embedding
// similarity when an embedder is configured, then the blend and lexical
// matchers. It never calls a remote similarity service, so an instance can
// serve as another instance's similarity backend without looping.
type LocalSimilarity struct {
	resolver *skill.Resolver
	embedder Embedder
	logger   *zap.Logger
}

var _ SimilarityClient = (*LocalSimilarity)(nil)

// NewLocalSimilarity creates a local similarity backend. embedder may be nil.
func NewLocalSimilarity(resolver *skill.Resolver, embedder Embedder, log *zap.Logger) *LocalSimilarity {
	return &LocalSimilarity{resolver: resolver, embedder: embedder, logger: log}
}

// EnhancedMatch implements SimilarityClient. It never fails; threshold <= 0
// selects DefaultSimilarityThreshold.
func (l *LocalSimilarity) EnhancedMatch(
	ctx context.Context, user, required []string, threshold float64,
) (match.Outcome, error) {
	var embedding Matcher
	if l.embedder != nil {
		embedding = NewEmbeddingMatcher(l.embedder, threshold, l.logger)
	}
	return NewEngine(l.resolver, l.logger, embedding, BlendMatcher{}).Run(ctx, user, required), nil
}
