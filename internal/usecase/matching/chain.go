package matching

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/skillmatch/internal/domain"
	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	"github.com/kailas-cloud/skillmatch/internal/domain/skill"
	"github.com/kailas-cloud/skillmatch/internal/logger"
)

// DefaultSimilarityThreshold is the minimum similarity for a related skill to count.
const DefaultSimilarityThreshold = 0.7

// Weights of the embedding matcher and the blend matcher.
const (
	embeddingExactWeight      = 0.6
	embeddingSimilarityWeight = 0.4
	blendNormalizedWeight     = 0.8
	blendTransferWeight       = 0.2
)

// RemoteMatcher asks the external similarity service. Every failure is a
// decline; the call is never retried.
type RemoteMatcher struct {
	client    SimilarityClient
	timeout   time.Duration
	threshold float64
	logger    *zap.Logger
}

// NewRemoteMatcher wraps client with a per-call timeout.
func NewRemoteMatcher(client SimilarityClient, timeout time.Duration, threshold float64, log *zap.Logger) *RemoteMatcher {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	return &RemoteMatcher{client: client, timeout: timeout, threshold: threshold, logger: log}
}

// Name implements Matcher.
func (m *RemoteMatcher) Name() string { return string(match.SourceRemote) }

// Match implements Matcher.
func (m *RemoteMatcher) Match(ctx context.Context, user, required []string) (match.Outcome, bool) {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	out, err := m.client.EnhancedMatch(ctx, skill.NormalizeSet(user), skill.NormalizeSet(required), m.threshold)
	if err != nil {
		logger.FromContext(ctx, m.logger).Warn("Similarity service unavailable, falling back",
			zap.String(logger.FieldMatcher, m.Name()),
			zap.Error(err),
		)
		return match.Outcome{}, false
	}
	out.Source = match.SourceRemote
	out.UsedAI = true
	return out, true
}

// EmbeddingMatcher compares skill embeddings in process. Exact matches
// score 1; every other required skill takes the closest user skill by
// cosine similarity when it clears the threshold.
type EmbeddingMatcher struct {
	embedder  Embedder
	threshold float64
	logger    *zap.Logger
}

// NewEmbeddingMatcher builds an embedding matcher over embedder.
func NewEmbeddingMatcher(embedder Embedder, threshold float64, log *zap.Logger) *EmbeddingMatcher {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	return &EmbeddingMatcher{embedder: embedder, threshold: threshold, logger: log}
}

// Name implements Matcher.
func (m *EmbeddingMatcher) Name() string { return string(match.SourceEmbedding) }

// Match implements Matcher.
func (m *EmbeddingMatcher) Match(ctx context.Context, user, required []string) (match.Outcome, bool) {
	out, err := m.compare(ctx, skill.NormalizeSet(user), skill.NormalizeSet(required))
	if err != nil {
		logger.FromContext(ctx, m.logger).Warn("Embedding similarity failed, falling back",
			zap.String(logger.FieldMatcher, m.Name()),
			zap.Error(err),
		)
		return match.Outcome{}, false
	}
	return out, true
}

// compare expects canonical, deduplicated inputs.
func (m *EmbeddingMatcher) compare(ctx context.Context, user, required []string) (match.Outcome, error) {
	out := match.Outcome{Source: match.SourceEmbedding, UsedAI: true}
	if len(required) == 0 {
		out.ExactScore, out.SimilarityScore, out.OverallScore = 1, 1, 1
		return out, nil
	}

	have := make(map[string]struct{}, len(user))
	for _, u := range user {
		have[u] = struct{}{}
	}
	var rest []string
	for _, r := range required {
		if _, ok := have[r]; ok {
			out.MatchedSkills = append(out.MatchedSkills, r)
			continue
		}
		rest = append(rest, r)
	}

	similar := 0.0
	if len(rest) > 0 && len(user) > 0 {
		texts := append(append(make([]string, 0, len(rest)+len(user)), rest...), user...)
		res, err := domain.EmbedAll(ctx, m.embedder, texts)
		if err != nil {
			return match.Outcome{}, err
		}
		reqVecs, userVecs := res.Embeddings[:len(rest)], res.Embeddings[len(rest):]

		for i, r := range rest {
			best, bestIdx := -1.0, -1
			for j := range user {
				if c := domain.Cosine(reqVecs[i], userVecs[j]); c > best {
					best, bestIdx = c, j
				}
			}
			sim := (best + 1) / 2
			if bestIdx < 0 || sim < m.threshold {
				continue
			}
			similar += sim
			out.SimilarSkills = append(out.SimilarSkills, match.SimilarPair{
				Required: r, UserHas: user[bestIdx], Similarity: round4(sim),
			})
		}
	}

	n := float64(len(required))
	out.ExactScore = float64(len(out.MatchedSkills)) / n
	out.SimilarityScore = (float64(len(out.MatchedSkills)) + similar) / n
	out.OverallScore = round4(embeddingExactWeight*out.ExactScore + embeddingSimilarityWeight*out.SimilarityScore)
	out.ExactScore = round4(out.ExactScore)
	out.SimilarityScore = round4(out.SimilarityScore)
	return out, nil
}

// BlendMatcher mixes normalized overlap with category transferability. It
// always answers, so it is the score of record once the remote and
// embedding matchers have declined.
type BlendMatcher struct{}

// Name implements Matcher.
func (BlendMatcher) Name() string { return string(match.SourceBlend) }

// Match implements Matcher.
func (BlendMatcher) Match(_ context.Context, user, required []string) (match.Outcome, bool) {
	exact := skill.NormalizedMatch(user, required)
	score := blendNormalizedWeight*exact + blendTransferWeight*skill.Transferability(user, required)
	return match.Outcome{
		Source:          match.SourceBlend,
		ExactScore:      round4(exact),
		SimilarityScore: round4(skill.CategoryMatch(user, required)),
		OverallScore:    round4(score),
		MatchedSkills:   skill.Matched(user, required),
	}, true
}

// LexicalMatcher reports the mean of the per-skill match types. It never
// declines and closes every chain.
type LexicalMatcher struct {
	engine *Engine
}

// Name implements Matcher.
func (*LexicalMatcher) Name() string { return string(match.SourceLexical) }

// Match implements Matcher.
func (m *LexicalMatcher) Match(_ context.Context, user, required []string) (match.Outcome, bool) {
	perSkill, score := m.engine.MatchTypes(user, required)
	out := match.Outcome{
		Source:       match.SourceLexical,
		ExactScore:   round4(skill.NormalizedMatch(user, required)),
		OverallScore: round4(score),
	}
	for _, name := range skill.NormalizeSet(required) {
		sm := perSkill[name]
		switch sm.Type {
		case match.Exact:
			out.MatchedSkills = append(out.MatchedSkills, name)
		case match.Partial, match.Semantic:
			out.SimilarSkills = append(out.SimilarSkills, match.SimilarPair{
				Required: name, UserHas: sm.MatchedBy, Similarity: sm.Score,
			})
		}
	}
	return out, true
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
