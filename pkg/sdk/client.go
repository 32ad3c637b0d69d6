package skillmatch

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/skillmatch/internal/db"
	dbRedis "github.com/kailas-cloud/skillmatch/internal/db/redis"
	"github.com/kailas-cloud/skillmatch/internal/domain"
	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	"github.com/kailas-cloud/skillmatch/internal/domain/profile"
	"github.com/kailas-cloud/skillmatch/internal/domain/threshold"
	"github.com/kailas-cloud/skillmatch/internal/repository/embcache"
	"github.com/kailas-cloud/skillmatch/internal/transport/similarity"
	healthuc "github.com/kailas-cloud/skillmatch/internal/usecase/health"
	"github.com/kailas-cloud/skillmatch/internal/usecase/matching"
	rankinguc "github.com/kailas-cloud/skillmatch/internal/usecase/ranking"
)

const (
	defaultReadinessTimeout  = 10 * time.Second
	defaultCacheTTL          = 7 * 24 * time.Hour
	defaultSimilarityTimeout = 3 * time.Second
)

// Internal interfaces, swapped out in tests.
type assessor interface {
	Assess(ctx context.Context, cand *profile.Candidate, task *profile.Task) match.Assessment
}

type rankUseCase interface {
	Rank(ctx context.Context, task *profile.Task, cands []*profile.Candidate, opts rankinguc.Options) rankinguc.Result
}

// Client is the skillmatch SDK entry point. It is safe for concurrent use.
type Client struct {
	store     db.Store
	assessor  assessor
	ranker    rankUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client. When WithRedis is given the provided context bounds
// the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var store db.Store
	if len(cfg.addrs) > 0 {
		s, err := dbRedis.NewStore(dbRedis.Config{Addrs: cfg.addrs, Password: cfg.password})
		if err != nil {
			return nil, fmt.Errorf("skillmatch: create redis store: %w", err)
		}
		if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("skillmatch: cache not ready: %w", err)
		}
		store = s
	}

	c, err := wireClient(store, cfg, obs)
	if err != nil && store != nil {
		store.Close()
	}
	return c, err
}

func validateConfig(cfg *clientConfig) error {
	if !cfg.weights.IsZero() {
		if err := cfg.weights.Validate(); err != nil {
			return fmt.Errorf("skillmatch: %w", err)
		}
	}
	if cfg.boost != nil && (*cfg.boost < 0 || *cfg.boost > 1) {
		return fmt.Errorf("skillmatch: boost must be in [0,1]: %w", domain.ErrInvalidInput)
	}
	if cfg.similarityThreshold < 0 || cfg.similarityThreshold > 1 {
		return fmt.Errorf("skillmatch: similarity threshold must be in [0,1]: %w", domain.ErrInvalidInput)
	}
	return nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) (*Client, error) {
	var chain []matching.Matcher
	var simClient *similarity.Client
	if cfg.similarityURL != "" {
		timeout := cfg.similarityTimeout
		if timeout <= 0 {
			timeout = defaultSimilarityTimeout
		}
		var err error
		simClient, err = similarity.NewClient(cfg.similarityURL, timeout)
		if err != nil {
			return nil, fmt.Errorf("skillmatch: %w", err)
		}
		chain = append(chain, matching.NewRemoteMatcher(simClient, timeout, cfg.similarityThreshold, nil))
	}

	var emb domain.Embedder
	if cfg.embedder != nil {
		emb = &embedderAdapter{inner: cfg.embedder}
		if store != nil {
			ttl := cfg.cacheTTL
			if ttl <= 0 {
				ttl = defaultCacheTTL
			}
			emb = embcache.New(emb, store, embcache.Config{TTL: ttl, Scope: cfg.embeddingScope}, obs.cacheCounter(), nil)
		}
		chain = append(chain, matching.NewEmbeddingMatcher(emb, cfg.similarityThreshold, nil))
	}
	chain = append(chain, matching.BlendMatcher{})

	engine := matching.NewEngine(nil, nil, chain...)
	rcfg := rankinguc.Config{Weights: cfg.weights, Boost: domainBoost(cfg.boost), Concurrency: cfg.concurrency}

	var cache healthuc.CachePinger
	if store != nil {
		cache = store
	}
	var embCheck, simCheck healthuc.Checker
	if hc, ok := emb.(domain.HealthChecker); ok {
		embCheck = hc
	}
	if simClient != nil {
		simCheck = simClient
	}

	return &Client{
		store:     store,
		assessor:  engine,
		ranker:    rankinguc.New(engine, rcfg, nil),
		healthSvc: healthuc.New(cache, embCheck, simCheck),
		obs:       obs,
	}, nil
}

func domainBoost(b *float64) float64 {
	if b == nil {
		return DefaultBoost
	}
	return *b
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Match assesses candidate skills against required skills. Both map a
// skill name to a level.
func (c *Client) Match(ctx context.Context, candidateSkills, requiredSkills map[string]float64) (res MatchResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("match", start, err) }()

	if err = ctx.Err(); err != nil {
		return MatchResult{}, fmt.Errorf("match: %w", err)
	}
	a := c.assessor.Assess(ctx,
		&profile.Candidate{Skills: candidateSkills},
		&profile.Task{RequiredSkills: requiredSkills},
	)
	return matchFromDomain(&a), nil
}

// Threshold explains the minimum skill score cand needs for task.
func (c *Client) Threshold(task Task, cand Candidate) (res ThresholdResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("threshold", start, err) }()

	t, err := taskToDomain(&task)
	if err != nil {
		return ThresholdResult{}, fmt.Errorf("threshold: %w", err)
	}
	cd, err := candidateToDomain(&cand)
	if err != nil {
		return ThresholdResult{}, fmt.Errorf("threshold: %w", err)
	}
	b := threshold.Calculate(t, cd)
	return thresholdFromDomain(&b), nil
}

// Rank scores candidates against task and returns the qualified ones in
// rank order, at most topK of them (0 keeps all). Candidates need unique,
// non-empty IDs; later duplicates are dropped.
func (c *Client) Rank(ctx context.Context, task Task, candidates []Candidate, topK int) (res RankResult, err error) {
	start := time.Now()
	var attrs []any
	defer func() { c.obs.observe("rank", start, err, attrs...) }()

	if topK < 0 {
		return RankResult{}, fmt.Errorf("rank: top k must not be negative: %w", domain.ErrInvalidInput)
	}
	t, err := taskToDomain(&task)
	if err != nil {
		return RankResult{}, fmt.Errorf("rank: %w", err)
	}
	pool := make([]*profile.Candidate, 0, len(candidates))
	for i := range candidates {
		cd, err := candidateToDomain(&candidates[i])
		if err != nil {
			return RankResult{}, fmt.Errorf("rank: %w", err)
		}
		if cd.ID == "" {
			return RankResult{}, fmt.Errorf("rank: candidate %d has no id: %w", i, domain.ErrInvalidInput)
		}
		pool = append(pool, cd)
	}

	if err = ctx.Err(); err != nil {
		return RankResult{}, fmt.Errorf("rank: %w", err)
	}
	out := c.ranker.Rank(ctx, t, pool, rankinguc.Options{TopK: topK})
	res = rankFromDomain(&out)
	attrs = c.obs.rankOutcome(&res)
	return res, nil
}

// embedderAdapter wraps public Embedder to satisfy internal domain.Embedder.
type embedderAdapter struct {
	inner Embedder
}

func (a *embedderAdapter) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	r, err := a.inner.Embed(ctx, text)
	if err != nil {
		return domain.EmbeddingResult{}, fmt.Errorf("embed: %w: %w", domain.ErrEmbeddingProviderError, err)
	}
	return domain.EmbeddingResult{
		Embedding:    r.Embedding,
		PromptTokens: r.PromptTokens,
		TotalTokens:  r.TotalTokens,
	}, nil
}

// BatchEmbed uses the inner BatchEmbedder when there is one.
func (a *embedderAdapter) BatchEmbed(ctx context.Context, texts []string) (domain.BatchEmbeddingResult, error) {
	be, ok := a.inner.(BatchEmbedder)
	if !ok {
		return domain.BatchFallback(ctx, a, texts)
	}
	r, err := be.BatchEmbed(ctx, texts)
	if err != nil {
		return domain.BatchEmbeddingResult{}, fmt.Errorf("batch embed: %w: %w", domain.ErrEmbeddingProviderError, err)
	}
	if len(r.Embeddings) != len(texts) {
		return domain.BatchEmbeddingResult{}, fmt.Errorf(
			"batch embed: got %d vectors for %d texts: %w", len(r.Embeddings), len(texts), domain.ErrEmbeddingProviderError)
	}
	return domain.BatchEmbeddingResult{
		Embeddings:   r.Embeddings,
		PromptTokens: r.PromptTokens,
		TotalTokens:  r.TotalTokens,
	}, nil
}

// HealthCheck delegates when the inner embedder can check itself.
func (a *embedderAdapter) HealthCheck(ctx context.Context) error {
	if hc, ok := a.inner.(interface{ HealthCheck(context.Context) error }); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

var (
	_ domain.BatchEmbedder = (*embedderAdapter)(nil)
	_ domain.HealthChecker = (*embedderAdapter)(nil)
)
