package skillmatch

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	password string
	cacheTTL time.Duration

	embedder            Embedder
	embeddingScope      string
	similarityURL       string
	similarityTimeout   time.Duration
	similarityThreshold float64

	weights     Weights
	boost       *float64
	concurrency int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithRedis caches skill embeddings in a Redis instance. It has no effect
// on scoring unless WithEmbedder is also given.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithCacheTTL sets how long cached embeddings live. Default: 7 days.
func WithCacheTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheTTL = ttl
	})
}

// WithEmbedder enables in-process semantic matching over skill embeddings.
// scope separates cache entries of different models, e.g. "openai/text-embedding-3-small".
func WithEmbedder(e Embedder, scope string) Option {
	return optionFunc(func(c *clientConfig) {
		c.embedder = e
		c.embeddingScope = scope
	})
}

// WithSimilarityService consults an external similarity service first.
// Failures and timeouts fall back to the local chain.
func WithSimilarityService(baseURL string, timeout time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.similarityURL = baseURL
		c.similarityTimeout = timeout
	})
}

// WithSimilarityThreshold sets the minimum similarity for a related skill
// to count. Default: 0.7.
func WithSimilarityThreshold(t float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.similarityThreshold = t
	})
}

// WithWeights sets the ranking sub-score weights. They must sum to 1.
func WithWeights(w Weights) Option {
	return optionFunc(func(c *clientConfig) {
		c.weights = w
	})
}

// WithBoost sets the score added to priority-role candidates on high and
// critical tasks. Default: 0.2.
func WithBoost(b float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.boost = &b
	})
}

// WithConcurrency bounds parallel candidate scoring. Default: 8.
func WithConcurrency(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.concurrency = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
