package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/skillmatch/internal/config"
	"github.com/kailas-cloud/skillmatch/internal/db"
	dbRedis "github.com/kailas-cloud/skillmatch/internal/db/redis"
	"github.com/kailas-cloud/skillmatch/internal/domain"
	"github.com/kailas-cloud/skillmatch/internal/domain/skill"
	logpkg "github.com/kailas-cloud/skillmatch/internal/logger"
	"github.com/kailas-cloud/skillmatch/internal/metrics"
	"github.com/kailas-cloud/skillmatch/internal/repository/embcache"
	chiTransport "github.com/kailas-cloud/skillmatch/internal/transport/chi"
	openaiEmb "github.com/kailas-cloud/skillmatch/internal/transport/openai"
	"github.com/kailas-cloud/skillmatch/internal/transport/similarity"
	embeddinguc "github.com/kailas-cloud/skillmatch/internal/usecase/embedding"
	healthuc "github.com/kailas-cloud/skillmatch/internal/usecase/health"
	"github.com/kailas-cloud/skillmatch/internal/usecase/matching"
	rankinguc "github.com/kailas-cloud/skillmatch/internal/usecase/ranking"
	"github.com/kailas-cloud/skillmatch/internal/version"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  "Starts the skillmatch HTTP API. Configuration comes from config/<ENV>.yaml unless --config is given.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	env := config.GetEnv()
	cfg, err := loadConfig(env, serveConfigPath)
	if err != nil {
		return err
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting skillmatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
	)

	metrics.RegisterEngineMetrics()
	metrics.RegisterEmbeddingMetrics()

	var store db.Store
	if cfg.Cache.Enabled {
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			return fmt.Errorf("failed to create cache store: %w", err)
		}
		defer s.Close()

		readyCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Cache.ReadinessTimeout)*time.Second)
		err = s.WaitForReady(readyCtx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second)
		cancel()
		if err != nil {
			return fmt.Errorf("cache not ready: %w", err)
		}
		store = s
		logger.Info("Embedding cache connected", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	var embedder domain.Embedder
	if cfg.Embedding.Enabled {
		embedder = buildEmbedder(&cfg, store, logger)
	}

	var simClient *similarity.Client
	if cfg.Similarity.Enabled {
		simClient, err = similarity.NewClient(cfg.Similarity.BaseURL, time.Duration(cfg.Similarity.TimeoutMS)*time.Millisecond)
		if err != nil {
			return fmt.Errorf("failed to create similarity client: %w", err)
		}
		simClient.WithAPIKey(cfg.Similarity.APIKey)
	}

	resolver := skill.DefaultResolver()
	engine := matching.NewEngine(resolver, logger, buildChain(&cfg, simClient, embedder, logger)...)
	logger.Info("Matcher chain ready", zap.Strings("chain", engine.Chain()))

	ranker := rankinguc.New(engine, rankinguc.Config{
		Weights:     cfg.Ranking.Weights,
		Boost:       *cfg.Ranking.Boost,
		Concurrency: cfg.Ranking.Concurrency,
	}, logger)

	// The endpoint we expose must never call the remote service itself.
	local := matching.NewLocalSimilarity(resolver, embedder, logger)

	healthSvc := healthuc.New(cachePinger(store), embeddingChecker(embedder), similarityChecker(simClient))

	server := chiTransport.NewServer(engine, ranker, local, healthSvc, chiTransport.Limits{
		TopK:        cfg.Ranking.TopK,
		MaxTopK:     cfg.Ranking.MaxTopK,
		MaxPoolSize: cfg.Ranking.MaxPoolSize,
		MaxBody:     int64(cfg.HTTP.MaxBodyBytes),
	}, logger)

	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-quit:
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}

func loadConfig(env, path string) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// buildEmbedder assembles the decorator chain: OpenAI -> Instrumented -> Cached.
// The cache sits outermost so hits never reach the provider.
func buildEmbedder(cfg *config.Config, store db.Store, logger *zap.Logger) domain.Embedder {
	base := openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   cfg.Embedding.Provider,
		Logger:     logger,
	})

	var embedder domain.Embedder = embeddinguc.NewInstrumentedEmbedder(
		base, cfg.Embedding.Provider, cfg.Embedding.Model, cfg.Embedding.MaxBatchSize, logger,
	)
	if store != nil {
		embedder = embcache.New(embedder, store, embcache.Config{
			TTL:   time.Duration(cfg.Cache.TTLHours) * time.Hour,
			Scope: fmt.Sprintf("%s/%s/%d", cfg.Embedding.Provider, cfg.Embedding.Model, cfg.Embedding.Dimensions),
		}, metrics.EmbeddingCacheTotal, logger)
	}
	return embedder
}

// buildChain orders the matchers: remote, embedding, blend. The engine
// appends the lexical matcher.
func buildChain(
	cfg *config.Config, sim *similarity.Client, embedder domain.Embedder, logger *zap.Logger,
) []matching.Matcher {
	var chain []matching.Matcher
	if sim != nil {
		chain = append(chain, matching.NewRemoteMatcher(
			sim, time.Duration(cfg.Similarity.TimeoutMS)*time.Millisecond, cfg.Similarity.Threshold, logger,
		))
	}
	if embedder != nil {
		chain = append(chain, matching.NewEmbeddingMatcher(embedder, cfg.Embedding.Threshold, logger))
	}
	return append(chain, matching.BlendMatcher{})
}

func cachePinger(store db.Store) healthuc.CachePinger {
	if store == nil {
		return nil
	}
	return store
}

func embeddingChecker(embedder domain.Embedder) healthuc.Checker {
	if hc, ok := embedder.(domain.HealthChecker); ok {
		return hc
	}
	return nil
}

func similarityChecker(c *similarity.Client) healthuc.Checker {
	if c == nil {
		return nil
	}
	return c
}
