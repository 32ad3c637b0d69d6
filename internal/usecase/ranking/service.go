// Package ranking scores a candidate pool for one task and orders the
// qualified candidates.
package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	"github.com/kailas-cloud/skillmatch/internal/domain/profile"
	domrank "github.com/kailas-cloud/skillmatch/internal/domain/ranking"
	"github.com/kailas-cloud/skillmatch/internal/domain/threshold"
	"github.com/kailas-cloud/skillmatch/internal/logger"
	"github.com/kailas-cloud/skillmatch/internal/metrics"
)

// DefaultConcurrency bounds parallel candidate scoring.
const DefaultConcurrency = 8

// Exclusion reasons.
const (
	ReasonBelowThreshold = "below_threshold"
	ReasonScoringFailed  = "scoring_failed"
)

// Config tunes the service.
type Config struct {
	Weights     domrank.Weights
	Boost       float64
	Concurrency int
}

// Options apply to one ranking run.
type Options struct {
	TopK int // 0 keeps every qualified candidate
}

// Ranked is a recommendation with the evidence behind it.
type Ranked struct {
	domrank.Recommendation
	Assessment match.Assessment
	Threshold  threshold.Breakdown
}

// Exclusion is a candidate left out of the ranking.
type Exclusion struct {
	CandidateID string
	Reason      string
	Score       float64
	Threshold   threshold.Breakdown
	Error       string
}

// Result is the outcome of one ranking run.
type Result struct {
	RunID           string
	TaskID          string
	Recommendations []Ranked
	Excluded        []Exclusion
}

// Service ranks candidate pools.
type Service struct {
	assessor Assessor
	cfg      Config
	logger   *zap.Logger
}

// New creates a ranking service.
func New(assessor Assessor, cfg Config, log *zap.Logger) *Service {
	if cfg.Weights.IsZero() {
		cfg.Weights = domrank.DefaultWeights()
	}
	if cfg.Boost < 0 {
		cfg.Boost = 0
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{assessor: assessor, cfg: cfg, logger: log}
}

type scored struct {
	cand       *profile.Candidate
	assessment match.Assessment
	threshold  threshold.Breakdown
	err        error
}

// Rank scores every candidate against task, drops the unqualified and
// returns the rest in rank order. It never fails: an empty pool gives an
// empty result and a candidate that cannot be scored is excluded.
func (s *Service) Rank(
	ctx context.Context, task *profile.Task, candidates []*profile.Candidate, opts Options,
) Result {
	start := time.Now()
	res := Result{
		RunID:           uuid.NewString(),
		TaskID:          task.ID,
		Recommendations: []Ranked{},
		Excluded:        []Exclusion{},
	}
	log := logger.WithFields(logger.FromContext(ctx, s.logger), logger.RankingFields(res.RunID, task.ID)...)

	pool := dedupe(candidates)
	if dropped := len(candidates) - len(pool); dropped > 0 {
		metrics.RankingCandidatesTotal.WithLabelValues("duplicate").Add(float64(dropped))
		log.Debug("Dropped duplicate candidates", zap.Int("count", dropped))
	}
	if len(pool) == 0 {
		return res
	}

	results := make([]scored, len(pool))
	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Concurrency)
	for i, c := range pool {
		g.Go(func() error {
			results[i] = s.score(ctx, c, task)
			return nil
		})
	}
	_ = g.Wait() // workers report failures per candidate

	policy := domrank.Policy{Weights: s.cfg.Weights, Boost: s.cfg.Boost, Elevated: task.Priority.IsElevated()}
	entries := make([]domrank.Entry, 0, len(results))
	byID := make(map[string]scored, len(results))
	for _, r := range results {
		switch {
		case r.err != nil:
			metrics.RankingCandidatesTotal.WithLabelValues(ReasonScoringFailed).Inc()
			log.Warn("Candidate scoring failed",
				zap.String(logger.FieldCandidateID, r.cand.ID),
				zap.Error(r.err),
			)
			res.Excluded = append(res.Excluded, Exclusion{
				CandidateID: r.cand.ID, Reason: ReasonScoringFailed, Error: r.err.Error(),
			})
		case !r.threshold.Qualifies(r.assessment.Score):
			metrics.RankingCandidatesTotal.WithLabelValues("unqualified").Inc()
			res.Excluded = append(res.Excluded, Exclusion{
				CandidateID: r.cand.ID, Reason: ReasonBelowThreshold,
				Score: r.assessment.Score, Threshold: r.threshold,
			})
		default:
			sub := subScores(r.cand, task, r.assessment.Score)
			entries = append(entries, domrank.NewEntry(r.cand.ID, sub, domrank.PriorityRole(r.cand), policy))
			byID[r.cand.ID] = r
		}
	}

	recs := domrank.Differentiate(entries)
	if opts.TopK > 0 && len(recs) > opts.TopK {
		recs = recs[:opts.TopK]
	}
	for _, rec := range recs {
		r := byID[rec.CandidateID()]
		res.Recommendations = append(res.Recommendations, Ranked{
			Recommendation: rec, Assessment: r.assessment, Threshold: r.threshold,
		})
	}
	metrics.RankingCandidatesTotal.WithLabelValues("ranked").Add(float64(len(entries)))
	metrics.RankingDuration.Observe(time.Since(start).Seconds())

	log.Info("Ranking completed",
		zap.Int("pool", len(pool)),
		zap.Int("qualified", len(entries)),
		zap.Int("returned", len(res.Recommendations)),
		zap.Int("excluded", len(res.Excluded)),
		zap.Duration("duration", time.Since(start)),
	)
	return res
}

func (s *Service) score(ctx context.Context, c *profile.Candidate, task *profile.Task) (out scored) {
	out.cand = c
	defer func() {
		if p := recover(); p != nil {
			out.err = fmt.Errorf("panic while scoring: %v", p)
		}
	}()
	if err := ctx.Err(); err != nil {
		out.err = fmt.Errorf("score candidate: %w", err)
		return out
	}
	out.assessment = s.assessor.Assess(ctx, c, task)
	out.threshold = threshold.Calculate(task, c)
	return out
}

// dedupe keeps the first candidate for every ID and drops nil entries.
func dedupe(candidates []*profile.Candidate) []*profile.Candidate {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]*profile.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}
