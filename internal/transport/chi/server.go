package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/skillmatch/internal/domain"
	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	"github.com/kailas-cloud/skillmatch/internal/domain/profile"
	"github.com/kailas-cloud/skillmatch/internal/domain/threshold"
	"github.com/kailas-cloud/skillmatch/internal/transport/similarity"
	healthuc "github.com/kailas-cloud/skillmatch/internal/usecase/health"
	"github.com/kailas-cloud/skillmatch/internal/usecase/matching"
	rankinguc "github.com/kailas-cloud/skillmatch/internal/usecase/ranking"
)

// Defaults for the rankings endpoint.
const (
	DefaultTopK        = 10
	DefaultMaxTopK     = 100
	DefaultMaxPoolSize = 1000
	DefaultMaxBody     = 4 << 20
)

// Assessor scores one candidate against a task.
type Assessor interface {
	Assess(ctx context.Context, cand *profile.Candidate, task *profile.Task) match.Assessment
}

// Ranker ranks a candidate pool.
type Ranker interface {
	Rank(ctx context.Context, task *profile.Task, cands []*profile.Candidate, opts rankinguc.Options) rankinguc.Result
}

// HealthChecker reports dependency health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Limits bound request sizes.
type Limits struct {
	TopK        int
	MaxTopK     int
	MaxPoolSize int
	MaxBody     int64
}

// Server serves the skillmatch HTTP API.
type Server struct {
	assessor      Assessor
	ranker        Ranker
	similarity    matching.SimilarityClient
	health        HealthChecker
	limits        Limits
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. similarity serves the enhanced
// match endpoint and must not call back into this server.
func NewServer(
	assessor Assessor,
	ranker Ranker,
	sim matching.SimilarityClient,
	health HealthChecker,
	limits Limits,
	logger *zap.Logger,
) *Server {
	if limits.TopK <= 0 {
		limits.TopK = DefaultTopK
	}
	if limits.MaxTopK <= 0 {
		limits.MaxTopK = DefaultMaxTopK
	}
	if limits.MaxPoolSize <= 0 {
		limits.MaxPoolSize = DefaultMaxPoolSize
	}
	if limits.MaxBody <= 0 {
		limits.MaxBody = DefaultMaxBody
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		assessor:      assessor,
		ranker:        ranker,
		similarity:    sim,
		health:        health,
		limits:        limits,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// Routes mounts the API on r.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/match", s.Match)
	r.Post("/v1/threshold", s.Threshold)
	r.Post("/v1/rankings", s.Rank)
	r.Post(similarity.Path, s.EnhancedMatch)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeBadRequest, "method not allowed")
	})
}

// Match handles POST /v1/match.
func (s *Server) Match(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if !s.decode(w, r, &req) {
		return
	}

	cand := &profile.Candidate{Skills: req.CandidateSkills}
	task := &profile.Task{RequiredSkills: req.RequiredSkills}
	a := s.assessor.Assess(r.Context(), cand, task)

	writeJSON(w, http.StatusOK, NewMatchResponse(&a))
}

// Threshold handles POST /v1/threshold.
func (s *Server) Threshold(w http.ResponseWriter, r *http.Request) {
	var req ThresholdRequest
	if !s.decode(w, r, &req) {
		return
	}

	task, cand, err := req.ToDomain()
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	b := threshold.Calculate(task, cand)
	writeJSON(w, http.StatusOK, NewThresholdResponse(&b))
}

// Rank handles POST /v1/rankings.
func (s *Server) Rank(w http.ResponseWriter, r *http.Request) {
	topK := s.limits.TopK
	if err := runtime.BindQueryParameter("form", true, false, "top_k", r.URL.Query(), &topK); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "invalid top_k: "+err.Error())
		return
	}
	includeExcluded := false
	if err := runtime.BindQueryParameter(
		"form", true, false, "include_excluded", r.URL.Query(), &includeExcluded,
	); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "invalid include_excluded: "+err.Error())
		return
	}
	if topK < 1 || topK > s.limits.MaxTopK {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed,
			fmt.Sprintf("top_k must be between 1 and %d", s.limits.MaxTopK))
		return
	}

	var req RankRequest
	if !s.decode(w, r, &req) {
		return
	}
	if len(req.Candidates) > s.limits.MaxPoolSize {
		writeError(w, http.StatusRequestEntityTooLarge, ErrorCodePayloadTooLarge,
			"candidate pool exceeds "+strconv.Itoa(s.limits.MaxPoolSize))
		return
	}

	task, cands, err := req.ToDomain()
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	res := s.ranker.Rank(r.Context(), task, cands, rankinguc.Options{TopK: topK})
	writeJSON(w, http.StatusOK, NewRankResponse(&res, includeExcluded))
}

// EnhancedMatch handles POST /ml/skills/enhanced-match.
func (s *Server) EnhancedMatch(w http.ResponseWriter, r *http.Request) {
	var req EnhancedMatchRequest
	if !s.decode(w, r, &req) {
		return
	}
	if s.similarity == nil {
		s.handleDomainError(w, r, fmt.Errorf("enhanced match: %w", domain.ErrNotImplemented))
		return
	}

	thr := matching.DefaultSimilarityThreshold
	if req.SimilarityThreshold != nil {
		thr = *req.SimilarityThreshold
	}
	out, err := s.similarity.EnhancedMatch(r.Context(), req.UserSkills, req.RequiredSkills, thr)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, similarity.FromOutcome(&out))
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status healthuc.Status                 `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

// HealthCheck handles GET /health. A degraded report is still 200: scoring
// keeps working on the local chain.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	writeJSON(w, http.StatusOK, HealthResponse{Status: report.Status, Checks: report.Checks})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// decode reads and validates a JSON body into dst. It writes the error
// response and returns false on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.limits.MaxBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, ErrorCodePayloadTooLarge,
				"request body exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
			return false
		}
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := requestValidator.Struct(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Code:    ErrorCodeValidationFailed,
			Message: "request validation failed",
			Details: validationDetails(err),
		})
		return false
	}
	return true
}
