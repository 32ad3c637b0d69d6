package chi

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kailas-cloud/skillmatch/internal/domain"
	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	"github.com/kailas-cloud/skillmatch/internal/domain/profile"
	domrank "github.com/kailas-cloud/skillmatch/internal/domain/ranking"
	"github.com/kailas-cloud/skillmatch/internal/domain/threshold"
	rankinguc "github.com/kailas-cloud/skillmatch/internal/usecase/ranking"
)

// CandidateDTO is a candidate profile on the wire.
type CandidateDTO struct {
	ID                 string             `json:"id" validate:"max=128"`
	Skills             map[string]float64 `json:"skills" validate:"max=200,dive,keys,required,max=100,endkeys,gte=0,lte=10"`
	Seniority          string             `json:"seniority,omitempty" validate:"max=32"`
	ExperienceYears    *float64           `json:"experience_years,omitempty" validate:"omitempty,gte=0,lte=80"`
	WorkloadHours      *float64           `json:"workload_hours,omitempty" validate:"omitempty,gte=0,lte=168"`
	Availability       string             `json:"availability,omitempty" validate:"max=32"`
	PerformanceRating  *float64           `json:"performance_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	CompletionRate     *float64           `json:"completion_rate,omitempty" validate:"omitempty,gte=0,lte=1"`
	CollaborationScore *float64           `json:"collaboration_score,omitempty" validate:"omitempty,gte=0,lte=1"`
	Role               string             `json:"role,omitempty" validate:"max=128"`
	Department         string             `json:"department,omitempty" validate:"max=64"`
}

// TaskDTO is a task on the wire.
type TaskDTO struct {
	ID             string             `json:"id,omitempty" validate:"max=128"`
	RequiredSkills map[string]float64 `json:"required_skills" validate:"max=100,dive,keys,required,max=100,endkeys,gte=0,lte=10"`
	Priority       string             `json:"priority,omitempty" validate:"max=32"`
	Difficulty     string             `json:"difficulty,omitempty" validate:"max=32"`
	EstimatedHours *float64           `json:"estimated_hours,omitempty" validate:"omitempty,gte=0,lte=10000"`
	Department     string             `json:"department,omitempty" validate:"max=64"`
}

// MatchRequest is the body of POST /v1/match.
type MatchRequest struct {
	CandidateSkills map[string]float64 `json:"candidate_skills" validate:"max=200,dive,keys,required,max=100,endkeys,gte=0,lte=10"`
	RequiredSkills  map[string]float64 `json:"required_skills" validate:"max=100,dive,keys,required,max=100,endkeys,gte=0,lte=10"`
}

// ThresholdRequest is the body of POST /v1/threshold.
type ThresholdRequest struct {
	Task      TaskDTO      `json:"task"`
	Candidate CandidateDTO `json:"candidate"`
}

// RankRequest is the body of POST /v1/rankings.
type RankRequest struct {
	Task       TaskDTO        `json:"task"`
	Candidates []CandidateDTO `json:"candidates" validate:"dive"`
}

// EnhancedMatchRequest is the body of POST /ml/skills/enhanced-match.
type EnhancedMatchRequest struct {
	UserSkills          []string `json:"user_skills" validate:"max=500,dive,max=100"`
	RequiredSkills      []string `json:"required_skills" validate:"max=500,dive,max=100"`
	SimilarityThreshold *float64 `json:"similarity_threshold" validate:"omitempty,gte=0,lte=1"`
}

// SkillMatchDTO is the result for one required skill.
type SkillMatchDTO struct {
	Required  string     `json:"required"`
	Type      match.Type `json:"type"`
	Score     float64    `json:"score"`
	MatchedBy string     `json:"matched_by,omitempty"`
}

// MatchResponse is the body returned by POST /v1/match.
type MatchResponse struct {
	PerSkill          []SkillMatchDTO     `json:"per_skill"`
	MatchTypeScore    float64             `json:"match_type_score"`
	ProficiencyScore  float64             `json:"proficiency_score"`
	Score             float64             `json:"score"`
	Source            match.Source        `json:"source"`
	UsedAI            bool                `json:"used_ai"`
	MatchedSkills     []string            `json:"matched_skills"`
	MissingSkills     []string            `json:"missing_skills"`
	MatchedCategories []string            `json:"matched_categories"`
	SimilarSkills     []match.SimilarPair `json:"similar_skills"`
}

// ThresholdResponse is the body returned by POST /v1/threshold.
type ThresholdResponse struct {
	Minimum           float64          `json:"minimum"`
	Raw               float64          `json:"raw"`
	Difficulty        string           `json:"difficulty"`
	DifficultyDerived bool             `json:"difficulty_derived"`
	Seniority         string           `json:"seniority"`
	Priority          string           `json:"priority,omitempty"`
	Specialized       bool             `json:"specialized"`
	Utilization       float64          `json:"utilization"`
	Lines             []threshold.Line `json:"lines"`
}

// RecommendationDTO is one ranked candidate.
type RecommendationDTO struct {
	CandidateID      string            `json:"candidate_id"`
	Rank             int               `json:"rank"`
	Score            float64           `json:"score"`
	Composite        float64           `json:"composite"`
	Flagged          bool              `json:"priority_role"`
	Boosted          bool              `json:"boosted"`
	SubScores        domrank.SubScores `json:"sub_scores"`
	SkillMatchScore  float64           `json:"skill_match_score"`
	MatchTypeScore   float64           `json:"match_type_score"`
	ProficiencyScore float64           `json:"proficiency_score"`
	Source           match.Source      `json:"source"`
	UsedAI           bool              `json:"used_ai"`
	Threshold        float64           `json:"threshold"`
	MatchedSkills    []string          `json:"matched_skills"`
	MissingSkills    []string          `json:"missing_skills"`
}

// ExclusionDTO is a candidate left out of a ranking.
type ExclusionDTO struct {
	CandidateID string  `json:"candidate_id"`
	Reason      string  `json:"reason"`
	Score       float64 `json:"score"`
	Threshold   float64 `json:"threshold"`
	Error       string  `json:"error,omitempty"`
}

// RankResponse is the body returned by POST /v1/rankings.
type RankResponse struct {
	RunID           string              `json:"run_id"`
	TaskID          string              `json:"task_id,omitempty"`
	Recommendations []RecommendationDTO `json:"recommendations"`
	ExcludedCount   int                 `json:"excluded_count"`
	Excluded        []ExclusionDTO      `json:"excluded,omitempty"`
}

var requestValidator = newValidator()

// ValidateRequest checks a request DTO against its validation tags. The
// error wraps domain.ErrInvalidInput.
func ValidateRequest(req any) error {
	if err := requestValidator.Struct(req); err != nil {
		return fmt.Errorf("%s: %w", strings.Join(validationDetails(err), "; "), domain.ErrInvalidInput)
	}
	return nil
}

// ToDomain converts the request into a task and a candidate.
func (r *ThresholdRequest) ToDomain() (*profile.Task, *profile.Candidate, error) {
	task, err := toTask(&r.Task)
	if err != nil {
		return nil, nil, err
	}
	cand, err := toCandidate(&r.Candidate)
	if err != nil {
		return nil, nil, err
	}
	return task, cand, nil
}

// ToDomain converts the request into a task and its candidate pool. Every
// candidate needs an ID.
func (r *RankRequest) ToDomain() (*profile.Task, []*profile.Candidate, error) {
	task, err := toTask(&r.Task)
	if err != nil {
		return nil, nil, err
	}
	cands := make([]*profile.Candidate, 0, len(r.Candidates))
	for i := range r.Candidates {
		c, err := toCandidate(&r.Candidates[i])
		if err != nil {
			return nil, nil, err
		}
		if c.ID == "" {
			return nil, nil, fmt.Errorf("candidates[%d]: id is required: %w", i, domain.ErrInvalidInput)
		}
		cands = append(cands, c)
	}
	return task, cands, nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationDetails lists the failed fields as "field: rule".
func validationDetails(err error) []string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(ves))
	for _, ve := range ves {
		// drop the leading request type name
		_, field, _ := strings.Cut(ve.Namespace(), ".")
		detail := field + ": " + ve.Tag()
		if ve.Param() != "" {
			detail += "=" + ve.Param()
		}
		out = append(out, detail)
	}
	return out
}

func toCandidate(d *CandidateDTO) (*profile.Candidate, error) {
	c := &profile.Candidate{
		ID:                 strings.TrimSpace(d.ID),
		Skills:             maps.Clone(d.Skills),
		ExperienceYears:    d.ExperienceYears,
		WorkloadHours:      d.WorkloadHours,
		PerformanceRating:  d.PerformanceRating,
		CompletionRate:     d.CompletionRate,
		CollaborationScore: d.CollaborationScore,
		Role:               d.Role,
		Department:         d.Department,
	}
	if d.Seniority != "" {
		if c.Seniority = profile.ParseSeniority(d.Seniority); c.Seniority == profile.SeniorityUnknown {
			return nil, fmt.Errorf("candidate %q: unknown seniority %q: %w", d.ID, d.Seniority, domain.ErrInvalidInput)
		}
	}
	if d.Availability != "" {
		if c.Availability = profile.ParseAvailability(d.Availability); c.Availability == profile.AvailabilityUnknown {
			return nil, fmt.Errorf("candidate %q: unknown availability %q: %w", d.ID, d.Availability, domain.ErrInvalidInput)
		}
	}
	return c, nil
}

func toTask(d *TaskDTO) (*profile.Task, error) {
	t := &profile.Task{
		ID:             strings.TrimSpace(d.ID),
		RequiredSkills: maps.Clone(d.RequiredSkills),
		EstimatedHours: d.EstimatedHours,
		Department:     d.Department,
	}
	if d.Priority != "" {
		if t.Priority = profile.ParsePriority(d.Priority); t.Priority == profile.PriorityUnknown {
			return nil, fmt.Errorf("unknown priority %q: %w", d.Priority, domain.ErrInvalidInput)
		}
	}
	if d.Difficulty != "" {
		if t.Difficulty = profile.ParseDifficulty(d.Difficulty); t.Difficulty == profile.DifficultyUnknown {
			return nil, fmt.Errorf("unknown difficulty %q: %w", d.Difficulty, domain.ErrInvalidInput)
		}
	}
	return t, nil
}

// NewMatchResponse renders an assessment. Per-skill results are sorted by
// required skill.
func NewMatchResponse(a *match.Assessment) MatchResponse {
	keys := slices.Sorted(maps.Keys(a.PerSkill))
	perSkill := make([]SkillMatchDTO, 0, len(keys))
	for _, k := range keys {
		sm := a.PerSkill[k]
		perSkill = append(perSkill, SkillMatchDTO{
			Required: sm.Required, Type: sm.Type, Score: sm.Score, MatchedBy: sm.MatchedBy,
		})
	}
	categories := make([]string, len(a.MatchedCategories))
	for i, c := range a.MatchedCategories {
		categories[i] = string(c)
	}
	return MatchResponse{
		PerSkill:          perSkill,
		MatchTypeScore:    a.MatchTypeScore,
		ProficiencyScore:  a.ProficiencyScore,
		Score:             a.Score,
		Source:            a.Source,
		UsedAI:            a.UsedAI,
		MatchedSkills:     nonNil(a.MatchedSkills),
		MissingSkills:     nonNil(a.MissingSkills),
		MatchedCategories: categories,
		SimilarSkills:     nonNil(a.SimilarSkills),
	}
}

// NewThresholdResponse renders a threshold breakdown.
func NewThresholdResponse(b *threshold.Breakdown) ThresholdResponse {
	return ThresholdResponse{
		Minimum:           b.Minimum,
		Raw:               b.Raw,
		Difficulty:        string(b.Difficulty),
		DifficultyDerived: b.DifficultyDerived,
		Seniority:         b.Seniority.String(),
		Priority:          string(b.Priority),
		Specialized:       b.Specialized,
		Utilization:       b.Utilization,
		Lines:             b.Lines(),
	}
}

// NewRankResponse renders a ranking run. Exclusions are always counted and
// listed only when includeExcluded is set.
func NewRankResponse(res *rankinguc.Result, includeExcluded bool) RankResponse {
	out := RankResponse{
		RunID:           res.RunID,
		TaskID:          res.TaskID,
		Recommendations: make([]RecommendationDTO, 0, len(res.Recommendations)),
		ExcludedCount:   len(res.Excluded),
	}
	for i := range res.Recommendations {
		r := &res.Recommendations[i]
		out.Recommendations = append(out.Recommendations, RecommendationDTO{
			CandidateID:      r.CandidateID(),
			Rank:             r.Rank(),
			Score:            r.Score(),
			Composite:        r.Composite(),
			Flagged:          r.Flagged(),
			Boosted:          r.Boosted(),
			SubScores:        r.SubScores(),
			SkillMatchScore:  r.Assessment.Score,
			MatchTypeScore:   r.Assessment.MatchTypeScore,
			ProficiencyScore: r.Assessment.ProficiencyScore,
			Source:           r.Assessment.Source,
			UsedAI:           r.Assessment.UsedAI,
			Threshold:        r.Threshold.Minimum,
			MatchedSkills:    nonNil(r.Assessment.MatchedSkills),
			MissingSkills:    nonNil(r.Assessment.MissingSkills),
		})
	}
	if includeExcluded {
		out.Excluded = make([]ExclusionDTO, len(res.Excluded))
		for i, e := range res.Excluded {
			out.Excluded[i] = ExclusionDTO{
				CandidateID: e.CandidateID,
				Reason:      e.Reason,
				Score:       e.Score,
				Threshold:   e.Threshold.Minimum,
				Error:       e.Error,
			}
		}
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
