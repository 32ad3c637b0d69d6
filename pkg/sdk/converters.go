package skillmatch

import (
	"fmt"
	"maps"
	"slices"

	"github.com/kailas-cloud/skillmatch/internal/domain"
	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	"github.com/kailas-cloud/skillmatch/internal/domain/profile"
	"github.com/kailas-cloud/skillmatch/internal/domain/threshold"
	rankinguc "github.com/kailas-cloud/skillmatch/internal/usecase/ranking"
)

func candidateToDomain(c *Candidate) (*profile.Candidate, error) {
	out := &profile.Candidate{
		ID:                 c.ID,
		Skills:             maps.Clone(c.Skills),
		ExperienceYears:    c.ExperienceYears,
		WorkloadHours:      c.WorkloadHours,
		PerformanceRating:  c.PerformanceRating,
		CompletionRate:     c.CompletionRate,
		CollaborationScore: c.CollaborationScore,
		Role:               c.Role,
		Department:         c.Department,
	}
	if c.Seniority != "" {
		if out.Seniority = profile.ParseSeniority(c.Seniority); out.Seniority == profile.SeniorityUnknown {
			return nil, fmt.Errorf("candidate %q: unknown seniority %q: %w", c.ID, c.Seniority, domain.ErrInvalidInput)
		}
	}
	if c.Availability != "" {
		if out.Availability = profile.ParseAvailability(c.Availability); out.Availability == profile.AvailabilityUnknown {
			return nil, fmt.Errorf("candidate %q: unknown availability %q: %w", c.ID, c.Availability, domain.ErrInvalidInput)
		}
	}
	return out, nil
}

func taskToDomain(t *Task) (*profile.Task, error) {
	out := &profile.Task{
		ID:             t.ID,
		RequiredSkills: maps.Clone(t.RequiredSkills),
		EstimatedHours: t.EstimatedHours,
		Department:     t.Department,
	}
	if t.Priority != "" {
		if out.Priority = profile.ParsePriority(t.Priority); out.Priority == profile.PriorityUnknown {
			return nil, fmt.Errorf("unknown priority %q: %w", t.Priority, domain.ErrInvalidInput)
		}
	}
	if t.Difficulty != "" {
		if out.Difficulty = profile.ParseDifficulty(t.Difficulty); out.Difficulty == profile.DifficultyUnknown {
			return nil, fmt.Errorf("unknown difficulty %q: %w", t.Difficulty, domain.ErrInvalidInput)
		}
	}
	return out, nil
}

func matchFromDomain(a *match.Assessment) MatchResult {
	out := MatchResult{
		MatchTypeScore:   a.MatchTypeScore,
		ProficiencyScore: a.ProficiencyScore,
		Score:            a.Score,
		Source:           string(a.Source),
		UsedAI:           a.UsedAI,
		MatchedSkills:    a.MatchedSkills,
		MissingSkills:    a.MissingSkills,
	}
	for _, k := range slices.Sorted(maps.Keys(a.PerSkill)) {
		sm := a.PerSkill[k]
		out.PerSkill = append(out.PerSkill, SkillMatch{
			Required: sm.Required, Type: string(sm.Type), Score: sm.Score, MatchedBy: sm.MatchedBy,
		})
	}
	for _, c := range a.MatchedCategories {
		out.MatchedCategories = append(out.MatchedCategories, string(c))
	}
	for _, p := range a.SimilarSkills {
		out.SimilarSkills = append(out.SimilarSkills, SimilarSkill{
			Required: p.Required, UserHas: p.UserHas, Similarity: p.Similarity,
		})
	}
	return out
}

func thresholdFromDomain(b *threshold.Breakdown) ThresholdResult {
	out := ThresholdResult{
		Minimum:     b.Minimum,
		Raw:         b.Raw,
		Difficulty:  string(b.Difficulty),
		Specialized: b.Specialized,
	}
	for _, l := range b.Lines() {
		out.Factors = append(out.Factors, ThresholdFactor(l))
	}
	return out
}

func rankFromDomain(res *rankinguc.Result) RankResult {
	out := RankResult{
		RunID:           res.RunID,
		TaskID:          res.TaskID,
		Recommendations: make([]Recommendation, 0, len(res.Recommendations)),
		Excluded:        make([]Exclusion, 0, len(res.Excluded)),
	}
	for i := range res.Recommendations {
		r := &res.Recommendations[i]
		out.Recommendations = append(out.Recommendations, Recommendation{
			CandidateID:  r.CandidateID(),
			Rank:         r.Rank(),
			Score:        r.Score(),
			Composite:    r.Composite(),
			PriorityRole: r.Flagged(),
			Boosted:      r.Boosted(),
			SubScores:    r.SubScores(),
			Match:        matchFromDomain(&r.Assessment),
			Threshold:    r.Threshold.Minimum,
		})
	}
	for _, e := range res.Excluded {
		out.Excluded = append(out.Excluded, Exclusion{
			CandidateID: e.CandidateID,
			Reason:      e.Reason,
			Score:       e.Score,
			Threshold:   e.Threshold.Minimum,
			Error:       e.Error,
		})
	}
	return out
}
