// Package matching evaluates how well a candidate's skills satisfy a task.
package matching

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	"github.com/kailas-cloud/skillmatch/internal/domain/profile"
	"github.com/kailas-cloud/skillmatch/internal/domain/skill"
	"github.com/kailas-cloud/skillmatch/internal/logger"
	"github.com/kailas-cloud/skillmatch/internal/metrics"
)

// unmatchedCredit is the partial credit for a missing skill on small requirement sets.
const (
	unmatchedCredit      = 0.1
	unmatchedCreditLimit = 5
)

// Engine runs the layered per-skill matcher and the fallback chain.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	resolver *skill.Resolver
	chain    []Matcher
	logger   *zap.Logger
}

// NewEngine builds an engine that tries matchers in order. The lexical
// matcher is always appended as the last resort.
func NewEngine(resolver *skill.Resolver, logger *zap.Logger, matchers ...Matcher) *Engine {
	if resolver == nil {
		resolver = skill.DefaultResolver()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{resolver: resolver, logger: logger}
	e.chain = make([]Matcher, 0, len(matchers)+1)
	for _, m := range matchers {
		if m != nil {
			e.chain = append(e.chain, m)
		}
	}
	e.chain = append(e.chain, &LexicalMatcher{engine: e})
	return e
}

// Chain returns the matcher names in evaluation order.
func (e *Engine) Chain() []string {
	names := make([]string, len(e.chain))
	for i, m := range e.chain {
		names[i] = m.Name()
	}
	return names
}

// MatchTypes classifies each required skill as EXACT, PARTIAL, SEMANTIC or
// NONE and returns the mean score. Candidate skills taken by an exact match
// are not reused for partial or semantic matches.
func (e *Engine) MatchTypes(candidate, required []string) (map[string]match.SkillMatch, float64) {
	req := skill.NormalizeSet(required)
	out := make(map[string]match.SkillMatch, len(req))
	if len(req) == 0 {
		return out, 1.0
	}
	have := skill.NormalizeSet(candidate)

	consumed := make(map[string]bool, len(have))
	for _, c := range have {
		consumed[c] = false
	}
	var pending []string
	for _, r := range req {
		if _, ok := consumed[r]; ok {
			consumed[r] = true
			out[r] = match.NewSkillMatch(r, match.Exact, r)
			continue
		}
		pending = append(pending, r)
	}

	for _, r := range pending {
		out[r] = e.looseMatch(r, have, consumed)
	}

	total := 0.0
	for _, m := range out {
		total += m.Score
	}
	return out, total / float64(len(req))
}

func (e *Engine) looseMatch(req string, have []string, consumed map[string]bool) match.SkillMatch {
	for _, c := range have {
		if consumed[c] {
			continue
		}
		if strings.Contains(c, req) || strings.Contains(req, c) {
			return match.NewSkillMatch(req, match.Partial, c)
		}
	}
	for _, c := range have {
		if consumed[c] {
			continue
		}
		if e.resolver.Related(req, c) {
			return match.NewSkillMatch(req, match.Semantic, c)
		}
	}
	return match.NewSkillMatch(req, match.None, "")
}

// ProficiencyScore weighs each matched required skill by how close the
// candidate's level is to the required level, capped at 1 per skill.
// Unmatched skills earn a small credit when at most five are required.
func (e *Engine) ProficiencyScore(candidate, required map[string]float64) float64 {
	req := skill.NormalizeLevels(required)
	if len(req) == 0 {
		return 1.0
	}
	have := skill.NormalizeLevels(candidate)
	perSkill, _ := e.MatchTypes(skill.Names(have), skill.Names(req))

	total := 0.0
	for name, want := range req {
		m := perSkill[name]
		if m.Type == match.None {
			if len(req) <= unmatchedCreditLimit {
				total += unmatchedCredit
			}
			continue
		}
		if want <= 0 {
			total += 1.0
			continue
		}
		total += min(1.0, have[m.MatchedBy]/want)
	}
	return total / float64(len(req))
}

// Assess evaluates cand against task. It never fails: when no matcher in the
// chain answers, the lexical matcher does.
func (e *Engine) Assess(ctx context.Context, cand *profile.Candidate, task *profile.Task) match.Assessment {
	user := cand.SkillNames()
	required := task.RequiredNames()

	perSkill, typeScore := e.MatchTypes(user, required)
	a := match.Assessment{
		PerSkill:          perSkill,
		MatchTypeScore:    typeScore,
		ProficiencyScore:  e.ProficiencyScore(cand.Skills, task.RequiredSkills),
		MatchedSkills:     skill.Matched(user, required),
		MissingSkills:     skill.Missing(user, required),
		MatchedCategories: skill.MatchedCategories(user, required),
	}

	out := e.Run(ctx, user, required)
	a.Score = out.OverallScore
	a.Source = out.Source
	a.UsedAI = out.UsedAI
	a.SimilarSkills = out.SimilarSkills
	return a
}

// Run walks the matcher chain and returns the first answer.
func (e *Engine) Run(ctx context.Context, user, required []string) match.Outcome {
	log := logger.FromContext(ctx, e.logger)
	for _, m := range e.chain {
		out, ok := m.Match(ctx, user, required)
		if !ok {
			metrics.MatcherDeclinedTotal.WithLabelValues(m.Name()).Inc()
			log.Debug("Matcher declined", zap.String("matcher", m.Name()))
			continue
		}
		metrics.MatcherSelectedTotal.WithLabelValues(m.Name()).Inc()
		out.OverallScore = clamp01(out.OverallScore)
		return out
	}
	// unreachable: the lexical matcher never declines
	return match.Outcome{Source: match.SourceLexical}
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
