// Package match holds the value types produced by skill matching.
package match

import "github.com/kailas-cloud/skillmatch/internal/domain/skill"

// Type classifies how a required skill was satisfied.
type Type string

// Match types, strongest first.
const (
	Exact    Type = "EXACT"
	Partial  Type = "PARTIAL"
	Semantic Type = "SEMANTIC"
	None     Type = "NONE"
)

// Score is the fixed weight of a match type.
func (t Type) Score() float64 {
	switch t {
	case Exact:
		return 1.0
	case Partial:
		return 0.7
	case Semantic:
		return 0.5
	default:
		return 0.0
	}
}

// SkillMatch is the result for one required skill.
type SkillMatch struct {
	Required  string // canonical required skill
	Type      Type
	Score     float64
	MatchedBy string // canonical candidate skill, empty for None
}

// NewSkillMatch builds a SkillMatch with the score implied by t.
func NewSkillMatch(required string, t Type, matchedBy string) SkillMatch {
	if t == None {
		matchedBy = ""
	}
	return SkillMatch{Required: required, Type: t, Score: t.Score(), MatchedBy: matchedBy}
}

// Source names the matcher that produced an assessment score.
type Source string

// Matcher sources in fallback order.
const (
	SourceRemote    Source = "remote"
	SourceEmbedding Source = "embedding"
	SourceBlend     Source = "blend"
	SourceLexical   Source = "lexical"
)

// SimilarPair links a required skill to the closest skill the user has.
type SimilarPair struct {
	Required   string  `json:"required"`
	UserHas    string  `json:"user_has"`
	Similarity float64 `json:"similarity"`
}

// Outcome is what a single matcher in the fallback chain returns.
type Outcome struct {
	Source          Source
	UsedAI          bool
	ExactScore      float64
	SimilarityScore float64
	OverallScore    float64
	MatchedSkills   []string
	SimilarSkills   []SimilarPair
}

// Assessment is the full skill evaluation of one candidate for one task.
type Assessment struct {
	PerSkill          map[string]SkillMatch // keyed by canonical required skill
	MatchTypeScore    float64               // mean of per-skill type scores
	ProficiencyScore  float64               // proficiency-gap aware score
	Score             float64               // score from the fallback chain
	Source            Source
	UsedAI            bool
	MatchedSkills     []string
	MissingSkills     []string
	MatchedCategories []skill.Category
	SimilarSkills     []SimilarPair
}
