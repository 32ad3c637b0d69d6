package skillmatch

import domrank "github.com/kailas-cloud/skillmatch/internal/domain/ranking"

// Weights of the ranking sub-scores. They must sum to 1.
type Weights = domrank.Weights

// SubScores are the per-factor scores of a recommendation, each in [0,1].
type SubScores = domrank.SubScores

// DefaultBoost is added to priority-role candidates on high and critical tasks.
const DefaultBoost = domrank.DefaultBoost

// DefaultWeights returns the stock blend.
func DefaultWeights() Weights { return domrank.DefaultWeights() }

// Float returns a pointer to v, for the optional fields of Candidate and Task.
func Float(v float64) *float64 { return &v }

// Candidate is a person who may take a task. Enumerations are
// case-insensitive strings; unknown values are rejected with ErrInvalidInput.
type Candidate struct {
	ID                 string
	Skills             map[string]float64 // skill → level 0..5
	Seniority          string             // intern, junior, mid, senior, lead, principal
	ExperienceYears    *float64
	WorkloadHours      *float64 // booked hours per week
	Availability       string   // available, busy, unavailable
	PerformanceRating  *float64 // 0..5
	CompletionRate     *float64 // 0..1
	CollaborationScore *float64 // 0..1
	Role               string
	Department         string
}

// Task is work that needs skilled people.
type Task struct {
	ID             string
	RequiredSkills map[string]float64 // skill → required level 0..5
	Priority       string             // low, medium, high, critical
	Difficulty     string             // easy, medium, hard, expert; derived when empty
	EstimatedHours *float64
	Department     string
}

// SkillMatch is the result for one required skill.
type SkillMatch struct {
	Required  string
	Type      string // EXACT, PARTIAL, SEMANTIC, NONE
	Score     float64
	MatchedBy string
}

// SimilarSkill pairs a required skill with the closest skill the candidate has.
type SimilarSkill struct {
	Required   string
	UserHas    string
	Similarity float64
}

// MatchResult is the skill assessment of one candidate against one task.
type MatchResult struct {
	PerSkill          []SkillMatch // sorted by required skill
	MatchTypeScore    float64
	ProficiencyScore  float64
	Score             float64 // the score compared against the threshold
	Source            string  // remote, embedding, blend or lexical
	UsedAI            bool
	MatchedSkills     []string
	MissingSkills     []string
	MatchedCategories []string
	SimilarSkills     []SimilarSkill
}

// ThresholdFactor is one itemized step of a threshold.
type ThresholdFactor struct {
	Factor string
	Value  float64
	Detail string
}

// ThresholdResult is the minimum skill score a candidate needs for a task.
type ThresholdResult struct {
	Minimum     float64
	Raw         float64
	Difficulty  string
	Specialized bool
	Factors     []ThresholdFactor
}

// Recommendation is a ranked, qualified candidate.
type Recommendation struct {
	CandidateID  string
	Rank         int
	Score        float64
	Composite    float64
	PriorityRole bool
	Boosted      bool
	SubScores    SubScores
	Match        MatchResult
	Threshold    float64
}

// Exclusion is a candidate left out of a ranking.
type Exclusion struct {
	CandidateID string
	Reason      string // below_threshold or scoring_failed
	Score       float64
	Threshold   float64
	Error       string
}

// RankResult is the outcome of one ranking run.
type RankResult struct {
	RunID           string
	TaskID          string
	Recommendations []Recommendation
	Excluded        []Exclusion
}
