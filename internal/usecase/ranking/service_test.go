package ranking

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	"github.com/kailas-cloud/skillmatch/internal/domain/profile"
	"github.com/kailas-cloud/skillmatch/internal/usecase/matching"
)

func mediumTask(p profile.Priority) *profile.Task {
	return &profile.Task{
		ID:             "t-1",
		RequiredSkills: map[string]float64{"go": 3},
		Difficulty:     profile.DifficultyMedium,
		Priority:       p,
	}
}

func midCandidate(id string) *profile.Candidate {
	return &profile.Candidate{ID: id, Seniority: profile.Mid}
}

func ids(recs []Ranked) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.CandidateID()
	}
	return out
}

func TestRank_QualifiesAndOrders(t *testing.T) {
	assessor := &mockAssessor{scores: map[string]float64{"a": 0.8, "b": 0.6, "low": 0.1}}
	svc := New(assessor, Config{}, nil)

	res := svc.Rank(context.Background(), mediumTask(profile.PriorityMedium),
		[]*profile.Candidate{midCandidate("b"), midCandidate("low"), midCandidate("a")}, Options{})

	_, err := uuid.Parse(res.RunID)
	require.NoError(t, err)
	assert.Equal(t, "t-1", res.TaskID)

	require.Equal(t, []string{"a", "b"}, ids(res.Recommendations))
	assert.Equal(t, 1, res.Recommendations[0].Rank())
	assert.Equal(t, 2, res.Recommendations[1].Rank())
	assert.InDelta(t, 0.62, res.Recommendations[0].Score(), 1e-9)
	assert.InDelta(t, 0.54, res.Recommendations[1].Score(), 1e-9)
	assert.InDelta(t, 0.15, res.Recommendations[0].Threshold.Minimum, 1e-9)

	require.Len(t, res.Excluded, 1)
	assert.Equal(t, "low", res.Excluded[0].CandidateID)
	assert.Equal(t, ReasonBelowThreshold, res.Excluded[0].Reason)
	assert.InDelta(t, 0.15, res.Excluded[0].Threshold.Minimum, 1e-9)
}

func TestRank_PriorityRoleBoost(t *testing.T) {
	assessor := &mockAssessor{scores: map[string]float64{"plain": 0.7, "lead": 0.6}}
	svc := New(assessor, Config{Boost: 0.2}, nil)
	lead := midCandidate("lead")
	lead.Role = "Tech Lead"

	res := svc.Rank(context.Background(), mediumTask(profile.PriorityHigh),
		[]*profile.Candidate{midCandidate("plain"), lead}, Options{})

	require.Equal(t, []string{"lead", "plain"}, ids(res.Recommendations))
	assert.True(t, res.Recommendations[0].Boosted())
	assert.InDelta(t, 0.74, res.Recommendations[0].Score(), 1e-9)
	assert.InDelta(t, 0.58, res.Recommendations[1].Score(), 1e-9)

	calm := svc.Rank(context.Background(), mediumTask(profile.PriorityLow),
		[]*profile.Candidate{midCandidate("plain"), lead}, Options{})
	require.Equal(t, []string{"plain", "lead"}, ids(calm.Recommendations))
	assert.False(t, calm.Recommendations[1].Boosted())
}

func TestRank_DedupKeepsFirst(t *testing.T) {
	assessor := &mockAssessor{scores: map[string]float64{"a": 0.8}}
	svc := New(assessor, Config{}, nil)
	first := midCandidate("a")
	second := midCandidate("a")
	second.Availability = profile.AvailabilityAvailable

	res := svc.Rank(context.Background(), mediumTask(profile.PriorityMedium),
		[]*profile.Candidate{first, nil, second}, Options{})

	require.Len(t, res.Recommendations, 1)
	assert.InDelta(t, 0.5, res.Recommendations[0].SubScores().Availability, 1e-9)
	assert.Equal(t, 1, assessor.count("a"))
}

func TestRank_TopK(t *testing.T) {
	scores := map[string]float64{"a": 0.9, "b": 0.8, "c": 0.7, "d": 0.6}
	svc := New(&mockAssessor{scores: scores}, Config{Concurrency: 2}, nil)
	pool := []*profile.Candidate{midCandidate("d"), midCandidate("c"), midCandidate("b"), midCandidate("a")}

	res := svc.Rank(context.Background(), mediumTask(profile.PriorityMedium), pool, Options{TopK: 2})
	assert.Equal(t, []string{"a", "b"}, ids(res.Recommendations))

	all := svc.Rank(context.Background(), mediumTask(profile.PriorityMedium), pool, Options{})
	assert.Len(t, all.Recommendations, 4)
}

func TestRank_EmptyPool(t *testing.T) {
	svc := New(&mockAssessor{}, Config{}, nil)

	res := svc.Rank(context.Background(), mediumTask(profile.PriorityMedium), nil, Options{TopK: 10})

	assert.NotEmpty(t, res.RunID)
	assert.NotNil(t, res.Recommendations)
	assert.Empty(t, res.Recommendations)
	assert.Empty(t, res.Excluded)
}

func TestRank_NoneQualify(t *testing.T) {
	svc := New(&mockAssessor{scores: map[string]float64{"a": 0.05, "b": 0.1}}, Config{}, nil)

	res := svc.Rank(context.Background(), mediumTask(profile.PriorityMedium),
		[]*profile.Candidate{midCandidate("a"), midCandidate("b")}, Options{})

	assert.Empty(t, res.Recommendations)
	assert.Len(t, res.Excluded, 2)
}

func TestRank_ScoringFailureIsExcluded(t *testing.T) {
	assessor := &mockAssessor{
		scores: map[string]float64{"ok": 0.8, "boom": 0.9},
		panics: map[string]bool{"boom": true},
	}
	svc := New(assessor, Config{}, nil)

	res := svc.Rank(context.Background(), mediumTask(profile.PriorityMedium),
		[]*profile.Candidate{midCandidate("boom"), midCandidate("ok")}, Options{})

	assert.Equal(t, []string{"ok"}, ids(res.Recommendations))
	require.Len(t, res.Excluded, 1)
	assert.Equal(t, "boom", res.Excluded[0].CandidateID)
	assert.Equal(t, ReasonScoringFailed, res.Excluded[0].Reason)
	assert.Contains(t, res.Excluded[0].Error, "panic")
}

func TestRank_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := New(&mockAssessor{scores: map[string]float64{"a": 0.9}}, Config{}, nil)

	res := svc.Rank(ctx, mediumTask(profile.PriorityMedium), []*profile.Candidate{midCandidate("a")}, Options{})

	assert.Empty(t, res.Recommendations)
	require.Len(t, res.Excluded, 1)
	assert.Equal(t, ReasonScoringFailed, res.Excluded[0].Reason)
}

func TestRank_WithLocalEngine(t *testing.T) {
	engine := matching.NewEngine(nil, nil, matching.BlendMatcher{})
	svc := New(engine, Config{}, nil)
	task := &profile.Task{
		ID:             "task-a",
		RequiredSkills: map[string]float64{"React": 4.0, "Node.js": 3.0},
		Priority:       profile.PriorityHigh,
		Difficulty:     profile.DifficultyHard,
	}
	cand := &profile.Candidate{
		ID:                "cand-a",
		Skills:            map[string]float64{"react": 5.0, "javascript": 4.0},
		Seniority:         profile.Senior,
		ExperienceYears:   profile.Float(6),
		WorkloadHours:     profile.Float(15),
		PerformanceRating: profile.Float(4.5),
	}

	res := svc.Rank(context.Background(), task, []*profile.Candidate{cand}, Options{})

	require.Len(t, res.Recommendations, 1)
	r := res.Recommendations[0]
	assert.InDelta(t, 0.53, r.Assessment.Score, 1e-9)
	assert.InDelta(t, 0.75, r.Assessment.MatchTypeScore, 1e-9)
	assert.InDelta(t, 0.31, r.Threshold.Minimum, 1e-9)
	assert.True(t, r.Flagged())
}

func TestSubScores(t *testing.T) {
	c := &profile.Candidate{
		WorkloadHours:      profile.Float(10),
		PerformanceRating:  profile.Float(4),
		CompletionRate:     profile.Float(0.9),
		Availability:       profile.AvailabilityBusy,
		CollaborationScore: profile.Float(0.7),
		Department:         "FE",
	}
	s := subScores(c, &profile.Task{Department: "Frontend"}, 0.6)

	assert.InDelta(t, 0.6, s.Skill, 1e-9)
	assert.InDelta(t, 0.75, s.Workload, 1e-9)
	assert.InDelta(t, 0.83, s.Performance, 1e-9)
	assert.InDelta(t, 0.4, s.Availability, 1e-9)
	assert.InDelta(t, 0.7, s.Collaboration, 1e-9)
	assert.InDelta(t, 1.0, s.RoleFit, 1e-9)
}

func TestRoleFit(t *testing.T) {
	tests := []struct {
		task, cand string
		want       float64
	}{
		{"backend", "BE", 1.0},
		{"Platform", "platform", 1.0},
		{"frontend", "backend", 0.2},
		{"", "backend", 0.5},
		{"data", "", 0.5},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.want, roleFit(tc.task, tc.cand), 1e-9, "%q vs %q", tc.task, tc.cand)
	}
}

func TestPerformanceDefaults(t *testing.T) {
	assert.InDelta(t, 0.5, performance(&profile.Candidate{}), 1e-9)
	assert.InDelta(t, 0.85, performance(&profile.Candidate{PerformanceRating: profile.Float(5)}), 1e-9)
}

// --- Mocks ---

type mockAssessor struct {
	scores map[string]float64
	panics map[string]bool
	calls  syncCounter
}

func (m *mockAssessor) Assess(_ context.Context, c *profile.Candidate, _ *profile.Task) match.Assessment {
	m.calls.inc(c.ID)
	if m.panics[c.ID] {
		panic("assessor exploded")
	}
	return match.Assessment{Score: m.scores[c.ID], Source: match.SourceLexical}
}

func (m *mockAssessor) count(id string) int { return m.calls.get(id) }

type syncCounter struct {
	mu sync.Mutex
	n  map[string]int
}

func (c *syncCounter) inc(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n == nil {
		c.n = make(map[string]int)
	}
	c.n[id]++
}

func (c *syncCounter) get(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n[id]
}
