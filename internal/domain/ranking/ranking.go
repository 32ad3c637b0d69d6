// Package ranking turns scored candidates into one strictly ordered,
// densely ranked list. Every tie-break is derived from the inputs, so the
// same entries always produce the same ranking.
package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/kailas-cloud/skillmatch/internal/domain/profile"
)

// DefaultBoost is added to flagged candidates on elevated-priority tasks.
const DefaultBoost = 0.20

// SubScores are the per-candidate signals in [0, 1].
type SubScores struct {
	Skill         float64 `json:"skill"`
	Workload      float64 `json:"workload"`
	Performance   float64 `json:"performance"`
	Availability  float64 `json:"availability"`
	Collaboration float64 `json:"collaboration"`
	RoleFit       float64 `json:"role_fit"`
}

// Composite is the weighted blend of s under normalized w.
func (s SubScores) Composite(w Weights) float64 {
	n := w.Normalized()
	return s.Skill*n.Skill +
		s.Workload*n.Workload +
		s.Performance*n.Performance +
		s.Availability*n.Availability +
		s.Collaboration*n.Collaboration +
		s.RoleFit*n.RoleFit
}

// Policy controls how entries are composed.
type Policy struct {
	Weights  Weights
	Boost    float64
	Elevated bool // task priority is HIGH or CRITICAL
}

// Entry is one candidate ready for differentiation.
type Entry struct {
	CandidateID string
	Scores      SubScores
	Flagged     bool
	Boosted     bool
	Composite   float64
}

// NewEntry computes the composite for a candidate and applies the
// priority-role boost when the policy allows it.
func NewEntry(id string, s SubScores, flagged bool, p Policy) Entry {
	e := Entry{CandidateID: id, Scores: s, Flagged: flagged, Composite: s.Composite(p.Weights)}
	if p.Elevated && flagged && p.Boost > 0 {
		e.Composite = math.Min(1, e.Composite+p.Boost)
		e.Boosted = true
	}
	return e
}

var priorityRoleTerms = []string{"lead", "senior", "manager", "architect"}

// PriorityRole reports whether c is eligible for the priority-role boost.
func PriorityRole(c *profile.Candidate) bool {
	role := strings.ToLower(c.Role)
	for _, term := range priorityRoleTerms {
		if strings.Contains(role, term) {
			return true
		}
	}
	if c.Experience() >= 5 {
		return true
	}
	return c.PerformanceRating != nil && *c.PerformanceRating >= 4.0
}

// Recommendation is an immutable ranked candidate.
type Recommendation struct {
	candidateID string
	score       float64
	composite   float64
	rank        int
	flagged     bool
	boosted     bool
	scores      SubScores
}

// CandidateID returns the candidate identifier.
func (r *Recommendation) CandidateID() string { return r.candidateID }

// Score returns the final differentiated score.
func (r *Recommendation) Score() float64 { return r.score }

// Composite returns the score before tie differentiation.
func (r *Recommendation) Composite() float64 { return r.composite }

// Rank returns the 1-based position.
func (r *Recommendation) Rank() int { return r.rank }

// Flagged reports whether the candidate holds a priority role.
func (r *Recommendation) Flagged() bool { return r.flagged }

// Boosted reports whether the priority-role boost was applied.
func (r *Recommendation) Boosted() bool { return r.boosted }

// SubScores returns the inputs of the composite.
func (r *Recommendation) SubScores() SubScores { return r.scores }

type adjusted struct {
	entry Entry
	order int     // input position
	merit float64 // tie bonus before the position step
	score float64
}

// Differentiate orders entries and assigns dense ranks 1..N.
//
// Entries whose composites agree to four decimals form a tie group. A group
// is ordered by merit (skill, performance and availability scores plus the
// flag), then candidate ID, and each member gets its merit minus a step per
// position, so members of one group end at least a step apart. Scores that
// still collide after rounding, including across groups, go to the higher
// composite and the other is pushed down by one unit in the fourth decimal,
// so final scores are strictly decreasing.
func Differentiate(entries []Entry) []Recommendation {
	if len(entries) == 0 {
		return []Recommendation{}
	}

	items := make([]adjusted, len(entries))
	for i, e := range entries {
		items[i] = adjusted{entry: e, order: i, merit: merit(e), score: e.Composite}
	}

	sort.Slice(items, func(i, j int) bool {
		ki, kj := units(items[i].entry.Composite), units(items[j].entry.Composite)
		if ki != kj {
			return ki > kj
		}
		return precedes(&items[i], &items[j])
	})

	for start := 0; start < len(items); {
		key := units(items[start].entry.Composite)
		end := start + 1
		for end < len(items) && units(items[end].entry.Composite) == key {
			end++
		}
		if end-start > 1 {
			for idx := start; idx < end; idx++ {
				items[idx].score += items[idx].merit - float64(idx-start)*positionStep
			}
		}
		start = end
	}

	sort.Slice(items, func(i, j int) bool {
		si, sj := units(items[i].score), units(items[j].score)
		if si != sj {
			return si > sj
		}
		if ci, cj := units(items[i].entry.Composite), units(items[j].entry.Composite); ci != cj {
			return ci > cj
		}
		return precedes(&items[i], &items[j])
	})

	out := make([]Recommendation, len(items))
	prev := int64(0)
	for i, it := range items {
		u := units(it.score)
		if i > 0 && u >= prev {
			u = prev - 1
		}
		prev = u
		out[i] = Recommendation{
			candidateID: it.entry.CandidateID,
			score:       float64(u) / 1e4,
			composite:   round4(it.entry.Composite),
			rank:        i + 1,
			flagged:     it.entry.Flagged,
			boosted:     it.entry.Boosted,
			scores:      it.entry.Scores,
		}
	}
	return out
}

const positionStep = 0.001

func merit(e Entry) float64 {
	m := e.Scores.Skill*0.01 + e.Scores.Performance*0.005 + e.Scores.Availability*0.005
	if e.Flagged {
		m += 0.01
	}
	return m
}

// precedes breaks ties between a and b: higher merit, flagged, higher skill,
// performance and availability, lower candidate ID, then input order.
func precedes(a, b *adjusted) bool {
	if a.merit != b.merit {
		return a.merit > b.merit
	}
	if a.entry.Flagged != b.entry.Flagged {
		return a.entry.Flagged
	}
	as, bs := a.entry.Scores, b.entry.Scores
	if as.Skill != bs.Skill {
		return as.Skill > bs.Skill
	}
	if as.Performance != bs.Performance {
		return as.Performance > bs.Performance
	}
	if as.Availability != bs.Availability {
		return as.Availability > bs.Availability
	}
	if a.entry.CandidateID != b.entry.CandidateID {
		return a.entry.CandidateID < b.entry.CandidateID
	}
	return a.order < b.order
}

// units is v in steps of 1e-4.
func units(v float64) int64 {
	return int64(math.Round(v * 1e4))
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
