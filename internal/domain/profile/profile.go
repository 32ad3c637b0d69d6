// Package profile defines the read-only task and candidate snapshots the
// engine scores. Optional numeric inputs are pointers: nil means unknown and
// resolves to a documented default, never to an error.
package profile

import "strings"

// StandardWeekHours is the capacity utilization is measured against.
const StandardWeekHours = 40.0

// Candidate is one worker being considered for a task.
type Candidate struct {
	ID                 string
	Skills             map[string]float64 // raw skill name -> proficiency
	Seniority          Seniority
	ExperienceYears    *float64
	WorkloadHours      *float64 // hours already committed this week
	Availability       Availability
	PerformanceRating  *float64 // 0..5
	CompletionRate     *float64 // 0..1
	CollaborationScore *float64 // 0..1, supplied by the caller
	Role               string
	Department         string
}

// SkillNames returns the raw skill names.
func (c *Candidate) SkillNames() []string {
	out := make([]string, 0, len(c.Skills))
	for name := range c.Skills {
		out = append(out, name)
	}
	return out
}

// Experience returns years of experience, 0 when unknown.
func (c *Candidate) Experience() float64 {
	if c.ExperienceYears == nil {
		return 0
	}
	return *c.ExperienceYears
}

// Utilization is committed hours over a standard week, capped at 1.
// Unknown workload counts as half-booked.
func (c *Candidate) Utilization() float64 {
	if c.WorkloadHours == nil {
		return 0.5
	}
	u := *c.WorkloadHours / StandardWeekHours
	switch {
	case u < 0:
		return 0
	case u > 1:
		return 1
	default:
		return u
	}
}

// EffectiveSeniority resolves the level from the explicit field, then from
// keywords in the role, then from years of experience. Defaults to Mid.
func (c *Candidate) EffectiveSeniority() Seniority {
	if c.Seniority != SeniorityUnknown {
		return c.Seniority
	}
	if role := strings.ToUpper(c.Role); role != "" {
		switch {
		case strings.Contains(role, "PRINCIPAL"), strings.Contains(role, "EXPERT"):
			return Principal
		case strings.Contains(role, "LEAD"):
			return Lead
		case strings.Contains(role, "SENIOR"):
			return Senior
		case strings.Contains(role, "JUNIOR"):
			return Junior
		case strings.Contains(role, "INTERN"):
			return Intern
		}
	}
	if c.ExperienceYears != nil {
		y := *c.ExperienceYears
		switch {
		case y >= 10:
			return Principal
		case y >= 7:
			return Lead
		case y >= 5:
			return Senior
		case y >= 2:
			return Mid
		case y >= 1:
			return Junior
		default:
			return Intern
		}
	}
	return Mid
}

// Task is the unit of work candidates are ranked for.
type Task struct {
	ID             string
	RequiredSkills map[string]float64 // raw skill name -> minimum proficiency
	Priority       Priority
	Difficulty     Difficulty
	EstimatedHours *float64
	Department     string
}

// RequiredNames returns the raw required skill names.
func (t *Task) RequiredNames() []string {
	out := make([]string, 0, len(t.RequiredSkills))
	for name := range t.RequiredSkills {
		out = append(out, name)
	}
	return out
}

// EffectiveDifficulty returns the stated difficulty, or derives one from
// estimated hours and priority when it is missing.
func (t *Task) EffectiveDifficulty() Difficulty {
	if t.Difficulty != DifficultyUnknown {
		return t.Difficulty
	}
	score := 0
	if t.EstimatedHours != nil {
		switch h := *t.EstimatedHours; {
		case h > 40:
			score += 2
		case h > 20:
			score++
		}
	}
	switch t.Priority {
	case PriorityCritical:
		score += 2
	case PriorityHigh:
		score++
	case PriorityLow:
		score--
	}
	switch {
	case score >= 3:
		return DifficultyHard
	case score >= 1:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// Float returns a pointer to v. Handy for building profiles in code.
func Float(v float64) *float64 { return &v }
