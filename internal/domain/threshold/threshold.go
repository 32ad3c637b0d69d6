// Package threshold computes the minimum skill-match score a candidate must
// reach to qualify for a task. The calculation is a pure function of the
// task and candidate metadata and never consults the match engine.
package threshold

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/skillmatch/internal/domain/profile"
	"github.com/kailas-cloud/skillmatch/internal/domain/skill"
)

// Bounds of every threshold.
const (
	Min              = 0.05
	Max              = 0.80
	SpecializedFloor = 0.50
)

// Breakdown itemizes how a threshold was reached.
type Breakdown struct {
	Difficulty          profile.Difficulty
	DifficultyDerived   bool
	Base                float64
	Seniority           profile.Seniority
	SeniorityAdjustment float64
	Priority            profile.Priority
	PriorityAdjustment  float64
	Specialized         bool
	SpecializationLift  float64 // how far the specialization floor raised the total
	ExperienceBonus     float64 // subtracted
	Utilization         float64
	WorkloadPenalty     float64 // added
	Raw                 float64 // before clamping
	Minimum             float64
}

// Calculate derives the qualification threshold for cand on task.
//
// The specialization floor applies to the running total after the priority
// step and again after the experience bonus, so a specialized task never
// drops below SpecializedFloor however experienced the candidate is.
func Calculate(task *profile.Task, cand *profile.Candidate) Breakdown {
	b := Breakdown{
		Difficulty:        task.EffectiveDifficulty(),
		DifficultyDerived: task.Difficulty == profile.DifficultyUnknown,
		Seniority:         cand.EffectiveSeniority(),
		Priority:          task.Priority,
		Specialized:       isSpecialized(task),
		Utilization:       cand.Utilization(),
	}
	b.Base = baseFor(b.Difficulty)
	b.SeniorityAdjustment = seniorityAdjustment(b.Seniority)
	b.PriorityAdjustment = priorityAdjustment(b.Priority)
	b.ExperienceBonus = experienceBonus(cand.Experience())
	b.WorkloadPenalty = workloadPenalty(b.Utilization)

	total := b.Base + b.SeniorityAdjustment + b.PriorityAdjustment
	total = b.floor(total)
	total -= b.ExperienceBonus
	total = b.floor(total)
	total += b.WorkloadPenalty

	b.Raw = round4(total)
	b.Minimum = round4(clamp(total, Min, Max))
	return b
}

func (b *Breakdown) floor(total float64) float64 {
	if b.Specialized && total < SpecializedFloor {
		b.SpecializationLift += SpecializedFloor - total
		return SpecializedFloor
	}
	return total
}

// Qualifies reports whether score clears the threshold.
func (b Breakdown) Qualifies(score float64) bool {
	return round4(score) >= b.Minimum
}

// Line is one itemized factor of a breakdown.
type Line struct {
	Factor string  `json:"factor"`
	Value  float64 `json:"value"`
	Detail string  `json:"detail"`
}

// Lines returns the breakdown as signed contributions in evaluation order.
func (b Breakdown) Lines() []Line {
	diff := string(b.Difficulty)
	if b.DifficultyDerived {
		diff += " (derived from priority and hours)"
	}
	priority := string(b.Priority)
	if priority == "" {
		priority = "unspecified"
	}
	return []Line{
		{Factor: "difficulty_base", Value: b.Base, Detail: diff},
		{Factor: "seniority", Value: b.SeniorityAdjustment, Detail: b.Seniority.String()},
		{Factor: "priority", Value: b.PriorityAdjustment, Detail: priority},
		{
			Factor: "specialization_floor", Value: round4(b.SpecializationLift),
			Detail: fmt.Sprintf("specialized=%t", b.Specialized),
		},
		{Factor: "experience_bonus", Value: -b.ExperienceBonus},
		{
			Factor: "workload_penalty", Value: b.WorkloadPenalty,
			Detail: fmt.Sprintf("utilization=%.0f%%", b.Utilization*100),
		},
	}
}

func isSpecialized(task *profile.Task) bool {
	for name := range task.RequiredSkills {
		if skill.IsSpecialized(name) {
			return true
		}
	}
	return false
}

func baseFor(d profile.Difficulty) float64 {
	switch d {
	case profile.DifficultyEasy:
		return 0.10
	case profile.DifficultyMedium:
		return 0.20
	case profile.DifficultyHard:
		return 0.40
	case profile.DifficultyExpert:
		return 0.60
	default:
		return 0.20
	}
}

func seniorityAdjustment(s profile.Seniority) float64 {
	switch s {
	case profile.Principal:
		return -0.15
	case profile.Lead:
		return -0.12
	case profile.Senior:
		return -0.10
	case profile.Mid:
		return -0.05
	case profile.Intern:
		return 0.05
	default:
		return 0.00
	}
}

func priorityAdjustment(p profile.Priority) float64 {
	switch p {
	case profile.PriorityCritical:
		return 0.10
	case profile.PriorityHigh:
		return 0.05
	case profile.PriorityLow:
		return -0.05
	default:
		return 0.00
	}
}

func experienceBonus(years float64) float64 {
	switch {
	case years >= 10:
		return 0.08
	case years >= 7:
		return 0.06
	case years >= 5:
		return 0.04
	case years >= 3:
		return 0.02
	default:
		return 0.00
	}
}

func workloadPenalty(utilization float64) float64 {
	switch {
	case utilization >= 0.85:
		return 0.15
	case utilization >= 0.70:
		return 0.10
	case utilization >= 0.60:
		return 0.05
	default:
		return 0.00
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
