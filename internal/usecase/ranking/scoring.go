package ranking

import (
	"strings"

	"github.com/kailas-cloud/skillmatch/internal/domain/profile"
	domrank "github.com/kailas-cloud/skillmatch/internal/domain/ranking"
)

const (
	neutralScore      = 0.5
	maxRating         = 5.0
	ratingWeight      = 0.7
	completionWeight  = 0.3
	roleFitAligned    = 1.0
	roleFitMismatched = 0.2
)

// subScores derives every ranking signal except the skill score.
func subScores(c *profile.Candidate, t *profile.Task, skillScore float64) domrank.SubScores {
	return domrank.SubScores{
		Skill:         skillScore,
		Workload:      1 - c.Utilization(),
		Performance:   performance(c),
		Availability:  availability(c.Availability),
		Collaboration: unitOr(c.CollaborationScore, neutralScore),
		RoleFit:       roleFit(t.Department, c.Department),
	}
}

func performance(c *profile.Candidate) float64 {
	rating := neutralScore
	if c.PerformanceRating != nil {
		rating = clamp01(*c.PerformanceRating / maxRating)
	}
	completion := unitOr(c.CompletionRate, neutralScore)
	return ratingWeight*rating + completionWeight*completion
}

func availability(a profile.Availability) float64 {
	switch a {
	case profile.AvailabilityAvailable:
		return 0.9
	case profile.AvailabilityBusy:
		return 0.4
	case profile.AvailabilityUnavailable:
		return 0.1
	default:
		return neutralScore
	}
}

// roleFit compares departments. Short and long forms of frontend and
// backend count as the same department.
func roleFit(taskDept, candDept string) float64 {
	td, cd := canonicalDepartment(taskDept), canonicalDepartment(candDept)
	switch {
	case td == "" || cd == "":
		return neutralScore
	case td == cd:
		return roleFitAligned
	default:
		return roleFitMismatched
	}
}

func canonicalDepartment(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	switch {
	case d == "":
		return ""
	case d == "fe" || strings.Contains(d, "frontend") || strings.Contains(d, "front-end"):
		return "frontend"
	case d == "be" || strings.Contains(d, "backend") || strings.Contains(d, "back-end"):
		return "backend"
	default:
		return d
	}
}

func unitOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return clamp01(*v)
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
