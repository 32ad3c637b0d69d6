package ranking

import (
	"fmt"

	"github.com/kailas-cloud/skillmatch/internal/domain"
)

// Weights blends sub-scores into a composite. Values are relative and are
// normalized by their sum before use.
type Weights struct {
	Skill         float64 `yaml:"skill" json:"skill"`
	Workload      float64 `yaml:"workload" json:"workload"`
	Performance   float64 `yaml:"performance" json:"performance"`
	Availability  float64 `yaml:"availability" json:"availability"`
	Collaboration float64 `yaml:"collaboration" json:"collaboration"`
	RoleFit       float64 `yaml:"role_fit" json:"role_fit"`
}

// DefaultWeights returns the stock blend.
func DefaultWeights() Weights {
	return Weights{Skill: 0.40, Workload: 0.25, Performance: 0.20, Availability: 0.15}
}

func (w Weights) sum() float64 {
	return w.Skill + w.Workload + w.Performance + w.Availability + w.Collaboration + w.RoleFit
}

// IsZero reports whether no weight is set.
func (w Weights) IsZero() bool { return w == Weights{} }

// Validate rejects negative weights and an all-zero blend.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"skill": w.Skill, "workload": w.Workload, "performance": w.Performance,
		"availability": w.Availability, "collaboration": w.Collaboration, "role_fit": w.RoleFit,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s is negative: %w", name, domain.ErrInvalidInput)
		}
	}
	if w.sum() <= 0 {
		return fmt.Errorf("weights sum to zero: %w", domain.ErrInvalidInput)
	}
	return nil
}

// Normalized scales the weights to sum to 1. An unusable blend falls back to
// DefaultWeights.
func (w Weights) Normalized() Weights {
	if w.Validate() != nil {
		w = DefaultWeights()
	}
	s := w.sum()
	return Weights{
		Skill:         w.Skill / s,
		Workload:      w.Workload / s,
		Performance:   w.Performance / s,
		Availability:  w.Availability / s,
		Collaboration: w.Collaboration / s,
		RoleFit:       w.RoleFit / s,
	}
}
