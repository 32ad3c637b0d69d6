package ranking

import (
	"context"

	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	"github.com/kailas-cloud/skillmatch/internal/domain/profile"
)

// Assessor evaluates a candidate's skills against a task.
type Assessor interface {
	Assess(ctx context.Context, cand *profile.Candidate, task *profile.Task) match.Assessment
}
