package skillmatch

import (
	"context"

	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	"github.com/kailas-cloud/skillmatch/internal/domain/profile"
	healthuc "github.com/kailas-cloud/skillmatch/internal/usecase/health"
	rankinguc "github.com/kailas-cloud/skillmatch/internal/usecase/ranking"
)

// --- Embedder mocks ---

type mockEmbedder struct {
	fn func(ctx context.Context, text string) (EmbeddingResult, error)
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) (EmbeddingResult, error) {
	return m.fn(ctx, text)
}

// vectorEmbedder serves fixed vectors and counts calls.
type vectorEmbedder struct {
	vectors map[string][]float32
	calls   int
}

func (m *vectorEmbedder) Embed(_ context.Context, text string) (EmbeddingResult, error) {
	m.calls++
	v, ok := m.vectors[text]
	if !ok {
		v = []float32{0, 0}
	}
	return EmbeddingResult{Embedding: v, TotalTokens: 1}, nil
}

type mockBatchEmbedder struct {
	mockEmbedder
	batchFn func(ctx context.Context, texts []string) (BatchEmbeddingResult, error)
}

func (m *mockBatchEmbedder) BatchEmbed(ctx context.Context, texts []string) (BatchEmbeddingResult, error) {
	return m.batchFn(ctx, texts)
}

// --- rankUseCase mock ---

type mockRanker struct {
	rankFn func(ctx context.Context, task *profile.Task, cands []*profile.Candidate, opts rankinguc.Options) rankinguc.Result
}

func (m *mockRanker) Rank(
	ctx context.Context, task *profile.Task, cands []*profile.Candidate, opts rankinguc.Options,
) rankinguc.Result {
	return m.rankFn(ctx, task, cands, opts)
}

// --- assessor mock ---

type mockAssessor struct {
	assessFn func(ctx context.Context, cand *profile.Candidate, task *profile.Task) match.Assessment
}

func (m *mockAssessor) Assess(ctx context.Context, cand *profile.Candidate, task *profile.Task) match.Assessment {
	return m.assessFn(ctx, cand, task)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }
