package analysis

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/devadvisor/pkg/activity"
	"github.com/artem13815/devadvisor/pkg/recommend"
)

// Aggregator is the pipeline port that turns requested handles into snapshots.
type Aggregator interface {
	Aggregate(ctx context.Context, h activity.Handles) activity.Aggregated
}

// Synthesizer is the pipeline port that turns snapshots into recommendations.
type Synthesizer interface {
	Synthesize(ctx context.Context, agg activity.Aggregated, goal, domain string) []recommend.Recommendation
}

// UseCase drives the analysis request lifecycle.
type UseCase interface {
	Analyze(ctx context.Context, req ProfileRequest) (Analysis, error)
	Get(ctx context.Context, id uuid.UUID) (Analysis, error)
	List(ctx context.Context, limit, offset int) ([]Analysis, error)
}

type service struct {
	agg   Aggregator
	synth Synthesizer
	repo  Repository // nil when history storage is not configured
}

func NewService(agg Aggregator, synth Synthesizer, repo Repository) UseCase {
	return &service{agg: agg, synth: synth, repo: repo}
}

// Analyze runs validate -> aggregate -> synthesize -> assemble. Only request
// validation is fatal; platform and model failures surface as structured data
// inside the result. A canceled request returns no partial result.
func (s *service) Analyze(ctx context.Context, req ProfileRequest) (Analysis, error) {
	req.GitHubUsername = strings.TrimSpace(req.GitHubUsername)
	req.LeetCodeUsername = strings.TrimSpace(req.LeetCodeUsername)
	req.CodeforcesUsername = strings.TrimSpace(req.CodeforcesUsername)
	handles := activity.Handles{
		GitHub:     req.GitHubUsername,
		LeetCode:   req.LeetCodeUsername,
		Codeforces: req.CodeforcesUsername,
	}
	if handles.Empty() {
		return Analysis{}, ErrNoPlatforms
	}
	if strings.TrimSpace(req.Goal) == "" {
		req.Goal = DefaultGoal
	}
	if strings.TrimSpace(req.Domain) == "" {
		req.Domain = DefaultDomain
	}

	agg := s.agg.Aggregate(ctx, handles)
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	recs := s.synth.Synthesize(ctx, agg, req.Goal, req.Domain)
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}

	a := Analysis{
		ID:              uuid.New(),
		Request:         req,
		ActivityData:    agg,
		Recommendations: recs,
		CreatedAt:       time.Now().UTC(),
	}
	if s.repo != nil {
		// History is best effort; the caller still gets the full result.
		if err := s.repo.Create(ctx, a); err != nil {
			log.Printf("analysis: history store failed: %v", err)
		}
	}
	return a, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Analysis, error) {
	if s.repo == nil {
		return Analysis{}, ErrHistoryDisabled
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.repo.List(ctx, limit, offset)
}
