package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/devadvisor/pkg/activity"
	"github.com/artem13815/devadvisor/pkg/recommend"
)

type fakeAggregator struct {
	calls   int
	handles activity.Handles
	out     activity.Aggregated
}

func (f *fakeAggregator) Aggregate(ctx context.Context, h activity.Handles) activity.Aggregated {
	f.calls++
	f.handles = h
	if f.out == nil {
		return activity.Aggregated{}
	}
	return f.out
}

type fakeSynthesizer struct {
	out []recommend.Recommendation
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, agg activity.Aggregated, goal, domain string) []recommend.Recommendation {
	return f.out
}

type fakeRepo struct {
	created []Analysis
	err     error
}

func (f *fakeRepo) Create(ctx context.Context, a Analysis) error {
	f.created = append(f.created, a)
	return f.err
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (Analysis, error) {
	for _, a := range f.created {
		if a.ID == id {
			return a, nil
		}
	}
	return Analysis{}, ErrNotFound
}

func (f *fakeRepo) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	return f.created, nil
}

var someRecs = []recommend.Recommendation{
	{Type: recommend.TypeLearning, Title: "T", Description: "d", Difficulty: recommend.DifficultyBeginner, Resources: []string{}},
}

func TestAnalyzeRejectsEmptyRequest(t *testing.T) {
	agg := &fakeAggregator{}
	svc := NewService(agg, &fakeSynthesizer{out: someRecs}, nil)

	_, err := svc.Analyze(context.Background(), ProfileRequest{Goal: "g", Domain: "d"})

	assert.ErrorIs(t, err, ErrNoPlatforms)
	assert.Zero(t, agg.calls, "no fetch units may run for an invalid request")
}

func TestAnalyzeRejectsWhitespaceUsernames(t *testing.T) {
	agg := &fakeAggregator{}
	svc := NewService(agg, &fakeSynthesizer{out: someRecs}, nil)

	_, err := svc.Analyze(context.Background(), ProfileRequest{GitHubUsername: "   "})

	assert.ErrorIs(t, err, ErrNoPlatforms)
	assert.Zero(t, agg.calls)
}

func TestAnalyzeAppliesDefaults(t *testing.T) {
	agg := &fakeAggregator{}
	svc := NewService(agg, &fakeSynthesizer{out: someRecs}, nil)

	out, err := svc.Analyze(context.Background(), ProfileRequest{GitHubUsername: "octocat"})

	require.NoError(t, err)
	assert.Equal(t, DefaultGoal, out.Request.Goal)
	assert.Equal(t, DefaultDomain, out.Request.Domain)
	assert.NotEqual(t, uuid.Nil, out.ID)
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, "octocat", agg.handles.GitHub)
	assert.Empty(t, agg.handles.Codeforces)
}

func TestAnalyzeStoresHistoryBestEffort(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db down")}
	svc := NewService(&fakeAggregator{}, &fakeSynthesizer{out: someRecs}, repo)

	out, err := svc.Analyze(context.Background(), ProfileRequest{GitHubUsername: "octocat"})

	require.NoError(t, err, "a failing history store must not fail the request")
	require.Len(t, repo.created, 1)
	assert.Equal(t, out.ID, repo.created[0].ID)
	assert.Equal(t, someRecs, out.Recommendations)
}

func TestAnalyzeCanceledRequestReturnsNoResult(t *testing.T) {
	svc := NewService(&fakeAggregator{}, &fakeSynthesizer{out: someRecs}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Analyze(ctx, ProfileRequest{GitHubUsername: "octocat"})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestHistoryDisabledWithoutRepository(t *testing.T) {
	svc := NewService(&fakeAggregator{}, &fakeSynthesizer{out: someRecs}, nil)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrHistoryDisabled)

	_, err = svc.List(context.Background(), 50, 0)
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}

func TestGetReturnsStoredAnalysis(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(&fakeAggregator{}, &fakeSynthesizer{out: someRecs}, repo)

	created, err := svc.Analyze(context.Background(), ProfileRequest{CodeforcesUsername: "tourist"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
