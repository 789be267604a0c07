package activity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGitHub(t *testing.T) {
	snap := normalizeGitHub("octocat", GitHubStats{
		PublicRepos:   8,
		TotalStars:    15,
		TopLanguages:  map[string]int{"Python": 5, "JavaScript": 3},
		RecentCommits: 12,
	})

	assert.Equal(t, GitHub, snap.Platform)
	assert.Equal(t, "octocat", snap.Handle)
	assert.False(t, snap.Failed())
	assert.Equal(t, 8, snap.Metrics["public_repos"])
	assert.Equal(t, 15, snap.Metrics["total_stars"])
	assert.Equal(t, 12, snap.Metrics["recent_commits"])
	assert.Equal(t, map[string]int{"Python": 5, "JavaScript": 3}, snap.Metrics["top_languages"])
}

func TestNormalizeGitHubNilLanguages(t *testing.T) {
	snap := normalizeGitHub("octocat", GitHubStats{})
	assert.Equal(t, map[string]int{}, snap.Metrics["top_languages"])
}

func TestNormalizeCodeforces(t *testing.T) {
	snap := normalizeCodeforces("tourist", CodeforcesStats{
		CurrentRating:        3800,
		Rank:                 "legendary grandmaster",
		ProblemsSolved:       42,
		ContestsParticipated: 7,
	})

	assert.Equal(t, Codeforces, snap.Platform)
	assert.Equal(t, 3800, snap.Metrics["current_rating"])
	assert.Equal(t, "legendary grandmaster", snap.Metrics["rank"])
	assert.Equal(t, 42, snap.Metrics["problems_solved"])
	assert.Equal(t, 7, snap.Metrics["contests_participated"])
}

func TestNormalizeCodeforcesUnrated(t *testing.T) {
	snap := normalizeCodeforces("newbie", CodeforcesStats{})
	assert.Equal(t, "unrated", snap.Metrics["rank"])
}

func TestNormalizeLeetCodePendingIsNotAnError(t *testing.T) {
	snap := normalizeLeetCodePending("someone")
	assert.False(t, snap.Failed())
	assert.Equal(t, leetCodePendingNote, snap.Metrics["note"])
}

func TestErrorSnapshotReasons(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", &FetchError{Kind: FetchNotFound}, `github user "ghost" not found`},
		{"rate limited", &FetchError{Kind: FetchRateLimited}, "github rate limit exceeded"},
		{"fetch timeout", &FetchError{Kind: FetchTimeout}, "timeout"},
		{"context deadline", context.DeadlineExceeded, "timeout"},
		{"network with detail", &FetchError{Kind: FetchNetwork, Detail: "connection refused"}, "github network error: connection refused"},
		{"plain error", errors.New("boom"), "boom"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := errorSnapshot(GitHub, "ghost", tc.err)
			assert.True(t, snap.Failed())
			assert.Equal(t, tc.want, snap.Error)
			assert.Empty(t, snap.Metrics, "error snapshots carry no metrics")
		})
	}
}
