package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/devadvisor/pkg/activity"
)

type fakeChat struct {
	reply string
	err   error
}

func (f *fakeChat) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f.reply, f.err
}

func githubSnapshot(metrics map[string]any) activity.Aggregated {
	return activity.Aggregated{
		activity.GitHub: {Platform: activity.GitHub, Handle: "octocat", Metrics: metrics},
	}
}

func allFailed() activity.Aggregated {
	return activity.Aggregated{
		activity.GitHub:     {Platform: activity.GitHub, Handle: "a", Metrics: map[string]any{}, Error: `github user "a" not found`},
		activity.Codeforces: {Platform: activity.Codeforces, Handle: "b", Metrics: map[string]any{}, Error: "timeout"},
		activity.LeetCode:   {Platform: activity.LeetCode, Handle: "c", Metrics: map[string]any{}, Error: "timeout"},
	}
}

func TestSynthesizeNeverEmpty(t *testing.T) {
	s := NewSynthesizer(nil, 0, 0)

	out := s.Synthesize(context.Background(), allFailed(), "whatever", "nothing matches this")

	require.NotEmpty(t, out)
	first := out[0]
	assert.Equal(t, TypeLearning, first.Type)
	assert.Equal(t, DifficultyBeginner, first.Difficulty)
}

func TestSynthesizeBoundedAndValid(t *testing.T) {
	// Rich signals plus a verbose model: everything matches at once.
	chat := &fakeChat{reply: `[
		{"type":"project","title":"P1","description":"d","difficulty":"beginner","resources":[]},
		{"type":"skill","title":"S1","description":"d","difficulty":"advanced","resources":[]},
		{"type":"learning","title":"L1","description":"d","difficulty":"intermediate","resources":[]},
		{"type":"problem","title":"B1","description":"d","difficulty":"beginner","resources":[]}
	]`}
	s := NewSynthesizer(chat, 6, time.Second)
	agg := githubSnapshot(map[string]any{
		"public_repos": 4, "total_stars": 0, "recent_commits": 0,
		"top_languages": map[string]int{"Go": 4},
	})
	agg[activity.Codeforces] = activity.Snapshot{
		Platform: activity.Codeforces, Handle: "x",
		Metrics: map[string]any{"current_rating": 900, "contests_participated": 1, "problems_solved": 10},
	}

	out := s.Synthesize(context.Background(), agg, "pass interviews", "web development")

	assert.LessOrEqual(t, len(out), 6)
	for _, r := range out {
		assert.True(t, ValidDifficulty(r.Difficulty), "difficulty %q", r.Difficulty)
		assert.True(t, ValidType(r.Type), "type %q", r.Type)
		assert.NotEmpty(t, r.Title)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	s := NewSynthesizer(nil, 6, 0)
	agg := githubSnapshot(map[string]any{
		"public_repos": 8, "total_stars": 15, "recent_commits": 0,
		"top_languages": map[string]int{"Python": 5, "JavaScript": 3},
	})

	first := s.Synthesize(context.Background(), agg, "Improve programming skills", "General Software Development")
	second := s.Synthesize(context.Background(), agg, "Improve programming skills", "General Software Development")

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestSynthesizeRanking(t *testing.T) {
	s := NewSynthesizer(nil, 6, 0)
	agg := activity.Aggregated{
		activity.Codeforces: {Platform: activity.Codeforces, Handle: "x",
			Metrics: map[string]any{"current_rating": 900, "contests_participated": 1, "problems_solved": 3}},
	}

	out := s.Synthesize(context.Background(), agg, "improve", "web development")

	require.NotEmpty(t, out)
	// The domain rule (weight 6) outranks the judge rules.
	assert.Equal(t, "Build a Full-Stack Web Application", out[0].Title)
}

func TestSynthesizeRuleTableWinsTitleConflict(t *testing.T) {
	chat := &fakeChat{reply: `[{"type":"problem","title":"Solve Basic Algorithm Problems","description":"model version","difficulty":"advanced","resources":[]}]`}
	s := NewSynthesizer(chat, 6, time.Second)
	agg := activity.Aggregated{
		activity.Codeforces: {Platform: activity.Codeforces, Handle: "x",
			Metrics: map[string]any{"current_rating": 700}},
	}

	out := s.Synthesize(context.Background(), agg, "improve", "general")

	var found *Recommendation
	for i := range out {
		if out[i].Title == "Solve Basic Algorithm Problems" {
			found = &out[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, DifficultyBeginner, found.Difficulty, "rule-table version must win the conflict")
	assert.NotEqual(t, "model version", found.Description)
}

func TestSynthesizeChatFailureDegrades(t *testing.T) {
	ruleOnly := NewSynthesizer(nil, 6, 0)
	failing := NewSynthesizer(&fakeChat{err: errors.New("model down")}, 6, time.Second)
	agg := githubSnapshot(map[string]any{
		"public_repos": 2, "top_languages": map[string]int{"Go": 2},
	})

	want := ruleOnly.Synthesize(context.Background(), agg, "improve", "backend")
	got := failing.Synthesize(context.Background(), agg, "improve", "backend")

	assert.Equal(t, want, got)
}

func TestSynthesizeMalformedProposalsDropped(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"not json", "I think you should try harder."},
		{"object not array", `{"type":"skill"}`},
		{"bad difficulty", `[{"type":"skill","title":"T","description":"d","difficulty":"impossible","resources":[]}]`},
		{"bad type", `[{"type":"course","title":"T","description":"d","difficulty":"beginner","resources":[]}]`},
		{"empty title", `[{"type":"skill","title":"  ","description":"d","difficulty":"beginner","resources":[]}]`},
	}
	agg := githubSnapshot(map[string]any{"public_repos": 2, "top_languages": map[string]int{"Go": 2}})
	want := NewSynthesizer(nil, 6, 0).Synthesize(context.Background(), agg, "improve", "general")

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSynthesizer(&fakeChat{reply: tc.reply}, 6, time.Second)
			got := s.Synthesize(context.Background(), agg, "improve", "general")
			assert.Equal(t, want, got)
		})
	}
}

func TestParseProposalsExtractsFencedJSON(t *testing.T) {
	raw := "Here you go:\n```json\n[{\"type\":\"skill\",\"title\":\"T\",\"description\":\"d\",\"difficulty\":\"beginner\"}]\n```"
	out := parseProposals(raw)

	require.Len(t, out, 1)
	assert.Equal(t, "T", out[0].Title)
	assert.NotNil(t, out[0].Resources, "resources default to an empty slice")
}

func TestRatingTierThresholds(t *testing.T) {
	assert.Equal(t, tierNovice, ratingTier(0))
	assert.Equal(t, tierNovice, ratingTier(1199))
	assert.Equal(t, tierIntermediate, ratingTier(1200))
	assert.Equal(t, tierIntermediate, ratingTier(1899))
	assert.Equal(t, tierExpert, ratingTier(1900))
}

func TestExtractSignalsIgnoresFailedAndPending(t *testing.T) {
	agg := activity.Aggregated{
		activity.GitHub:   {Platform: activity.GitHub, Metrics: map[string]any{}, Error: "timeout"},
		activity.LeetCode: {Platform: activity.LeetCode, Metrics: map[string]any{"note": "pending"}},
	}
	sig := extractSignals(agg)
	assert.False(t, sig.hasGitHub)
	assert.False(t, sig.hasJudge)
}

func TestExtractSignalsAfterJSONRoundTrip(t *testing.T) {
	// Metrics loaded from history storage arrive as float64 / map[string]any.
	agg := githubSnapshot(map[string]any{
		"public_repos": float64(8), "total_stars": float64(15), "recent_commits": float64(2),
		"top_languages": map[string]any{"Python": float64(5)},
	})
	sig := extractSignals(agg)
	assert.Equal(t, 8, sig.repoCount)
	assert.Equal(t, 15, sig.totalStars)
	assert.Equal(t, 1, sig.languageCount)
}
