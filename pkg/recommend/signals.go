package recommend

import "github.com/artem13815/devadvisor/pkg/activity"

// tier buckets a competitive-judge rating by fixed thresholds.
type tier int

const (
	tierNovice tier = iota
	tierIntermediate
	tierExpert
)

// Codeforces-style ladder thresholds.
const (
	intermediateRating = 1200
	expertRating       = 1900
)

// signals are the normalized facts extracted from an aggregated activity map.
// Snapshots with an error or a pending-integration note contribute nothing.
type signals struct {
	hasGitHub     bool
	repoCount     int
	totalStars    int
	languageCount int
	recentCommits int

	hasJudge       bool
	rating         int
	ratingTier     tier
	problemsSolved int
	contests       int
}

func extractSignals(agg activity.Aggregated) signals {
	var sig signals
	if s, ok := agg[activity.GitHub]; ok && !s.Failed() {
		sig.hasGitHub = true
		sig.repoCount = intMetric(s.Metrics, "public_repos")
		sig.totalStars = intMetric(s.Metrics, "total_stars")
		sig.recentCommits = intMetric(s.Metrics, "recent_commits")
		sig.languageCount = mappingLen(s.Metrics, "top_languages")
	}
	if s, ok := agg[activity.Codeforces]; ok && !s.Failed() {
		sig.hasJudge = true
		sig.rating = intMetric(s.Metrics, "current_rating")
		sig.ratingTier = ratingTier(sig.rating)
		sig.problemsSolved = intMetric(s.Metrics, "problems_solved")
		sig.contests = intMetric(s.Metrics, "contests_participated")
	}
	return sig
}

func ratingTier(rating int) tier {
	switch {
	case rating >= expertRating:
		return tierExpert
	case rating >= intermediateRating:
		return tierIntermediate
	}
	return tierNovice
}

// intMetric reads a numeric metric. Metrics that crossed a JSON boundary
// (e.g. loaded from history storage) arrive as float64.
func intMetric(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func mappingLen(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case map[string]int:
		return len(v)
	case map[string]any:
		return len(v)
	}
	return 0
}
