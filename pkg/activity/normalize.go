package activity

import (
	"context"
	"errors"
	"fmt"
)

// leetCodePendingNote marks the deliberate placeholder state for LeetCode:
// no data collaborator is integrated yet, which is not a fetch failure.
const leetCodePendingNote = "LeetCode data integration pending"

// normalizeGitHub maps raw GitHub stats onto the canonical snapshot shape.
func normalizeGitHub(handle string, stats GitHubStats) Snapshot {
	langs := stats.TopLanguages
	if langs == nil {
		langs = map[string]int{}
	}
	return Snapshot{
		Platform: GitHub,
		Handle:   handle,
		Metrics: map[string]any{
			"public_repos":   stats.PublicRepos,
			"total_stars":    stats.TotalStars,
			"top_languages":  langs,
			"recent_commits": stats.RecentCommits,
		},
	}
}

// normalizeCodeforces maps raw Codeforces stats onto the canonical snapshot shape.
func normalizeCodeforces(handle string, stats CodeforcesStats) Snapshot {
	rank := stats.Rank
	if rank == "" {
		rank = "unrated"
	}
	return Snapshot{
		Platform: Codeforces,
		Handle:   handle,
		Metrics: map[string]any{
			"current_rating":        stats.CurrentRating,
			"rank":                  rank,
			"problems_solved":       stats.ProblemsSolved,
			"contests_participated": stats.ContestsParticipated,
		},
	}
}

// normalizeLeetCodePending produces the placeholder snapshot for a requested
// LeetCode handle while no collaborator integration exists.
func normalizeLeetCodePending(handle string) Snapshot {
	return Snapshot{
		Platform: LeetCode,
		Handle:   handle,
		Metrics:  map[string]any{"note": leetCodePendingNote},
	}
}

// errorSnapshot converts a fetch failure into a snapshot with empty metrics
// and a human-readable reason.
func errorSnapshot(platform Platform, handle string, err error) Snapshot {
	return Snapshot{
		Platform: platform,
		Handle:   handle,
		Metrics:  map[string]any{},
		Error:    fetchReason(platform, handle, err),
	}
}

func fetchReason(platform Platform, handle string, err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		switch fe.Kind {
		case FetchNotFound:
			return fmt.Sprintf("%s user %q not found", platform, handle)
		case FetchRateLimited:
			return fmt.Sprintf("%s rate limit exceeded", platform)
		case FetchTimeout:
			return "timeout"
		case FetchNetwork:
			if fe.Detail != "" {
				return fmt.Sprintf("%s network error: %s", platform, fe.Detail)
			}
			return fmt.Sprintf("%s network error", platform)
		}
	}
	return err.Error()
}
