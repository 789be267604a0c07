package activity

import (
	"context"
	"sync"
	"time"
)

// GitHubFetcher retrieves raw GitHub activity for a username.
// Implementations must be safe for concurrent use and honor context deadlines.
type GitHubFetcher interface {
	UserStats(ctx context.Context, username string) (GitHubStats, error)
}

// CodeforcesFetcher retrieves raw Codeforces activity for a handle.
type CodeforcesFetcher interface {
	UserStats(ctx context.Context, handle string) (CodeforcesStats, error)
}

// LeetCodeFetcher is the extension port for a future LeetCode collaborator.
// No implementation ships yet; requested handles get the pending snapshot.
type LeetCodeFetcher interface {
	UserStats(ctx context.Context, username string) (map[string]any, error)
}

const defaultFetchTimeout = 8 * time.Second

// Aggregator runs one fetch+normalize unit per requested platform.
type Aggregator struct {
	github     GitHubFetcher
	leetcode   LeetCodeFetcher
	codeforces CodeforcesFetcher
	timeout    time.Duration
}

// NewAggregator wires the platform fetchers. A nil LeetCode fetcher is valid
// and yields the pending-integration snapshot for requested handles.
func NewAggregator(gh GitHubFetcher, lc LeetCodeFetcher, cf CodeforcesFetcher, timeout time.Duration) *Aggregator {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Aggregator{github: gh, leetcode: lc, codeforces: cf, timeout: timeout}
}

type fetchUnit struct {
	platform Platform
	run      func(ctx context.Context) Snapshot
}

// Aggregate fetches and normalizes every requested platform concurrently.
// Units are independent: a failed or slow platform becomes an error snapshot
// and never blocks or fails the others. Each unit gets its own timeout and
// no unit is retried. The call joins on all units before returning.
func (a *Aggregator) Aggregate(ctx context.Context, h Handles) Aggregated {
	units := a.units(h)
	out := make(Aggregated, len(units))
	if len(units) == 0 {
		return out
	}

	results := make([]Snapshot, len(units))
	var wg sync.WaitGroup
	for i, u := range units {
		wg.Add(1)
		go func(i int, u fetchUnit) {
			defer wg.Done()
			uctx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()
			results[i] = u.run(uctx)
		}(i, u)
	}
	wg.Wait()

	for _, s := range results {
		out[s.Platform] = s
	}
	return out
}

func (a *Aggregator) units(h Handles) []fetchUnit {
	var units []fetchUnit
	if h.GitHub != "" {
		handle := h.GitHub
		units = append(units, fetchUnit{GitHub, func(ctx context.Context) Snapshot {
			stats, err := a.github.UserStats(ctx, handle)
			if err != nil {
				return errorSnapshot(GitHub, handle, err)
			}
			return normalizeGitHub(handle, stats)
		}})
	}
	if h.LeetCode != "" {
		handle := h.LeetCode
		units = append(units, fetchUnit{LeetCode, func(ctx context.Context) Snapshot {
			if a.leetcode == nil {
				return normalizeLeetCodePending(handle)
			}
			raw, err := a.leetcode.UserStats(ctx, handle)
			if err != nil {
				return errorSnapshot(LeetCode, handle, err)
			}
			if raw == nil {
				raw = map[string]any{}
			}
			return Snapshot{Platform: LeetCode, Handle: handle, Metrics: raw}
		}})
	}
	if h.Codeforces != "" {
		handle := h.Codeforces
		units = append(units, fetchUnit{Codeforces, func(ctx context.Context) Snapshot {
			stats, err := a.codeforces.UserStats(ctx, handle)
			if err != nil {
				return errorSnapshot(Codeforces, handle, err)
			}
			return normalizeCodeforces(handle, stats)
		}})
	}
	return units
}
