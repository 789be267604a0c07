package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/artem13815/devadvisor/pkg/activity"
)

const topLanguageLimit = 5

// Client fetches public GitHub activity through the REST API.
type Client struct {
	BaseURL string
	Token   string // optional; raises the unauthenticated rate limit
	httpDo  *http.Client
}

func New(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		httpDo: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type userPayload struct {
	PublicRepos int `json:"public_repos"`
}

type repoPayload struct {
	Name            string `json:"name"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
}

type eventPayload struct {
	Type    string `json:"type"`
	Payload struct {
		Commits []struct {
			SHA string `json:"sha"`
		} `json:"commits"`
	} `json:"payload"`
}

// UserStats combines user info, recent repositories and push events into raw
// stats. Only the user lookup is mandatory; repo and event lookups degrade to
// empty data so a partial profile still produces a snapshot.
func (c *Client) UserStats(ctx context.Context, username string) (activity.GitHubStats, error) {
	user := url.PathEscape(username)

	var u userPayload
	if err := c.getJSON(ctx, "/users/"+user, &u); err != nil {
		return activity.GitHubStats{}, err
	}

	var repos []repoPayload
	if err := c.getJSON(ctx, "/users/"+user+"/repos?sort=updated&per_page=10", &repos); err != nil {
		repos = nil
	}
	var events []eventPayload
	if err := c.getJSON(ctx, "/users/"+user+"/events?per_page=30", &events); err != nil {
		events = nil
	}

	stats := activity.GitHubStats{PublicRepos: u.PublicRepos}
	langs := map[string]int{}
	for _, r := range repos {
		stats.TotalStars += r.StargazersCount
		if r.Language != "" {
			langs[r.Language]++
		}
	}
	stats.TopLanguages = topLanguages(langs, topLanguageLimit)
	for _, e := range events {
		if e.Type == "PushEvent" {
			stats.RecentCommits += len(e.Payload.Commits)
		}
	}
	return stats, nil
}

// topLanguages keeps the n most frequent languages.
func topLanguages(langs map[string]int, n int) map[string]int {
	if len(langs) <= n {
		return langs
	}
	names := make([]string, 0, len(langs))
	for name := range langs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if langs[names[i]] != langs[names[j]] {
			return langs[names[i]] > langs[names[j]]
		}
		return names[i] < names[j]
	})
	out := make(map[string]int, n)
	for _, name := range names[:n] {
		out[name] = langs[name]
	}
	return out
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpDo.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &activity.FetchError{Kind: activity.FetchTimeout}
		}
		return &activity.FetchError{Kind: activity.FetchNetwork, Detail: err.Error()}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &activity.FetchError{Kind: activity.FetchNotFound}
	// GitHub signals exhausted quotas with 403 as well as 429.
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return &activity.FetchError{Kind: activity.FetchRateLimited}
	case resp.StatusCode != http.StatusOK:
		return &activity.FetchError{Kind: activity.FetchNetwork, Detail: fmt.Sprintf("github http %d", resp.StatusCode)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &activity.FetchError{Kind: activity.FetchNetwork, Detail: "github: malformed response body"}
	}
	return nil
}

// compile-time guard: the client satisfies the aggregator port.
var _ activity.GitHubFetcher = (*Client)(nil)
