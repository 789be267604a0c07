package codeforces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/artem13815/devadvisor/pkg/activity"
)

// submissionWindow bounds how many recent submissions are scanned for
// distinct solved problems, matching the public API page size.
const submissionWindow = 100

// Client fetches user activity through the official Codeforces API.
type Client struct {
	BaseURL string
	httpDo  *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://codeforces.com/api"
	}
	return &Client{
		BaseURL: baseURL,
		httpDo: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type userPayload struct {
	Handle string `json:"handle"`
	Rating int    `json:"rating"`
	Rank   string `json:"rank"`
}

type userInfoResponse struct {
	Status  string        `json:"status"`
	Comment string        `json:"comment"`
	Result  []userPayload `json:"result"`
}

type ratingResponse struct {
	Status string `json:"status"`
	Result []struct {
		ContestID int `json:"contestId"`
	} `json:"result"`
}

type submissionPayload struct {
	Verdict string `json:"verdict"`
	Problem struct {
		ContestID int    `json:"contestId"`
		Index     string `json:"index"`
	} `json:"problem"`
}

type statusResponse struct {
	Status string              `json:"status"`
	Result []submissionPayload `json:"result"`
}

// UserStats combines user.info, user.rating and user.status into raw stats.
// Only user.info is mandatory; rating and submission history degrade to zero
// counts so an unrated user still produces a snapshot.
func (c *Client) UserStats(ctx context.Context, handle string) (activity.CodeforcesStats, error) {
	h := url.QueryEscape(handle)

	var info userInfoResponse
	if err := c.getJSON(ctx, "/user.info?handles="+h, &info); err != nil {
		return activity.CodeforcesStats{}, err
	}
	// The API reports unknown handles inside a 200 response envelope.
	if info.Status != "OK" || len(info.Result) == 0 {
		return activity.CodeforcesStats{}, &activity.FetchError{Kind: activity.FetchNotFound, Detail: info.Comment}
	}
	u := info.Result[0]

	var rating ratingResponse
	if err := c.getJSON(ctx, "/user.rating?handle="+h, &rating); err != nil || rating.Status != "OK" {
		rating.Result = nil
	}

	var status statusResponse
	path := fmt.Sprintf("/user.status?handle=%s&from=1&count=%d", h, submissionWindow)
	if err := c.getJSON(ctx, path, &status); err != nil || status.Status != "OK" {
		status.Result = nil
	}
	solved := map[string]struct{}{}
	for _, sub := range status.Result {
		if sub.Verdict != "OK" {
			continue
		}
		solved[fmt.Sprintf("%d-%s", sub.Problem.ContestID, sub.Problem.Index)] = struct{}{}
	}

	return activity.CodeforcesStats{
		CurrentRating:        u.Rating,
		Rank:                 u.Rank,
		ProblemsSolved:       len(solved),
		ContestsParticipated: len(rating.Result),
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
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
	case resp.StatusCode == http.StatusTooManyRequests:
		return &activity.FetchError{Kind: activity.FetchRateLimited}
	case resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest:
		// user.info answers 400 with a FAILED envelope for unknown handles
		return &activity.FetchError{Kind: activity.FetchNetwork, Detail: fmt.Sprintf("codeforces http %d", resp.StatusCode)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &activity.FetchError{Kind: activity.FetchNetwork, Detail: "codeforces: malformed response body"}
	}
	return nil
}

// compile-time guard: the client satisfies the aggregator port.
var _ activity.CodeforcesFetcher = (*Client)(nil)
