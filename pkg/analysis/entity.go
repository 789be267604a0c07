package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/devadvisor/pkg/activity"
	"github.com/artem13815/devadvisor/pkg/recommend"
)

// ProfileRequest is the transport-agnostic analysis input.
// At least one username field must be non-empty.
type ProfileRequest struct {
	GitHubUsername     string `json:"github_username"`
	LeetCodeUsername   string `json:"leetcode_username"`
	CodeforcesUsername string `json:"codeforces_username"`
	Goal               string `json:"goal"`
	Domain             string `json:"domain"`
}

// Defaults applied when the request omits goal or domain.
const (
	DefaultGoal   = "Improve programming skills"
	DefaultDomain = "General Software Development"
)

// Analysis is one completed profile analysis. It is assembled once per
// request and immutable afterwards.
type Analysis struct {
	ID              uuid.UUID                  `json:"id"`
	Request         ProfileRequest             `json:"request"`
	ActivityData    activity.Aggregated        `json:"activity_data"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	CreatedAt       time.Time                  `json:"created_at"`
}

// ErrNoPlatforms is the only fatal request error: nothing to analyze.
var ErrNoPlatforms = errors.New("at least one platform username is required")

// ErrNotFound is returned when a stored analysis does not exist.
var ErrNotFound = errors.New("analysis not found")

// ErrHistoryDisabled is returned when no history storage is configured.
var ErrHistoryDisabled = errors.New("analysis history storage is not configured")

// Repository is the port for the optional analysis history storage.
type Repository interface {
	Create(ctx context.Context, a Analysis) error
	GetByID(ctx context.Context, id uuid.UUID) (Analysis, error)
	List(ctx context.Context, limit, offset int) ([]Analysis, error)
}
