package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/devadvisor/pkg/analysis"
)

// AnalysisRepository stores completed analyses for later retrieval.
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepository(pool *pgxpool.Pool) (*AnalysisRepository, error) {
	r := &AnalysisRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AnalysisRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS analyses (
	id UUID PRIMARY KEY,
	github_username TEXT NOT NULL DEFAULT '',
	leetcode_username TEXT NOT NULL DEFAULT '',
	codeforces_username TEXT NOT NULL DEFAULT '',
	goal TEXT NOT NULL,
	domain TEXT NOT NULL,
	activity JSONB NOT NULL,
	recommendations JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *AnalysisRepository) Create(ctx context.Context, a analysis.Analysis) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	activityJSON, err := json.Marshal(a.ActivityData)
	if err != nil {
		return err
	}
	recsJSON, err := json.Marshal(a.Recommendations)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO analyses (id, github_username, leetcode_username, codeforces_username, goal, domain, activity, recommendations, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, a.ID, a.Request.GitHubUsername, a.Request.LeetCodeUsername, a.Request.CodeforcesUsername,
		a.Request.Goal, a.Request.Domain, activityJSON, recsJSON, a.CreatedAt)
	return err
}

func (r *AnalysisRepository) GetByID(ctx context.Context, id uuid.UUID) (analysis.Analysis, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, github_username, leetcode_username, codeforces_username, goal, domain, activity, recommendations, created_at
FROM analyses WHERE id = $1
`, id)
	a, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return analysis.Analysis{}, analysis.ErrNotFound
		}
		return analysis.Analysis{}, err
	}
	return a, nil
}

func (r *AnalysisRepository) List(ctx context.Context, limit, offset int) ([]analysis.Analysis, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, github_username, leetcode_username, codeforces_username, goal, domain, activity, recommendations, created_at
FROM analyses ORDER BY created_at DESC LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []analysis.Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAnalysis(row pgx.Row) (analysis.Analysis, error) {
	var a analysis.Analysis
	var activityBytes, recsBytes []byte
	var created time.Time
	if err := row.Scan(&a.ID, &a.Request.GitHubUsername, &a.Request.LeetCodeUsername, &a.Request.CodeforcesUsername,
		&a.Request.Goal, &a.Request.Domain, &activityBytes, &recsBytes, &created); err != nil {
		return analysis.Analysis{}, err
	}
	_ = json.Unmarshal(activityBytes, &a.ActivityData)
	_ = json.Unmarshal(recsBytes, &a.Recommendations)
	a.CreatedAt = created.UTC()
	return a, nil
}

// compile-time guard: the repository implements the history port.
var _ analysis.Repository = (*AnalysisRepository)(nil)
