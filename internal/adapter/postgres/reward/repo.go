// Package reward implements the TokenReward repository using PostgreSQL.
// The UNIQUE(log_id) constraint enforced here is the pipeline's primary
// duplicate-mint guard: a second attach for the same log always fails with
// domain.ErrAlreadyExists, whatever the callers raced through before.
package reward

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/readify-app/readify-backend/internal/adapter/postgres"
	"github.com/readify-app/readify-backend/internal/domain"
)

// Repo provides token-reward persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reward repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const rewardColumns = `id, log_id, token_type, token_value, contract_tx, created_at`

const totalsByUserSQL = `
SELECT u.id, u.name, COALESCE(SUM(r.token_value), 0) AS total
FROM users u
JOIN reading_logs l ON l.user_id = u.id
JOIN token_rewards r ON r.log_id = l.id
GROUP BY u.id, u.name
ORDER BY total DESC, u.name ASC
LIMIT $1`

// Attach records a settled reward for a log. A reward already attached to
// the same log results in domain.ErrAlreadyExists.
func (r *Repo) Attach(ctx context.Context, p domain.RewardAttachParams) (domain.TokenReward, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	_, err := q.Exec(ctx,
		`INSERT INTO token_rewards (id, log_id, token_type, token_value, contract_tx, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, p.LogID, p.TokenType, p.TokenValue, p.ContractTx, now,
	)
	if err != nil {
		return domain.TokenReward{}, postgres.MapError(err, "token reward", p.LogID)
	}

	return domain.TokenReward{
		ID:         id,
		LogID:      p.LogID,
		TokenType:  p.TokenType,
		TokenValue: p.TokenValue,
		ContractTx: p.ContractTx,
		CreatedAt:  now,
	}, nil
}

// GetByLogID returns the reward attached to a log, or domain.ErrNotFound.
func (r *Repo) GetByLogID(ctx context.Context, logID uuid.UUID) (domain.TokenReward, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+rewardColumns+` FROM token_rewards WHERE log_id = $1`, logID)

	reward, err := scanReward(row)
	if err != nil {
		return domain.TokenReward{}, postgres.MapError(err, "token reward", logID)
	}

	return reward, nil
}

// ListByUser returns all rewards earned by a student, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TokenReward, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT r.id, r.log_id, r.token_type, r.token_value, r.contract_tx, r.created_at
		 FROM token_rewards r
		 JOIN reading_logs l ON l.id = r.log_id
		 WHERE l.user_id = $1
		 ORDER BY r.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list rewards by user: %w", err)
	}
	defer rows.Close()

	var rewards []domain.TokenReward
	for rows.Next() {
		rw, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reward: %w", err)
		}
		rewards = append(rewards, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rewards: %w", err)
	}

	if rewards == nil {
		rewards = []domain.TokenReward{}
	}

	return rewards, nil
}

// TotalsByUser returns token totals per student for the leaderboard,
// highest first. Students without rewards are excluded.
func (r *Repo) TotalsByUser(ctx context.Context, limit int) ([]domain.UserTotal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, totalsByUserSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("reward totals by user: %w", err)
	}
	defer rows.Close()

	var totals []domain.UserTotal
	for rows.Next() {
		var t domain.UserTotal
		if err := rows.Scan(&t.UserID, &t.Name, &t.Total); err != nil {
			return nil, fmt.Errorf("scan reward total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reward totals: %w", err)
	}

	if totals == nil {
		totals = []domain.UserTotal{}
	}

	return totals, nil
}

func scanReward(row pgx.Row) (domain.TokenReward, error) {
	var rw domain.TokenReward
	if err := row.Scan(&rw.ID, &rw.LogID, &rw.TokenType, &rw.TokenValue, &rw.ContractTx, &rw.CreatedAt); err != nil {
		return domain.TokenReward{}, err
	}
	return rw, nil
}
