// Package readinglog implements the ReadingLog repository using PostgreSQL.
// Field transitions (approvals, status) are guarded in SQL so concurrent
// callers cannot move a log backwards.
package readinglog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/readify-app/readify-backend/internal/adapter/postgres"
	"github.com/readify-app/readify-backend/internal/domain"
)

// Repo provides reading-log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reading-log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const logColumns = `l.id, l.user_id, l.title, l.duration_minutes, l.summary, l.fingerprint,
       l.chain_index, l.approvals, l.status, l.validator, l.feedback, l.created_at, l.updated_at,
       r.id, r.log_id, r.token_type, r.token_value, r.contract_tx, r.created_at`

const getByIDSQL = `
SELECT ` + logColumns + `
FROM reading_logs l
LEFT JOIN token_rewards r ON r.log_id = l.id
WHERE l.id = $1`

const listByUserSQL = `
SELECT ` + logColumns + `
FROM reading_logs l
LEFT JOIN token_rewards r ON r.log_id = l.id
WHERE l.user_id = $1
ORDER BY l.created_at DESC`

const listUnsettledSQL = `
SELECT ` + logColumns + `
FROM reading_logs l
LEFT JOIN token_rewards r ON r.log_id = l.id
WHERE l.status = 'APPROVED' AND l.approvals = 3 AND r.id IS NULL
ORDER BY l.created_at ASC`

// Create inserts a new log with status=PENDING and approvals=1.
func (r *Repo) Create(ctx context.Context, p domain.LogCreateParams) (domain.ReadingLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	_, err := q.Exec(ctx,
		`INSERT INTO reading_logs (id, user_id, title, duration_minutes, summary, fingerprint,
		                           chain_index, approvals, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		id, p.UserID, p.Title, p.DurationMinutes, p.Summary, p.Fingerprint,
		p.ChainIndex, int(domain.StageSubmitted), string(domain.LogStatusPending), now, now,
	)
	if err != nil {
		return domain.ReadingLog{}, postgres.MapError(err, "reading log", id)
	}

	return domain.ReadingLog{
		ID:              id,
		UserID:          p.UserID,
		Title:           p.Title,
		DurationMinutes: p.DurationMinutes,
		Summary:         p.Summary,
		Fingerprint:     p.Fingerprint,
		ChainIndex:      p.ChainIndex,
		Approvals:       domain.StageSubmitted,
		Status:          domain.LogStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// GetByID returns a log with its reward attached, if any.
func (r *Repo) GetByID(ctx context.Context, logID uuid.UUID) (domain.ReadingLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	log, err := scanLog(q.QueryRow(ctx, getByIDSQL, logID))
	if err != nil {
		return domain.ReadingLog{}, postgres.MapError(err, "reading log", logID)
	}

	return log, nil
}

// ListByUser returns all logs owned by a student, newest first, rewards included.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReadingLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list logs by user: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// ListForReview returns logs awaiting or past administrator review
// (approvals 2 or 3), newest first, optionally filtered by status.
func (r *Repo) ListForReview(ctx context.Context, status *domain.LogStatus, limit, offset int) ([]domain.ReadingLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(logColumns).
		From("reading_logs l").
		LeftJoin("token_rewards r ON r.log_id = l.id").
		Where(sq.Eq{"l.approvals": []int{2, 3}}).
		OrderBy("l.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if status != nil {
		builder = builder.Where(sq.Eq{"l.status": string(*status)})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build review query: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list logs for review: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// ListUnsettled returns APPROVED logs with full approvals and no attached
// reward: the settlement retry backlog. Oldest first.
func (r *Repo) ListUnsettled(ctx context.Context) ([]domain.ReadingLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listUnsettledSQL)
	if err != nil {
		return nil, fmt.Errorf("list unsettled logs: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// AdvanceApprovals moves the approval counter to stage. The counter is
// monotonic and saturates at 3: moving to a lower stage or past
// StageAdminApproved returns domain.ErrInvalidTransition. Re-applying the
// current stage is a no-op.
func (r *Repo) AdvanceApprovals(ctx context.Context, logID uuid.UUID, stage domain.ApprovalStage) error {
	if !stage.IsValid() {
		return fmt.Errorf("approvals %d: %w", stage, domain.ErrInvalidTransition)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE reading_logs
		 SET approvals = $2, updated_at = now()
		 WHERE id = $1 AND approvals <= $2`,
		logID, int(stage),
	)
	if err != nil {
		return postgres.MapError(err, "reading log", logID)
	}

	if tag.RowsAffected() == 0 {
		// Distinguish a missing log from a backwards transition.
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM reading_logs WHERE id = $1)`, logID).Scan(&exists); err != nil {
			return postgres.MapError(err, "reading log", logID)
		}
		if !exists {
			return fmt.Errorf("reading log %s: %w", logID, domain.ErrNotFound)
		}
		return fmt.Errorf("reading log %s: approvals cannot decrease: %w", logID, domain.ErrInvalidTransition)
	}

	return nil
}

// Finalize sets a terminal status together with the validator identity and
// optional feedback. Re-finalizing with the same status is idempotent and
// returns the stored log; switching between terminal statuses returns
// domain.ErrInvalidTransition.
func (r *Repo) Finalize(ctx context.Context, logID uuid.UUID, status domain.LogStatus, validator string, feedback *string) (domain.ReadingLog, error) {
	if !status.IsTerminal() {
		return domain.ReadingLog{}, fmt.Errorf("status %s: %w", status, domain.ErrInvalidTransition)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE reading_logs
		 SET status = $2, validator = $3, feedback = COALESCE($4, feedback), updated_at = now()
		 WHERE id = $1 AND status IN ('PENDING', $2)`,
		logID, string(status), validator, feedback,
	)
	if err != nil {
		return domain.ReadingLog{}, postgres.MapError(err, "reading log", logID)
	}

	if tag.RowsAffected() == 0 {
		current, err := r.GetByID(ctx, logID)
		if err != nil {
			return domain.ReadingLog{}, err
		}
		return domain.ReadingLog{}, fmt.Errorf("reading log %s is already %s: %w", logID, current.Status, domain.ErrInvalidTransition)
	}

	return r.GetByID(ctx, logID)
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanLogs(rows pgx.Rows) ([]domain.ReadingLog, error) {
	var logs []domain.ReadingLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reading log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reading logs: %w", err)
	}

	if logs == nil {
		logs = []domain.ReadingLog{}
	}

	return logs, nil
}

func scanLog(row pgx.Row) (domain.ReadingLog, error) {
	var (
		l         domain.ReadingLog
		approvals int
		status    string

		// reward columns are NULL when no reward is attached
		rewardID    *uuid.UUID
		rewardLogID *uuid.UUID
		tokenType   *string
		tokenValue  *int64
		contractTx  *string
		rewardAt    *time.Time
	)

	err := row.Scan(
		&l.ID, &l.UserID, &l.Title, &l.DurationMinutes, &l.Summary, &l.Fingerprint,
		&l.ChainIndex, &approvals, &status, &l.Validator, &l.Feedback, &l.CreatedAt, &l.UpdatedAt,
		&rewardID, &rewardLogID, &tokenType, &tokenValue, &contractTx, &rewardAt,
	)
	if err != nil {
		return domain.ReadingLog{}, err
	}

	l.Approvals = domain.ApprovalStage(approvals)
	l.Status = domain.LogStatus(status)

	if rewardID != nil {
		l.Reward = &domain.TokenReward{
			ID:         *rewardID,
			LogID:      *rewardLogID,
			TokenType:  *tokenType,
			TokenValue: *tokenValue,
			ContractTx: *contractTx,
			CreatedAt:  *rewardAt,
		}
	}

	return l, nil
}
