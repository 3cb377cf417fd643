// Package quiz implements the comprehension-quiz repository using PostgreSQL.
// Questions (including the correct answer index) are stored as jsonb and
// never leave the server unredacted.
package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/readify-app/readify-backend/internal/adapter/postgres"
	"github.com/readify-app/readify-backend/internal/domain"
)

// Repo provides quiz persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quiz repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a freshly generated quiz for a log.
func (r *Repo) Create(ctx context.Context, logID uuid.UUID, questions []domain.QuizQuestion) (domain.Quiz, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	payload, err := json.Marshal(questions)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("marshal quiz questions: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	_, err = q.Exec(ctx,
		`INSERT INTO quizzes (id, log_id, questions, created_at) VALUES ($1, $2, $3, $4)`,
		id, logID, payload, now,
	)
	if err != nil {
		return domain.Quiz{}, postgres.MapError(err, "quiz", id)
	}

	return domain.Quiz{
		ID:        id,
		LogID:     logID,
		Questions: questions,
		CreatedAt: now,
	}, nil
}

// GetByID returns a quiz with its questions decoded.
func (r *Repo) GetByID(ctx context.Context, quizID uuid.UUID) (domain.Quiz, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		quiz    domain.Quiz
		payload []byte
	)
	err := q.QueryRow(ctx,
		`SELECT id, log_id, questions, consumed_at, created_at FROM quizzes WHERE id = $1`,
		quizID,
	).Scan(&quiz.ID, &quiz.LogID, &payload, &quiz.ConsumedAt, &quiz.CreatedAt)
	if err != nil {
		return domain.Quiz{}, postgres.MapError(err, "quiz", quizID)
	}

	if err := json.Unmarshal(payload, &quiz.Questions); err != nil {
		return domain.Quiz{}, fmt.Errorf("unmarshal quiz questions: %w", err)
	}

	return quiz, nil
}

// Consume marks a quiz as scored. A quiz can be consumed exactly once;
// a second attempt returns domain.ErrConflict.
func (r *Repo) Consume(ctx context.Context, quizID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE quizzes SET consumed_at = now() WHERE id = $1 AND consumed_at IS NULL`,
		quizID,
	)
	if err != nil {
		return postgres.MapError(err, "quiz", quizID)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM quizzes WHERE id = $1)`, quizID).Scan(&exists); err != nil {
			return postgres.MapError(err, "quiz", quizID)
		}
		if !exists {
			return fmt.Errorf("quiz %s: %w", quizID, domain.ErrNotFound)
		}
		return fmt.Errorf("quiz %s already scored: %w", quizID, domain.ErrConflict)
	}

	return nil
}
