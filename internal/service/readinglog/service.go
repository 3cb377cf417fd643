// Package readinglog implements the reading-log approval pipeline: chain-
// anchored submission, quiz verification, administrator finalization and the
// settlement hand-off.
package readinglog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
)

// logRepo defines the reading-log repository interface needed by this service.
type logRepo interface {
	Create(ctx context.Context, p domain.LogCreateParams) (domain.ReadingLog, error)
	GetByID(ctx context.Context, logID uuid.UUID) (domain.ReadingLog, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReadingLog, error)
	ListForReview(ctx context.Context, status *domain.LogStatus, limit, offset int) ([]domain.ReadingLog, error)
	AdvanceApprovals(ctx context.Context, logID uuid.UUID, stage domain.ApprovalStage) error
	Finalize(ctx context.Context, logID uuid.UUID, status domain.LogStatus, validator string, feedback *string) (domain.ReadingLog, error)
}

// quizRepo defines the quiz repository interface needed by this service.
type quizRepo interface {
	Create(ctx context.Context, logID uuid.UUID, questions []domain.QuizQuestion) (domain.Quiz, error)
	GetByID(ctx context.Context, quizID uuid.UUID) (domain.Quiz, error)
	Consume(ctx context.Context, quizID uuid.UUID) error
}

// userRepo defines the user repository interface needed by this service.
type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
}

// ledger anchors submissions on chain.
type ledger interface {
	RecordSubmission(ctx context.Context, userName, title, fingerprint string, durationMinutes int) (int64, string, error)
}

// quizGenerator produces comprehension questions for a summary.
type quizGenerator interface {
	Generate(ctx context.Context, title, summary string) ([]domain.QuizQuestion, error)
}

// settler mints and records the reward for an approved log.
type settler interface {
	Settle(ctx context.Context, logID uuid.UUID) (domain.TokenReward, error)
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the reading-log business logic.
type Service struct {
	log     *slog.Logger
	logs    logRepo
	quizzes quizRepo
	users   userRepo
	ledger  ledger
	quizGen quizGenerator
	settler settler
	tx      txManager
}

// NewService creates a new ReadingLog service.
func NewService(
	log *slog.Logger,
	logs logRepo,
	quizzes quizRepo,
	users userRepo,
	ledger ledger,
	quizGen quizGenerator,
	settler settler,
	tx txManager,
) *Service {
	return &Service{
		log:     log.With("service", "readinglog"),
		logs:    logs,
		quizzes: quizzes,
		users:   users,
		ledger:  ledger,
		quizGen: quizGen,
		settler: settler,
		tx:      tx,
	}
}
