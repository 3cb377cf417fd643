// Package reward settles token rewards for fully approved reading logs.
package reward

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
)

// logRepo defines the reading-log repository interface needed by reward service.
type logRepo interface {
	GetByID(ctx context.Context, logID uuid.UUID) (domain.ReadingLog, error)
	ListUnsettled(ctx context.Context) ([]domain.ReadingLog, error)
}

// rewardRepo defines the token-reward repository interface needed by reward service.
type rewardRepo interface {
	Attach(ctx context.Context, p domain.RewardAttachParams) (domain.TokenReward, error)
	GetByLogID(ctx context.Context, logID uuid.UUID) (domain.TokenReward, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TokenReward, error)
	TotalsByUser(ctx context.Context, limit int) ([]domain.UserTotal, error)
}

// userRepo defines the user repository interface needed by reward service.
type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
}

// ledger mints reward tokens on chain.
type ledger interface {
	MintReward(ctx context.Context, wallet string, index int64, amount int64) (string, error)
}

// Service implements reward settlement and reporting.
type Service struct {
	log     *slog.Logger
	logs    logRepo
	rewards rewardRepo
	users   userRepo
	ledger  ledger
}

// NewService creates a new Reward service.
func NewService(log *slog.Logger, logs logRepo, rewards rewardRepo, users userRepo, ledger ledger) *Service {
	return &Service{
		log:     log.With("service", "reward"),
		logs:    logs,
		rewards: rewards,
		users:   users,
		ledger:  ledger,
	}
}
