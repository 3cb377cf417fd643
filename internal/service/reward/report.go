package reward

import (
	"context"
	"fmt"

	"github.com/readify-app/readify-backend/internal/domain"
	"github.com/readify-app/readify-backend/pkg/ctxutil"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// ListMine returns the calling student's settled rewards, newest first.
func (s *Service) ListMine(ctx context.Context) ([]domain.TokenReward, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rewards, err := s.rewards.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}

	return rewards, nil
}

// Leaderboard returns token totals per student, highest first. A limit of 0
// applies the default; the limit is capped.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]domain.UserTotal, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	totals, err := s.rewards.TotalsByUser(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	return totals, nil
}
