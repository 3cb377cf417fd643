package readinglog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
	"github.com/readify-app/readify-backend/pkg/ctxutil"
)

const (
	defaultReviewLimit = 50
	maxReviewLimit     = 200
)

// GetLog returns one log with its reward, if settled. Students can read
// only their own logs; administrators can read any.
func (s *Service) GetLog(ctx context.Context, logID uuid.UUID) (domain.ReadingLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ReadingLog{}, domain.ErrUnauthorized
	}

	log, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return domain.ReadingLog{}, err
	}

	if log.UserID != userID && !ctxutil.IsAdminFromCtx(ctx) {
		return domain.ReadingLog{}, domain.ErrForbidden
	}

	return log, nil
}

// ListMine returns all of the calling student's logs, newest first.
func (s *Service) ListMine(ctx context.Context) ([]domain.ReadingLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	logs, err := s.logs.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	return logs, nil
}

// ListForReview returns logs that have reached or passed quiz verification,
// for the administrator review queue. Optionally filtered by status.
func (s *Service) ListForReview(ctx context.Context, status *domain.LogStatus, limit, offset int) ([]domain.ReadingLog, error) {
	if !ctxutil.IsAdminFromCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}
	if limit <= 0 {
		limit = defaultReviewLimit
	}
	if limit > maxReviewLimit {
		limit = maxReviewLimit
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := s.logs.ListForReview(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list review queue: %w", err)
	}

	return logs, nil
}
