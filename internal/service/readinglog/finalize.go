package readinglog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
	"github.com/readify-app/readify-backend/pkg/ctxutil"
)

// FinalizeLog records the administrator's verdict on a quiz-verified log.
//
// Approval advances the log to the final approval stage and immediately
// attempts reward settlement. A settlement failure does not undo the
// approval: the log stays APPROVED without a reward and the settlement
// sweep retries it later. Re-finalizing with the same decision is
// idempotent.
func (s *Service) FinalizeLog(ctx context.Context, logID uuid.UUID, in FinalizeInput) (domain.ReadingLog, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ReadingLog{}, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminFromCtx(ctx) {
		return domain.ReadingLog{}, domain.ErrForbidden
	}

	if err := in.Validate(); err != nil {
		return domain.ReadingLog{}, err
	}

	admin, err := s.users.GetByID(ctx, adminID)
	if err != nil {
		return domain.ReadingLog{}, fmt.Errorf("load validator: %w", err)
	}

	log, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return domain.ReadingLog{}, err
	}
	if log.Approvals < domain.StageQuizVerified {
		return domain.ReadingLog{}, fmt.Errorf(
			"log %s has not passed quiz verification: %w", logID, domain.ErrConflict)
	}

	// The verdict and the approval bump commit together: an APPROVED log
	// must never be observed below the final stage.
	var finalized domain.ReadingLog
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		finalized, err = s.logs.Finalize(ctx, logID, in.Decision.Status(), admin.Email, in.Feedback)
		if err != nil {
			return err
		}
		if in.Decision != domain.DecisionApprove {
			return nil
		}
		if err := s.logs.AdvanceApprovals(ctx, logID, domain.StageAdminApproved); err != nil {
			return fmt.Errorf("advance approvals: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.ReadingLog{}, err
	}

	s.log.Info("log finalized",
		"log_id", logID, "status", finalized.Status, "validator", admin.Email)

	if in.Decision != domain.DecisionApprove {
		return finalized, nil
	}

	if _, err := s.settler.Settle(ctx, logID); err != nil {
		// Approved but not settled. The settlement sweep picks it up.
		s.log.Warn("settlement deferred", "log_id", logID, "error", err)
	}

	return s.logs.GetByID(ctx, logID)
}
