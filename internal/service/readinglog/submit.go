package readinglog

import (
	"context"
	"fmt"

	"github.com/readify-app/readify-backend/internal/domain"
	"github.com/readify-app/readify-backend/pkg/ctxutil"
)

// SubmitLog records a new reading session. The submission is anchored on
// chain first; the off-chain row is only written once the chain has assigned
// an index, so no log exists without an on-chain commitment.
func (s *Service) SubmitLog(ctx context.Context, in SubmitLogInput) (domain.ReadingLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ReadingLog{}, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return domain.ReadingLog{}, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.ReadingLog{}, fmt.Errorf("load submitter: %w", err)
	}

	fingerprint := domain.Fingerprint(in.Title, in.Summary)

	index, txID, err := s.ledger.RecordSubmission(ctx, user.Name, in.Title, fingerprint, in.DurationMinutes)
	if err != nil {
		return domain.ReadingLog{}, fmt.Errorf("anchor submission: %w", err)
	}

	created, err := s.logs.Create(ctx, domain.LogCreateParams{
		UserID:          userID,
		Title:           in.Title,
		DurationMinutes: in.DurationMinutes,
		Summary:         in.Summary,
		Fingerprint:     fingerprint,
		ChainIndex:      index,
	})
	if err != nil {
		// The chain record exists without an off-chain row. Surfaced for
		// manual reconciliation; the student sees the failure and can
		// resubmit.
		s.log.Error("submission anchored but not recorded",
			"user_id", userID, "tx_id", txID, "chain_index", index, "error", err)
		return domain.ReadingLog{}, fmt.Errorf("record submission: %w", err)
	}

	s.log.Info("log submitted",
		"log_id", created.ID, "user_id", userID, "chain_index", index, "tx_id", txID)

	return created, nil
}
