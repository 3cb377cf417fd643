package reward

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
)

// Settle mints and records the reward for one fully approved log.
//
// The operation is idempotent: if a reward is already attached it is
// returned as-is, and a lost race on the attach resolves to the reward the
// winner wrote. The mint happens before the off-chain write, so a write
// failure after a successful mint leaves the log unsettled and a retry will
// surface the existing reward through the attach conflict.
func (s *Service) Settle(ctx context.Context, logID uuid.UUID) (domain.TokenReward, error) {
	log, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return domain.TokenReward{}, fmt.Errorf("load log: %w", err)
	}

	if log.Reward != nil {
		return *log.Reward, nil
	}

	if !log.IsRewardable() {
		return domain.TokenReward{}, fmt.Errorf(
			"log %s is %s with approvals %d: %w",
			logID, log.Status, log.Approvals, domain.ErrConflict,
		)
	}

	user, err := s.users.GetByID(ctx, log.UserID)
	if err != nil {
		return domain.TokenReward{}, fmt.Errorf("load log owner: %w", err)
	}
	if !user.HasWallet() {
		return domain.TokenReward{}, fmt.Errorf("user %s: %w", user.ID, domain.ErrNoWalletBound)
	}

	amount := log.TokenAmount()

	txID, err := s.ledger.MintReward(ctx, *user.WalletAddress, log.ChainIndex, amount)
	if err != nil {
		return domain.TokenReward{}, fmt.Errorf("mint reward for log %s: %w", logID, err)
	}

	reward, err := s.rewards.Attach(ctx, domain.RewardAttachParams{
		LogID:      logID,
		TokenType:  domain.DefaultTokenType,
		TokenValue: amount,
		ContractTx: txID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// A concurrent settlement won the attach. Its reward stands.
			s.log.Warn("reward already attached, dropping duplicate mint",
				"log_id", logID, "tx_id", txID)
			return s.rewards.GetByLogID(ctx, logID)
		}
		// Minted on chain but not recorded. The log stays unsettled and
		// is picked up again by the settlement sweep.
		s.log.Error("minted but failed to record reward",
			"log_id", logID, "tx_id", txID, "error", err)
		return domain.TokenReward{}, fmt.Errorf("record reward for log %s (tx %s): %w", logID, txID, err)
	}

	s.log.Info("reward settled", "log_id", logID, "tx_id", txID, "amount", amount)

	return reward, nil
}

// SettlePending settles every approved log without a recorded reward and
// returns the number settled. Individual failures are logged and skipped so
// one stuck log cannot block the sweep.
func (s *Service) SettlePending(ctx context.Context) (int, error) {
	logs, err := s.logs.ListUnsettled(ctx)
	if err != nil {
		return 0, fmt.Errorf("list unsettled logs: %w", err)
	}

	settled := 0
	for _, log := range logs {
		if _, err := s.Settle(ctx, log.ID); err != nil {
			if errors.Is(err, domain.ErrNoWalletBound) {
				s.log.Warn("skipping settlement, no wallet bound", "log_id", log.ID, "user_id", log.UserID)
				continue
			}
			s.log.Error("settlement failed", "log_id", log.ID, "error", err)
			continue
		}
		settled++
	}

	s.log.Info("settlement sweep finished", "candidates", len(logs), "settled", settled)

	return settled, nil
}
