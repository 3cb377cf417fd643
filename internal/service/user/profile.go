package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/readify-app/readify-backend/internal/domain"
	"github.com/readify-app/readify-backend/pkg/ctxutil"
)

// Profile returns the authenticated user's account.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Profile(ctx context.Context) (domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.Profile: %w", err)
	}

	return user, nil
}

// SetWallet binds a wallet address to the authenticated user's account, or
// unbinds the current one when the address is empty. Rewards settled after
// the change are minted to the new address; already-settled rewards are not
// reissued.
func (s *Service) SetWallet(ctx context.Context, input SetWalletInput) (domain.User, error) {
	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}

	if err := s.users.SetWallet(ctx, userID, input.Address); err != nil {
		return domain.User{}, fmt.Errorf("user.SetWallet: %w", err)
	}

	if input.Address == "" {
		s.log.InfoContext(ctx, "wallet unbound",
			slog.String("user_id", userID.String()))
	} else {
		s.log.InfoContext(ctx, "wallet bound",
			slog.String("user_id", userID.String()),
			slog.String("wallet", input.Address))
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.SetWallet: %w", err)
	}

	return user, nil
}
