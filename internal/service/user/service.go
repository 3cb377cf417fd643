// Package user implements profile and wallet operations for authenticated
// accounts.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
	SetWallet(ctx context.Context, userID uuid.UUID, address string) error
}

// Service implements user profile and wallet operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
