// Package user implements the user repository using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/readify-app/readify-backend/internal/adapter/postgres"
	"github.com/readify-app/readify-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, name, email, wallet_address, is_admin, created_at, updated_at`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	err := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID).
		Scan(&u.ID, &u.Name, &u.Email, &u.WalletAddress, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", userID)
	}

	return u, nil
}

// SetWallet binds a wallet address to the user. An empty address unbinds.
func (r *Repo) SetWallet(ctx context.Context, userID uuid.UUID, address string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var addr *string
	if address != "" {
		addr = &address
	}

	tag, err := q.Exec(ctx,
		`UPDATE users SET wallet_address = $2, updated_at = now() WHERE id = $1`,
		userID, addr,
	)
	if err != nil {
		return postgres.MapError(err, "user", userID)
	}

	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", userID)
	}

	return nil
}
