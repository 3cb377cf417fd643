package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/readify-app/readify-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a student with a bound wallet address.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	wallet := "0xabc" + suffix
	user := domain.User{
		ID:            uuid.New(),
		Name:          "Test Student " + suffix,
		Email:         "student-" + suffix + "@example.com",
		WalletAddress: &wallet,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, wallet_address, is_admin, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, false, $5, $6)`,
		user.ID, user.Name, user.Email, user.WalletAddress, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedLog creates a PENDING reading log owned by userID with approvals=1
// and a recorded chain index.
func SeedLog(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.ReadingLog {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	title := "Dune " + uniqueSuffix()
	summary := strings.Repeat("spice must flow across the dunes of arrakis ", 15)
	log := domain.ReadingLog{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           title,
		DurationMinutes: 120,
		Summary:         summary,
		Fingerprint:     domain.Fingerprint(title, summary),
		ChainIndex:      7,
		Approvals:       domain.StageSubmitted,
		Status:          domain.LogStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO reading_logs (id, user_id, title, duration_minutes, summary, fingerprint,
		                           chain_index, approvals, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		log.ID, log.UserID, log.Title, log.DurationMinutes, log.Summary, log.Fingerprint,
		log.ChainIndex, int(log.Approvals), string(log.Status), log.CreatedAt, log.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLog insert: %v", err)
	}

	return log
}
