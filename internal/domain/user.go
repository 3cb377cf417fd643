package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the caller identity supplied by the session layer. Only the
// fields the reward pipeline needs are modeled here: the display name goes
// into the on-chain submission and the wallet address receives minted
// tokens. WalletAddress is nil until the student connects a wallet.
type User struct {
	ID            uuid.UUID
	Name          string
	Email         string
	WalletAddress *string
	IsAdmin       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasWallet reports whether a wallet address is bound to the account.
func (u *User) HasWallet() bool {
	return u.WalletAddress != nil && *u.WalletAddress != ""
}

// UserTotal is one leaderboard row: a student and their settled token sum.
type UserTotal struct {
	UserID uuid.UUID
	Name   string
	Total  int64
}
