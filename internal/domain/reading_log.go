package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Submission limits enforced at creation time.
const (
	MaxTitleLength     = 150
	MaxDurationMinutes = 1440
	MinSummaryWords    = 100
)

// ReadingLog is one submitted reading session. It is created with the
// on-chain commitment already recorded (ChainIndex) and moves through the
// approval pipeline: PENDING/1 -> quiz pass -> PENDING/2 -> administrator
// finalization -> APPROVED/3 (settled) or REJECTED.
type ReadingLog struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	DurationMinutes int
	Summary         string
	Fingerprint     string
	ChainIndex      int64
	Approvals       ApprovalStage
	Status          LogStatus
	Validator       *string
	Feedback        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Reward is attached when the log has been settled. Nil otherwise.
	Reward *TokenReward
}

// IsRewardable reports whether settlement preconditions hold:
// administrator-approved with a full approval count.
func (l *ReadingLog) IsRewardable() bool {
	return l.Status == LogStatusApproved && l.Approvals == StageAdminApproved
}

// TokenAmount is the reward size derived from the reading duration
// (one token unit per minute read).
func (l *ReadingLog) TokenAmount() int64 {
	return int64(l.DurationMinutes)
}

// TokenReward records a settled on-chain mint for one log. At most one
// reward exists per log; it is immutable once written.
type TokenReward struct {
	ID         uuid.UUID
	LogID      uuid.UUID
	TokenType  string
	TokenValue int64
	ContractTx string
	CreatedAt  time.Time
}

// DefaultTokenType is the token symbol minted for reading rewards.
const DefaultTokenType = "READ"

// LogCreateParams holds the fields of a new reading log. Status and
// approvals are not parameters: every log starts PENDING at the submitted
// stage.
type LogCreateParams struct {
	UserID          uuid.UUID
	Title           string
	DurationMinutes int
	Summary         string
	Fingerprint     string
	ChainIndex      int64
}

// RewardAttachParams holds the fields of a settled reward.
type RewardAttachParams struct {
	LogID      uuid.UUID
	TokenType  string
	TokenValue int64
	ContractTx string
}

// ValidateSubmission checks the student-supplied fields of a new log.
// It reports every problem at once so the caller can surface all of them.
func ValidateSubmission(title string, durationMinutes int, summary string) error {
	var errs []FieldError

	if strings.TrimSpace(title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "must not be empty"})
	} else if len(title) > MaxTitleLength {
		errs = append(errs, FieldError{Field: "title", Message: "too long"})
	}

	if durationMinutes <= 0 {
		errs = append(errs, FieldError{Field: "duration", Message: "must be a positive number of minutes"})
	} else if durationMinutes > MaxDurationMinutes {
		errs = append(errs, FieldError{Field: "duration", Message: "exceeds one day"})
	}

	if WordCount(summary) < MinSummaryWords {
		errs = append(errs, FieldError{Field: "summary", Message: "must be at least 100 words"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// WordCount counts whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
