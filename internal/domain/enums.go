package domain

// LogStatus represents the lifecycle status of a reading log.
type LogStatus string

const (
	LogStatusPending  LogStatus = "PENDING"
	LogStatusApproved LogStatus = "APPROVED"
	LogStatusRejected LogStatus = "REJECTED"
)

func (s LogStatus) String() string { return string(s) }

func (s LogStatus) IsValid() bool {
	switch s {
	case LogStatusPending, LogStatusApproved, LogStatusRejected:
		return true
	}
	return false
}

// IsTerminal returns true once no further status transitions are permitted.
func (s LogStatus) IsTerminal() bool {
	return s == LogStatusApproved || s == LogStatusRejected
}

// ApprovalStage encodes how far a log has progressed through verification.
// It is stored as the approvals integer (1–3) for compatibility with the
// original schema: 1 = self-submitted with the on-chain commitment recorded,
// 2 = comprehension quiz passed, 3 = administrator approved.
type ApprovalStage int

const (
	StageSubmitted     ApprovalStage = 1
	StageQuizVerified  ApprovalStage = 2
	StageAdminApproved ApprovalStage = 3
)

func (s ApprovalStage) IsValid() bool {
	return s >= StageSubmitted && s <= StageAdminApproved
}

func (s ApprovalStage) String() string {
	switch s {
	case StageSubmitted:
		return "SUBMITTED"
	case StageQuizVerified:
		return "QUIZ_VERIFIED"
	case StageAdminApproved:
		return "ADMIN_APPROVED"
	default:
		return "UNKNOWN"
	}
}

// FinalizeDecision is an administrator's verdict on a reviewed log.
type FinalizeDecision string

const (
	DecisionApprove FinalizeDecision = "APPROVED"
	DecisionReject  FinalizeDecision = "REJECTED"
)

func (d FinalizeDecision) IsValid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// Status maps a decision to the resulting log status.
func (d FinalizeDecision) Status() LogStatus {
	if d == DecisionApprove {
		return LogStatusApproved
	}
	return LogStatusRejected
}
