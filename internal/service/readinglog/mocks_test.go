package readinglog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc           func(ctx context.Context, p domain.LogCreateParams) (domain.ReadingLog, error)
	GetByIDFunc          func(ctx context.Context, logID uuid.UUID) (domain.ReadingLog, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID) ([]domain.ReadingLog, error)
	ListForReviewFunc    func(ctx context.Context, status *domain.LogStatus, limit, offset int) ([]domain.ReadingLog, error)
	AdvanceApprovalsFunc func(ctx context.Context, logID uuid.UUID, stage domain.ApprovalStage) error
	FinalizeFunc         func(ctx context.Context, logID uuid.UUID, status domain.LogStatus, validator string, feedback *string) (domain.ReadingLog, error)

	calls struct {
		Create []struct {
			P domain.LogCreateParams
		}
		GetByID []struct {
			LogID uuid.UUID
		}
		ListByUser []struct {
			UserID uuid.UUID
		}
		ListForReview []struct {
			Status *domain.LogStatus
			Limit  int
			Offset int
		}
		AdvanceApprovals []struct {
			LogID uuid.UUID
			Stage domain.ApprovalStage
		}
		Finalize []struct {
			LogID     uuid.UUID
			Status    domain.LogStatus
			Validator string
			Feedback  *string
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockListByUser       sync.RWMutex
	lockListForReview    sync.RWMutex
	lockAdvanceApprovals sync.RWMutex
	lockFinalize         sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, p domain.LogCreateParams) (domain.ReadingLog, error) {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		P domain.LogCreateParams
	}{p})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *logRepoMock) CreateCalls() []struct {
	P domain.LogCreateParams
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *logRepoMock) GetByID(ctx context.Context, logID uuid.UUID) (domain.ReadingLog, error) {
	if mock.GetByIDFunc == nil {
		panic("logRepoMock.GetByIDFunc: method is nil but logRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		LogID uuid.UUID
	}{logID})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, logID)
}

func (mock *logRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReadingLog, error) {
	if mock.ListByUserFunc == nil {
		panic("logRepoMock.ListByUserFunc: method is nil but logRepo.ListByUser was just called")
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct {
		UserID uuid.UUID
	}{userID})
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *logRepoMock) ListForReview(ctx context.Context, status *domain.LogStatus, limit, offset int) ([]domain.ReadingLog, error) {
	if mock.ListForReviewFunc == nil {
		panic("logRepoMock.ListForReviewFunc: method is nil but logRepo.ListForReview was just called")
	}
	mock.lockListForReview.Lock()
	mock.calls.ListForReview = append(mock.calls.ListForReview, struct {
		Status *domain.LogStatus
		Limit  int
		Offset int
	}{status, limit, offset})
	mock.lockListForReview.Unlock()
	return mock.ListForReviewFunc(ctx, status, limit, offset)
}

func (mock *logRepoMock) ListForReviewCalls() []struct {
	Status *domain.LogStatus
	Limit  int
	Offset int
} {
	mock.lockListForReview.RLock()
	calls := mock.calls.ListForReview
	mock.lockListForReview.RUnlock()
	return calls
}

func (mock *logRepoMock) AdvanceApprovals(ctx context.Context, logID uuid.UUID, stage domain.ApprovalStage) error {
	if mock.AdvanceApprovalsFunc == nil {
		panic("logRepoMock.AdvanceApprovalsFunc: method is nil but logRepo.AdvanceApprovals was just called")
	}
	mock.lockAdvanceApprovals.Lock()
	mock.calls.AdvanceApprovals = append(mock.calls.AdvanceApprovals, struct {
		LogID uuid.UUID
		Stage domain.ApprovalStage
	}{logID, stage})
	mock.lockAdvanceApprovals.Unlock()
	return mock.AdvanceApprovalsFunc(ctx, logID, stage)
}

func (mock *logRepoMock) AdvanceApprovalsCalls() []struct {
	LogID uuid.UUID
	Stage domain.ApprovalStage
} {
	mock.lockAdvanceApprovals.RLock()
	calls := mock.calls.AdvanceApprovals
	mock.lockAdvanceApprovals.RUnlock()
	return calls
}

func (mock *logRepoMock) Finalize(ctx context.Context, logID uuid.UUID, status domain.LogStatus, validator string, feedback *string) (domain.ReadingLog, error) {
	if mock.FinalizeFunc == nil {
		panic("logRepoMock.FinalizeFunc: method is nil but logRepo.Finalize was just called")
	}
	mock.lockFinalize.Lock()
	mock.calls.Finalize = append(mock.calls.Finalize, struct {
		LogID     uuid.UUID
		Status    domain.LogStatus
		Validator string
		Feedback  *string
	}{logID, status, validator, feedback})
	mock.lockFinalize.Unlock()
	return mock.FinalizeFunc(ctx, logID, status, validator, feedback)
}

func (mock *logRepoMock) FinalizeCalls() []struct {
	LogID     uuid.UUID
	Status    domain.LogStatus
	Validator string
	Feedback  *string
} {
	mock.lockFinalize.RLock()
	calls := mock.calls.Finalize
	mock.lockFinalize.RUnlock()
	return calls
}

var _ quizRepo = &quizRepoMock{}

type quizRepoMock struct {
	CreateFunc  func(ctx context.Context, logID uuid.UUID, questions []domain.QuizQuestion) (domain.Quiz, error)
	GetByIDFunc func(ctx context.Context, quizID uuid.UUID) (domain.Quiz, error)
	ConsumeFunc func(ctx context.Context, quizID uuid.UUID) error

	calls struct {
		Create []struct {
			LogID     uuid.UUID
			Questions []domain.QuizQuestion
		}
		GetByID []struct {
			QuizID uuid.UUID
		}
		Consume []struct {
			QuizID uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockConsume sync.RWMutex
}

func (mock *quizRepoMock) Create(ctx context.Context, logID uuid.UUID, questions []domain.QuizQuestion) (domain.Quiz, error) {
	if mock.CreateFunc == nil {
		panic("quizRepoMock.CreateFunc: method is nil but quizRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		LogID     uuid.UUID
		Questions []domain.QuizQuestion
	}{logID, questions})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, logID, questions)
}

func (mock *quizRepoMock) CreateCalls() []struct {
	LogID     uuid.UUID
	Questions []domain.QuizQuestion
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *quizRepoMock) GetByID(ctx context.Context, quizID uuid.UUID) (domain.Quiz, error) {
	if mock.GetByIDFunc == nil {
		panic("quizRepoMock.GetByIDFunc: method is nil but quizRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		QuizID uuid.UUID
	}{quizID})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, quizID)
}

func (mock *quizRepoMock) Consume(ctx context.Context, quizID uuid.UUID) error {
	if mock.ConsumeFunc == nil {
		panic("quizRepoMock.ConsumeFunc: method is nil but quizRepo.Consume was just called")
	}
	mock.lockConsume.Lock()
	mock.calls.Consume = append(mock.calls.Consume, struct {
		QuizID uuid.UUID
	}{quizID})
	mock.lockConsume.Unlock()
	return mock.ConsumeFunc(ctx, quizID)
}

func (mock *quizRepoMock) ConsumeCalls() []struct {
	QuizID uuid.UUID
} {
	mock.lockConsume.RLock()
	calls := mock.calls.Consume
	mock.lockConsume.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID) (domain.User, error)

	calls struct {
		GetByID []struct {
			UserID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		UserID uuid.UUID
	}{userID})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID)
}

var _ ledger = &ledgerMock{}

type ledgerMock struct {
	RecordSubmissionFunc func(ctx context.Context, userName, title, fingerprint string, durationMinutes int) (int64, string, error)

	calls struct {
		RecordSubmission []struct {
			UserName        string
			Title           string
			Fingerprint     string
			DurationMinutes int
		}
	}
	lockRecordSubmission sync.RWMutex
}

func (mock *ledgerMock) RecordSubmission(ctx context.Context, userName, title, fingerprint string, durationMinutes int) (int64, string, error) {
	if mock.RecordSubmissionFunc == nil {
		panic("ledgerMock.RecordSubmissionFunc: method is nil but ledger.RecordSubmission was just called")
	}
	mock.lockRecordSubmission.Lock()
	mock.calls.RecordSubmission = append(mock.calls.RecordSubmission, struct {
		UserName        string
		Title           string
		Fingerprint     string
		DurationMinutes int
	}{userName, title, fingerprint, durationMinutes})
	mock.lockRecordSubmission.Unlock()
	return mock.RecordSubmissionFunc(ctx, userName, title, fingerprint, durationMinutes)
}

func (mock *ledgerMock) RecordSubmissionCalls() []struct {
	UserName        string
	Title           string
	Fingerprint     string
	DurationMinutes int
} {
	mock.lockRecordSubmission.RLock()
	calls := mock.calls.RecordSubmission
	mock.lockRecordSubmission.RUnlock()
	return calls
}

var _ quizGenerator = &quizGeneratorMock{}

type quizGeneratorMock struct {
	GenerateFunc func(ctx context.Context, title, summary string) ([]domain.QuizQuestion, error)

	calls struct {
		Generate []struct {
			Title   string
			Summary string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *quizGeneratorMock) Generate(ctx context.Context, title, summary string) ([]domain.QuizQuestion, error) {
	if mock.GenerateFunc == nil {
		panic("quizGeneratorMock.GenerateFunc: method is nil but quizGenerator.Generate was just called")
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, struct {
		Title   string
		Summary string
	}{title, summary})
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, title, summary)
}

func (mock *quizGeneratorMock) GenerateCalls() []struct {
	Title   string
	Summary string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

var _ settler = &settlerMock{}

type settlerMock struct {
	SettleFunc func(ctx context.Context, logID uuid.UUID) (domain.TokenReward, error)

	calls struct {
		Settle []struct {
			LogID uuid.UUID
		}
	}
	lockSettle sync.RWMutex
}

func (mock *settlerMock) Settle(ctx context.Context, logID uuid.UUID) (domain.TokenReward, error) {
	if mock.SettleFunc == nil {
		panic("settlerMock.SettleFunc: method is nil but settler.Settle was just called")
	}
	mock.lockSettle.Lock()
	mock.calls.Settle = append(mock.calls.Settle, struct {
		LogID uuid.UUID
	}{logID})
	mock.lockSettle.Unlock()
	return mock.SettleFunc(ctx, logID)
}

func (mock *settlerMock) SettleCalls() []struct {
	LogID uuid.UUID
} {
	mock.lockSettle.RLock()
	calls := mock.calls.Settle
	mock.lockSettle.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct {
		Ctx context.Context
	}{ctx})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
