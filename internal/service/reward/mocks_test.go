package reward

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	GetByIDFunc       func(ctx context.Context, logID uuid.UUID) (domain.ReadingLog, error)
	ListUnsettledFunc func(ctx context.Context) ([]domain.ReadingLog, error)

	calls struct {
		GetByID []struct {
			LogID uuid.UUID
		}
		ListUnsettled []struct{}
	}
	lockGetByID       sync.RWMutex
	lockListUnsettled sync.RWMutex
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

func (mock *logRepoMock) GetByIDCalls() []struct {
	LogID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *logRepoMock) ListUnsettled(ctx context.Context) ([]domain.ReadingLog, error) {
	if mock.ListUnsettledFunc == nil {
		panic("logRepoMock.ListUnsettledFunc: method is nil but logRepo.ListUnsettled was just called")
	}
	mock.lockListUnsettled.Lock()
	mock.calls.ListUnsettled = append(mock.calls.ListUnsettled, struct{}{})
	mock.lockListUnsettled.Unlock()
	return mock.ListUnsettledFunc(ctx)
}

var _ rewardRepo = &rewardRepoMock{}

type rewardRepoMock struct {
	AttachFunc       func(ctx context.Context, p domain.RewardAttachParams) (domain.TokenReward, error)
	GetByLogIDFunc   func(ctx context.Context, logID uuid.UUID) (domain.TokenReward, error)
	ListByUserFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.TokenReward, error)
	TotalsByUserFunc func(ctx context.Context, limit int) ([]domain.UserTotal, error)

	calls struct {
		Attach []struct {
			P domain.RewardAttachParams
		}
		GetByLogID []struct {
			LogID uuid.UUID
		}
		ListByUser []struct {
			UserID uuid.UUID
		}
		TotalsByUser []struct {
			Limit int
		}
	}
	lockAttach       sync.RWMutex
	lockGetByLogID   sync.RWMutex
	lockListByUser   sync.RWMutex
	lockTotalsByUser sync.RWMutex
}

func (mock *rewardRepoMock) Attach(ctx context.Context, p domain.RewardAttachParams) (domain.TokenReward, error) {
	if mock.AttachFunc == nil {
		panic("rewardRepoMock.AttachFunc: method is nil but rewardRepo.Attach was just called")
	}
	mock.lockAttach.Lock()
	mock.calls.Attach = append(mock.calls.Attach, struct {
		P domain.RewardAttachParams
	}{p})
	mock.lockAttach.Unlock()
	return mock.AttachFunc(ctx, p)
}

func (mock *rewardRepoMock) AttachCalls() []struct {
	P domain.RewardAttachParams
} {
	mock.lockAttach.RLock()
	calls := mock.calls.Attach
	mock.lockAttach.RUnlock()
	return calls
}

func (mock *rewardRepoMock) GetByLogID(ctx context.Context, logID uuid.UUID) (domain.TokenReward, error) {
	if mock.GetByLogIDFunc == nil {
		panic("rewardRepoMock.GetByLogIDFunc: method is nil but rewardRepo.GetByLogID was just called")
	}
	mock.lockGetByLogID.Lock()
	mock.calls.GetByLogID = append(mock.calls.GetByLogID, struct {
		LogID uuid.UUID
	}{logID})
	mock.lockGetByLogID.Unlock()
	return mock.GetByLogIDFunc(ctx, logID)
}

func (mock *rewardRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TokenReward, error) {
	if mock.ListByUserFunc == nil {
		panic("rewardRepoMock.ListByUserFunc: method is nil but rewardRepo.ListByUser was just called")
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct {
		UserID uuid.UUID
	}{userID})
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *rewardRepoMock) TotalsByUser(ctx context.Context, limit int) ([]domain.UserTotal, error) {
	if mock.TotalsByUserFunc == nil {
		panic("rewardRepoMock.TotalsByUserFunc: method is nil but rewardRepo.TotalsByUser was just called")
	}
	mock.lockTotalsByUser.Lock()
	mock.calls.TotalsByUser = append(mock.calls.TotalsByUser, struct {
		Limit int
	}{limit})
	mock.lockTotalsByUser.Unlock()
	return mock.TotalsByUserFunc(ctx, limit)
}

func (mock *rewardRepoMock) TotalsByUserCalls() []struct {
	Limit int
} {
	mock.lockTotalsByUser.RLock()
	calls := mock.calls.TotalsByUser
	mock.lockTotalsByUser.RUnlock()
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
	MintRewardFunc func(ctx context.Context, wallet string, index int64, amount int64) (string, error)

	calls struct {
		MintReward []struct {
			Wallet string
			Index  int64
			Amount int64
		}
	}
	lockMintReward sync.RWMutex
}

func (mock *ledgerMock) MintReward(ctx context.Context, wallet string, index int64, amount int64) (string, error) {
	if mock.MintRewardFunc == nil {
		panic("ledgerMock.MintRewardFunc: method is nil but ledger.MintReward was just called")
	}
	mock.lockMintReward.Lock()
	mock.calls.MintReward = append(mock.calls.MintReward, struct {
		Wallet string
		Index  int64
		Amount int64
	}{wallet, index, amount})
	mock.lockMintReward.Unlock()
	return mock.MintRewardFunc(ctx, wallet, index, amount)
}

func (mock *ledgerMock) MintRewardCalls() []struct {
	Wallet string
	Index  int64
	Amount int64
} {
	mock.lockMintReward.RLock()
	calls := mock.calls.MintReward
	mock.lockMintReward.RUnlock()
	return calls
}
