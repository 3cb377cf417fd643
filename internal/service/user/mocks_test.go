package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
)

// Ensure, that userRepoMock does implement userRepo.
// If this is not the case, regenerate this file with moq.
var _ userRepo = &userRepoMock{}

// userRepoMock is a mock implementation of userRepo.
type userRepoMock struct {
	// GetByIDFunc mocks the GetByID method.
	GetByIDFunc func(ctx context.Context, userID uuid.UUID) (domain.User, error)

	// SetWalletFunc mocks the SetWallet method.
	SetWalletFunc func(ctx context.Context, userID uuid.UUID, address string) error

	// calls tracks calls to the methods.
	calls struct {
		// GetByID holds details about calls to the GetByID method.
		GetByID []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// UserID is the userID argument value.
			UserID uuid.UUID
		}
		// SetWallet holds details about calls to the SetWallet method.
		SetWallet []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// UserID is the userID argument value.
			UserID uuid.UUID
			// Address is the address argument value.
			Address string
		}
	}
	lockGetByID   sync.RWMutex
	lockSetWallet sync.RWMutex
}

// GetByID calls GetByIDFunc.
func (mock *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID)
}

// GetByIDCalls gets all the calls that were made to GetByID.
func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

// SetWallet calls SetWalletFunc.
func (mock *userRepoMock) SetWallet(ctx context.Context, userID uuid.UUID, address string) error {
	if mock.SetWalletFunc == nil {
		panic("userRepoMock.SetWalletFunc: method is nil but userRepo.SetWallet was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		Address string
	}{
		Ctx:     ctx,
		UserID:  userID,
		Address: address,
	}
	mock.lockSetWallet.Lock()
	mock.calls.SetWallet = append(mock.calls.SetWallet, callInfo)
	mock.lockSetWallet.Unlock()
	return mock.SetWalletFunc(ctx, userID, address)
}

// SetWalletCalls gets all the calls that were made to SetWallet.
func (mock *userRepoMock) SetWalletCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	Address string
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		Address string
	}
	mock.lockSetWallet.RLock()
	calls = mock.calls.SetWallet
	mock.lockSetWallet.RUnlock()
	return calls
}
