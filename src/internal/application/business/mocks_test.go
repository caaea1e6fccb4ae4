package business

import (
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// ===========================
// Mocks
// ===========================

// MockBusinessRepository mock implementation of BusinessRepository
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) Save(ctx shared.TransactionContext, b *business.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBusinessRepository) Update(ctx shared.TransactionContext, b *business.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBusinessRepository) FindByID(ctx shared.TransactionContext, id business.BusinessID) (*business.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindByJoinCode(ctx shared.TransactionContext, code business.JoinCode) (*business.Business, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *MockBusinessRepository) ExistsByID(ctx shared.TransactionContext, id business.BusinessID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockTransactionManager mock implementation of TransactionManager
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	// Directly execute the function with nil context (for unit tests)
	return fn(nil)
}
