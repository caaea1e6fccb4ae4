package appeal

import (
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/appeal"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/membership"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// ===========================
// Mocks
// ===========================

// MockAppealRepository mock implementation of AppealRepository
type MockAppealRepository struct {
	mock.Mock
}

func (m *MockAppealRepository) Save(ctx shared.TransactionContext, a *appeal.PurchaseAppeal) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAppealRepository) FindByID(ctx shared.TransactionContext, id appeal.AppealID) (*appeal.PurchaseAppeal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appeal.PurchaseAppeal), args.Error(1)
}

func (m *MockAppealRepository) ListPendingByBusiness(ctx shared.TransactionContext, businessID appeal.BusinessID) ([]*appeal.PurchaseAppeal, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*appeal.PurchaseAppeal), args.Error(1)
}

func (m *MockAppealRepository) ListApprovedByBusiness(ctx shared.TransactionContext, businessID appeal.BusinessID) ([]*appeal.PurchaseAppeal, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*appeal.PurchaseAppeal), args.Error(1)
}

func (m *MockAppealRepository) MarkResolved(ctx shared.TransactionContext, a *appeal.PurchaseAppeal) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

// MockMembershipRepository mock implementation of membership.MembershipRepository
type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Save(ctx shared.TransactionContext, ms *membership.Membership) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MockMembershipRepository) Update(ctx shared.TransactionContext, ms *membership.Membership) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MockMembershipRepository) FindByID(ctx shared.TransactionContext, id membership.MembershipID) (*membership.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Membership), args.Error(1)
}

func (m *MockMembershipRepository) FindByUserAndBusiness(ctx shared.TransactionContext, userID membership.UserID, businessID membership.BusinessID) (*membership.Membership, error) {
	args := m.Called(ctx, userID, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Membership), args.Error(1)
}

func (m *MockMembershipRepository) FindAllByUser(ctx shared.TransactionContext, userID membership.UserID) ([]*membership.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*membership.Membership), args.Error(1)
}

func (m *MockMembershipRepository) ExistsPurchaseBySourceID(ctx shared.TransactionContext, sourceID string) (bool, error) {
	args := m.Called(ctx, sourceID)
	return args.Bool(0), args.Error(1)
}

// MockBusinessRepository mock implementation of business.BusinessRepository
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
