package appeal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/appeal"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===========================
// SubmitAppealUseCase Tests
// ===========================

// Test 1: Submit appeal successfully
func TestSubmitAppealUseCase_Execute_Success(t *testing.T) {
	// Arrange
	mockAppealRepo := new(MockAppealRepository)
	mockBusinessRepo := new(MockBusinessRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewSubmitAppealUseCase(mockAppealRepo, mockBusinessRepo, mockTxManager)

	cmd := SubmitAppealCommand{
		UserID:         uuid.New().String(),
		BusinessID:     uuid.New().String(),
		Item:           "Latte",
		Amount:         "4.50",
		PointsExpected: 20,
		Reason:         "points missing from receipt",
	}

	mockBusinessRepo.On("ExistsByID", mock.Anything, mock.Anything).Return(true, nil)

	var saved *appeal.PurchaseAppeal
	mockAppealRepo.On("Save", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*appeal.PurchaseAppeal)
		}).
		Return(nil)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.AppealID)
	assert.Equal(t, "pending", result.Status)

	require.NotNil(t, saved)
	assert.Equal(t, "Latte", saved.Item())
	assert.Equal(t, 20, saved.PointsExpected())
	assert.Equal(t, "points missing from receipt", saved.AppealReason())
	assert.Equal(t, appeal.StatusPending, saved.Status())
}

// Test 2: Zero expected points are rejected before any persistence
func TestSubmitAppealUseCase_Execute_ZeroPoints_ReturnsError(t *testing.T) {
	// Arrange
	mockAppealRepo := new(MockAppealRepository)
	mockBusinessRepo := new(MockBusinessRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewSubmitAppealUseCase(mockAppealRepo, mockBusinessRepo, mockTxManager)

	cmd := SubmitAppealCommand{
		UserID:         uuid.New().String(),
		BusinessID:     uuid.New().String(),
		Item:           "Latte",
		Amount:         "4.50",
		PointsExpected: 0,
	}

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, appeal.ErrInvalidPoints)
	assert.Nil(t, result)

	mockAppealRepo.AssertNotCalled(t, "Save")
}

// Test 3: Negative amount
func TestSubmitAppealUseCase_Execute_NegativeAmount_ReturnsError(t *testing.T) {
	// Arrange
	mockAppealRepo := new(MockAppealRepository)
	mockBusinessRepo := new(MockBusinessRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewSubmitAppealUseCase(mockAppealRepo, mockBusinessRepo, mockTxManager)

	cmd := SubmitAppealCommand{
		UserID:         uuid.New().String(),
		BusinessID:     uuid.New().String(),
		Item:           "Latte",
		Amount:         "-4.50",
		PointsExpected: 20,
	}

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, appeal.ErrInvalidAmount)
	assert.Nil(t, result)

	mockAppealRepo.AssertNotCalled(t, "Save")
}

// Test 4: Business does not exist
func TestSubmitAppealUseCase_Execute_BusinessNotFound_ReturnsError(t *testing.T) {
	// Arrange
	mockAppealRepo := new(MockAppealRepository)
	mockBusinessRepo := new(MockBusinessRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewSubmitAppealUseCase(mockAppealRepo, mockBusinessRepo, mockTxManager)

	cmd := SubmitAppealCommand{
		UserID:         uuid.New().String(),
		BusinessID:     uuid.New().String(),
		Item:           "Latte",
		Amount:         "4.50",
		PointsExpected: 20,
	}

	mockBusinessRepo.On("ExistsByID", mock.Anything, mock.Anything).Return(false, nil)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, business.ErrBusinessNotFound)
	assert.Nil(t, result)

	mockAppealRepo.AssertNotCalled(t, "Save")
}

// ===========================
// RejectAppealUseCase Tests
// ===========================

// Test 5: Reject appeal successfully, no ledger interaction
func TestRejectAppealUseCase_Execute_Success(t *testing.T) {
	// Arrange
	mockAppealRepo := new(MockAppealRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewRejectAppealUseCase(mockAppealRepo, mockTxManager)

	a := newPendingAppeal(t)

	cmd := RejectAppealCommand{
		AppealID:   a.AppealID().String(),
		ReviewerID: "admin-1",
		Reason:     "no matching receipt",
	}

	mockAppealRepo.On("FindByID", mock.Anything, mock.Anything).Return(a, nil)
	mockAppealRepo.On("MarkResolved", mock.Anything, mock.Anything).Return(nil)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "rejected", result.Status)
	assert.Equal(t, appeal.StatusRejected, a.Status())
	assert.Equal(t, "no matching receipt", a.RejectReason())

	mockAppealRepo.AssertExpectations(t)
}

// Test 6: Rejecting an approved appeal fails
func TestRejectAppealUseCase_Execute_AlreadyApproved_ReturnsError(t *testing.T) {
	// Arrange
	mockAppealRepo := new(MockAppealRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewRejectAppealUseCase(mockAppealRepo, mockTxManager)

	a := newPendingAppeal(t)
	require.NoError(t, a.Approve("admin-1"))

	cmd := RejectAppealCommand{
		AppealID:   a.AppealID().String(),
		ReviewerID: "admin-2",
		Reason:     "changed my mind",
	}

	mockAppealRepo.On("FindByID", mock.Anything, mock.Anything).Return(a, nil)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, appeal.ErrAppealAlreadyResolved)
	assert.Nil(t, result)
	assert.Equal(t, appeal.StatusApproved, a.Status(), "終態不可逆")

	mockAppealRepo.AssertNotCalled(t, "MarkResolved")
}

// ===========================
// ListPendingAppealsUseCase Tests
// ===========================

// Test 7: Pending appeals are returned in repository order (oldest first)
func TestListPendingAppealsUseCase_Execute_PreservesOrder(t *testing.T) {
	// Arrange
	mockAppealRepo := new(MockAppealRepository)
	useCase := NewListPendingAppealsUseCase(mockAppealRepo)

	first := newPendingAppeal(t)
	second := newPendingAppeal(t)
	businessID := uuid.New().String()

	mockAppealRepo.On("ListPendingByBusiness", mock.Anything, mock.Anything).
		Return([]*appeal.PurchaseAppeal{first, second}, nil)

	// Act
	result, err := useCase.Execute(ListPendingAppealsQuery{BusinessID: businessID})

	// Assert
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, first.AppealID().String(), result[0].AppealID)
	assert.Equal(t, second.AppealID().String(), result[1].AppealID)
	assert.Equal(t, "pending", result[0].Status)
}
