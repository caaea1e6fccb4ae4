package business

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===========================
// CreateBusinessUseCase Tests
// ===========================

// Test 1: Create business successfully
func TestCreateBusinessUseCase_Execute_Success(t *testing.T) {
	// Arrange
	mockRepo := new(MockBusinessRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewCreateBusinessUseCase(mockRepo, mockTxManager)

	cmd := CreateBusinessCommand{
		Name:       "Sunrise Cafe",
		AdminOwner: uuid.New().String(),
	}

	// Mock: Save succeeds
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.BusinessID, "BusinessID should be generated")
	assert.Equal(t, "Sunrise Cafe", result.Name)
	assert.Len(t, result.JoinCode, 8, "join code should be assigned")

	mockRepo.AssertExpectations(t)
}

// Test 2: Invalid admin owner ID
func TestCreateBusinessUseCase_Execute_InvalidAdminOwner_ReturnsError(t *testing.T) {
	// Arrange
	mockRepo := new(MockBusinessRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewCreateBusinessUseCase(mockRepo, mockTxManager)

	cmd := CreateBusinessCommand{
		Name:       "Sunrise Cafe",
		AdminOwner: "not-a-uuid",
	}

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, business.ErrInvalidUserID)
	assert.Nil(t, result)

	// No repository calls should be made
	mockRepo.AssertNotCalled(t, "Save")
}

// Test 3: Empty business name
func TestCreateBusinessUseCase_Execute_EmptyName_ReturnsError(t *testing.T) {
	// Arrange
	mockRepo := new(MockBusinessRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewCreateBusinessUseCase(mockRepo, mockTxManager)

	cmd := CreateBusinessCommand{
		Name:       "",
		AdminOwner: uuid.New().String(),
	}

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, business.ErrInvalidBusinessName)
	assert.Nil(t, result)

	mockRepo.AssertNotCalled(t, "Save")
}

// Test 4: Join code collision triggers retry with a fresh code
func TestCreateBusinessUseCase_Execute_JoinCodeCollision_Retries(t *testing.T) {
	// Arrange
	mockRepo := new(MockBusinessRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewCreateBusinessUseCase(mockRepo, mockTxManager)

	cmd := CreateBusinessCommand{
		Name:       "Sunrise Cafe",
		AdminOwner: uuid.New().String(),
	}

	// Mock: first Save hits the unique constraint, second succeeds
	mockRepo.On("Save", mock.Anything, mock.Anything).
		Return(business.ErrJoinCodeAlreadyExists).Once()
	mockRepo.On("Save", mock.Anything, mock.Anything).
		Return(nil).Once()

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.JoinCode, 8)

	mockRepo.AssertNumberOfCalls(t, "Save", 2)
}

// Test 5: Persistent collision exhausts attempts
func TestCreateBusinessUseCase_Execute_PersistentCollision_ReturnsError(t *testing.T) {
	// Arrange
	mockRepo := new(MockBusinessRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewCreateBusinessUseCase(mockRepo, mockTxManager)

	cmd := CreateBusinessCommand{
		Name:       "Sunrise Cafe",
		AdminOwner: uuid.New().String(),
	}

	// Mock: every Save hits the unique constraint
	mockRepo.On("Save", mock.Anything, mock.Anything).
		Return(business.ErrJoinCodeAlreadyExists)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, business.ErrJoinCodeAlreadyExists)
	assert.Nil(t, result)

	mockRepo.AssertNumberOfCalls(t, "Save", maxJoinCodeAttempts)
}

// Test 6: Repository Save fails with unrelated error (no retry)
func TestCreateBusinessUseCase_Execute_SaveFails_ReturnsError(t *testing.T) {
	// Arrange
	mockRepo := new(MockBusinessRepository)
	mockTxManager := new(MockTransactionManager)
	useCase := NewCreateBusinessUseCase(mockRepo, mockTxManager)

	cmd := CreateBusinessCommand{
		Name:       "Sunrise Cafe",
		AdminOwner: uuid.New().String(),
	}

	dbError := errors.New("database write failed")

	// Mock: Save fails
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(dbError)

	// Act
	result, err := useCase.Execute(cmd)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, dbError)
	assert.Nil(t, result)

	mockRepo.AssertNumberOfCalls(t, "Save", 1)
}
