package shared_test

import (
	"errors"
	"testing"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

// 測試用標記類型
type testMarkerA struct{}
type testMarkerB struct{}

var errInvalidTestID = errors.New("invalid test id")

// ===========================
// EntityID 建構測試
// ===========================

// Test 1: NewEntityID 產生非空 ID
func TestNewEntityID_GeneratesNonEmptyID(t *testing.T) {
	// Act
	id := shared.NewEntityID[testMarkerA]()

	// Assert
	assert.False(t, id.IsEmpty())
	assert.Len(t, id.String(), 36, "應為標準 UUID 字串格式")
}

// Test 2: NewEntityID 每次產生唯一 ID
func TestNewEntityID_GeneratesUniqueIDs(t *testing.T) {
	// Act
	id1 := shared.NewEntityID[testMarkerA]()
	id2 := shared.NewEntityID[testMarkerA]()

	// Assert
	assert.False(t, id1.Equals(id2))
}

// Test 3: EntityIDFromString 解析有效 UUID
func TestEntityIDFromString_ValidUUID_Success(t *testing.T) {
	// Arrange
	original := shared.NewEntityID[testMarkerA]()

	// Act
	parsed, err := shared.EntityIDFromString[testMarkerA](original.String(), errInvalidTestID)

	// Assert
	assert.NoError(t, err)
	assert.True(t, parsed.Equals(original))
}

// Test 4: EntityIDFromString 解析無效字串返回調用者提供的錯誤
func TestEntityIDFromString_InvalidString_ReturnsTemplateError(t *testing.T) {
	// Act
	id, err := shared.EntityIDFromString[testMarkerA]("not-a-uuid", errInvalidTestID)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, errInvalidTestID)
	assert.True(t, id.IsEmpty())
}

// Test 5: 零值 ID 為空
func TestEntityID_ZeroValue_IsEmpty(t *testing.T) {
	// Arrange
	var id shared.EntityID[testMarkerA]

	// Assert
	assert.True(t, id.IsEmpty())
}

// Test 6: 不同標記類型為不同類型（編譯時檢查）
//
// 以下代碼無法編譯，這正是設計目的：
//   var a shared.EntityID[testMarkerA] = shared.NewEntityID[testMarkerB]()
func TestEntityID_DifferentMarkers_AreDistinctTypes(t *testing.T) {
	// Arrange
	idA := shared.NewEntityID[testMarkerA]()
	idB := shared.NewEntityID[testMarkerB]()

	// Assert: 只能通過字串比較（類型系統阻止直接比較）
	assert.NotEqual(t, idA.String(), idB.String())
}
