package business_test

import (
	"testing"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// 測試輔助函數
// ===========================

func newTestBusiness(t *testing.T) *business.Business {
	t.Helper()

	code, err := business.GenerateJoinCode()
	require.NoError(t, err)

	b, err := business.NewBusiness("Corner Cafe", business.NewUserID(), code)
	require.NoError(t, err)

	return b
}

func newTestReward(t *testing.T, title string, cost int) business.Reward {
	t.Helper()

	pointsCost, err := business.NewPointsCost(cost)
	require.NoError(t, err)

	reward, err := business.NewReward(title, "", pointsCost, "drinks")
	require.NoError(t, err)

	return reward
}

// ===========================
// Business 建構測試
// ===========================

// Test 1: NewBusiness 成功建立
func TestNewBusiness_ValidInput_Success(t *testing.T) {
	// Arrange
	owner := business.NewUserID()
	code, _ := business.GenerateJoinCode()

	// Act
	b, err := business.NewBusiness("Corner Cafe", owner, code)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.False(t, b.BusinessID().IsEmpty())
	assert.Equal(t, "Corner Cafe", b.Name())
	assert.True(t, b.AdminOwner().Equals(owner))
	assert.True(t, b.JoinCode().Equals(code))
	assert.Empty(t, b.Rewards())
}

// Test 2: NewBusiness 空名稱
func TestNewBusiness_EmptyName_ReturnsError(t *testing.T) {
	// Arrange
	code, _ := business.GenerateJoinCode()

	// Act
	b, err := business.NewBusiness("", business.NewUserID(), code)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, business.ErrInvalidBusinessName)
}

// Test 3: NewBusiness 空管理員
func TestNewBusiness_EmptyAdminOwner_ReturnsError(t *testing.T) {
	// Arrange
	code, _ := business.GenerateJoinCode()

	// Act
	b, err := business.NewBusiness("Corner Cafe", business.UserID{}, code)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, business.ErrInvalidUserID)
}

// Test 4: NewBusiness 空加入碼
func TestNewBusiness_ZeroJoinCode_ReturnsError(t *testing.T) {
	// Act
	b, err := business.NewBusiness("Corner Cafe", business.NewUserID(), business.JoinCode{})

	// Assert
	assert.Error(t, err)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, business.ErrInvalidJoinCode)
}

// ===========================
// 獎勵目錄命令測試
// ===========================

// Test 5: AddReward 成功新增
func TestBusiness_AddReward_Success(t *testing.T) {
	// Arrange
	b := newTestBusiness(t)
	reward := newTestReward(t, "Free Latte", 50)

	// Act
	err := b.AddReward(reward)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, b.Rewards(), 1)

	found, ok := b.FindReward(reward.RewardID())
	assert.True(t, ok)
	assert.Equal(t, "Free Latte", found.Title())
}

// Test 6: AddReward 重複 ID 返回錯誤
func TestBusiness_AddReward_DuplicateID_ReturnsError(t *testing.T) {
	// Arrange
	b := newTestBusiness(t)
	reward := newTestReward(t, "Free Latte", 50)
	require.NoError(t, b.AddReward(reward))

	// Act
	err := b.AddReward(reward)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, business.ErrRewardAlreadyExists)
	assert.Len(t, b.Rewards(), 1, "目錄不應出現重複項目")
}

// Test 7: AddReward 維持插入順序
func TestBusiness_AddReward_PreservesInsertionOrder(t *testing.T) {
	// Arrange
	b := newTestBusiness(t)
	first := newTestReward(t, "Free Latte", 50)
	second := newTestReward(t, "Free Bagel", 80)
	third := newTestReward(t, "Tote Bag", 200)

	// Act
	require.NoError(t, b.AddReward(first))
	require.NoError(t, b.AddReward(second))
	require.NoError(t, b.AddReward(third))

	// Assert
	catalog := b.Rewards()
	require.Len(t, catalog, 3)
	assert.Equal(t, "Free Latte", catalog[0].Title())
	assert.Equal(t, "Free Bagel", catalog[1].Title())
	assert.Equal(t, "Tote Bag", catalog[2].Title())
}

// Test 8: UpdateReward 成功更新
func TestBusiness_UpdateReward_Success(t *testing.T) {
	// Arrange
	b := newTestBusiness(t)
	reward := newTestReward(t, "Free Latte", 50)
	require.NoError(t, b.AddReward(reward))

	newCost, _ := business.NewPointsCost(60)
	updated, err := business.ReconstructReward(
		reward.RewardID(), "Free Oat Latte", "oat milk upgrade", newCost, "drinks",
	)
	require.NoError(t, err)

	// Act
	err = b.UpdateReward(updated)

	// Assert
	assert.NoError(t, err)
	found, ok := b.FindReward(reward.RewardID())
	require.True(t, ok)
	assert.Equal(t, "Free Oat Latte", found.Title())
	assert.Equal(t, 60, found.PointsCost().Value())
}

// Test 9: UpdateReward 不存在的獎勵
func TestBusiness_UpdateReward_NotFound_ReturnsError(t *testing.T) {
	// Arrange
	b := newTestBusiness(t)
	reward := newTestReward(t, "Free Latte", 50)

	// Act
	err := b.UpdateReward(reward)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, business.ErrRewardNotFound)
}

// Test 10: RemoveReward 成功移除
func TestBusiness_RemoveReward_Success(t *testing.T) {
	// Arrange
	b := newTestBusiness(t)
	first := newTestReward(t, "Free Latte", 50)
	second := newTestReward(t, "Free Bagel", 80)
	require.NoError(t, b.AddReward(first))
	require.NoError(t, b.AddReward(second))

	// Act
	err := b.RemoveReward(first.RewardID())

	// Assert
	assert.NoError(t, err)
	catalog := b.Rewards()
	require.Len(t, catalog, 1)
	assert.Equal(t, "Free Bagel", catalog[0].Title())
}

// Test 11: RemoveReward 不存在的獎勵
func TestBusiness_RemoveReward_NotFound_ReturnsError(t *testing.T) {
	// Arrange
	b := newTestBusiness(t)

	// Act
	err := b.RemoveReward(business.NewRewardID())

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, business.ErrRewardNotFound)
}

// Test 12: Rewards 返回防禦性複製
func TestBusiness_Rewards_ReturnsDefensiveCopy(t *testing.T) {
	// Arrange
	b := newTestBusiness(t)
	reward := newTestReward(t, "Free Latte", 50)
	require.NoError(t, b.AddReward(reward))

	// Act: 修改返回的切片
	catalog := b.Rewards()
	catalog[0] = newTestReward(t, "Hijacked", 1)

	// Assert: 聚合內部狀態不受影響
	found, ok := b.FindReward(reward.RewardID())
	require.True(t, ok)
	assert.Equal(t, "Free Latte", found.Title())
}

// ===========================
// PointsCost 值對象測試
// ===========================

// Test 13: NewPointsCost 正整數成功
func TestNewPointsCost_PositiveValue_Success(t *testing.T) {
	cost, err := business.NewPointsCost(50)

	assert.NoError(t, err)
	assert.Equal(t, 50, cost.Value())
}

// Test 14: NewPointsCost 零與負數返回錯誤
func TestNewPointsCost_NonPositiveValue_ReturnsError(t *testing.T) {
	for _, v := range []int{0, -1, -100} {
		_, err := business.NewPointsCost(v)
		assert.ErrorIs(t, err, business.ErrInvalidPointsCost, "value %d", v)
	}
}

// Test 15: NewReward 空名稱返回錯誤
func TestNewReward_EmptyTitle_ReturnsError(t *testing.T) {
	cost, _ := business.NewPointsCost(50)

	_, err := business.NewReward("", "", cost, "")

	assert.ErrorIs(t, err, business.ErrInvalidRewardTitle)
}
