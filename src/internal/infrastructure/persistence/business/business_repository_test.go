package business

import (
	"testing"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ===========================
// BusinessRepository Integration Tests
// ===========================

// setupTestDB 創建測試資料庫（in-memory SQLite）
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to test database")

	err = db.AutoMigrate(&BusinessGORM{}, &RewardGORM{})
	require.NoError(t, err, "failed to migrate database schema")

	return db
}

// createTestBusiness 創建測試用商家
func createTestBusiness(t *testing.T) *business.Business {
	code, err := business.GenerateJoinCode()
	require.NoError(t, err)

	b, err := business.NewBusiness("Sunrise Cafe", business.NewUserID(), code)
	require.NoError(t, err)

	return b
}

// addReward 為商家目錄添加獎勵
func addReward(t *testing.T, b *business.Business, title string, cost int) business.Reward {
	t.Helper()

	pointsCost, err := business.NewPointsCost(cost)
	require.NoError(t, err)

	reward, err := business.NewReward(title, "", pointsCost, "drinks")
	require.NoError(t, err)
	require.NoError(t, b.AddReward(reward))

	return reward
}

// Test 1: Save new business successfully
func TestBusinessRepository_Save_NewBusiness_Success(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewBusinessRepository(db)
	b := createTestBusiness(t)

	// Act
	err := repo.Save(nil, b)

	// Assert
	require.NoError(t, err)

	// Verify in database
	var gormModel BusinessGORM
	result := db.First(&gormModel, "business_id = ?", b.BusinessID().String())
	require.NoError(t, result.Error)
	assert.Equal(t, "Sunrise Cafe", gormModel.Name)
	assert.Equal(t, b.JoinCode().String(), gormModel.JoinCode)
}

// Test 2: Save with duplicate join code fails
func TestBusinessRepository_Save_DuplicateJoinCode_ReturnsError(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewBusinessRepository(db)

	first := createTestBusiness(t)
	require.NoError(t, repo.Save(nil, first))

	// 第二個商家使用相同加入碼
	sameCode, err := business.NewJoinCode(first.JoinCode().String())
	require.NoError(t, err)
	second, err := business.NewBusiness("Copycat Cafe", business.NewUserID(), sameCode)
	require.NoError(t, err)

	// Act
	err = repo.Save(nil, second)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, business.ErrJoinCodeAlreadyExists)
}

// Test 3: Save and reload with reward catalog, order preserved
func TestBusinessRepository_SaveAndFind_CatalogOrderPreserved(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewBusinessRepository(db)
	b := createTestBusiness(t)
	addReward(t, b, "Free Latte", 100)
	addReward(t, b, "Free Bagel", 80)
	addReward(t, b, "Free Mug", 250)

	require.NoError(t, repo.Save(nil, b))

	// Act
	found, err := repo.FindByID(nil, b.BusinessID())

	// Assert
	require.NoError(t, err)
	rewards := found.Rewards()
	require.Len(t, rewards, 3)
	assert.Equal(t, "Free Latte", rewards[0].Title())
	assert.Equal(t, "Free Bagel", rewards[1].Title())
	assert.Equal(t, "Free Mug", rewards[2].Title())
	assert.Equal(t, 100, rewards[0].PointsCost().Value())
}

// Test 4: FindByID not found
func TestBusinessRepository_FindByID_NotFound_ReturnsError(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewBusinessRepository(db)

	// Act
	found, err := repo.FindByID(nil, business.NewBusinessID())

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, business.ErrBusinessNotFound)
	assert.Nil(t, found)
}

// Test 5: FindByJoinCode
func TestBusinessRepository_FindByJoinCode_Success(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewBusinessRepository(db)
	b := createTestBusiness(t)
	require.NoError(t, repo.Save(nil, b))

	// Act
	found, err := repo.FindByJoinCode(nil, b.JoinCode())

	// Assert
	require.NoError(t, err)
	assert.True(t, found.BusinessID().Equals(b.BusinessID()))
}

// Test 6: Update replaces the catalog
func TestBusinessRepository_Update_ReplacesCatalog(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewBusinessRepository(db)
	b := createTestBusiness(t)
	reward := addReward(t, b, "Free Latte", 100)
	require.NoError(t, repo.Save(nil, b))

	// 移除原獎勵、新增兩個
	require.NoError(t, b.RemoveReward(reward.RewardID()))
	addReward(t, b, "Free Bagel", 80)
	addReward(t, b, "Free Mug", 250)

	// Act
	err := repo.Update(nil, b)

	// Assert
	require.NoError(t, err)

	found, err := repo.FindByID(nil, b.BusinessID())
	require.NoError(t, err)
	rewards := found.Rewards()
	require.Len(t, rewards, 2)
	assert.Equal(t, "Free Bagel", rewards[0].Title())
	assert.Equal(t, "Free Mug", rewards[1].Title())

	// 舊獎勵列已清除
	var count int64
	db.Model(&RewardGORM{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

// Test 7: ExistsByID
func TestBusinessRepository_ExistsByID(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewBusinessRepository(db)
	b := createTestBusiness(t)
	require.NoError(t, repo.Save(nil, b))

	// Act & Assert
	exists, err := repo.ExistsByID(nil, b.BusinessID())
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(nil, business.NewBusinessID())
	require.NoError(t, err)
	assert.False(t, exists)
}
