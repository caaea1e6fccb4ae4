package business

import (
	"errors"
	"strings"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/business"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM 事務上下文（來自 persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// BusinessRepositoryImpl
// ===========================

// BusinessRepositoryImpl 商家倉儲實現（GORM）
//
// 設計原則：
// - 實作 business.BusinessRepository 接口
// - 處理 Domain 與 GORM 模型轉換
// - 將 GORM 錯誤轉換為 Domain 錯誤
type BusinessRepositoryImpl struct {
	db *gorm.DB
}

// NewBusinessRepository 創建新的商家倉儲實例
func NewBusinessRepository(db *gorm.DB) business.BusinessRepository {
	return &BusinessRepositoryImpl{db: db}
}

// Save 保存新商家（連同獎勵目錄）
//
// 錯誤處理：
// - join_code 唯一約束違反 → ErrJoinCodeAlreadyExists
// - 其他資料庫錯誤 → 原始錯誤
func (r *BusinessRepositoryImpl) Save(ctx shared.TransactionContext, b *business.Business) error {
	db := r.getDB(ctx)

	gormModel, rewards := toGORM(b)

	if err := db.Create(gormModel).Error; err != nil {
		if isUniqueConstraintError(err) {
			return business.ErrJoinCodeAlreadyExists.WithContext(
				"join_code", b.JoinCode().String(),
			)
		}
		return err
	}

	if len(rewards) > 0 {
		if err := db.Create(&rewards).Error; err != nil {
			return err
		}
	}

	return nil
}

// Update 更新既有商家（商家列 + 目錄整體替換）
//
// 實作邏輯：
// - 目錄數量小（單一商家的獎勵清單），採整體替換而非逐筆 diff：
//   刪除舊目錄列後依聚合當前順序重新插入
func (r *BusinessRepositoryImpl) Update(ctx shared.TransactionContext, b *business.Business) error {
	db := r.getDB(ctx)

	gormModel, rewards := toGORM(b)

	if err := db.Save(gormModel).Error; err != nil {
		return err
	}

	if err := db.Where("business_id = ?", b.BusinessID().String()).Delete(&RewardGORM{}).Error; err != nil {
		return err
	}
	if len(rewards) > 0 {
		if err := db.Create(&rewards).Error; err != nil {
			return err
		}
	}

	return nil
}

// FindByID 根據商家 ID 查找（含完整獎勵目錄）
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → business.ErrBusinessNotFound
func (r *BusinessRepositoryImpl) FindByID(ctx shared.TransactionContext, businessID business.BusinessID) (*business.Business, error) {
	return r.findOne(ctx, "business_id = ?", businessID.String())
}

// FindByJoinCode 根據加入碼查找商家
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → business.ErrBusinessNotFound
func (r *BusinessRepositoryImpl) FindByJoinCode(ctx shared.TransactionContext, code business.JoinCode) (*business.Business, error) {
	return r.findOne(ctx, "join_code = ?", code.String())
}

// ExistsByID 檢查商家是否存在（COUNT 查詢，不載入目錄）
func (r *BusinessRepositoryImpl) ExistsByID(ctx shared.TransactionContext, businessID business.BusinessID) (bool, error) {
	db := r.getDB(ctx)

	var count int64
	result := db.Model(&BusinessGORM{}).Where("business_id = ?", businessID.String()).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// findOne 查找單一商家並載入目錄（私有輔助方法）
func (r *BusinessRepositoryImpl) findOne(ctx shared.TransactionContext, query string, arg string) (*business.Business, error) {
	db := r.getDB(ctx)

	var gormModel BusinessGORM
	result := db.Where(query, arg).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, business.ErrBusinessNotFound.WithContext(
				"query", query,
				"value", arg,
			)
		}
		return nil, result.Error
	}

	var rewards []RewardGORM
	result = db.Where("business_id = ?", gormModel.BusinessID).
		Order("position ASC").
		Find(&rewards)
	if result.Error != nil {
		return nil, result.Error
	}

	return toDomain(&gormModel, rewards)
}

// getDB 獲取資料庫實例
//
// 邏輯：
// - 如果 ctx 是 gormTransactionContext，返回事務中的 DB
// - 否則返回預設的 DB（auto-commit 模式）
func (r *BusinessRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}

// ===========================
// Helper Functions
// ===========================

// isUniqueConstraintError 檢查是否為唯一約束錯誤
//
// 支援的資料庫：
// - SQLite: "UNIQUE constraint failed"
// - PostgreSQL: "duplicate key value violates unique constraint"
// - MySQL: "Duplicate entry"
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "UNIQUE constraint failed") ||
		strings.Contains(errMsg, "duplicate key value") ||
		strings.Contains(errMsg, "Duplicate entry") ||
		strings.Contains(errMsg, "violates unique constraint")
}
