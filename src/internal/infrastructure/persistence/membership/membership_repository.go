package membership

import (
	"errors"
	"strings"

	"github.com/jackyeh168/loyalty_crm/src/internal/domain/membership"
	"github.com/jackyeh168/loyalty_crm/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM 事務上下文（來自 persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// MembershipRepositoryImpl
// ===========================

// MembershipRepositoryImpl 會籍倉儲實現（GORM）
//
// 設計原則：
// - 實作 membership.MembershipRepository 接口
// - 會籍列與消費記錄列在同一事務中寫入（聚合整體持久化）
// - 將資料庫唯一約束錯誤轉換為 Domain 錯誤：
//   (user_id, business_id) → ErrMembershipAlreadyExists
//   source_id → ErrPurchaseAlreadyApplied
type MembershipRepositoryImpl struct {
	db *gorm.DB
}

// NewMembershipRepository 創建新的會籍倉儲實例
func NewMembershipRepository(db *gorm.DB) membership.MembershipRepository {
	return &MembershipRepositoryImpl{db: db}
}

// Save 保存新會籍（連同已緩衝的消費記錄）
//
// 錯誤處理：
// - (user_id, business_id) 複合唯一約束違反 → ErrMembershipAlreadyExists
//   （併發首次加入：後到者應重新讀取先到者建立的會籍）
func (r *MembershipRepositoryImpl) Save(ctx shared.TransactionContext, m *membership.Membership) error {
	db := r.getDB(ctx)

	if err := db.Create(toGORM(m)).Error; err != nil {
		if isUniqueConstraintError(err) {
			return membership.ErrMembershipAlreadyExists.WithContext(
				"user_id", m.UserID().String(),
				"business_id", m.BusinessID().String(),
			)
		}
		return err
	}

	return r.insertNewPurchases(db, m, len(m.Purchases()))
}

// Update 更新既有會籍（餘額欄位 + 新增的消費記錄）
//
// 實作邏輯：
// - 消費記錄 append-only：只插入緩衝的新記錄，既有列不動
// - 新記錄的 position 接續在既有日誌之後
//
// 錯誤處理：
// - source_id 唯一約束違反 → ErrPurchaseAlreadyApplied
//   （同一申訴在並發下重複入帳，由資料庫作最後防線）
func (r *MembershipRepositoryImpl) Update(ctx shared.TransactionContext, m *membership.Membership) error {
	db := r.getDB(ctx)

	result := db.Model(&MembershipGORM{}).
		Where("membership_id = ?", m.MembershipID().String()).
		Updates(map[string]interface{}{
			"points_balance": m.PointsBalance(),
			"updated_at":     m.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return membership.ErrMembershipNotFound.WithContext(
			"membership_id", m.MembershipID().String(),
		)
	}

	newCount := len(m.Purchases())
	return r.insertNewPurchases(db, m, newCount)
}

// insertNewPurchases 插入聚合緩衝的新消費記錄
//
// 參數 totalAfter：插入完成後日誌的總長度
// （position 由此倒推，避免額外的 COUNT 查詢）
func (r *MembershipRepositoryImpl) insertNewPurchases(db *gorm.DB, m *membership.Membership, totalAfter int) error {
	newPurchases := m.PullNewPurchases()
	if len(newPurchases) == 0 {
		return nil
	}

	startPos := totalAfter - len(newPurchases)

	membershipID := m.MembershipID().String()
	for i, p := range newPurchases {
		row := purchaseToGORM(membershipID, p, startPos+i)
		if err := db.Create(&row).Error; err != nil {
			if isUniqueConstraintError(err) {
				return membership.ErrPurchaseAlreadyApplied.WithContext(
					"source_id", p.SourceID(),
				)
			}
			return err
		}
	}

	return nil
}

// FindByID 根據會籍 ID 查找（含完整消費記錄）
func (r *MembershipRepositoryImpl) FindByID(ctx shared.TransactionContext, membershipID membership.MembershipID) (*membership.Membership, error) {
	return r.findOne(ctx, "membership_id = ?", membershipID.String())
}

// FindByUserAndBusiness 根據 (userID, businessID) 查找會籍
func (r *MembershipRepositoryImpl) FindByUserAndBusiness(ctx shared.TransactionContext, userID membership.UserID, businessID membership.BusinessID) (*membership.Membership, error) {
	return r.findOne(ctx, "user_id = ? AND business_id = ?", userID.String(), businessID.String())
}

// FindAllByUser 查找用戶的所有會籍（依建立時間排序）
func (r *MembershipRepositoryImpl) FindAllByUser(ctx shared.TransactionContext, userID membership.UserID) ([]*membership.Membership, error) {
	db := r.getDB(ctx)

	var gormModels []MembershipGORM
	result := db.Where("user_id = ?", userID.String()).
		Order("created_at ASC").
		Find(&gormModels)
	if result.Error != nil {
		return nil, result.Error
	}

	memberships := make([]*membership.Membership, 0, len(gormModels))
	for i := range gormModels {
		m, err := r.loadAggregate(db, &gormModels[i])
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}

	return memberships, nil
}

// ExistsPurchaseBySourceID 檢查指定來源標識的消費記錄是否存在
func (r *MembershipRepositoryImpl) ExistsPurchaseBySourceID(ctx shared.TransactionContext, sourceID string) (bool, error) {
	if sourceID == "" {
		return false, nil
	}

	db := r.getDB(ctx)

	var count int64
	result := db.Model(&PurchaseGORM{}).Where("source_id = ?", sourceID).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// findOne 查找單一會籍並載入消費記錄（私有輔助方法）
func (r *MembershipRepositoryImpl) findOne(ctx shared.TransactionContext, query string, args ...interface{}) (*membership.Membership, error) {
	db := r.getDB(ctx)

	var gormModel MembershipGORM
	result := db.Where(query, args...).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, membership.ErrMembershipNotFound.WithContext(
				"query", query,
			)
		}
		return nil, result.Error
	}

	return r.loadAggregate(db, &gormModel)
}

// loadAggregate 載入會籍的消費記錄並重建聚合
func (r *MembershipRepositoryImpl) loadAggregate(db *gorm.DB, gormModel *MembershipGORM) (*membership.Membership, error) {
	var purchases []PurchaseGORM
	result := db.Where("membership_id = ?", gormModel.MembershipID).
		Order("position ASC").
		Find(&purchases)
	if result.Error != nil {
		return nil, result.Error
	}

	return toDomain(gormModel, purchases)
}

// getDB 獲取資料庫實例
//
// 邏輯：
// - 如果 ctx 是 gormTransactionContext，返回事務中的 DB
// - 否則返回預設的 DB（auto-commit 模式）
func (r *MembershipRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
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
